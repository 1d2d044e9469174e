package models

import "errors"

// Tier is an account's subscription level.
type Tier string

const (
	// TierFree is the default tier for new accounts.
	TierFree Tier = "FREE"
	// TierPro is the paid tier.
	TierPro Tier = "PRO"
	// TierEnterprise is the top tier.
	TierEnterprise Tier = "ENTERPRISE"
)

var (
	// ErrNotFound is returned for accounts with no stored state.
	ErrNotFound = errors.New("Not Found")
	// ErrQuotaExceeded is returned when an account is at its ticket limit.
	ErrQuotaExceeded = errors.New("Monthly limit exceeded")
	// ErrInvalidTier is returned for unknown tier names.
	ErrInvalidTier = errors.New("Invalid tier")
)

// ParseTier validates a tier name from a request body.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierFree, TierPro, TierEnterprise:
		return Tier(s), nil
	}
	return "", ErrInvalidTier
}

// TierDefinition bounds what a tier is entitled to.
type TierDefinition struct {
	TicketLimit int    `json:"tickets"`
	AIQuality   string `json:"ai"`
}

// TierTable maps tiers to their entitlements. It is passed into every
// consumer rather than read as a package constant, so tests can supply
// alternate tables.
type TierTable map[Tier]TierDefinition

// DefaultTierTable returns the production tier entitlements.
func DefaultTierTable() TierTable {
	return TierTable{
		TierFree:       {TicketLimit: 100, AIQuality: "basic"},
		TierPro:        {TicketLimit: 1000, AIQuality: "advanced"},
		TierEnterprise: {TicketLimit: 10000, AIQuality: "premium"},
	}
}

// Limit returns the ticket limit for tier. Unknown tiers get no headroom.
func (t TierTable) Limit(tier Tier) int {
	return t[tier].TicketLimit
}

// IntegrationConfig holds one account's integration credentials and
// settings. Set overwrites the whole value; there is no partial update.
type IntegrationConfig struct {
	LinearToken   string `json:"-"`
	IntercomToken string `json:"-"`
	TeamID        string `json:"team_id"`
	WebhookURL    string `json:"webhook_url"`
	LinearUser    string `json:"linear_user"`
}

// Usage is an account's consumption against its tier.
type Usage struct {
	Count int  `json:"count"`
	Tier  Tier `json:"tier"`
}
