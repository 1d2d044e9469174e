// Package billing resolves an account's tier from its Stripe subscription.
// It is consulted ahead of the quota check when the feature is enabled; the
// in-memory ledger stays authoritative when it is not, or when Stripe has
// nothing usable to say.
package billing

import (
	"sync"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/customer"

	"github.com/linearconnect/platform/models"
)

// Service resolves tiers from the billing provider.
type Service interface {
	// TierFor returns the account's subscribed tier. The second return is
	// false when no active subscription carries a usable tier, in which
	// case the stored tier stands.
	TierFor(accountID string) (models.Tier, bool)
}

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	APIKey string `env:"RELAY_STRIPE_KEY"`
}

// New creates a new service with conf.
func New(conf ServiceConfig) Service {
	stripe.Key = conf.APIKey
	return &service{cache: make(map[string]models.Tier)}
}

type service struct {
	mu    sync.RWMutex
	cache map[string]models.Tier
}

func (s *service) TierFor(accountID string) (models.Tier, bool) {
	s.mu.RLock()
	tier, ok := s.cache[accountID]
	s.mu.RUnlock()
	if ok {
		return tier, true
	}

	stripeCustomer, err := customer.Get(accountID, nil)
	if err != nil {
		return "", false
	}
	for _, sub := range stripeCustomer.Subs.Values {
		if sub.Status != "active" || sub.Plan == nil {
			continue
		}
		tier, err := models.ParseTier(sub.Plan.Meta["TIER"])
		if err != nil {
			continue
		}
		// cache only values actually retrieved from stripe.
		s.mu.Lock()
		s.cache[accountID] = tier
		s.mu.Unlock()
		return tier, true
	}
	return "", false
}
