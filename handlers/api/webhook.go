package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/linearconnect/platform/models"
	"github.com/linearconnect/platform/service/billing"
	"github.com/linearconnect/platform/service/events"
	"github.com/linearconnect/platform/service/intercom"
	"github.com/linearconnect/platform/service/linear"
	"github.com/linearconnect/platform/service/ticket"
	"github.com/linearconnect/platform/sugar"
)

// processableTopics is the allow-list of conversation events that become
// tickets. Everything else is acknowledged and ignored, so new topics from
// the source platform are always safe.
var processableTopics = map[string]bool{
	"conversation.user.created": true,
	"conversation.user.replied": true,
}

// ConversationEvent is the inbound webhook payload.
type ConversationEvent struct {
	Topic string `json:"topic"`
	Data  struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	} `json:"data"`
}

// Webhook processes inbound conversation events: load config, consume
// quota, fetch the conversation, enhance it, create the tracker issue,
// annotate the source conversation, record usage.
type Webhook struct {
	Integrations models.IntegrationRepo
	Usage        models.UsageRepo
	Tiers        models.TierTable
	Linear       linear.Service
	Intercom     intercom.Service
	Enhancer     ticket.Enhancer
	Events       events.EventService
	// Billing is optional; when set, the account's tier is synced from the
	// billing provider before the quota check.
	Billing billing.Service
	// ChargeOnSuccess defers quota consumption until the issue exists.
	// The default (false) charges up front, which is the only mode that
	// cannot exceed the limit under concurrent deliveries.
	ChargeOnSuccess bool
}

// Process handles one webhook delivery end to end.
func (h Webhook) Process(c *gin.Context) {
	accountID := c.Param("id")
	ctx := c.Request.Context()

	event := ConversationEvent{}
	if err := c.BindJSON(&event); err != nil {
		return
	}

	logger := log.WithFields(log.Fields{
		"account":  accountID,
		"topic":    event.Topic,
		"delivery": uuid.NewV4().String(),
	})

	config, err := h.Integrations.Get(accountID)
	if err == models.ErrNotFound {
		sugar.ErrResponse(c, 404, "Integration not found")
		return
	}
	if err != nil {
		sugar.InternalError(c, err)
		return
	}

	if !processableTopics[event.Topic] {
		logger.Info("ignoring event")
		c.JSON(200, gin.H{"status": "ignored", "topic": event.Topic})
		return
	}

	if h.Billing != nil {
		if tier, ok := h.Billing.TierFor(accountID); ok {
			h.Usage.SetTier(accountID, tier)
		}
	}

	usage, err := h.consumeQuota(accountID)
	if err != nil {
		logger.WithField("usage", usage.Count).Warn("usage limit exceeded")
		sugar.ErrResponse(c, 429, models.ErrQuotaExceeded)
		return
	}
	limit := h.Tiers.Limit(usage.Tier)

	conversationID := event.Data.Item.ID
	conversation, err := h.Intercom.GetConversation(ctx, config.IntercomToken, conversationID)
	if err != nil {
		logger.WithField("conversation", conversationID).Error(err)
		sugar.ErrResponse(c, 500, fmt.Sprintf("Processing failed: %s", err))
		return
	}
	customer := conversation.Customer()

	description := h.Enhancer.Enhance(ctx, conversation, usage.Tier)
	title := ticket.Title(usage.Tier, customer.Name, conversation.ConversationMessage.Subject)

	issue, err := h.Linear.CreateIssue(ctx, config.LinearToken, linear.IssueInput{
		TeamID:      config.TeamID,
		Title:       title,
		Description: description,
		Priority:    linear.DefaultPriority,
	})
	if err != nil {
		logger.Error(err)
		sugar.ErrResponse(c, 500, fmt.Sprintf("Processing failed: %s", err))
		return
	}

	if h.ChargeOnSuccess {
		usage = h.Usage.Charge(accountID)
	}

	// The issue exists and the quota is spent; from here nothing can fail
	// the delivery. The note is best-effort.
	err = h.Intercom.AddNote(ctx, config.IntercomToken, conversationID,
		noteBody(issue, usage.Tier, usage.Count, limit))
	if err != nil {
		logger.WithField("issue", issue.Identifier).Warnf("failed to add note: %s", err)
	}

	h.Events.EnqueueEvent(events.Event{
		AccountID: accountID,
		EventName: "ticket_created",
		Metadata: map[string]interface{}{
			"tier":       string(usage.Tier),
			"identifier": issue.Identifier,
			"usage":      usage.Count,
		},
	})

	logger.WithField("issue", issue.Identifier).Info("created ticket")
	c.JSON(200, gin.H{
		"success": true,
		"ticket": gin.H{
			"id":         issue.ID,
			"identifier": issue.Identifier,
			"url":        issue.URL,
			"title":      issue.Title,
		},
		"usage": fmt.Sprintf("%d/%d", usage.Count, limit),
		"tier":  usage.Tier,
	})
}

// consumeQuota applies the charge policy. Up-front charging uses the
// ledger's atomic check-and-increment; deferred charging only verifies
// headroom here and increments after issue creation.
func (h Webhook) consumeQuota(accountID string) (models.Usage, error) {
	if !h.ChargeOnSuccess {
		return h.Usage.TryConsume(accountID, h.Tiers)
	}
	usage := h.Usage.Peek(accountID)
	if usage.Count >= h.Tiers.Limit(usage.Tier) {
		return usage, models.ErrQuotaExceeded
	}
	return usage, nil
}

func noteBody(issue linear.Issue, tier models.Tier, count, limit int) string {
	return fmt.Sprintf(`**Linear Ticket Created**

**Ticket:** %s
**Link:** %s
**AI Enhancement:** %s tier
**Usage:** %d/%d tickets this month

*Automatically generated by Linear Connect*`,
		issue.Identifier, issue.URL, tier, count, limit)
}
