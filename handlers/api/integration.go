package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/linearconnect/platform/middleware"
	"github.com/linearconnect/platform/models"
	"github.com/linearconnect/platform/service/events"
	"github.com/linearconnect/platform/service/linear"
	"github.com/linearconnect/platform/sugar"
)

// Integration handles the management API: configuring the relay, reading
// usage stats, and changing tiers.
type Integration struct {
	Integrations models.IntegrationRepo
	Usage        models.UsageRepo
	Tiers        models.TierTable
	Linear       linear.Service
	Events       events.EventService
	// Host is the public base URL webhook addresses are built from.
	Host string
}

// SetupRequest is the setup call's body.
type SetupRequest struct {
	LinearToken   string `json:"linearToken" validate:"nonzero"`
	IntercomToken string `json:"intercomToken" validate:"nonzero"`
	TeamID        string `json:"teamId" validate:"nonzero"`
}

// Setup stores an account's integration config. The Linear token is proven
// by a live viewer lookup before anything is committed; the whole config is
// overwritten, never merged.
func (i Integration) Setup(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	post := SetupRequest{}
	if err := c.BindJSON(&post); err != nil {
		return
	}
	if !sugar.ValidateRequest(c, post) {
		return
	}

	viewer, err := i.Linear.Viewer(c.Request.Context(), post.LinearToken)
	if err != nil {
		log.WithField("account", accountID).Warnf("linear token validation failed: %s", err)
		sugar.ErrResponse(c, 400, "Invalid Linear token")
		return
	}

	webhookURL := fmt.Sprintf("%s/webhook/%s", i.Host, accountID)
	i.Integrations.Set(accountID, models.IntegrationConfig{
		LinearToken:   post.LinearToken,
		IntercomToken: post.IntercomToken,
		TeamID:        post.TeamID,
		WebhookURL:    webhookURL,
		LinearUser:    viewer.Name,
	})

	i.Events.EnqueueEvent(events.Event{
		AccountID: accountID,
		EventName: "integration_configured",
		Metadata:  map[string]interface{}{"linear_user": viewer.Name},
	})

	log.WithFields(log.Fields{"account": accountID, "linear_user": viewer.Name}).
		Info("integration configured")
	c.JSON(200, gin.H{
		"success":    true,
		"webhookUrl": webhookURL,
		"linearUser": viewer.Name,
		"message":    "Integration configured! Add the webhook URL to your Intercom app settings.",
	})
}

// Stats reports the account's tier, usage and integration state.
func (i Integration) Stats(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	usage := i.Usage.Peek(accountID)
	limit := i.Tiers.Limit(usage.Tier)

	percentage := 0
	if limit > 0 {
		percentage = int(float64(usage.Count)/float64(limit)*100 + 0.5)
	}

	var linearUser interface{}
	config, err := i.Integrations.Get(accountID)
	hasIntegration := err == nil
	if hasIntegration {
		linearUser = config.LinearUser
	}

	c.JSON(200, gin.H{
		"tier":           usage.Tier,
		"usage":          usage.Count,
		"limit":          limit,
		"percentage":     percentage,
		"hasIntegration": hasIntegration,
		"linearUser":     linearUser,
	})
}

// TierRequest is the tier-change call's body.
type TierRequest struct {
	Tier string `json:"tier"`
}

// Upgrade overwrites the account's tier, preserving its usage count.
func (i Integration) Upgrade(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	post := TierRequest{}
	if err := c.BindJSON(&post); err != nil {
		return
	}

	tier, err := models.ParseTier(post.Tier)
	if err != nil {
		sugar.ErrResponse(c, 400, err)
		return
	}

	i.Usage.SetTier(accountID, tier)
	log.WithFields(log.Fields{"account": accountID, "tier": tier}).Info("tier changed")
	c.JSON(200, gin.H{"success": true, "tier": tier})
}
