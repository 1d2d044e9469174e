package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linearconnect/platform/config"
	"github.com/linearconnect/platform/handlers/api"
	"github.com/linearconnect/platform/middleware"
	"github.com/linearconnect/platform/models"
	"github.com/linearconnect/platform/service/billing"
	"github.com/linearconnect/platform/service/events"
	"github.com/linearconnect/platform/service/intercom"
	"github.com/linearconnect/platform/service/linear"
	"github.com/linearconnect/platform/service/ticket"
)

// Deps carries the shared state and services the handlers run on.
type Deps struct {
	Integrations models.IntegrationRepo
	Usage        models.UsageRepo
	Tiers        models.TierTable
	Linear       linear.Service
	Intercom     intercom.Service
	Enhancer     ticket.Enhancer
	Events       events.EventService
	Billing      billing.Service
	Started      time.Time
}

// SetupRoutes sets up api routes.
func SetupRoutes(r gin.IRouter, conf *config.Config, deps Deps) {
	health := api.Health{
		Integrations: deps.Integrations,
		Usage:        deps.Usage,
		Env:          conf.Relay.Env,
		Started:      deps.Started,
	}
	r.GET("/health", health.Check)
	r.GET("/api/test", health.Test)

	// The source platform calls this directly; the account is addressed by
	// URL rather than by bearer token.
	webhook := api.Webhook{
		Integrations:    deps.Integrations,
		Usage:           deps.Usage,
		Tiers:           deps.Tiers,
		Linear:          deps.Linear,
		Intercom:        deps.Intercom,
		Enhancer:        deps.Enhancer,
		Events:          deps.Events,
		Billing:         deps.Billing,
		ChargeOnSuccess: conf.Relay.ChargePolicy == "success",
	}
	r.POST("/webhook/:id", webhook.Process)

	integration := api.Integration{
		Integrations: deps.Integrations,
		Usage:        deps.Usage,
		Tiers:        deps.Tiers,
		Linear:       deps.Linear,
		Events:       deps.Events,
		Host:         conf.Host,
	}
	apiRoutes := r.Group("/api", middleware.AccountAuth(conf.SecretKey))
	{
		apiRoutes.POST("/setup", integration.Setup)
		apiRoutes.GET("/stats", integration.Stats)
		apiRoutes.POST("/upgrade", integration.Upgrade)
	}
}
