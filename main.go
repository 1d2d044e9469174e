package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/linearconnect/platform/config"
	"github.com/linearconnect/platform/middleware"
	"github.com/linearconnect/platform/models"
	"github.com/linearconnect/platform/routes"
	"github.com/linearconnect/platform/service/ai"
	"github.com/linearconnect/platform/service/billing"
	"github.com/linearconnect/platform/service/events"
	"github.com/linearconnect/platform/service/intercom"
	"github.com/linearconnect/platform/service/linear"
	"github.com/linearconnect/platform/service/ticket"
)

var version string

func main() {
	conf, err := config.ParseEnvConfig()
	if err != nil {
		log.Fatal(err)
	}

	err = config.SetupLogging(version, conf)
	if err != nil {
		log.Fatal(err)
	}

	eventService := events.NewNopEventService()
	if conf.Relay.FeatureIntercomEvents {
		eventService = events.NewIntercomEventService(conf.Relay.Events, 100)
		go eventService.DrainEvents()
		defer eventService.Close()
	}

	var billingService billing.Service
	if conf.Relay.FeatureStripeTiers {
		log.Println("enabling stripe tier resolution")
		billingService = billing.New(conf.Relay.Billing)
	}

	aiService := ai.New(conf.Relay.AI)

	deps := routes.Deps{
		Integrations: models.IntegrationDataSource(),
		Usage:        models.UsageDataSource(),
		Tiers:        models.DefaultTierTable(),
		Linear:       linear.New(conf.Relay.Linear),
		Intercom:     intercom.New(conf.Relay.Intercom),
		Enhancer:     ticket.Enhancer{AI: aiService},
		Events:       eventService,
		Billing:      billingService,
		Started:      time.Now(),
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	routes.SetupRoutes(r, conf, deps)

	log.WithFields(log.Fields{
		"env":  conf.Relay.Env,
		"port": conf.Port,
	}).Info("starting linear connect")

	err = r.Run(":" + conf.Port)
	if err != nil {
		log.Fatal(err)
	}
}
