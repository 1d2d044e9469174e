package config

import (
	"github.com/caarlos0/env"

	"github.com/linearconnect/platform/service/ai"
	"github.com/linearconnect/platform/service/billing"
	"github.com/linearconnect/platform/service/events"
	"github.com/linearconnect/platform/service/intercom"
	"github.com/linearconnect/platform/service/linear"
)

type Config struct {
	ProgramName string      `env:"RELAY_NAME" envDefault:"linear-connect"`
	SecretKey   string      `env:"RELAY_SECRET_KEY"`
	Port        string      `env:"PORT" envDefault:"3001"`
	Host        string      `env:"RELAY_HOST_NAME"`
	Relay       RelayConfig `env:"RELAY"`
}

type RelayConfig struct {
	Env string `env:"RELAY_ENV" envDefault:"development"`
	// ChargePolicy decides when quota is consumed: "attempt" charges
	// before the downstream calls run, "success" charges only once the
	// tracker issue exists.
	ChargePolicy          string `env:"RELAY_CHARGE_POLICY" envDefault:"attempt"`
	LogzioToken           string `env:"LOGZIO_TOKEN"`
	FeatureIntercomEvents bool   `env:"RELAY_FEATURE_INTERCOM_EVENTS"`
	FeatureStripeTiers    bool   `env:"RELAY_FEATURE_STRIPE_TIERS"`
	Linear                linear.ServiceConfig
	Intercom              intercom.ServiceConfig
	AI                    ai.ServiceConfig
	Events                events.IntercomConfig
	Billing               billing.ServiceConfig
}

func ParseEnvConfig() (*Config, error) {
	conf := Config{}

	err := env.Parse(&conf)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay.Linear)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay.Intercom)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay.AI)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay.Events)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Relay.Billing)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}
