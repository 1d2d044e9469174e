package config

import (
	"github.com/ReconfigureIO/logruzio"
	"github.com/sirupsen/logrus"
)

// SetupLogging attaches the logz.io hook when a token is configured. Logs
// always go to stderr regardless.
func SetupLogging(version string, conf *Config) error {
	if conf.Relay.LogzioToken == "" {
		return nil
	}
	ctx := logrus.Fields{
		"Environment": conf.Relay.Env,
		"Version":     version,
		"Application": conf.ProgramName,
	}
	hook, err := logruzio.New(conf.Relay.LogzioToken, conf.ProgramName, ctx)
	if err != nil {
		return err
	}
	logrus.AddHook(hook)
	return nil
}
