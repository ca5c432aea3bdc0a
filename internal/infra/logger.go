package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customerlib/internal/config"
)

// Logger configures standard logrus logger
func Logger(cfg config.LogCfg) error {
	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(lvl)

	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %s", cfg.Format)
	}
	return nil
}
