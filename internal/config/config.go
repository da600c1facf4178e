package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment. The store password has no default;
// leave DB_PASSWORD unset for stores that do not need one.
type Config struct {
	Port string `envconfig:"PORT" default:"8000"`

	DBDriver        string `envconfig:"DB_DRIVER" default:"sqlite"` // sqlite | mysql | pgx
	DBURL           string `envconfig:"DB_URL"`                     // empty: driver default
	DBUser          string `envconfig:"DB_USER"`
	DBPassword      string `envconfig:"DB_PASSWORD"`
	DBMaxOpen       int    `envconfig:"DB_MAX_OPEN" default:"10"`
	DBMaxIdle       int    `envconfig:"DB_MAX_IDLE" default:"0"`
	DBBusyTimeoutMs int    `envconfig:"DB_BUSY_TIMEOUT_MS" default:"10000"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	// HideErrors replaces 500 bodies with a generic message instead of the
	// underlying error text.
	HideErrors bool `envconfig:"HIDE_ERRORS" default:"false"`
	BodyLimit  int  `envconfig:"BODY_LIMIT" default:"1048576"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"db_driver": cfg.DBDriver,
		"db_url":    cfg.DBURL,
		"db_user":   cfg.DBUser,
		"log_level": cfg.LogLevel,
		"log_file":  cfg.LogFile,
	}).Info("config.load")
	return cfg, nil
}
