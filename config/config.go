package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is prepended to every variable name, e.g. FACULTYDESK_PORT.
const EnvPrefix = "FACULTYDESK"

type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" required:"true"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`

	MachineID  uint16        `envconfig:"MACHINE_ID" default:"1"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	LoginRate  float64       `envconfig:"LOGIN_RATE" default:"1"`
	LoginBurst int           `envconfig:"LOGIN_BURST" default:"5"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	SeedFile       string `envconfig:"SEED_FILE"`
	TracingEnabled bool   `envconfig:"TRACING_ENABLED" default:"false"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the optional .env files and then the process environment.
// Variables already present in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	c := &Config{}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", c.Port)
	}
	return c, nil
}
