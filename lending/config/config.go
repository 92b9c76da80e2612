package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/kelseyhightower/envconfig"

	"github.com/napat-dev/lending-service/lending/internal/service"
	"github.com/napat-dev/lending-service/pkg/kafka"
	"github.com/napat-dev/lending-service/pkg/logger"
	"github.com/napat-dev/lending-service/pkg/postgres"
	"github.com/napat-dev/lending-service/pkg/server"
)

type Config struct {
	Server   server.Config   `yaml:"server"`
	Database postgres.Config `yaml:"database"`
	Kafka    kafka.Config    `yaml:"kafka"`
	Borrow   service.Config  `yaml:"borrow"`
	Log      logger.Log      `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
