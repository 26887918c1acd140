package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR" default:"localhost:50051"`
	Email      string `envconfig:"VIEWER_EMAIL" required:"true"`
	Password   string `envconfig:"VIEWER_PASSWORD" required:"true"`
	// VIEWER_WORKSPACE is matched by name, the first workspace is used when empty
	Workspace     string        `envconfig:"VIEWER_WORKSPACE"`
	Channel       string        `envconfig:"VIEWER_CHANNEL" default:"general"`
	Timezone      string        `envconfig:"VIEWER_TIMEZONE" default:"Local"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"WARN"`
	Colours       bool          `envconfig:"VIEWER_COLOURS" default:"true"`
	UploadTimeout time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"30s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
