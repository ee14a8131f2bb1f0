// Package config loads the command line configuration from the environment and a yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/x4b1/sqsqueue"
	"github.com/x4b1/sqsqueue/credentials"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SQSQUEUE_"

// Config describes the queue to use and where its credentials come from.
type Config struct {
	QueueURL string `env:"QUEUE_URL" yaml:"queue_url"`
	Region   string `env:"REGION"    yaml:"region"`
	// Names of the environment variables holding the credentials, not the credentials.
	AccessIDVar  string `env:"ACCESS_ID_VAR"  envDefault:"AWS_ACCESS_KEY_ID"     yaml:"access_id_var"`
	SecretKeyVar string `env:"SECRET_KEY_VAR" envDefault:"AWS_SECRET_ACCESS_KEY" yaml:"secret_key_var"`
	// Custom endpoint, ex: http://localhost:4566 for LocalStack.
	Endpoint        string `env:"ENDPOINT"          yaml:"endpoint"`
	WaitTimeSeconds int    `env:"WAIT_TIME_SECONDS" yaml:"wait_time_seconds"`
	LogLevel        string `env:"LOG_LEVEL"         envDefault:"info" yaml:"log_level"`
}

// Load reads the configuration from SQSQUEUE_ prefixed environment variables,
// then overrides it with the values present in the yaml file at path, if path is not empty.
func Load(path string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config file: %w", err)
	}

	return cfg, nil
}

// Queue resolves the credentials and returns the queue configuration.
func (c Config) Queue() (sqsqueue.Config, error) {
	creds, err := credentials.FromEnv(c.AccessIDVar, c.SecretKeyVar)
	if err != nil {
		return sqsqueue.Config{}, err
	}

	return sqsqueue.Config{
		QueueURL:  c.QueueURL,
		Region:    c.Region,
		AccessID:  creds.AccessID,
		SecretKey: creds.SecretKey,
		Endpoint:  c.Endpoint,
	}, nil
}
