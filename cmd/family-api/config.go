// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
)

// config is the process configuration: defaults, then the optional YAML file, then the environment
type config struct {
	Port            string      `yaml:"port"`
	Bind            string      `yaml:"bind"`
	FamilyName      string      `yaml:"family_name"`
	MessagingSource string      `yaml:"messaging_source"`
	NATS            nats.Config `yaml:"nats"`
}

func defaultConfig() config {
	return config{
		Port:            constants.DefaultPort,
		Bind:            "*",
		FamilyName:      constants.DefaultFamilyLastName,
		MessagingSource: constants.MessagingSourceMock,
		NATS: nats.Config{
			URL:           "nats://localhost:4222",
			Timeout:       10 * time.Second,
			MaxReconnect:  3,
			ReconnectWait: 2 * time.Second,
			Encoding:      constants.EncodingJSON,
		},
	}
}

// loadConfig builds the configuration; path may be empty
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides file values with any environment variable that is set
func (c *config) applyEnv() error {
	overrideString(&c.Port, constants.EnvPort)
	overrideString(&c.FamilyName, constants.EnvFamilyLastName)
	overrideString(&c.MessagingSource, constants.EnvMessagingSource)
	overrideString(&c.NATS.URL, constants.EnvNATSURL)
	overrideString(&c.NATS.Encoding, constants.EnvNATSMessageEncoding)

	if err := overrideDuration(&c.NATS.Timeout, constants.EnvNATSTimeout); err != nil {
		return err
	}
	if err := overrideDuration(&c.NATS.ReconnectWait, constants.EnvNATSReconnectWait); err != nil {
		return err
	}
	if raw := os.Getenv(constants.EnvNATSMaxReconnect); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", constants.EnvNATSMaxReconnect, raw, err)
		}
		c.NATS.MaxReconnect = n
	}

	return nil
}

func overrideString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func overrideDuration(dst *time.Duration, env string) error {
	raw := os.Getenv(env)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s duration %q: %w", env, raw, err)
	}
	*dst = d
	return nil
}

// listenAddr joins the bind interface and port; "*" listens on every interface
func (c config) listenAddr() string {
	host := c.Bind
	if host == "*" {
		host = ""
	}
	return host + ":" + c.Port
}
