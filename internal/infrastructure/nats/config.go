// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import "time"

// Config holds the NATS connection settings, loadable from the YAML config file
type Config struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Timeout is the connection timeout
	Timeout time.Duration `yaml:"timeout"`
	// MaxReconnect is the maximum number of reconnect attempts
	MaxReconnect int `yaml:"max_reconnect"`
	// ReconnectWait is the time to wait between reconnect attempts
	ReconnectWait time.Duration `yaml:"reconnect_wait"`
	// Encoding is the wire format of published messages: json or msgpack
	Encoding string `yaml:"encoding"`
}
