// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines global constants used throughout the family service.
package constants

// Service constants
const (
	// ServiceName is the name of this service
	ServiceName = "lfx-v2-family-service"

	// DefaultFamilyLastName is the last name owned by the store when none is configured
	DefaultFamilyLastName = "Jackson"

	// DefaultPort is the listening port used when neither the flag nor PORT is set
	DefaultPort = "3000"
)

// Environment variables
const (
	// EnvPort selects the HTTP listening port
	EnvPort = "PORT"
	// EnvFamilyLastName sets the fixed family name of the store
	EnvFamilyLastName = "FAMILY_LAST_NAME"
	// EnvConfigFile points at an optional YAML configuration file
	EnvConfigFile = "CONFIG_FILE"
	// EnvMessagingSource selects the message publisher implementation (mock or nats)
	EnvMessagingSource = "MESSAGING_SOURCE"
	// EnvNATSURL is the environment variable for NATS server URL
	EnvNATSURL = "NATS_URL"
	// EnvNATSTimeout is the NATS connection timeout
	EnvNATSTimeout = "NATS_TIMEOUT"
	// EnvNATSMaxReconnect is the number of reconnect attempts before giving up
	EnvNATSMaxReconnect = "NATS_MAX_RECONNECT"
	// EnvNATSReconnectWait is the wait between reconnect attempts
	EnvNATSReconnectWait = "NATS_RECONNECT_WAIT"
	// EnvNATSMessageEncoding selects json or msgpack for published messages
	EnvNATSMessageEncoding = "NATS_MESSAGE_ENCODING"
)

// Messaging sources
const (
	MessagingSourceMock = "mock"
	MessagingSourceNATS = "nats"
)

// Message encodings
const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)
