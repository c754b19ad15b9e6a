// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import "time"

// HTTP header constants
const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-Id"
)

// HTTP server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 25 * time.Second
)

// MaxRequestBodyBytes caps member payloads
const MaxRequestBodyBytes = 1 << 20
