// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	lfxerrors "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// apiError is the transport form of a domain error: a status code and a {"message"} body
type apiError struct {
	status  int
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status of the error
func (e *apiError) StatusCode() int {
	return e.status
}

// wrapError maps the first typed error found in err's chain to its status
func wrapError(ctx context.Context, err error) *apiError {
	var (
		validation  lfxerrors.Validation
		notFound    lfxerrors.NotFound
		conflict    lfxerrors.Conflict
		unavailable lfxerrors.ServiceUnavailable
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &unavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "error", err)
	} else {
		slog.DebugContext(ctx, "request rejected", "error", err, "status", status)
	}

	return &apiError{status: status, Message: err.Error()}
}
