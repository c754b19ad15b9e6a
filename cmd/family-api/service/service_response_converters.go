// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
)

// doneResponse acknowledges a mutation, carrying the member after an update
type doneResponse struct {
	Done   bool          `json:"done"`
	Member *model.Member `json:"member,omitempty"`
}

// convertMembersToResponse keeps an empty family encoded as [] rather than null
func convertMembersToResponse(members []*model.Member) []*model.Member {
	if members == nil {
		return []*model.Member{}
	}
	return members
}

// encodeResponse writes body as JSON with the given status
func encodeResponse(ctx context.Context, w http.ResponseWriter, status int, body any) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err, "status", status)
	}
}

// encodeError writes the {"message"} body for err
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	apiErr := wrapError(ctx, err)
	encodeResponse(ctx, w, apiErr.StatusCode(), apiErr)
}
