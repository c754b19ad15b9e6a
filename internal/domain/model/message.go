// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
)

// MessageAction is a type for the action of a member message
type MessageAction string

// MessageAction constants for the action of a member message
const (
	// ActionCreated is the action for a resource creation message
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a resource update message
	ActionUpdated MessageAction = "updated"
	// ActionDeleted is the action for a resource deletion message
	ActionDeleted MessageAction = "deleted"
)

// IndexerMessage is the NATS message schema for member CRUD events.
// It is consumed by indexing services to maintain search indexes.
type IndexerMessage struct {
	Action     MessageAction     `json:"action" msgpack:"action"`
	ObjectType string            `json:"object_type" msgpack:"object_type"`
	Headers    map[string]string `json:"headers" msgpack:"headers"`
	Data       any               `json:"data" msgpack:"data"`
	// Tags is a list of tags to be set on the indexed resource for search
	Tags []string `json:"tags" msgpack:"tags"`
}

// Build constructs an indexer message with context headers and the payload the indexer expects.
func (g *IndexerMessage) Build(ctx context.Context, input any) (*IndexerMessage, error) {
	headers := make(map[string]string)
	if requestID, ok := ctx.Value(constants.RequestIDContextKey).(string); ok {
		headers[constants.RequestIDHeader] = requestID
	}
	g.Headers = headers
	g.ObjectType = constants.ResourceTypeMember

	var payload any

	switch g.Action {
	case ActionCreated, ActionUpdated:
		// the indexer expects a generic object rather than the typed model
		data, err := json.Marshal(input)
		if err != nil {
			slog.ErrorContext(ctx, "error marshalling data into JSON", "error", err)
			return nil, err
		}
		var jsonData map[string]any
		if err := json.Unmarshal(data, &jsonData); err != nil {
			slog.ErrorContext(ctx, "error unmarshalling data into JSON", "error", err)
			return nil, err
		}
		payload = jsonData
	case ActionDeleted:
		// deletions only carry the identifier
		payload = input
	}

	g.Data = payload
	return g, nil
}
