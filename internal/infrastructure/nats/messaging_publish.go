// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/utils"
)

// publishRetry bounds how long a mutation waits on a flaky connection
var publishRetry = utils.NewRetryConfig(3, 50*time.Millisecond, 500*time.Millisecond).
	WithRetryable(isRetryablePublishError)

// isRetryablePublishError rejects failures another attempt cannot fix
func isRetryablePublishError(err error) bool {
	switch {
	case stderrors.Is(err, nats.ErrConnectionClosed),
		stderrors.Is(err, nats.ErrBadSubject),
		stderrors.Is(err, nats.ErrMaxPayload):
		return false
	}
	return true
}

// messagingPublisher implements the MessagePublisher interface using NATS
type messagingPublisher struct {
	client   *NATSClient
	encoding string
}

// Indexer publishes indexer messages for search and discovery services
func (m *messagingPublisher) Indexer(ctx context.Context, subject string, message any) error {
	return m.publish(ctx, subject, message, "indexer")
}

// publish is the common method for publishing messages to NATS
func (m *messagingPublisher) publish(ctx context.Context, subject string, message any, messageType string) error {
	data, err := encodeMessage(m.encoding, message)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode message",
			"error", err,
			"subject", subject,
			"message_type", messageType,
			"encoding", m.encoding,
		)
		return errors.NewUnexpected("failed to encode message", err)
	}

	errPublish := utils.RetryWithExponentialBackoff(ctx, publishRetry, func() error {
		if err := m.client.IsReady(ctx); err != nil {
			return err
		}
		return m.client.conn.Publish(subject, data)
	})
	if errPublish != nil {
		slog.ErrorContext(ctx, "failed to publish message to NATS",
			"error", errPublish,
			"subject", subject,
			"message_type", messageType,
		)
		return errors.NewServiceUnavailable("failed to publish message", errPublish)
	}

	slog.DebugContext(ctx, "message published successfully",
		"subject", subject,
		"message_type", messageType,
		"message_size", len(data),
	)

	return nil
}

// encodeMessage serializes a message in the configured wire format
func encodeMessage(encoding string, message any) ([]byte, error) {
	switch encoding {
	case "", constants.EncodingJSON:
		return json.Marshal(message)
	case constants.EncodingMsgpack:
		return msgpack.Marshal(message)
	default:
		return nil, fmt.Errorf("unsupported message encoding %q", encoding)
	}
}

// NewMessagePublisher creates a new MessagePublisher using NATS
func NewMessagePublisher(client *NATSClient) port.MessagePublisher {
	return &messagingPublisher{
		client:   client,
		encoding: client.config.Encoding,
	}
}
