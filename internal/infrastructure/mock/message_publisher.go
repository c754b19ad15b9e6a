// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mock provides in-process stand-ins for the messaging and storage ports.
package mock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
)

// PublishedMessage is one message recorded by the mock publisher
type PublishedMessage struct {
	Subject string
	Message any
}

// maxRecordedMessages bounds the history kept when the mock runs as the service publisher
const maxRecordedMessages = 1000

// MockMessagePublisher records published messages instead of sending them
type MockMessagePublisher struct {
	mu       sync.Mutex
	messages []PublishedMessage
	err      error
}

// Ensure MockMessagePublisher implements the MessagePublisher interface
var _ port.MessagePublisher = (*MockMessagePublisher)(nil)

// NewMockMessagePublisher creates a new mock publisher
func NewMockMessagePublisher() *MockMessagePublisher {
	return &MockMessagePublisher{}
}

// Indexer records an indexer message and logs it
func (m *MockMessagePublisher) Indexer(ctx context.Context, subject string, message any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.messages = append(m.messages, PublishedMessage{Subject: subject, Message: message})
	if len(m.messages) > maxRecordedMessages {
		m.messages = m.messages[len(m.messages)-maxRecordedMessages:]
	}

	slog.InfoContext(ctx, "mock indexer message published",
		"subject", subject,
		"message_type", "indexer",
	)
	return nil
}

// SetError makes every following publish fail with err; nil restores success
func (m *MockMessagePublisher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

// Messages returns a copy of the recorded messages
func (m *MockMessagePublisher) Messages() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PublishedMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
