// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// MessagePublisher defines the interface for publishing member messages
// consumed by indexing services downstream.
type MessagePublisher interface {
	// Indexer publishes indexer messages for search and discovery services
	Indexer(ctx context.Context, subject string, message any) error
}
