// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package port defines the interfaces for storage and messaging adapters.
package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
)

// MemberReader defines the interface for reading member data
type MemberReader interface {
	// ListMembers returns every member in insertion order
	ListMembers(ctx context.Context) ([]*model.Member, error)

	// GetMember returns the first member whose id matches, or NotFound
	GetMember(ctx context.Context, id int) (*model.Member, error)

	// LastName returns the fixed family name owned by the store
	LastName() string
}
