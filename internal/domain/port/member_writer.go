// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
)

// MemberWriter defines the interface for writing member data
type MemberWriter interface {
	// GenerateID returns max(existing ids)+1, or 1 for an empty store
	GenerateID(ctx context.Context) (int, error)

	// AddMember validates the input and appends a new member, generating the id when none was supplied
	AddMember(ctx context.Context, input model.MemberInput) (*model.Member, error)

	// UpdateMember replaces the fields of an existing member; returns NotFound when the id is absent
	UpdateMember(ctx context.Context, id int, input model.MemberInput) (*model.Member, error)

	// DeleteMember removes the first member whose id matches.
	// Deleting an absent id is a no-op reported by removed=false.
	DeleteMember(ctx context.Context, id int) (removed bool, err error)
}
