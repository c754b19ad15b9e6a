// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service implements the member use cases on top of the storage and messaging ports.
package service

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
)

// MemberReader defines the read use cases exposed to the transport layer
type MemberReader interface {
	// ListMembers returns every member in insertion order
	ListMembers(ctx context.Context) ([]*model.Member, error)
	// GetMember returns a member by id or NotFound
	GetMember(ctx context.Context, id int) (*model.Member, error)
}

// memberReaderOrchestratorOption defines a function type for setting options on the reader orchestrator
type memberReaderOrchestratorOption func(*memberReaderOrchestrator)

// WithMemberReader sets the storage reader
func WithMemberReader(reader port.MemberReader) memberReaderOrchestratorOption {
	return func(r *memberReaderOrchestrator) {
		r.memberReader = reader
	}
}

// memberReaderOrchestrator delegates reads to storage and logs each use case
type memberReaderOrchestrator struct {
	memberReader port.MemberReader
}

// NewMemberReaderOrchestrator creates a new reader orchestrator using the option pattern
func NewMemberReaderOrchestrator(opts ...memberReaderOrchestratorOption) MemberReader {
	rc := &memberReaderOrchestrator{}
	for _, opt := range opts {
		opt(rc)
	}

	return rc
}

// ListMembers retrieves all members
func (r *memberReaderOrchestrator) ListMembers(ctx context.Context) ([]*model.Member, error) {
	if r.memberReader == nil {
		panic("memberReader dependency is required but was not provided")
	}

	slog.DebugContext(ctx, "executing list members use case")

	members, err := r.memberReader.ListMembers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list members", "error", err)
		return nil, err
	}

	slog.DebugContext(ctx, "members listed successfully", "count", len(members))

	return members, nil
}

// GetMember retrieves a member by id
func (r *memberReaderOrchestrator) GetMember(ctx context.Context, id int) (*model.Member, error) {
	if r.memberReader == nil {
		panic("memberReader dependency is required but was not provided")
	}

	slog.DebugContext(ctx, "executing get member use case",
		"member_id", id,
	)

	member, err := r.memberReader.GetMember(ctx, id)
	if err != nil {
		slog.DebugContext(ctx, "failed to get member",
			"error", err,
			"member_id", id,
		)
		return nil, err
	}

	slog.DebugContext(ctx, "member retrieved successfully",
		"member_id", id,
	)

	return member, nil
}
