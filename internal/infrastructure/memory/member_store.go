// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package memory provides the in-memory member store.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
	errs "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// MemberStore is an ordered collection of members owned by a single family name.
// Insertion order is preserved and every id in the store is distinct.
// All operations hold mu, so id generation and insertion happen atomically.
type MemberStore struct {
	lastName string

	mu      sync.RWMutex
	members []*model.Member
}

var _ port.MemberRepository = (*MemberStore)(nil)

// NewMemberStore creates an empty store for the given family name.
func NewMemberStore(lastName string) *MemberStore {
	return &MemberStore{
		lastName: lastName,
		members:  make([]*model.Member, 0),
	}
}

// LastName returns the fixed family name of the store.
func (s *MemberStore) LastName() string {
	return s.lastName
}

// IsReady always succeeds; the store has no external dependency.
func (s *MemberStore) IsReady(_ context.Context) error {
	return nil
}

// Name implements the health pinger interface.
func (s *MemberStore) Name() string {
	return "member-store"
}

// Ping implements the health pinger interface.
func (s *MemberStore) Ping(ctx context.Context) error {
	return s.IsReady(ctx)
}

// ListMembers returns copies of every member in insertion order.
func (s *MemberStore) ListMembers(ctx context.Context) ([]*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m.Clone())
	}

	slog.DebugContext(ctx, "memory store: members listed", "count", len(out))
	return out, nil
}

// GetMember returns the first member whose id matches.
func (s *MemberStore) GetMember(ctx context.Context, id int) (*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		slog.DebugContext(ctx, "memory store: member not found", "member_id", id)
		return nil, errs.NewNotFound("member not found")
	}

	return s.members[idx].Clone(), nil
}

// GenerateID returns max(existing ids)+1, or 1 when the store is empty.
// The value is derived from the current contents, so ids can be reused after deletions.
// It fails with Conflict once the largest id is math.MaxInt.
func (s *MemberStore) GenerateID(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID()
}

// AddMember validates the input and appends a new member.
// An id supplied by the caller is kept; otherwise one is generated.
// The last name is always the store's family name.
func (s *MemberStore) AddMember(ctx context.Context, input model.MemberInput) (*model.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var id int
	if input.ID != nil {
		id = *input.ID
		if s.indexOf(id) >= 0 {
			slog.DebugContext(ctx, "memory store: member id already in use", "member_id", id)
			return nil, errs.NewConflict(fmt.Sprintf("member with id %d already exists", id))
		}
	} else {
		next, err := s.nextID()
		if err != nil {
			slog.WarnContext(ctx, "memory store: cannot generate member id", "error", err)
			return nil, err
		}
		id = next
	}

	member := input.ToMember(id, s.lastName)
	s.members = append(s.members, member)

	slog.DebugContext(ctx, "memory store: member added",
		"member_id", id,
		"count", len(s.members),
	)

	return member.Clone(), nil
}

// UpdateMember replaces first name, age and lucky numbers of an existing member in place.
// The id and position are kept and the last name is re-applied.
func (s *MemberStore) UpdateMember(ctx context.Context, id int, input model.MemberInput) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		slog.DebugContext(ctx, "memory store: member to update not found", "member_id", id)
		return nil, errs.NewNotFound("member not found")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.members[idx] = input.ToMember(id, s.lastName)

	slog.DebugContext(ctx, "memory store: member updated", "member_id", id)

	return s.members[idx].Clone(), nil
}

// DeleteMember removes the first member whose id matches. Unknown ids leave the store unchanged.
func (s *MemberStore) DeleteMember(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		slog.DebugContext(ctx, "memory store: nothing to delete", "member_id", id)
		return false, nil
	}

	s.members = slices.Delete(s.members, idx, idx+1)

	slog.DebugContext(ctx, "memory store: member deleted",
		"member_id", id,
		"count", len(s.members),
	)

	return true, nil
}

// Len returns the number of members in the store.
func (s *MemberStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.members)
}

// indexOf must be called with mu held.
func (s *MemberStore) indexOf(id int) int {
	return slices.IndexFunc(s.members, func(m *model.Member) bool {
		return m.ID == id
	})
}

// nextID must be called with mu held.
func (s *MemberStore) nextID() (int, error) {
	if len(s.members) == 0 {
		return 1, nil
	}
	maxID := s.members[0].ID
	for _, m := range s.members[1:] {
		maxID = max(maxID, m.ID)
	}
	if maxID == math.MaxInt {
		return 0, errs.NewConflict("member id space exhausted")
	}
	return maxID + 1, nil
}
