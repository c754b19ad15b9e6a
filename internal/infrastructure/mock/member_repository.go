// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"sync"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/memory"
)

// Operation names accepted by SetErrorForOperation
const (
	OpListMembers  = "ListMembers"
	OpGetMember    = "GetMember"
	OpGenerateID   = "GenerateID"
	OpAddMember    = "AddMember"
	OpUpdateMember = "UpdateMember"
	OpDeleteMember = "DeleteMember"
	OpIsReady      = "IsReady"
)

// MockMemberRepository wraps the in-memory store and lets tests inject failures per operation
type MockMemberRepository struct {
	store *memory.MemberStore

	mu     sync.RWMutex
	errors map[string]error
}

var _ port.MemberRepository = (*MockMemberRepository)(nil)

// NewMockMemberRepository creates a repository backed by a fresh store for lastName
func NewMockMemberRepository(lastName string) *MockMemberRepository {
	return &MockMemberRepository{
		store:  memory.NewMemberStore(lastName),
		errors: make(map[string]error),
	}
}

// SetErrorForOperation makes the named operation return err
func (m *MockMemberRepository) SetErrorForOperation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors[operation] = err
}

// ClearErrors removes every injected failure
func (m *MockMemberRepository) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors = make(map[string]error)
}

func (m *MockMemberRepository) errorFor(operation string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.errors[operation]
}

// LastName returns the family name of the underlying store
func (m *MockMemberRepository) LastName() string {
	return m.store.LastName()
}

// IsReady reports the injected failure, if any
func (m *MockMemberRepository) IsReady(ctx context.Context) error {
	if err := m.errorFor(OpIsReady); err != nil {
		return err
	}
	return m.store.IsReady(ctx)
}

// ListMembers delegates to the store unless a failure is injected
func (m *MockMemberRepository) ListMembers(ctx context.Context) ([]*model.Member, error) {
	if err := m.errorFor(OpListMembers); err != nil {
		return nil, err
	}
	return m.store.ListMembers(ctx)
}

// GetMember delegates to the store unless a failure is injected
func (m *MockMemberRepository) GetMember(ctx context.Context, id int) (*model.Member, error) {
	if err := m.errorFor(OpGetMember); err != nil {
		return nil, err
	}
	return m.store.GetMember(ctx, id)
}

// GenerateID delegates to the store unless a failure is injected
func (m *MockMemberRepository) GenerateID(ctx context.Context) (int, error) {
	if err := m.errorFor(OpGenerateID); err != nil {
		return 0, err
	}
	return m.store.GenerateID(ctx)
}

// AddMember delegates to the store unless a failure is injected
func (m *MockMemberRepository) AddMember(ctx context.Context, input model.MemberInput) (*model.Member, error) {
	if err := m.errorFor(OpAddMember); err != nil {
		return nil, err
	}
	return m.store.AddMember(ctx, input)
}

// UpdateMember delegates to the store unless a failure is injected
func (m *MockMemberRepository) UpdateMember(ctx context.Context, id int, input model.MemberInput) (*model.Member, error) {
	if err := m.errorFor(OpUpdateMember); err != nil {
		return nil, err
	}
	return m.store.UpdateMember(ctx, id, input)
}

// DeleteMember delegates to the store unless a failure is injected
func (m *MockMemberRepository) DeleteMember(ctx context.Context, id int) (bool, error) {
	if err := m.errorFor(OpDeleteMember); err != nil {
		return false, err
	}
	return m.store.DeleteMember(ctx, id)
}

// Len returns the number of stored members
func (m *MockMemberRepository) Len() int {
	return m.store.Len()
}
