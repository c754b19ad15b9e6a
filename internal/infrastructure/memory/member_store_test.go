// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package memory

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	errs "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

func validInput(firstName string) model.MemberInput {
	return model.MemberInput{FirstName: firstName, Age: json.RawMessage("5"), LuckyNumbers: []json.Number{"1", "2"}}
}

func intPtr(v int) *int {
	return &v
}

func TestMemberStore_GenerateID(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	id, err := store.GenerateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty store starts at 1")

	withID := validInput("John")
	withID.ID = intPtr(10)
	_, err = store.AddMember(ctx, withID)
	require.NoError(t, err)

	id, err = store.GenerateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, id)

	// generation does not reserve anything
	id, err = store.GenerateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, id)
}

func TestMemberStore_IDSpaceExhausted(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	last := validInput("Max")
	last.ID = intPtr(math.MaxInt)
	_, err := store.AddMember(ctx, last)
	require.NoError(t, err)

	_, err = store.GenerateID(ctx)
	require.Error(t, err)
	assert.IsType(t, errs.Conflict{}, err)

	for range 2 {
		_, err = store.AddMember(ctx, validInput("Next"))
		require.Error(t, err)
		assert.IsType(t, errs.Conflict{}, err)
	}

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, math.MaxInt, members[0].ID)

	// ids below the maximum can still be supplied explicitly
	lower := validInput("Lower")
	lower.ID = intPtr(math.MaxInt - 1)
	member, err := store.AddMember(ctx, lower)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, member.ID)
}

func TestMemberStore_GeneratedIDsAreMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	for want := 1; want <= 5; want++ {
		member, err := store.AddMember(ctx, validInput("Member"))
		require.NoError(t, err)
		assert.Equal(t, want, member.ID)
	}
}

func TestMemberStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	input := validInput("A")
	input.ID = nil
	created, err := store.AddMember(ctx, input)
	require.NoError(t, err)

	got, err := store.GetMember(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.FirstName)
	assert.Equal(t, json.RawMessage("5"), got.Age)
	assert.Equal(t, []json.Number{"1", "2"}, got.LuckyNumbers)
	assert.Equal(t, "Jackson", got.LastName)
}

func TestMemberStore_GetMemberNotFound(t *testing.T) {
	store := NewMemberStore("Jackson")

	member, err := store.GetMember(context.Background(), 9999)

	require.Error(t, err)
	assert.IsType(t, errs.NotFound{}, err)
	assert.Nil(t, member)
}

func TestMemberStore_ListMembersKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	for _, tc := range []struct {
		name string
		id   int
	}{{"John", 3}, {"Jane", 1}, {"Jimmy", 2}} {
		input := validInput(tc.name)
		input.ID = intPtr(tc.id)
		_, err := store.AddMember(ctx, input)
		require.NoError(t, err)
	}

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, []string{"John", "Jane", "Jimmy"}, []string{members[0].FirstName, members[1].FirstName, members[2].FirstName})
	assert.Equal(t, []int{3, 1, 2}, []int{members[0].ID, members[1].ID, members[2].ID})
}

func TestMemberStore_ListMembersReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")
	_, err := store.AddMember(ctx, validInput("John"))
	require.NoError(t, err)

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	members[0].LuckyNumbers[0] = 42
	members[0].FirstName = "Changed"

	got, err := store.GetMember(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, []json.Number{"1", "2"}, got.LuckyNumbers)
}

func TestMemberStore_AddMember(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, store *MemberStore)
		input       model.MemberInput
		expectedErr error
		expectedID  int
		expectedLen int
	}{
		{
			name:        "generates id on empty store",
			input:       validInput("John"),
			expectedID:  1,
			expectedLen: 1,
		},
		{
			name:        "keeps caller supplied id",
			input:       model.MemberInput{ID: intPtr(7), FirstName: "John", Age: json.RawMessage("33"), LuckyNumbers: []json.Number{"7"}},
			expectedID:  7,
			expectedLen: 1,
		},
		{
			name:        "rejects lucky numbers that are not a list",
			input:       model.MemberInput{FirstName: "A", Age: json.RawMessage("5"), Malformed: []string{"lucky_numbers"}},
			expectedErr: errs.Validation{},
			expectedLen: 0,
		},
		{
			name:        "rejects falsy age",
			input:       model.MemberInput{FirstName: "A", Age: json.RawMessage("0"), LuckyNumbers: []json.Number{"1"}},
			expectedErr: errs.Validation{},
			expectedLen: 0,
		},
		{
			name: "rejects duplicate caller supplied id",
			setup: func(t *testing.T, store *MemberStore) {
				_, err := store.AddMember(context.Background(), validInput("John"))
				require.NoError(t, err)
			},
			input:       model.MemberInput{ID: intPtr(1), FirstName: "Jane", Age: json.RawMessage("35"), LuckyNumbers: []json.Number{"10"}},
			expectedErr: errs.Conflict{},
			expectedLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemberStore("Jackson")
			if tt.setup != nil {
				tt.setup(t, store)
			}

			member, err := store.AddMember(context.Background(), tt.input)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.expectedErr, err)
				assert.Nil(t, member)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, member.ID)
				assert.Equal(t, "Jackson", member.LastName)
			}
			assert.Equal(t, tt.expectedLen, store.Len())
		})
	}
}

func TestMemberStore_UpdateReplacesInsteadOfMerging(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")
	created, err := store.AddMember(ctx, validInput("A"))
	require.NoError(t, err)

	patch := model.MemberInput{ID: intPtr(50), FirstName: "B", Age: json.RawMessage("9"), LuckyNumbers: []json.Number{"3"}}
	updated, err := store.UpdateMember(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "patch id is ignored")

	got, err := store.GetMember(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []json.Number{"3"}, got.LuckyNumbers)
	assert.Equal(t, "B", got.FirstName)
	assert.Equal(t, json.RawMessage("9"), got.Age)
	assert.Equal(t, "Jackson", got.LastName)
}

func TestMemberStore_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")
	for _, name := range []string{"John", "Jane", "Jimmy"} {
		_, err := store.AddMember(ctx, validInput(name))
		require.NoError(t, err)
	}

	_, err := store.UpdateMember(ctx, 2, model.MemberInput{FirstName: "Janet", Age: json.RawMessage("36"), LuckyNumbers: []json.Number{"4"}})
	require.NoError(t, err)

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Janet", members[1].FirstName)
	assert.Equal(t, 2, members[1].ID)
}

func TestMemberStore_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")
	_, err := store.AddMember(ctx, validInput("A"))
	require.NoError(t, err)

	_, err = store.UpdateMember(ctx, 404, validInput("B"))
	assert.IsType(t, errs.NotFound{}, err)

	_, err = store.UpdateMember(ctx, 404, model.MemberInput{})
	assert.IsType(t, errs.NotFound{}, err, "existence is checked before validation")

	_, err = store.UpdateMember(ctx, 1, model.MemberInput{FirstName: "B", Age: json.RawMessage("9")})
	assert.IsType(t, errs.Validation{}, err)

	got, err := store.GetMember(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.FirstName, "failed update leaves the record untouched")
}

func TestMemberStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")
	_, err := store.AddMember(ctx, validInput("A"))
	require.NoError(t, err)

	for range 2 {
		removed, err := store.DeleteMember(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 1, store.Len())
	}

	removed, err := store.DeleteMember(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, store.Len())
}

func TestMemberStore_IDReuseAfterDeletion(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	first, err := store.AddMember(ctx, validInput("One"))
	require.NoError(t, err)
	second, err := store.AddMember(ctx, validInput("Two"))
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)

	removed, err := store.DeleteMember(ctx, 2)
	require.NoError(t, err)
	require.True(t, removed)

	third, err := store.AddMember(ctx, validInput("Three"))
	require.NoError(t, err)
	assert.Equal(t, 2, third.ID)
}

func TestMemberStore_ConcurrentCreationYieldsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	const workers = 64
	ids := make([]int, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			member, err := store.AddMember(ctx, validInput("Worker"))
			if err != nil {
				return err
			}
			ids[i] = member.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int]bool, workers)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	for id := 1; id <= workers; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
	assert.Equal(t, workers, store.Len())
}

func TestMemberStore_ConcurrentMixedOperations(t *testing.T) {
	ctx := context.Background()
	store := NewMemberStore("Jackson")

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			member, err := store.AddMember(ctx, validInput("Worker"))
			if err != nil {
				return err
			}
			if i%2 == 0 {
				_, err = store.DeleteMember(ctx, member.ID)
				return err
			}
			_, err = store.ListMembers(ctx)
			return err
		})
	}
	require.NoError(t, g.Wait())

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, m := range members {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}
