// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
)

func TestMemberStorage(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "Jackson", MemberStorage(ctx, "").LastName())
	assert.Equal(t, "Doe", MemberStorage(ctx, "Doe").LastName())
}

func TestMessagePublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to mock", func(t *testing.T) {
		messaging, err := MessagePublisher(ctx, "", nats.Config{})
		require.NoError(t, err)

		assert.IsType(t, &mock.MockMessagePublisher{}, messaging.Publisher)
		assert.Empty(t, messaging.Pingers)
		assert.NoError(t, messaging.Close())
	})

	t.Run("nats requires a url", func(t *testing.T) {
		_, err := MessagePublisher(ctx, constants.MessagingSourceNATS, nats.Config{})
		assert.Error(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := MessagePublisher(ctx, "kafka", nats.Config{})
		assert.EqualError(t, err, "unsupported messaging source: kafka")
	})
}
