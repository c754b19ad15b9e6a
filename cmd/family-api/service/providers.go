// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"

	"goa.design/clue/health"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/memory"
	infrastructure "github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/infrastructure/nats"
	internalService "github.com/linuxfoundation/lfx-v2-family-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
)

// Messaging bundles the selected publisher with its readiness probes and cleanup
type Messaging struct {
	Publisher port.MessagePublisher
	Pingers   []health.Pinger
	Close     func() error
}

// MemberStorage creates the store owned by the process for the given family name
func MemberStorage(ctx context.Context, lastName string) *memory.MemberStore {
	if lastName == "" {
		lastName = constants.DefaultFamilyLastName
	}
	slog.InfoContext(ctx, "initializing in-memory member store", "last_name", lastName)
	return memory.NewMemberStore(lastName)
}

// MessagePublisher initializes the publisher implementation based on the messaging source
func MessagePublisher(ctx context.Context, source string, config nats.Config) (*Messaging, error) {
	if source == "" {
		source = constants.MessagingSourceMock
	}

	switch source {
	case constants.MessagingSourceMock:
		slog.InfoContext(ctx, "initializing mock message publisher")
		return &Messaging{
			Publisher: infrastructure.NewMockMessagePublisher(),
			Close:     func() error { return nil },
		}, nil

	case constants.MessagingSourceNATS:
		slog.InfoContext(ctx, "initializing NATS message publisher")
		natsClient, err := nats.NewClient(ctx, config)
		if err != nil {
			return nil, err
		}
		return &Messaging{
			Publisher: nats.NewMessagePublisher(natsClient),
			Pingers:   []health.Pinger{natsClient},
			Close:     natsClient.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported messaging source: %s", source)
	}
}

// MemberReaderOrchestrator wires the read use cases to storage
func MemberReaderOrchestrator(reader port.MemberReader) internalService.MemberReader {
	return internalService.NewMemberReaderOrchestrator(
		internalService.WithMemberReader(reader),
	)
}

// MemberWriterOrchestrator wires the write use cases to storage and the publisher
func MemberWriterOrchestrator(writer port.MemberWriter, publisher port.MessagePublisher) internalService.MemberWriter {
	return internalService.NewMemberWriterOrchestrator(
		internalService.WithMemberWriter(writer),
		internalService.WithPublisher(publisher),
	)
}
