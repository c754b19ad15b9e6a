// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	errs "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// MemberWriter defines the write use cases exposed to the transport layer
type MemberWriter interface {
	// CreateMember validates and stores a new member
	CreateMember(ctx context.Context, input model.MemberInput) (*model.Member, error)
	// ReplaceMember replaces the fields of an existing member
	ReplaceMember(ctx context.Context, id int, input model.MemberInput) (*model.Member, error)
	// RemoveMember deletes an existing member, NotFound when it does not exist
	RemoveMember(ctx context.Context, id int) error
}

// memberWriterOrchestratorOption defines a function type for setting options on the writer orchestrator
type memberWriterOrchestratorOption func(*memberWriterOrchestrator)

// WithMemberWriter sets the storage writer
func WithMemberWriter(writer port.MemberWriter) memberWriterOrchestratorOption {
	return func(w *memberWriterOrchestrator) {
		w.memberWriter = writer
	}
}

// WithPublisher sets the message publisher
func WithPublisher(publisher port.MessagePublisher) memberWriterOrchestratorOption {
	return func(w *memberWriterOrchestrator) {
		w.publisher = publisher
	}
}

// memberWriterOrchestrator runs mutations against storage, then publishes the resulting events
type memberWriterOrchestrator struct {
	memberWriter port.MemberWriter
	publisher    port.MessagePublisher
	operations   metric.Int64Counter
}

// NewMemberWriterOrchestrator creates a new writer orchestrator using the option pattern
func NewMemberWriterOrchestrator(opts ...memberWriterOrchestratorOption) MemberWriter {
	wc := &memberWriterOrchestrator{}
	for _, opt := range opts {
		opt(wc)
	}

	counter, err := otel.Meter(constants.ServiceName).Int64Counter(
		constants.MetricMemberOperations,
		metric.WithDescription("Member mutations by operation and outcome"),
	)
	if err != nil {
		slog.Warn("failed to create member operations counter", "error", err)
	}
	wc.operations = counter

	return wc
}

// CreateMember stores a new member and publishes a created event
func (w *memberWriterOrchestrator) CreateMember(ctx context.Context, input model.MemberInput) (*model.Member, error) {
	if w.memberWriter == nil {
		panic("memberWriter dependency is required but was not provided")
	}

	slog.DebugContext(ctx, "executing create member use case",
		"first_name", input.FirstName,
		"id_supplied", input.ID != nil,
	)

	member, err := w.memberWriter.AddMember(ctx, input)
	w.record(ctx, "create", err)
	if err != nil {
		slog.DebugContext(ctx, "failed to create member", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "member created successfully",
		"member_id", member.ID,
	)

	w.publishMemberMessage(ctx, model.ActionCreated, member, member)

	return member, nil
}

// ReplaceMember replaces the fields of an existing member and publishes an updated event
func (w *memberWriterOrchestrator) ReplaceMember(ctx context.Context, id int, input model.MemberInput) (*model.Member, error) {
	if w.memberWriter == nil {
		panic("memberWriter dependency is required but was not provided")
	}

	slog.DebugContext(ctx, "executing replace member use case",
		"member_id", id,
	)

	member, err := w.memberWriter.UpdateMember(ctx, id, input)
	w.record(ctx, "update", err)
	if err != nil {
		slog.DebugContext(ctx, "failed to replace member", "error", err, "member_id", id)
		return nil, err
	}

	slog.InfoContext(ctx, "member replaced successfully",
		"member_id", id,
	)

	w.publishMemberMessage(ctx, model.ActionUpdated, member, member)

	return member, nil
}

// RemoveMember deletes a member and publishes a deleted event
func (w *memberWriterOrchestrator) RemoveMember(ctx context.Context, id int) error {
	if w.memberWriter == nil {
		panic("memberWriter dependency is required but was not provided")
	}

	slog.DebugContext(ctx, "executing remove member use case",
		"member_id", id,
	)

	removed, err := w.memberWriter.DeleteMember(ctx, id)
	if err == nil && !removed {
		err = errs.NewNotFound("member not found")
	}
	w.record(ctx, "delete", err)
	if err != nil {
		slog.DebugContext(ctx, "failed to remove member", "error", err, "member_id", id)
		return err
	}

	slog.InfoContext(ctx, "member removed successfully",
		"member_id", id,
	)

	w.publishMemberMessage(ctx, model.ActionDeleted, &model.Member{ID: id}, id)

	return nil
}

// publishMemberMessage publishes the indexer message for a member operation.
// A failed publish is logged and never undoes the mutation.
func (w *memberWriterOrchestrator) publishMemberMessage(ctx context.Context, action model.MessageAction, member *model.Member, data any) {
	if w.publisher == nil {
		slog.WarnContext(ctx, "publisher not available, skipping member message publishing")
		return
	}

	indexerMessage := &model.IndexerMessage{
		Action: action,
		Tags:   member.Tags(),
	}

	built, err := indexerMessage.Build(ctx, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build member indexer message",
			"error", fmt.Errorf("failed to build %s indexer message: %w", action, err),
			"member_id", member.ID,
		)
		return
	}

	if err := w.publisher.Indexer(ctx, constants.IndexFamilyMemberSubject, built); err != nil {
		slog.ErrorContext(ctx, "failed to publish member message",
			"error", err,
			"member_id", member.ID,
			"action", action,
		)
		return
	}

	slog.DebugContext(ctx, "member message published successfully",
		"member_id", member.ID,
		"action", action,
	)
}

// record counts an operation outcome
func (w *memberWriterOrchestrator) record(ctx context.Context, operation string, err error) {
	if w.operations == nil {
		return
	}
	w.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome(err)),
	))
}

func outcome(err error) string {
	switch err.(type) {
	case nil:
		return "success"
	case errs.Validation:
		return "invalid"
	case errs.NotFound:
		return "not_found"
	case errs.Conflict:
		return "conflict"
	default:
		return "error"
	}
}
