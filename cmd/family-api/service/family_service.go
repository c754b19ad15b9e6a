// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service implements the HTTP endpoints of the family service.
package service

import (
	"log/slog"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	internalService "github.com/linuxfoundation/lfx-v2-family-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/log"
)

const memberIDParam = "member_id"

// Endpoint is one route served by the family API
type Endpoint struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// FamilyService exposes the member use cases over HTTP
type FamilyService struct {
	reader internalService.MemberReader
	writer internalService.MemberWriter
	vars   func(*http.Request) map[string]string
}

// NewFamilyService returns the HTTP adapter around the member orchestrators
func NewFamilyService(reader internalService.MemberReader, writer internalService.MemberWriter) *FamilyService {
	return &FamilyService{
		reader: reader,
		writer: writer,
	}
}

// Mount registers the member routes, any extra operational endpoints and
// the sitemap at "/" listing all of them.
func (s *FamilyService) Mount(mux goahttp.Muxer, extra ...Endpoint) {
	s.vars = mux.Vars

	endpoints := append(s.endpoints(), extra...)
	endpoints = append(endpoints, Endpoint{
		Method:  http.MethodGet,
		Pattern: "/",
		Handler: SitemapHandler(endpoints),
	})

	for _, e := range endpoints {
		mux.Handle(e.Method, e.Pattern, e.Handler)
		slog.Debug("mounted endpoint", "method", e.Method, "pattern", e.Pattern)
	}
}

func (s *FamilyService) endpoints() []Endpoint {
	return []Endpoint{
		{Method: http.MethodGet, Pattern: "/members", Handler: s.ListMembers},
		{Method: http.MethodPost, Pattern: "/member", Handler: s.CreateMember},
		{Method: http.MethodGet, Pattern: "/member/{member_id}", Handler: s.GetMember},
		{Method: http.MethodPut, Pattern: "/member/{member_id}", Handler: s.UpdateMember},
		{Method: http.MethodDelete, Pattern: "/member/{member_id}", Handler: s.DeleteMember},
	}
}

// ListMembers returns every member in insertion order
func (s *FamilyService) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.DebugContext(ctx, "familyService.list-members")

	members, err := s.reader.ListMembers(ctx)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	encodeResponse(ctx, w, http.StatusOK, convertMembersToResponse(members))
}

// CreateMember stores a new member and returns it
func (s *FamilyService) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.DebugContext(ctx, "familyService.create-member")

	input, err := decodeMemberPayload(r)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	member, err := s.writer.CreateMember(ctx, input)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	encodeResponse(ctx, w, http.StatusOK, member)
}

// GetMember returns a single member
func (s *FamilyService) GetMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := s.memberID(r)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int(memberIDParam, id))
	slog.DebugContext(ctx, "familyService.get-member")

	member, err := s.reader.GetMember(ctx, id)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	encodeResponse(ctx, w, http.StatusOK, member)
}

// UpdateMember replaces a member's fields; a missing member is reported before an invalid body
func (s *FamilyService) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := s.memberID(r)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int(memberIDParam, id))
	slog.DebugContext(ctx, "familyService.update-member")

	input, errDecode := decodeMemberPayload(r)
	if errDecode != nil {
		if _, err := s.reader.GetMember(ctx, id); err != nil {
			encodeError(ctx, w, err)
			return
		}
		encodeError(ctx, w, errDecode)
		return
	}

	member, err := s.writer.ReplaceMember(ctx, id, input)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	encodeResponse(ctx, w, http.StatusOK, &doneResponse{Done: true, Member: member})
}

// DeleteMember removes a member
func (s *FamilyService) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := s.memberID(r)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int(memberIDParam, id))
	slog.DebugContext(ctx, "familyService.delete-member")

	if err := s.writer.RemoveMember(ctx, id); err != nil {
		encodeError(ctx, w, err)
		return
	}

	encodeResponse(ctx, w, http.StatusOK, &doneResponse{Done: true})
}

func (s *FamilyService) memberID(r *http.Request) (int, error) {
	var raw string
	if s.vars != nil {
		raw = s.vars(r)[memberIDParam]
	}
	return parseMemberID(raw)
}
