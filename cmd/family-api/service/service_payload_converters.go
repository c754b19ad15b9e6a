// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"

	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-family-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	lfxerrors "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// decodeMemberPayload reads a JSON object body into a member candidate or patch
func decodeMemberPayload(r *http.Request) (model.MemberInput, error) {
	if !isJSONRequest(r) {
		return model.MemberInput{}, lfxerrors.NewValidation("missing JSON object")
	}

	var payload map[string]json.RawMessage
	if err := goahttp.RequestDecoder(r).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return model.MemberInput{}, lfxerrors.NewValidation("missing JSON object")
		case errors.As(err, &maxBytesErr):
			return model.MemberInput{}, lfxerrors.NewValidation("request body too large")
		default:
			slog.DebugContext(r.Context(), "request body is not a JSON object", "error", err)
			return model.MemberInput{}, lfxerrors.NewValidation("missing JSON object")
		}
	}
	if payload == nil {
		// a literal null body
		return model.MemberInput{}, lfxerrors.NewValidation("missing JSON object")
	}

	return convertPayloadToMemberInput(payload), nil
}

// isJSONRequest accepts application/json and any +json media type
func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// convertPayloadToMemberInput maps raw JSON fields onto a MemberInput.
// Falsy values are left empty so validation reports them as missing;
// a truthy non-string first name or non-list lucky numbers is listed in Malformed.
func convertPayloadToMemberInput(payload map[string]json.RawMessage) model.MemberInput {
	var input model.MemberInput

	// a non-integer id is ignored and the store generates one
	if v, ok := payloadValue(payload, constants.FieldID); ok {
		if id, ok := payloadInt(v); ok {
			input.ID = &id
		}
	}

	if v, ok := payloadValue(payload, constants.FieldFirstName); ok && model.Truthy(v) {
		if firstName, ok := v.(string); ok {
			input.FirstName = firstName
		} else {
			input.Malformed = append(input.Malformed, constants.FieldFirstName)
		}
	}

	// any truthy JSON value is a valid age and is stored verbatim
	if v, ok := payloadValue(payload, constants.FieldAge); ok && model.Truthy(v) {
		input.Age = compactJSON(payload[constants.FieldAge])
	}

	if v, ok := payloadValue(payload, constants.FieldLuckyNumbers); ok && model.Truthy(v) {
		if numbers, ok := payloadNumbers(v); ok {
			input.LuckyNumbers = numbers
		} else {
			input.Malformed = append(input.Malformed, constants.FieldLuckyNumbers)
		}
	}

	return input
}

// payloadValue decodes one field, keeping numbers as json.Number
func payloadValue(payload map[string]json.RawMessage, field string) (any, bool) {
	raw, ok := payload[field]
	if !ok {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

func payloadInt(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, false
	}
	return i, true
}

// payloadNumbers accepts any list of JSON numbers, integral or not
func payloadNumbers(v any) ([]json.Number, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}

	numbers := make([]json.Number, 0, len(items))
	for _, item := range items {
		n, ok := item.(json.Number)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}

func compactJSON(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return slices.Clone(raw)
	}
	return buf.Bytes()
}

// parseMemberID accepts only unsigned decimal path ids; anything else matches no member
func parseMemberID(raw string) (int, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, lfxerrors.NewNotFound("resource not found")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, lfxerrors.NewNotFound("resource not found", err)
	}
	return id, nil
}
