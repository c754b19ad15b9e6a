// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package model defines the domain models and entities for the family service.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	errs "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// Member is one record of the family collection.
// Age holds the JSON value the caller supplied, so "5", 5.5 and 1e1 round trip unchanged.
type Member struct {
	ID           int             `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Age          json.RawMessage `json:"age"`
	LuckyNumbers []json.Number   `json:"lucky_numbers"`
}

// Clone returns a deep copy so callers never share the lucky numbers slice with the store.
func (m *Member) Clone() *Member {
	if m == nil {
		return nil
	}
	c := *m
	c.Age = slices.Clone(m.Age)
	c.LuckyNumbers = slices.Clone(m.LuckyNumbers)
	return &c
}

// Tags generates a consistent set of tags for the member.
func (m *Member) Tags() []string {
	if m == nil {
		return nil
	}

	tags := []string{
		fmt.Sprintf("%d", m.ID),
		fmt.Sprintf("member_id:%d", m.ID),
	}
	if m.FirstName != "" {
		tags = append(tags, fmt.Sprintf("%s:%s", constants.FieldFirstName, m.FirstName))
	}
	if m.LastName != "" {
		tags = append(tags, fmt.Sprintf("%s:%s", constants.FieldLastName, m.LastName))
	}

	return tags
}

// MemberInput is a caller-supplied candidate (create) or patch (update) before validation.
// Zero values stand for absent or falsy fields.
type MemberInput struct {
	// ID is set only when the caller supplied an integer id; it is ignored on update.
	ID           *int
	FirstName    string
	Age          json.RawMessage
	LuckyNumbers []json.Number

	// Malformed names the fields whose supplied value was truthy but of the wrong type.
	Malformed []string
}

// Validate applies the create/update rules: every field must be present and truthy,
// then every field must have the expected type.
func (in MemberInput) Validate() error {
	if in.missing(constants.FieldFirstName, in.FirstName == "") ||
		in.missing(constants.FieldAge, !TruthyJSON(in.Age)) ||
		in.missing(constants.FieldLuckyNumbers, len(in.LuckyNumbers) == 0) {
		return errs.NewValidation("missing parameters")
	}

	for _, field := range []string{constants.FieldFirstName, constants.FieldAge, constants.FieldLuckyNumbers} {
		if slices.Contains(in.Malformed, field) {
			return errs.NewValidation(fmt.Sprintf("%s error format", field))
		}
	}

	return nil
}

// missing reports a field as absent when it is empty and was not supplied with the wrong type.
func (in MemberInput) missing(field string, empty bool) bool {
	return empty && !slices.Contains(in.Malformed, field)
}

// ToMember builds the stored record for the given id and family name.
func (in MemberInput) ToMember(id int, lastName string) *Member {
	return &Member{
		ID:           id,
		FirstName:    in.FirstName,
		LastName:     lastName,
		Age:          slices.Clone(in.Age),
		LuckyNumbers: slices.Clone(in.LuckyNumbers),
	}
}

// Truthy reports whether a decoded JSON value is non-empty: null, false, 0, "", [] and {} are falsy.
// Numbers are expected as json.Number.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}

// TruthyJSON decodes raw and applies Truthy. Empty or invalid input is falsy.
func TruthyJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}
	return Truthy(v)
}
