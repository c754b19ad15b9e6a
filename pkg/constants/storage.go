// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Member field names as they appear on the wire and in validation messages
const (
	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldAge          = "age"
	FieldLuckyNumbers = "lucky_numbers"
)
