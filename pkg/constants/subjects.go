// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// NATS subject constants for message publishing
const (
	// IndexFamilyMemberSubject carries member create/update/delete events for search indexing
	IndexFamilyMemberSubject = "lfx.index.family_member"
)
