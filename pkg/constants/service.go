// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// ResourceTypeMember is the object type attached to published member messages
const ResourceTypeMember = "family_member"

// Metric names
const (
	// MetricMemberOperations counts member mutations by operation and outcome
	MetricMemberOperations = "family.member.operations"
)
