// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// MemberRepository combines reader and writer operations over the member collection.
//
// This interface is implemented by:
//   - the in-memory store (production)
//   - the failure-injecting mock repository (testing)
//
// For orchestration such as message publishing, see service.MemberWriter.
type MemberRepository interface {
	MemberReader
	MemberWriter

	// IsReady checks if the storage can take requests
	IsReady(ctx context.Context) error
}
