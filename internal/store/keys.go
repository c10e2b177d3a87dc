// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Blob keys of the persisted layout. Each collection is written in full on
// every mutation.
const (
	KeyHazards    = "hazards"
	KeyPersonnel  = "personnel"
	KeyUsers      = "users"
	KeyLoginState = "loginState"

	KeyHazardsSeq   = "hazards.seq"
	KeyPersonnelSeq = "personnel.seq"
	KeyUsersSeq     = "users.seq"
)
