// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level of a credential.
type Role string

const (
	// RoleAdmin may administer users and personnel.
	RoleAdmin Role = "admin"
	// RoleUser may only work with hazards.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Toggled returns the opposite role. Unknown roles become admin, matching
// the user administration toggle button.
func (r Role) Toggled() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// User is a credential record used for authentication and authorization.
//
// Password holds either the plaintext password or its bcrypt hash, depending
// on the configured password hashing mode. A plaintext password is capped at
// 72 bytes in both modes, which is all bcrypt reads.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,pwbytes"`
	Role     Role   `json:"role" validate:"required,oneof=admin user"`
}
