// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session mirrors the "loginState" blob. It is a convenience cache only and
// can always be re-derived by authenticating again.
type Session struct {
	LoggedIn bool `json:"isLoggedIn"`
	Role     Role `json:"userRole"`
}

// IsAdmin reports whether the session belongs to a logged-in administrator.
func (s Session) IsAdmin() bool {
	return s.LoggedIn && s.Role == RoleAdmin
}
