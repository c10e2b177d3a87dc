// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/hazard-keeper/models"
)

func TestGate_Check(t *testing.T) {
	var (
		loggedOut = models.Session{}
		user      = models.Session{LoggedIn: true, Role: models.RoleUser}
		admin     = models.Session{LoggedIn: true, Role: models.RoleAdmin}
		// a stale role without the logged-in flag grants nothing
		staleAdmin = models.Session{Role: models.RoleAdmin}
	)

	tests := []struct {
		name    string
		session models.Session
		want    Route
		shown   Route
	}{
		{"logged out sees login", loggedOut, RouteLogin, RouteLogin},
		{"logged out dashboard", loggedOut, RouteDashboard, RouteLogin},
		{"logged out hazards", loggedOut, RouteHazards, RouteLogin},
		{"logged out users", loggedOut, RouteUsers, RouteLogin},
		{"stale admin", staleAdmin, RoutePersonnel, RouteLogin},
		{"user dashboard", user, RouteDashboard, RouteDashboard},
		{"user hazards", user, RouteHazards, RouteHazards},
		{"user personnel", user, RoutePersonnel, RouteDashboard},
		{"user users", user, RouteUsers, RouteDashboard},
		{"admin personnel", admin, RoutePersonnel, RoutePersonnel},
		{"admin users", admin, RouteUsers, RouteUsers},
		{"admin login", admin, RouteLogin, RouteLogin},
		{"unknown route", admin, Route("settings"), RouteLogin},
	}

	g := NewGate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shown, g.Check(tt.session, tt.want))
		})
	}
}

func TestGate_ReevaluatesOnEveryCall(t *testing.T) {
	g := NewGate()
	s := models.Session{LoggedIn: true, Role: models.RoleAdmin}
	assert.True(t, g.Allowed(s, RouteUsers))

	s.Role = models.RoleUser
	assert.False(t, g.Allowed(s, RouteUsers))

	s.LoggedIn = false
	assert.False(t, g.Allowed(s, RouteHazards))
}

func TestGate_Routes(t *testing.T) {
	g := NewGate()

	assert.Equal(t, []Route{RouteHazards}, g.Routes(models.Session{LoggedIn: true, Role: models.RoleUser}))
	assert.Equal(t, []Route{RouteHazards, RoutePersonnel, RouteUsers}, g.Routes(models.Session{LoggedIn: true, Role: models.RoleAdmin}))
	assert.Empty(t, g.Routes(models.Session{}))
}
