// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session decides which view a session may see.
//
// The decision is recomputed from the session on every navigation; nothing
// is cached between calls.
package session

import "github.com/MKhiriev/hazard-keeper/models"

// Route names a top-level view.
type Route string

const (
	RouteLogin     Route = "login"
	RouteDashboard Route = "dashboard"
	RouteHazards   Route = "hazards"
	RoutePersonnel Route = "personnel"
	RouteUsers     Route = "users"
)

type rule struct {
	public    bool
	adminOnly bool
}

// Gate maps requested routes to the route that is actually shown.
type Gate struct {
	rules    map[Route]rule
	fallback Route
}

// NewGate returns the gate for the application's views: login is public,
// users and personnel need an administrator, the rest any logged-in user.
func NewGate() *Gate {
	return &Gate{
		rules: map[Route]rule{
			RouteLogin:     {public: true},
			RouteDashboard: {},
			RouteHazards:   {},
			RoutePersonnel: {adminOnly: true},
			RouteUsers:     {adminOnly: true},
		},
		fallback: RouteDashboard,
	}
}

// Check returns want when s may see it. Otherwise it returns login for a
// logged-out session or an unknown route, and the dashboard for a user
// without the admin role.
func (g *Gate) Check(s models.Session, want Route) Route {
	r, known := g.rules[want]
	if !known {
		return RouteLogin
	}
	if r.public {
		return want
	}
	if !s.LoggedIn {
		return RouteLogin
	}
	if r.adminOnly && !s.IsAdmin() {
		return g.fallback
	}
	return want
}

// Allowed reports whether s may see want without redirection.
func (g *Gate) Allowed(s models.Session, want Route) bool {
	return g.Check(s, want) == want
}

// Routes lists the routes s may open from the dashboard, in menu order.
func (g *Gate) Routes(s models.Session) []Route {
	var out []Route
	for _, r := range []Route{RouteHazards, RoutePersonnel, RouteUsers} {
		if g.Allowed(s, r) {
			out = append(out, r)
		}
	}
	return out
}
