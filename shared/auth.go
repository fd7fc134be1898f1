// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import "context"

type AuthSession interface {
	// GetUserID returns "<issuer>|<subject>" or an empty string for anonymous sessions
	GetUserID() string
	GetSubject() string
	GetIssuer() string
	GetEmail() string
	GetEntitlements() []string
	GetScopes() []string
	IsAuthenticated() bool
}

// Introspector resolves a bearer token into a session using the identity provider.
type Introspector interface {
	Introspect(ctx context.Context, token string) (AuthSession, error)
}

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

type Object string

const (
	ObjectBenchmark Object = "benchmark"
	ObjectSite      Object = "site"
	ObjectFlavor    Object = "flavor"
	ObjectResult    Object = "result"
	ObjectClaim     Object = "claim"
	ObjectTag       Object = "tag"
	ObjectUser      Object = "user"
	ObjectReport    Object = "report"
)

type Action string

const (
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionModerate Action = "moderate"
	ActionClaim    Action = "claim"
)

type AccessControl interface {
	// RoleOf derives the role of a session from its entitlements
	RoleOf(session AuthSession) Role
	IsAllowed(role Role, obj Object, act Action) (bool, error)
	AllowRole(role Role, obj Object, actions []Action) error
	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error
}
