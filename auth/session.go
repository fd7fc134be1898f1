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

package auth

import "github.com/eosc-perf/perfboard/shared"

type session struct {
	subject      string
	issuer       string
	email        string
	entitlements []string
	scopes       []string
}

var _ shared.AuthSession = session{}

// NoSession is used for requests without a bearer token.
var NoSession shared.AuthSession = session{}

func NewSession(subject, issuer, email string, entitlements, scopes []string) shared.AuthSession {
	return session{
		subject:      subject,
		issuer:       issuer,
		email:        email,
		entitlements: entitlements,
		scopes:       scopes,
	}
}

func (s session) GetUserID() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.issuer + "|" + s.subject
}

func (s session) GetSubject() string {
	return s.subject
}

func (s session) GetIssuer() string {
	return s.issuer
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) GetEntitlements() []string {
	return s.entitlements
}

func (s session) GetScopes() []string {
	return s.scopes
}

func (s session) IsAuthenticated() bool {
	return s.subject != "" && s.issuer != ""
}
