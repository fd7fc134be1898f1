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

package mocks

import (
	"context"

	"github.com/eosc-perf/perfboard/shared"
	"github.com/stretchr/testify/mock"
)

type PubSubBroker struct {
	mock.Mock
}

func NewPubSubBroker(t TestingT) *PubSubBroker {
	m := &PubSubBroker{}
	register(&m.Mock, t)
	return m
}

func (_m *PubSubBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	ret := _m.Called(ctx, message)
	return ret.Error(0)
}

func (_m *PubSubBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	ret := _m.Called(topic)
	var r0 <-chan map[string]any
	switch ch := ret.Get(0).(type) {
	case chan map[string]any:
		r0 = ch
	case <-chan map[string]any:
		r0 = ch
	}
	return r0, ret.Error(1)
}

type Introspector struct {
	mock.Mock
}

func NewIntrospector(t TestingT) *Introspector {
	m := &Introspector{}
	register(&m.Mock, t)
	return m
}

func (_m *Introspector) Introspect(ctx context.Context, token string) (shared.AuthSession, error) {
	ret := _m.Called(ctx, token)
	var r0 shared.AuthSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.AuthSession)
	}
	return r0, ret.Error(1)
}

type AccessControl struct {
	mock.Mock
}

func NewAccessControl(t TestingT) *AccessControl {
	m := &AccessControl{}
	register(&m.Mock, t)
	return m
}

func (_m *AccessControl) RoleOf(session shared.AuthSession) shared.Role {
	ret := _m.Called(session)
	return ret.Get(0).(shared.Role)
}

func (_m *AccessControl) IsAllowed(role shared.Role, obj shared.Object, act shared.Action) (bool, error) {
	ret := _m.Called(role, obj, act)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AccessControl) AllowRole(role shared.Role, obj shared.Object, actions []shared.Action) error {
	ret := _m.Called(role, obj, actions)
	return ret.Error(0)
}

func (_m *AccessControl) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	ret := _m.Called(roleWhichGetsPermissions, roleWhichProvidesPermissions)
	return ret.Error(0)
}
