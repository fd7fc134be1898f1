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

// Package mocks contains testify mocks of the interfaces declared in shared.
// Every constructor registers AssertExpectations as test cleanup.
// A Return value may be a function with the mocked method's signature, it is called with the arguments.
package mocks

import (
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/stretchr/testify/mock"
)

var (
	_ shared.UserRepository                        = &UserRepository{}
	_ shared.ModeratedRepository[models.Benchmark] = &ModeratedRepository[models.Benchmark]{}
	_ shared.BenchmarkRepository                   = &BenchmarkRepository{}
	_ shared.SiteRepository                        = &SiteRepository{}
	_ shared.FlavorRepository                      = &FlavorRepository{}
	_ shared.SubmitRepository                      = &SubmitRepository{}
	_ shared.ClaimRepository                       = &ClaimRepository{}
	_ shared.ResultRepository                      = &ResultRepository{}
	_ shared.TagRepository                         = &TagRepository{}
	_ shared.ModerationService[models.Site]        = &ModerationService[models.Site]{}
	_ shared.BenchmarkService                      = &BenchmarkService{}
	_ shared.ImageChecker                          = &ImageChecker{}
	_ shared.SchemaValidator                       = &SchemaValidator{}
	_ shared.ResultService                         = &ResultService{}
	_ shared.ClaimService                          = &ClaimService{}
	_ shared.UserService                           = &UserService{}
	_ shared.NotificationService                   = &NotificationService{}
	_ shared.PubSubBroker                          = &PubSubBroker{}
	_ shared.Introspector                          = &Introspector{}
	_ shared.AccessControl                         = &AccessControl{}
)

type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t TestingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}
