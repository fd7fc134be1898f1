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

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ModerationService[T any] struct {
	mock.Mock
}

func NewModerationService[T any](t TestingT) *ModerationService[T] {
	m := &ModerationService[T]{}
	register(&m.Mock, t)
	return m
}

func (_m *ModerationService[T]) Submit(ctx context.Context, resource *T) error {
	ret := _m.Called(ctx, resource)
	if rf, ok := ret.Get(0).(func(context.Context, *T) error); ok {
		return rf(ctx, resource)
	}
	return ret.Error(0)
}

func (_m *ModerationService[T]) Approve(ctx context.Context, id uuid.UUID) (T, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(T), ret.Error(1)
}

func (_m *ModerationService[T]) Reject(ctx context.Context, id uuid.UUID) (T, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(T), ret.Error(1)
}

type BenchmarkService struct {
	mock.Mock
}

func NewBenchmarkService(t TestingT) *BenchmarkService {
	m := &BenchmarkService{}
	register(&m.Mock, t)
	return m
}

func (_m *BenchmarkService) Create(ctx context.Context, benchmark *models.Benchmark) error {
	ret := _m.Called(ctx, benchmark)
	if rf, ok := ret.Get(0).(func(context.Context, *models.Benchmark) error); ok {
		return rf(ctx, benchmark)
	}
	return ret.Error(0)
}

type ImageChecker struct {
	mock.Mock
}

func NewImageChecker(t TestingT) *ImageChecker {
	m := &ImageChecker{}
	register(&m.Mock, t)
	return m
}

func (_m *ImageChecker) Exists(ctx context.Context, image, tag string) (bool, error) {
	ret := _m.Called(ctx, image, tag)
	return ret.Bool(0), ret.Error(1)
}

type SchemaValidator struct {
	mock.Mock
}

func NewSchemaValidator(t TestingT) *SchemaValidator {
	m := &SchemaValidator{}
	register(&m.Mock, t)
	return m
}

func (_m *SchemaValidator) CheckSchema(schema []byte) error {
	ret := _m.Called(schema)
	return ret.Error(0)
}

func (_m *SchemaValidator) Validate(schema []byte, document []byte) error {
	ret := _m.Called(schema, document)
	return ret.Error(0)
}

type ResultService struct {
	mock.Mock
}

func NewResultService(t TestingT) *ResultService {
	m := &ResultService{}
	register(&m.Mock, t)
	return m
}

func (_m *ResultService) Create(ctx context.Context, uploader models.User, req dtos.ResultCreateRequest) (models.Result, error) {
	ret := _m.Called(ctx, uploader, req)
	return ret.Get(0).(models.Result), ret.Error(1)
}

func (_m *ResultService) Claim(ctx context.Context, resultID uuid.UUID, claimer models.User, message string) (models.Claim, error) {
	ret := _m.Called(ctx, resultID, claimer, message)
	return ret.Get(0).(models.Claim), ret.Error(1)
}

func (_m *ResultService) UpdateTags(ctx context.Context, resultID uuid.UUID, tagIDs []uuid.UUID) (models.Result, error) {
	ret := _m.Called(ctx, resultID, tagIDs)
	return ret.Get(0).(models.Result), ret.Error(1)
}

func (_m *ResultService) Delete(ctx context.Context, resultID uuid.UUID) error {
	ret := _m.Called(ctx, resultID)
	return ret.Error(0)
}

type ClaimService struct {
	mock.Mock
}

func NewClaimService(t TestingT) *ClaimService {
	m := &ClaimService{}
	register(&m.Mock, t)
	return m
}

func (_m *ClaimService) Approve(ctx context.Context, claimID uuid.UUID) error {
	ret := _m.Called(ctx, claimID)
	return ret.Error(0)
}

func (_m *ClaimService) Resolve(ctx context.Context, claimID uuid.UUID) (models.Result, error) {
	ret := _m.Called(ctx, claimID)
	return ret.Get(0).(models.Result), ret.Error(1)
}

type UserService struct {
	mock.Mock
}

func NewUserService(t TestingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (_m *UserService) Register(ctx context.Context, session shared.AuthSession) (models.User, error) {
	ret := _m.Called(ctx, session)
	return ret.Get(0).(models.User), ret.Error(1)
}

func (_m *UserService) UpdateEmail(ctx context.Context, user models.User, session shared.AuthSession) (models.User, error) {
	ret := _m.Called(ctx, user, session)
	return ret.Get(0).(models.User), ret.Error(1)
}

func (_m *UserService) Remove(ctx context.Context, filter shared.UserFilter) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

type NotificationService struct {
	mock.Mock
}

func NewNotificationService(t TestingT) *NotificationService {
	m := &NotificationService{}
	register(&m.Mock, t)
	return m
}

func (_m *NotificationService) Notify(ctx context.Context, notification shared.Notification) {
	_m.Called(ctx, notification)
}
