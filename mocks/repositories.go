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
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t TestingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *UserRepository) Create(tx shared.DB, user *models.User) error {
	ret := _m.Called(tx, user)
	if rf, ok := ret.Get(0).(func(shared.DB, *models.User) error); ok {
		return rf(tx, user)
	}
	return ret.Error(0)
}

func (_m *UserRepository) Save(tx shared.DB, user *models.User) error {
	ret := _m.Called(tx, user)
	if rf, ok := ret.Get(0).(func(shared.DB, *models.User) error); ok {
		return rf(tx, user)
	}
	return ret.Error(0)
}

func (_m *UserRepository) Read(sub, iss string) (models.User, error) {
	ret := _m.Called(sub, iss)
	if rf, ok := ret.Get(0).(func(string, string) (models.User, error)); ok {
		return rf(sub, iss)
	}
	return ret.Get(0).(models.User), ret.Error(1)
}

func (_m *UserRepository) ListPaged(filter shared.UserFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.User], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.User]), ret.Error(1)
}

func (_m *UserRepository) DeleteWhere(tx shared.DB, filter shared.UserFilter) (int64, error) {
	ret := _m.Called(tx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *UserRepository) Transaction(f func(tx shared.DB) error) error {
	return transaction(&_m.Mock, f)
}

// transaction records the call. Tests usually answer with RunTransaction.
func transaction(m *mock.Mock, f func(tx shared.DB) error) error {
	ret := m.Called(f)
	if rf, ok := ret.Get(0).(func(func(shared.DB) error) error); ok {
		return rf(f)
	}
	return ret.Error(0)
}

// RunTransaction executes the transaction body with a nil handle.
func RunTransaction(f func(tx shared.DB) error) error {
	return f(nil)
}

type ModeratedRepository[T any] struct {
	mock.Mock
}

func NewModeratedRepository[T any](t TestingT) *ModeratedRepository[T] {
	m := &ModeratedRepository[T]{}
	register(&m.Mock, t)
	return m
}

func (_m *ModeratedRepository[T]) Create(tx shared.DB, t *T) error {
	ret := _m.Called(tx, t)
	if rf, ok := ret.Get(0).(func(shared.DB, *T) error); ok {
		return rf(tx, t)
	}
	return ret.Error(0)
}

func (_m *ModeratedRepository[T]) Save(tx shared.DB, t *T) error {
	ret := _m.Called(tx, t)
	return ret.Error(0)
}

func (_m *ModeratedRepository[T]) Read(id uuid.UUID) (T, error) {
	ret := _m.Called(id)
	return ret.Get(0).(T), ret.Error(1)
}

func (_m *ModeratedRepository[T]) ReadForUpdate(tx shared.DB, id uuid.UUID) (T, error) {
	ret := _m.Called(tx, id)
	return ret.Get(0).(T), ret.Error(1)
}

func (_m *ModeratedRepository[T]) Delete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ModeratedRepository[T]) Transaction(f func(tx shared.DB) error) error {
	return transaction(&_m.Mock, f)
}

type BenchmarkRepository struct {
	ModeratedRepository[models.Benchmark]
}

func NewBenchmarkRepository(t TestingT) *BenchmarkRepository {
	m := &BenchmarkRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *BenchmarkRepository) ListApproved(filter shared.BenchmarkFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Benchmark], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Benchmark]), ret.Error(1)
}

type SiteRepository struct {
	ModeratedRepository[models.Site]
}

func NewSiteRepository(t TestingT) *SiteRepository {
	m := &SiteRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *SiteRepository) ListApproved(filter shared.SiteFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Site], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Site]), ret.Error(1)
}

type FlavorRepository struct {
	ModeratedRepository[models.Flavor]
}

func NewFlavorRepository(t TestingT) *FlavorRepository {
	m := &FlavorRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *FlavorRepository) ListApproved(filter shared.FlavorFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Flavor], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Flavor]), ret.Error(1)
}

type SubmitRepository struct {
	mock.Mock
}

func NewSubmitRepository(t TestingT) *SubmitRepository {
	m := &SubmitRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *SubmitRepository) Create(tx shared.DB, submit *models.Submit) error {
	ret := _m.Called(tx, submit)
	if rf, ok := ret.Get(0).(func(shared.DB, *models.Submit) error); ok {
		return rf(tx, submit)
	}
	return ret.Error(0)
}

func (_m *SubmitRepository) Delete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *SubmitRepository) ListPaged(filter shared.SubmitFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Submit], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Submit]), ret.Error(1)
}

type ClaimRepository struct {
	mock.Mock
}

func NewClaimRepository(t TestingT) *ClaimRepository {
	m := &ClaimRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ClaimRepository) Create(tx shared.DB, claim *models.Claim) error {
	ret := _m.Called(tx, claim)
	if rf, ok := ret.Get(0).(func(shared.DB, *models.Claim) error); ok {
		return rf(tx, claim)
	}
	return ret.Error(0)
}

func (_m *ClaimRepository) Read(id uuid.UUID) (models.Claim, error) {
	ret := _m.Called(id)
	return ret.Get(0).(models.Claim), ret.Error(1)
}

func (_m *ClaimRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.Claim, error) {
	ret := _m.Called(tx, id)
	return ret.Get(0).(models.Claim), ret.Error(1)
}

func (_m *ClaimRepository) Delete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ClaimRepository) CountByResult(tx shared.DB, resultID uuid.UUID) (int64, error) {
	ret := _m.Called(tx, resultID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *ClaimRepository) ListPaged(filter shared.ClaimFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Claim], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Claim]), ret.Error(1)
}

func (_m *ClaimRepository) Transaction(f func(tx shared.DB) error) error {
	return transaction(&_m.Mock, f)
}

type ResultRepository struct {
	mock.Mock
}

func NewResultRepository(t TestingT) *ResultRepository {
	m := &ResultRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ResultRepository) Create(tx shared.DB, result *models.Result) error {
	ret := _m.Called(tx, result)
	if rf, ok := ret.Get(0).(func(shared.DB, *models.Result) error); ok {
		return rf(tx, result)
	}
	return ret.Error(0)
}

func (_m *ResultRepository) Read(id uuid.UUID, includeDeleted bool) (models.Result, error) {
	ret := _m.Called(id, includeDeleted)
	return ret.Get(0).(models.Result), ret.Error(1)
}

func (_m *ResultRepository) ReadForUpdate(tx shared.DB, id uuid.UUID, includeDeleted bool) (models.Result, error) {
	ret := _m.Called(tx, id, includeDeleted)
	return ret.Get(0).(models.Result), ret.Error(1)
}

func (_m *ResultRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ResultRepository) Undelete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ResultRepository) HardDelete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ResultRepository) ReplaceTags(tx shared.DB, result *models.Result, tags []models.Tag) error {
	ret := _m.Called(tx, result, tags)
	return ret.Error(0)
}

func (_m *ResultRepository) ListPaged(filter shared.ResultFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Result], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Result]), ret.Error(1)
}

func (_m *ResultRepository) Transaction(f func(tx shared.DB) error) error {
	return transaction(&_m.Mock, f)
}

type TagRepository struct {
	mock.Mock
}

func NewTagRepository(t TestingT) *TagRepository {
	m := &TagRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *TagRepository) Create(tx shared.DB, tag *models.Tag) error {
	ret := _m.Called(tx, tag)
	return ret.Error(0)
}

func (_m *TagRepository) Save(tx shared.DB, tag *models.Tag) error {
	ret := _m.Called(tx, tag)
	return ret.Error(0)
}

func (_m *TagRepository) Read(id uuid.UUID) (models.Tag, error) {
	ret := _m.Called(id)
	return ret.Get(0).(models.Tag), ret.Error(1)
}

func (_m *TagRepository) Delete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *TagRepository) List(ids []uuid.UUID) ([]models.Tag, error) {
	ret := _m.Called(ids)
	var r0 []models.Tag
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Tag)
	}
	return r0, ret.Error(1)
}

func (_m *TagRepository) ListPaged(filter shared.TagFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Tag], error) {
	ret := _m.Called(filter, pageInfo, sort)
	return ret.Get(0).(shared.Paged[models.Tag]), ret.Error(1)
}
