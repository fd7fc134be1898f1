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

import (
	"context"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(tx DB, user *models.User) error
	Save(tx DB, user *models.User) error
	Read(sub, iss string) (models.User, error)
	ListPaged(filter UserFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.User], error)
	DeleteWhere(tx DB, filter UserFilter) (int64, error)
	Transaction(f func(tx DB) error) error
}

// ModeratedRepository persists a resource going through the submit lifecycle.
// Reads preload the pending submit so the moderation status can be derived.
type ModeratedRepository[T any] interface {
	Create(tx DB, t *T) error
	Save(tx DB, t *T) error
	Read(id uuid.UUID) (T, error)
	// ReadForUpdate locks the resource row and its submit until the transaction ends
	ReadForUpdate(tx DB, id uuid.UUID) (T, error)
	Delete(tx DB, id uuid.UUID) error
	Transaction(f func(tx DB) error) error
}

type BenchmarkRepository interface {
	ModeratedRepository[models.Benchmark]
	ListApproved(filter BenchmarkFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Benchmark], error)
}

type SiteRepository interface {
	ModeratedRepository[models.Site]
	ListApproved(filter SiteFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Site], error)
}

type FlavorRepository interface {
	ModeratedRepository[models.Flavor]
	ListApproved(filter FlavorFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Flavor], error)
}

type SubmitRepository interface {
	Create(tx DB, submit *models.Submit) error
	Delete(tx DB, id uuid.UUID) error
	ListPaged(filter SubmitFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Submit], error)
}

type ClaimRepository interface {
	Create(tx DB, claim *models.Claim) error
	Read(id uuid.UUID) (models.Claim, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Claim, error)
	Delete(tx DB, id uuid.UUID) error
	CountByResult(tx DB, resultID uuid.UUID) (int64, error)
	ListPaged(filter ClaimFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Claim], error)
	Transaction(f func(tx DB) error) error
}

// ResultRepository is the soft delete store of results.
// Reads hide soft deleted rows unless includeDeleted is set.
type ResultRepository interface {
	Create(tx DB, result *models.Result) error
	Read(id uuid.UUID, includeDeleted bool) (models.Result, error)
	ReadForUpdate(tx DB, id uuid.UUID, includeDeleted bool) (models.Result, error)
	SoftDelete(tx DB, id uuid.UUID) error
	Undelete(tx DB, id uuid.UUID) error
	HardDelete(tx DB, id uuid.UUID) error
	ReplaceTags(tx DB, result *models.Result, tags []models.Tag) error
	ListPaged(filter ResultFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Result], error)
	Transaction(f func(tx DB) error) error
}

type TagRepository interface {
	Create(tx DB, tag *models.Tag) error
	Save(tx DB, tag *models.Tag) error
	Read(id uuid.UUID) (models.Tag, error)
	Delete(tx DB, id uuid.UUID) error
	List(ids []uuid.UUID) ([]models.Tag, error)
	ListPaged(filter TagFilter, pageInfo PageInfo, sort []SortQuery) (Paged[models.Tag], error)
}

// ModerationService drives the submit lifecycle of benchmarks, sites and flavors.
type ModerationService[T any] interface {
	Submit(ctx context.Context, resource *T) error
	Approve(ctx context.Context, id uuid.UUID) (T, error)
	Reject(ctx context.Context, id uuid.UUID) (T, error)
}

type BenchmarkService interface {
	Create(ctx context.Context, benchmark *models.Benchmark) error
}

type ImageChecker interface {
	Exists(ctx context.Context, image, tag string) (bool, error)
}

type SchemaValidator interface {
	CheckSchema(schema []byte) error
	Validate(schema []byte, document []byte) error
}

type ResultService interface {
	Create(ctx context.Context, uploader models.User, req dtos.ResultCreateRequest) (models.Result, error)
	Claim(ctx context.Context, resultID uuid.UUID, claimer models.User, message string) (models.Claim, error)
	UpdateTags(ctx context.Context, resultID uuid.UUID, tagIDs []uuid.UUID) (models.Result, error)
	Delete(ctx context.Context, resultID uuid.UUID) error
}

type ClaimService interface {
	Approve(ctx context.Context, claimID uuid.UUID) error
	Resolve(ctx context.Context, claimID uuid.UUID) (models.Result, error)
}

type UserService interface {
	Register(ctx context.Context, session AuthSession) (models.User, error)
	UpdateEmail(ctx context.Context, user models.User, session AuthSession) (models.User, error)
	Remove(ctx context.Context, filter UserFilter) (int64, error)
}

type NotificationService interface {
	// Notify never fails the caller - delivery problems are logged and reported
	Notify(ctx context.Context, notification Notification)
}
