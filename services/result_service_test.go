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

package services

import (
	"context"
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/mocks"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resultMocks struct {
	resultRepository    *mocks.ResultRepository
	claimRepository     *mocks.ClaimRepository
	benchmarkRepository *mocks.BenchmarkRepository
	siteRepository      *mocks.SiteRepository
	flavorRepository    *mocks.FlavorRepository
	tagRepository       *mocks.TagRepository
	schemaValidator     *mocks.SchemaValidator
	notificationService *mocks.NotificationService
}

func newResultServiceWithMocks(t *testing.T) (*resultService, resultMocks) {
	m := resultMocks{
		resultRepository:    mocks.NewResultRepository(t),
		claimRepository:     mocks.NewClaimRepository(t),
		benchmarkRepository: mocks.NewBenchmarkRepository(t),
		siteRepository:      mocks.NewSiteRepository(t),
		flavorRepository:    mocks.NewFlavorRepository(t),
		tagRepository:       mocks.NewTagRepository(t),
		schemaValidator:     mocks.NewSchemaValidator(t),
		notificationService: mocks.NewNotificationService(t),
	}
	m.resultRepository.On("Transaction", mock.Anything).Return(mocks.RunTransaction).Maybe()
	return NewResultService(m.resultRepository, m.claimRepository, m.benchmarkRepository, m.siteRepository, m.flavorRepository, m.tagRepository, m.schemaValidator, m.notificationService), m
}

type resultReferences struct {
	benchmark models.Benchmark
	site      models.Site
	flavor    models.Flavor
}

func approvedReferences() resultReferences {
	benchmark := newBenchmark()
	benchmark.ID = uuid.New()
	site := models.Site{ID: uuid.New(), Name: "cern"}
	flavor := models.Flavor{ID: uuid.New(), Name: "vm.large", SiteID: site.ID}
	return resultReferences{benchmark: benchmark, site: site, flavor: flavor}
}

func (r resultReferences) request() dtos.ResultCreateRequest {
	return dtos.ResultCreateRequest{
		BenchmarkID:       r.benchmark.ID,
		FlavorID:          r.flavor.ID,
		ExecutionDatetime: time.Now().Add(-time.Hour),
		JSON:              []byte(`{"score": 42}`),
	}
}

func (m resultMocks) expectReferences(r resultReferences) {
	m.benchmarkRepository.On("Read", r.benchmark.ID).Return(r.benchmark, nil)
	m.flavorRepository.On("Read", r.flavor.ID).Return(r.flavor, nil)
	m.siteRepository.On("Read", r.site.ID).Return(r.site, nil)
}

func TestResultServiceCreate(t *testing.T) {
	t.Run("should store the result on the site of the flavor", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		refs := approvedReferences()
		tag := models.Tag{ID: uuid.New(), Name: "gpu"}
		req := refs.request()
		req.TagIDs = []uuid.UUID{tag.ID, tag.ID}
		resultID := uuid.New()

		m.expectReferences(refs)
		m.tagRepository.On("List", []uuid.UUID{tag.ID}).Return([]models.Tag{tag}, nil)
		m.schemaValidator.On("Validate", []byte(refs.benchmark.JSONSchema), req.JSON).Return(nil)
		m.resultRepository.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Result) bool {
			return r.SiteID == refs.site.ID && r.FlavorID == refs.flavor.ID && len(r.Tags) == 1 && r.IsUploadedBy(uploader.Sub, uploader.Iss)
		})).Return(func(_ shared.DB, r *models.Result) error {
			r.ID = resultID
			return nil
		})
		m.resultRepository.On("Read", resultID, false).Return(models.Result{ID: resultID}, nil)

		result, err := service.Create(context.Background(), uploader, req)
		require.NoError(t, err)
		assert.Equal(t, resultID, result.ID)
	})

	t.Run("should reject an execution datetime in the future", func(t *testing.T) {
		service, _ := newResultServiceWithMocks(t)
		req := approvedReferences().request()
		req.ExecutionDatetime = time.Now().Add(time.Hour)

		_, err := service.Create(context.Background(), uploader, req)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject a benchmark on review", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		refs := approvedReferences()
		submit := models.NewSubmit(models.ResourceTypeBenchmark, refs.benchmark.ID, refs.benchmark.Uploaded, time.Now())
		refs.benchmark.Submit = &submit

		m.benchmarkRepository.On("Read", refs.benchmark.ID).Return(refs.benchmark, nil)

		_, err := service.Create(context.Background(), uploader, refs.request())
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject a site on review", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		refs := approvedReferences()
		submit := models.NewSubmit(models.ResourceTypeSite, refs.site.ID, refs.site.Uploaded, time.Now())
		refs.site.Submit = &submit

		m.expectReferences(refs)

		_, err := service.Create(context.Background(), uploader, refs.request())
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should fail with not found if a tag does not exist", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		refs := approvedReferences()
		req := refs.request()
		req.TagIDs = []uuid.UUID{uuid.New()}

		m.expectReferences(refs)
		m.tagRepository.On("List", req.TagIDs).Return([]models.Tag{}, nil)

		_, err := service.Create(context.Background(), uploader, req)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should not store a result which does not match the schema", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		refs := approvedReferences()

		m.expectReferences(refs)
		m.tagRepository.On("List", []uuid.UUID{}).Return([]models.Tag{}, nil)
		m.schemaValidator.On("Validate", mock.Anything, mock.Anything).Return(shared.ErrValidation)

		_, err := service.Create(context.Background(), uploader, refs.request())
		assert.True(t, errors.Is(err, shared.ErrValidation))
		m.resultRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResultServiceClaim(t *testing.T) {
	claimer := models.User{Sub: "bob", Iss: "https://aai.example.org", Email: "bob@example.org"}

	t.Run("should soft delete the result and open a claim", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		result := models.Result{ID: uuid.New(), Uploaded: models.NewUploaded(uploader, time.Now())}

		m.resultRepository.On("ReadForUpdate", mock.Anything, result.ID, true).Return(result, nil)
		m.resultRepository.On("SoftDelete", mock.Anything, result.ID).Return(nil)
		m.claimRepository.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Claim) bool {
			return c.ResultID == result.ID && c.Message == "not mine" && c.IsUploadedBy(claimer.Sub, claimer.Iss)
		})).Return(nil)
		m.notificationService.On("Notify", mock.Anything, shared.Notification{
			Event:        shared.EventResultClaimed,
			ResourceType: models.ResourceTypeResult,
			ResourceID:   result.ID,
		}).Return()

		claim, err := service.Claim(context.Background(), result.ID, claimer, "  not mine ")
		require.NoError(t, err)
		assert.Equal(t, models.ResourceTypeResult, claim.ResourceType)
	})

	t.Run("should fail with already claimed if the result carries a claim", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		result := models.Result{ID: uuid.New(), Deleted: true, Claim: &models.Claim{ID: uuid.New()}}

		m.resultRepository.On("ReadForUpdate", mock.Anything, result.ID, true).Return(result, nil)

		_, err := service.Claim(context.Background(), result.ID, claimer, "not mine")
		assert.True(t, errors.Is(err, shared.ErrAlreadyClaimed))
		m.resultRepository.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})

	t.Run("should map a unique violation on the claim to already claimed", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		result := models.Result{ID: uuid.New()}

		m.resultRepository.On("ReadForUpdate", mock.Anything, result.ID, true).Return(result, nil)
		m.resultRepository.On("SoftDelete", mock.Anything, result.ID).Return(nil)
		m.claimRepository.On("Create", mock.Anything, mock.Anything).Return(errors.Wrap(shared.ErrConflict, "duplicate key"))

		_, err := service.Claim(context.Background(), result.ID, claimer, "not mine")
		assert.True(t, errors.Is(err, shared.ErrAlreadyClaimed))
	})

	t.Run("should require a message", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		result := models.Result{ID: uuid.New()}

		m.resultRepository.On("ReadForUpdate", mock.Anything, result.ID, true).Return(result, nil)

		_, err := service.Claim(context.Background(), result.ID, claimer, "   ")
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestResultServiceDelete(t *testing.T) {
	t.Run("should not delete a hidden result twice", func(t *testing.T) {
		service, m := newResultServiceWithMocks(t)
		id := uuid.New()
		m.resultRepository.On("ReadForUpdate", mock.Anything, id, false).Return(models.Result{}, shared.ErrNotFound)

		err := service.Delete(context.Background(), id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
