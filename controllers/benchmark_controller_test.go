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

package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

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

func newBenchmarkControllerWithMocks(t *testing.T) (*BenchmarkController, *mocks.BenchmarkRepository, *mocks.BenchmarkService, *mocks.ModerationService[models.Benchmark]) {
	repository := mocks.NewBenchmarkRepository(t)
	service := mocks.NewBenchmarkService(t)
	moderation := mocks.NewModerationService[models.Benchmark](t)
	return NewBenchmarkController(repository, service, moderation), repository, service, moderation
}

func TestBenchmarkRead(t *testing.T) {
	benchmark := pendingBenchmark(alice)

	t.Run("should hide a pending benchmark from other users", func(t *testing.T) {
		controller, repository, _, _ := newBenchmarkControllerWithMocks(t)
		repository.On("Read", benchmark.ID).Return(benchmark, nil)

		ctx, _ := newRequest(http.MethodGet, "/", "")
		as(ctx, bob, shared.RoleUser)
		withID(ctx, benchmark.ID)

		assert.Equal(t, http.StatusNotFound, statusOf(t, controller.Read(ctx)))
	})

	t.Run("should show a pending benchmark to its uploader", func(t *testing.T) {
		controller, repository, _, _ := newBenchmarkControllerWithMocks(t)
		repository.On("Read", benchmark.ID).Return(benchmark, nil)

		ctx, rec := newRequest(http.MethodGet, "/", "")
		as(ctx, alice, shared.RoleUser)
		withID(ctx, benchmark.ID)

		require.NoError(t, controller.Read(ctx))
		var dto dtos.BenchmarkDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, models.StatusOnReview, dto.Status)
		assert.Equal(t, benchmark.ID, dto.ID)
	})

	t.Run("should map a missing benchmark to 404", func(t *testing.T) {
		controller, repository, _, _ := newBenchmarkControllerWithMocks(t)
		id := uuid.New()
		repository.On("Read", id).Return(models.Benchmark{}, errors.Wrap(shared.ErrNotFound, "benchmarks"))

		ctx, _ := newRequest(http.MethodGet, "/", "")
		withID(ctx, id)

		assert.Equal(t, http.StatusNotFound, statusOf(t, controller.Read(ctx)))
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		controller, _, _, _ := newBenchmarkControllerWithMocks(t)
		ctx, _ := newRequest(http.MethodGet, "/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("not-a-uuid")

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, controller.Read(ctx)))
	})
}

func TestBenchmarkCreate(t *testing.T) {
	t.Run("should validate the request before calling the service", func(t *testing.T) {
		controller, _, _, _ := newBenchmarkControllerWithMocks(t)
		ctx, _ := newRequest(http.MethodPost, "/", `{"docker_image": "perfboard/hepscore", "url": "https://example.org", "json_schema": {}}`)
		as(ctx, alice, shared.RoleUser)

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, controller.Create(ctx)))
	})

	t.Run("should submit the benchmark in the name of the caller", func(t *testing.T) {
		controller, _, service, _ := newBenchmarkControllerWithMocks(t)
		service.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Benchmark) bool {
			return b.IsUploadedBy(alice.Sub, alice.Iss) && b.Image() == "perfboard/hepscore:v1"
		})).Return(nil)

		ctx, rec := newRequest(http.MethodPost, "/", `{"docker_image": "perfboard/hepscore", "docker_tag": "v1", "url": "https://example.org", "json_schema": {"type": "object"}}`)
		as(ctx, alice, shared.RoleUser)

		require.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should report a duplicate image as conflict", func(t *testing.T) {
		controller, _, service, _ := newBenchmarkControllerWithMocks(t)
		service.On("Create", mock.Anything, mock.Anything).Return(errors.Wrap(shared.ErrConflict, "uq_benchmarks_image"))

		ctx, _ := newRequest(http.MethodPost, "/", `{"docker_image": "perfboard/hepscore", "docker_tag": "v1", "url": "https://example.org", "json_schema": {}}`)
		as(ctx, alice, shared.RoleUser)

		assert.Equal(t, http.StatusConflict, statusOf(t, controller.Create(ctx)))
	})
}

func TestBenchmarkModeration(t *testing.T) {
	t.Run("should answer approve with no content", func(t *testing.T) {
		controller, _, _, moderation := newBenchmarkControllerWithMocks(t)
		id := uuid.New()
		moderation.On("Approve", mock.Anything, id).Return(models.Benchmark{ID: id}, nil)

		ctx, rec := newRequest(http.MethodPost, "/", "")
		withID(ctx, id)

		require.NoError(t, controller.Approve(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should report a second approval as unprocessable", func(t *testing.T) {
		controller, _, _, moderation := newBenchmarkControllerWithMocks(t)
		id := uuid.New()
		moderation.On("Reject", mock.Anything, id).Return(models.Benchmark{}, errors.Wrap(shared.ErrAlreadyApproved, "benchmark"))

		ctx, _ := newRequest(http.MethodPost, "/", "")
		withID(ctx, id)

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, controller.Reject(ctx)))
	})
}
