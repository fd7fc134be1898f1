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
	"net/http"
	"testing"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/mocks"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportControllerWithMocks(t *testing.T) (*ReportController, *mocks.SubmitRepository, *mocks.ClaimService) {
	submitRepository := mocks.NewSubmitRepository(t)
	claimService := mocks.NewClaimService(t)
	return NewReportController(submitRepository, mocks.NewClaimRepository(t), claimService), submitRepository, claimService
}

func TestReportSubmits(t *testing.T) {
	t.Run("should refuse resource types without moderation", func(t *testing.T) {
		controller, _, _ := newReportControllerWithMocks(t)
		ctx, _ := newRequest(http.MethodGet, "/?resource_type=result", "")

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, controller.ListSubmits(ctx)))
	})

	t.Run("should filter by resource type", func(t *testing.T) {
		controller, submitRepository, _ := newReportControllerWithMocks(t)
		submitRepository.On("ListPaged", mock.MatchedBy(func(f shared.SubmitFilter) bool {
			return f.ResourceType != nil && *f.ResourceType == models.ResourceTypeSite
		}), mock.Anything, mock.Anything).Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 100}, 0, []models.Submit{}), nil)

		ctx, rec := newRequest(http.MethodGet, "/?resource_type=site", "")

		require.NoError(t, controller.ListSubmits(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReportClaims(t *testing.T) {
	t.Run("should not find an unknown claim", func(t *testing.T) {
		controller, _, claimService := newReportControllerWithMocks(t)
		id := uuid.New()
		claimService.On("Approve", mock.Anything, id).Return(errors.Wrap(shared.ErrNotFound, "claims"))

		ctx, _ := newRequest(http.MethodPost, "/", "")
		withID(ctx, id)

		assert.Equal(t, http.StatusNotFound, statusOf(t, controller.ApproveClaim(ctx)))
	})

	t.Run("should resolve a claim", func(t *testing.T) {
		controller, _, claimService := newReportControllerWithMocks(t)
		id := uuid.New()
		claimService.On("Resolve", mock.Anything, id).Return(models.Result{}, nil)

		ctx, rec := newRequest(http.MethodPost, "/", "")
		withID(ctx, id)

		require.NoError(t, controller.RejectClaim(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
