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

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

// ReportController serves the moderation queues of the administrators.
type ReportController struct {
	submitRepository shared.SubmitRepository
	claimRepository  shared.ClaimRepository
	claimService     shared.ClaimService
}

func NewReportController(submitRepository shared.SubmitRepository, claimRepository shared.ClaimRepository, claimService shared.ClaimService) *ReportController {
	return &ReportController{
		submitRepository: submitRepository,
		claimRepository:  claimRepository,
		claimService:     claimService,
	}
}

func (c *ReportController) ListSubmits(ctx shared.Context) error {
	var filter shared.SubmitFilter
	if v := ctx.QueryParam("resource_type"); v != "" {
		resourceType := models.ResourceType(v)
		if !resourceType.IsModerated() {
			return httpError(errors.Wrapf(shared.ErrValidation, "unknown resource_type %q", v), "")
		}
		filter.ResourceType = &resourceType
	}
	upload, err := getTimeRange(ctx, "upload")
	if err != nil {
		return httpError(err, "")
	}
	filter.Upload = upload

	paged, err := c.submitRepository.ListPaged(filter, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list submits")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(s models.Submit) any {
		return dtos.SubmitToDTO(s)
	}))
}

func (c *ReportController) ListClaims(ctx shared.Context) error {
	upload, err := getTimeRange(ctx, "upload")
	if err != nil {
		return httpError(err, "")
	}

	paged, err := c.claimRepository.ListPaged(shared.ClaimFilter{Upload: upload}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list claims")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(claim models.Claim) any {
		return dtos.ClaimToDTO(claim)
	}))
}

// ApproveClaim accepts the claim. The claimed result is removed for good.
func (c *ReportController) ApproveClaim(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.claimService.Approve(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not approve claim")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectClaim drops the claim and restores the result.
func (c *ReportController) RejectClaim(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if _, err := c.claimService.Resolve(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not reject claim")
	}
	return ctx.NoContent(http.StatusNoContent)
}
