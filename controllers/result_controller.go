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
	"io"
	"net/http"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxResultSize caps the json body of an uploaded result
const maxResultSize = 10 << 20

type ResultController struct {
	resultRepository shared.ResultRepository
	claimRepository  shared.ClaimRepository
	userRepository   shared.UserRepository
	resultService    shared.ResultService
}

func NewResultController(
	resultRepository shared.ResultRepository,
	claimRepository shared.ClaimRepository,
	userRepository shared.UserRepository,
	resultService shared.ResultService,
) *ResultController {
	return &ResultController{
		resultRepository: resultRepository,
		claimRepository:  claimRepository,
		userRepository:   userRepository,
		resultService:    resultService,
	}
}

func resultFilterFromQuery(ctx shared.Context) (shared.ResultFilter, error) {
	var filter shared.ResultFilter
	var err error

	if filter.BenchmarkID, err = shared.GetOptionalUUIDQueryParam(ctx, "benchmark_id"); err != nil {
		return filter, err
	}
	if filter.SiteID, err = shared.GetOptionalUUIDQueryParam(ctx, "site_id"); err != nil {
		return filter, err
	}
	if filter.FlavorID, err = shared.GetOptionalUUIDQueryParam(ctx, "flavor_id"); err != nil {
		return filter, err
	}
	if filter.TagIDs, err = shared.GetUUIDQueryParams(ctx, "tags_ids"); err != nil {
		return filter, err
	}
	if filter.Execution, err = getTimeRange(ctx, "execution"); err != nil {
		return filter, err
	}
	if filter.Upload, err = getTimeRange(ctx, "upload"); err != nil {
		return filter, err
	}
	for _, raw := range ctx.QueryParams()["filters"] {
		f, err := shared.ParseJSONFilter(raw)
		if err != nil {
			return filter, err
		}
		filter.JSONFilters = append(filter.JSONFilters, f)
	}
	return filter, nil
}

func (c *ResultController) list(ctx shared.Context, filter shared.ResultFilter) error {
	paged, err := c.resultRepository.ListPaged(filter, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list results")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(r models.Result) any {
		return dtos.ResultToDTO(r)
	}))
}

// @Summary List results
// @Tags Results
// @Param benchmark_id query string false "Benchmark ID"
// @Param site_id query string false "Site ID"
// @Param flavor_id query string false "Flavor ID"
// @Param tags_ids query []string false "Every tag has to be attached"
// @Param execution_before query string false "RFC 3339 timestamp"
// @Param execution_after query string false "RFC 3339 timestamp"
// @Param upload_before query string false "RFC 3339 timestamp"
// @Param upload_after query string false "RFC 3339 timestamp"
// @Param filters query []string false "<json.path> <operator> <value>"
// @Param sort_by query string false "Comma separated +field or -field"
// @Success 200 {object} shared.Paged[dtos.ResultDTO]
// @Router /results/ [get]
func (c *ResultController) List(ctx shared.Context) error {
	filter, err := resultFilterFromQuery(ctx)
	if err != nil {
		return httpError(err, "")
	}
	return c.list(ctx, filter)
}

// @Summary Search results by terms
// @Tags Results
// @Param terms query []string false "Every term has to match the benchmark, site, flavor or a tag name"
// @Param benchmark_id query string false "Benchmark ID"
// @Success 200 {object} shared.Paged[dtos.ResultDTO]
// @Router /results/search/ [get]
func (c *ResultController) Search(ctx shared.Context) error {
	filter, err := resultFilterFromQuery(ctx)
	if err != nil {
		return httpError(err, "")
	}
	filter.Terms = getTerms(ctx)
	return c.list(ctx, filter)
}

// @Summary Upload a result
// @Tags Results
// @Security BearerAuth
// @Param benchmark_id query string true "Benchmark ID"
// @Param flavor_id query string true "Flavor ID"
// @Param tags_ids query []string false "Tag IDs"
// @Param execution_datetime query string true "RFC 3339 timestamp"
// @Param body body object true "Result json matching the benchmark schema"
// @Success 201 {object} dtos.ResultDTO
// @Router /results/ [post]
func (c *ResultController) Create(ctx shared.Context) error {
	req, err := resultCreateRequest(ctx)
	if err != nil {
		return httpError(err, "")
	}

	result, err := c.resultService.Create(ctx.Request().Context(), shared.GetUser(ctx), req)
	if err != nil {
		return httpError(err, "could not create result")
	}
	return ctx.JSON(http.StatusCreated, dtos.ResultToDTO(result))
}

func requiredUUIDQueryParam(ctx shared.Context, param string) (uuid.UUID, error) {
	id, err := shared.GetOptionalUUIDQueryParam(ctx, param)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, errors.Wrapf(shared.ErrValidation, "%s is required", param)
	}
	return *id, nil
}

func resultCreateRequest(ctx shared.Context) (dtos.ResultCreateRequest, error) {
	var req dtos.ResultCreateRequest
	var err error

	if req.BenchmarkID, err = requiredUUIDQueryParam(ctx, "benchmark_id"); err != nil {
		return req, err
	}
	if req.FlavorID, err = requiredUUIDQueryParam(ctx, "flavor_id"); err != nil {
		return req, err
	}
	if req.TagIDs, err = shared.GetUUIDQueryParams(ctx, "tags_ids"); err != nil {
		return req, err
	}
	executed, err := shared.GetTimeQueryParam(ctx, "execution_datetime")
	if err != nil {
		return req, err
	}
	if executed == nil {
		return req, errors.Wrap(shared.ErrValidation, "execution_datetime is required")
	}
	req.ExecutionDatetime = *executed

	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxResultSize+1))
	if err != nil {
		return req, errors.Wrap(err, "could not read body")
	}
	if len(body) > maxResultSize {
		return req, errors.Wrap(shared.ErrValidation, "result json is too large")
	}
	if !json.Valid(body) {
		return req, errors.Wrap(shared.ErrValidation, "body is not valid json")
	}
	req.JSON = body
	return req, nil
}

// readResult loads a result including soft deleted ones. A deleted result is only
// returned while it carries an open claim.
func (c *ResultController) readResult(ctx shared.Context) (models.Result, error) {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return models.Result{}, httpError(err, "")
	}
	result, err := c.resultRepository.Read(id, true)
	if err != nil {
		return models.Result{}, httpError(err, "could not read result")
	}
	if result.IsDeleted() && !result.IsClaimed() {
		return models.Result{}, echo.NewHTTPError(http.StatusNotFound, "result not found")
	}
	return result, nil
}

// @Summary Get a result
// @Tags Results
// @Param id path string true "Result ID"
// @Success 200 {object} dtos.ResultDTO
// @Router /results/{id}/ [get]
func (c *ResultController) Read(ctx shared.Context) error {
	result, err := c.readResult(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.ResultToDTO(result))
}

func (c *ResultController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.resultService.Delete(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not delete result")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary Claim a result
// @Tags Results
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Param body body dtos.ClaimCreateRequest true "Claim"
// @Success 201 {object} dtos.ClaimDTO
// @Router /results/{id}/claim/ [post]
func (c *ResultController) Claim(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	var req dtos.ClaimCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	claim, err := c.resultService.Claim(ctx.Request().Context(), id, shared.GetUser(ctx), req.Message)
	if err != nil {
		return httpError(err, "could not claim result")
	}
	return ctx.JSON(http.StatusCreated, dtos.ClaimToDTO(claim))
}

// ListClaims is restricted to the uploader of the result and administrators.
func (c *ResultController) ListClaims(ctx shared.Context) error {
	result, err := c.readResult(ctx)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(ctx, result.Uploaded); err != nil {
		return httpError(err, "")
	}

	paged, err := c.claimRepository.ListPaged(shared.ClaimFilter{ResultID: &result.ID}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list claims")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(claim models.Claim) any {
		return dtos.ClaimToDTO(claim)
	}))
}

func (c *ResultController) UpdateTags(ctx shared.Context) error {
	result, err := c.readResult(ctx)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(ctx, result.Uploaded); err != nil {
		return httpError(err, "")
	}

	var req dtos.TagsIDsRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if _, err := c.resultService.UpdateTags(ctx.Request().Context(), result.ID, req.TagsIDs); err != nil {
		return httpError(err, "could not update tags")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ResultController) ReadUploader(ctx shared.Context) error {
	result, err := c.readResult(ctx)
	if err != nil {
		return err
	}
	uploader, err := c.userRepository.Read(result.UploaderSub, result.UploaderIss)
	if err != nil {
		return httpError(err, "could not read uploader")
	}
	return ctx.JSON(http.StatusOK, uploader)
}
