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
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
)

type BenchmarkController struct {
	benchmarkRepository shared.BenchmarkRepository
	benchmarkService    shared.BenchmarkService
	moderationService   shared.ModerationService[models.Benchmark]
}

func NewBenchmarkController(benchmarkRepository shared.BenchmarkRepository, benchmarkService shared.BenchmarkService, moderationService shared.ModerationService[models.Benchmark]) *BenchmarkController {
	return &BenchmarkController{
		benchmarkRepository: benchmarkRepository,
		benchmarkService:    benchmarkService,
		moderationService:   moderationService,
	}
}

func (c *BenchmarkController) list(ctx shared.Context, filter shared.BenchmarkFilter) error {
	upload, err := getTimeRange(ctx, "upload")
	if err != nil {
		return httpError(err, "")
	}
	filter.Upload = upload

	paged, err := c.benchmarkRepository.ListApproved(filter, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list benchmarks")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(b models.Benchmark) any {
		return dtos.BenchmarkToDTO(b)
	}))
}

// @Summary List approved benchmarks
// @Tags Benchmarks
// @Param docker_image query string false "Exact docker image"
// @Param docker_tag query string false "Exact docker tag"
// @Param upload_before query string false "RFC 3339 timestamp"
// @Param upload_after query string false "RFC 3339 timestamp"
// @Param sort_by query string false "Comma separated +field or -field"
// @Success 200 {object} shared.Paged[dtos.BenchmarkDTO]
// @Router /benchmarks/ [get]
func (c *BenchmarkController) List(ctx shared.Context) error {
	return c.list(ctx, shared.BenchmarkFilter{
		DockerImage: ctx.QueryParam("docker_image"),
		DockerTag:   ctx.QueryParam("docker_tag"),
	})
}

// @Summary Search approved benchmarks by terms
// @Tags Benchmarks
// @Param terms query []string false "Every term has to match image, tag or description"
// @Success 200 {object} shared.Paged[dtos.BenchmarkDTO]
// @Router /benchmarks/search/ [get]
func (c *BenchmarkController) Search(ctx shared.Context) error {
	return c.list(ctx, shared.BenchmarkFilter{Terms: getTerms(ctx)})
}

// @Summary Submit a benchmark for review
// @Tags Benchmarks
// @Security BearerAuth
// @Param body body dtos.BenchmarkCreateRequest true "Benchmark"
// @Success 201 {object} dtos.BenchmarkDTO
// @Router /benchmarks/ [post]
func (c *BenchmarkController) Create(ctx shared.Context) error {
	var req dtos.BenchmarkCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	benchmark := req.ToModel(shared.GetUser(ctx), time.Now().UTC())
	if err := c.benchmarkService.Create(ctx.Request().Context(), &benchmark); err != nil {
		return httpError(err, "could not create benchmark")
	}
	return ctx.JSON(http.StatusCreated, dtos.BenchmarkToDTO(benchmark))
}

func (c *BenchmarkController) read(ctx shared.Context) (models.Benchmark, error) {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return models.Benchmark{}, httpError(err, "")
	}
	benchmark, err := c.benchmarkRepository.Read(id)
	if err != nil {
		return models.Benchmark{}, httpError(err, "could not read benchmark")
	}
	if !isVisible(ctx, benchmark) {
		return models.Benchmark{}, echo.NewHTTPError(http.StatusNotFound, "benchmark not found")
	}
	return benchmark, nil
}

// @Summary Get a benchmark
// @Tags Benchmarks
// @Param id path string true "Benchmark ID"
// @Success 200 {object} dtos.BenchmarkDTO
// @Router /benchmarks/{id}/ [get]
func (c *BenchmarkController) Read(ctx shared.Context) error {
	benchmark, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.BenchmarkToDTO(benchmark))
}

func (c *BenchmarkController) Update(ctx shared.Context) error {
	benchmark, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.BenchmarkPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.ApplyToModel(&benchmark) {
		if err := c.benchmarkRepository.Save(nil, &benchmark); err != nil {
			return httpError(err, "could not update benchmark")
		}
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *BenchmarkController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.benchmarkRepository.Delete(nil, id); err != nil {
		return httpError(err, "could not delete benchmark")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *BenchmarkController) Approve(ctx shared.Context) error {
	return approve(ctx, c.moderationService)
}

func (c *BenchmarkController) Reject(ctx shared.Context) error {
	return reject(ctx, c.moderationService)
}
