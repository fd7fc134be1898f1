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
	"github.com/eosc-perf/perfboard/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SiteController struct {
	siteRepository          shared.SiteRepository
	flavorRepository        shared.FlavorRepository
	siteModerationService   shared.ModerationService[models.Site]
	flavorModerationService shared.ModerationService[models.Flavor]
}

func NewSiteController(
	siteRepository shared.SiteRepository,
	flavorRepository shared.FlavorRepository,
	siteModerationService shared.ModerationService[models.Site],
	flavorModerationService shared.ModerationService[models.Flavor],
) *SiteController {
	return &SiteController{
		siteRepository:          siteRepository,
		flavorRepository:        flavorRepository,
		siteModerationService:   siteModerationService,
		flavorModerationService: flavorModerationService,
	}
}

// @Summary List approved sites
// @Tags Sites
// @Param name query string false "Part of the site name"
// @Param address query string false "Part of the site address"
// @Success 200 {object} shared.Paged[dtos.SiteDTO]
// @Router /sites/ [get]
func (c *SiteController) List(ctx shared.Context) error {
	upload, err := getTimeRange(ctx, "upload")
	if err != nil {
		return httpError(err, "")
	}

	paged, err := c.siteRepository.ListApproved(shared.SiteFilter{
		Name:    ctx.QueryParam("name"),
		Address: ctx.QueryParam("address"),
		Upload:  upload,
	}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list sites")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(s models.Site) any {
		return dtos.SiteToDTO(s)
	}))
}

// @Summary Submit a site for review
// @Tags Sites
// @Security BearerAuth
// @Param body body dtos.SiteCreateRequest true "Site"
// @Success 201 {object} dtos.SiteDTO
// @Router /sites/ [post]
func (c *SiteController) Create(ctx shared.Context) error {
	var req dtos.SiteCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	site := req.ToModel(shared.GetUser(ctx), time.Now().UTC())
	if err := c.siteModerationService.Submit(ctx.Request().Context(), &site); err != nil {
		return httpError(err, "could not create site")
	}
	return ctx.JSON(http.StatusCreated, dtos.SiteToDTO(site))
}

func (c *SiteController) read(ctx shared.Context) (models.Site, error) {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return models.Site{}, httpError(err, "")
	}
	site, err := c.siteRepository.Read(id)
	if err != nil {
		return models.Site{}, httpError(err, "could not read site")
	}
	if !isVisible(ctx, site) {
		return models.Site{}, echo.NewHTTPError(http.StatusNotFound, "site not found")
	}
	return site, nil
}

func (c *SiteController) Read(ctx shared.Context) error {
	site, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.SiteToDTO(site))
}

func (c *SiteController) Update(ctx shared.Context) error {
	site, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.SitePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.ApplyToModel(&site) {
		if err := c.siteRepository.Save(nil, &site); err != nil {
			return httpError(err, "could not update site")
		}
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Delete removes the site with all of its flavors.
func (c *SiteController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.siteRepository.Delete(nil, id); err != nil {
		return httpError(err, "could not delete site")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *SiteController) Approve(ctx shared.Context) error {
	return approve(ctx, c.siteModerationService)
}

func (c *SiteController) Reject(ctx shared.Context) error {
	return reject(ctx, c.siteModerationService)
}

// @Summary List the approved flavors of a site
// @Tags Sites
// @Param id path string true "Site ID"
// @Success 200 {object} shared.Paged[dtos.FlavorDTO]
// @Router /sites/{id}/flavors/ [get]
func (c *SiteController) ListFlavors(ctx shared.Context) error {
	site, err := c.read(ctx)
	if err != nil {
		return err
	}
	upload, err := getTimeRange(ctx, "upload")
	if err != nil {
		return httpError(err, "")
	}

	paged, err := c.flavorRepository.ListApproved(shared.FlavorFilter{
		SiteID: &site.ID,
		Name:   ctx.QueryParam("name"),
		Upload: upload,
	}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list flavors")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(f models.Flavor) any {
		return dtos.FlavorToDTO(f)
	}))
}

// @Summary Submit a flavor of an approved site for review
// @Tags Sites
// @Security BearerAuth
// @Param id path string true "Site ID"
// @Param body body dtos.FlavorCreateRequest true "Flavor"
// @Success 201 {object} dtos.FlavorDTO
// @Router /sites/{id}/flavors/ [post]
func (c *SiteController) CreateFlavor(ctx shared.Context) error {
	site, err := c.read(ctx)
	if err != nil {
		return err
	}
	if statemachine.Status(site) != models.StatusApproved {
		return httpError(errors.Wrapf(shared.ErrValidation, "site %s is still on review", site.ID), "")
	}

	var req dtos.FlavorCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	flavor := req.ToModel(site.ID, shared.GetUser(ctx), time.Now().UTC())
	if err := c.flavorModerationService.Submit(ctx.Request().Context(), &flavor); err != nil {
		return httpError(err, "could not create flavor")
	}
	return ctx.JSON(http.StatusCreated, dtos.FlavorToDTO(flavor))
}
