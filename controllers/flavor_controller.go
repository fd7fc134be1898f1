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
	"github.com/labstack/echo/v4"
)

type FlavorController struct {
	flavorRepository  shared.FlavorRepository
	siteRepository    shared.SiteRepository
	moderationService shared.ModerationService[models.Flavor]
}

func NewFlavorController(flavorRepository shared.FlavorRepository, siteRepository shared.SiteRepository, moderationService shared.ModerationService[models.Flavor]) *FlavorController {
	return &FlavorController{
		flavorRepository:  flavorRepository,
		siteRepository:    siteRepository,
		moderationService: moderationService,
	}
}

func (c *FlavorController) read(ctx shared.Context) (models.Flavor, error) {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return models.Flavor{}, httpError(err, "")
	}
	flavor, err := c.flavorRepository.Read(id)
	if err != nil {
		return models.Flavor{}, httpError(err, "could not read flavor")
	}
	if !isVisible(ctx, flavor) {
		return models.Flavor{}, echo.NewHTTPError(http.StatusNotFound, "flavor not found")
	}
	return flavor, nil
}

func (c *FlavorController) Read(ctx shared.Context) error {
	flavor, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.FlavorToDTO(flavor))
}

// ReadSite returns the site a flavor belongs to.
func (c *FlavorController) ReadSite(ctx shared.Context) error {
	flavor, err := c.read(ctx)
	if err != nil {
		return err
	}
	site, err := c.siteRepository.Read(flavor.SiteID)
	if err != nil {
		return httpError(err, "could not read site")
	}
	return ctx.JSON(http.StatusOK, dtos.SiteToDTO(site))
}

func (c *FlavorController) Update(ctx shared.Context) error {
	flavor, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.FlavorPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.ApplyToModel(&flavor) {
		if err := c.flavorRepository.Save(nil, &flavor); err != nil {
			return httpError(err, "could not update flavor")
		}
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *FlavorController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.flavorRepository.Delete(nil, id); err != nil {
		return httpError(err, "could not delete flavor")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *FlavorController) Approve(ctx shared.Context) error {
	return approve(ctx, c.moderationService)
}

func (c *FlavorController) Reject(ctx shared.Context) error {
	return reject(ctx, c.moderationService)
}
