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
)

type TagController struct {
	tagRepository shared.TagRepository
}

func NewTagController(tagRepository shared.TagRepository) *TagController {
	return &TagController{
		tagRepository: tagRepository,
	}
}

func (c *TagController) list(ctx shared.Context, filter shared.TagFilter) error {
	paged, err := c.tagRepository.ListPaged(filter, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list tags")
	}
	return ctx.JSON(http.StatusOK, paged)
}

func (c *TagController) List(ctx shared.Context) error {
	return c.list(ctx, shared.TagFilter{Name: ctx.QueryParam("name")})
}

func (c *TagController) Search(ctx shared.Context) error {
	return c.list(ctx, shared.TagFilter{Terms: getTerms(ctx)})
}

func (c *TagController) Create(ctx shared.Context) error {
	var req dtos.TagCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	tag := req.ToModel()
	if err := c.tagRepository.Create(nil, &tag); err != nil {
		return httpError(err, "could not create tag")
	}
	return ctx.JSON(http.StatusCreated, tag)
}

func (c *TagController) read(ctx shared.Context) (models.Tag, error) {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return models.Tag{}, httpError(err, "")
	}
	tag, err := c.tagRepository.Read(id)
	if err != nil {
		return models.Tag{}, httpError(err, "could not read tag")
	}
	return tag, nil
}

func (c *TagController) Read(ctx shared.Context) error {
	tag, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tag)
}

func (c *TagController) Update(ctx shared.Context) error {
	tag, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.TagPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.ApplyToModel(&tag) {
		if err := c.tagRepository.Save(nil, &tag); err != nil {
			return httpError(err, "could not update tag")
		}
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Delete detaches the tag from every result before removing it.
func (c *TagController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if err := c.tagRepository.Delete(nil, id); err != nil {
		return httpError(err, "could not delete tag")
	}
	return ctx.NoContent(http.StatusNoContent)
}
