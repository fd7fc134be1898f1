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

package dtos

import (
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/google/uuid"
)

type SiteCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
}

func (r SiteCreateRequest) ToModel(uploader models.User, now time.Time) models.Site {
	return models.Site{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		Uploaded:    models.NewUploaded(uploader, now),
	}
}

type SitePatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Address     *string `json:"address" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (r SitePatchRequest) ApplyToModel(s *models.Site) bool {
	updated := false
	if r.Name != nil {
		s.Name = *r.Name
		updated = true
	}
	if r.Address != nil {
		s.Address = *r.Address
		updated = true
	}
	if r.Description != nil {
		s.Description = *r.Description
		updated = true
	}
	return updated
}

type FlavorCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r FlavorCreateRequest) ToModel(siteID uuid.UUID, uploader models.User, now time.Time) models.Flavor {
	return models.Flavor{
		Name:        r.Name,
		Description: r.Description,
		SiteID:      siteID,
		Uploaded:    models.NewUploaded(uploader, now),
	}
}

type FlavorPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (r FlavorPatchRequest) ApplyToModel(f *models.Flavor) bool {
	updated := false
	if r.Name != nil {
		f.Name = *r.Name
		updated = true
	}
	if r.Description != nil {
		f.Description = *r.Description
		updated = true
	}
	return updated
}
