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
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/google/uuid"
)

type TagCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r TagCreateRequest) ToModel() models.Tag {
	return models.Tag{
		Name:        r.Name,
		Description: r.Description,
	}
}

type TagPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (r TagPatchRequest) ApplyToModel(t *models.Tag) bool {
	updated := false
	if r.Name != nil {
		t.Name = *r.Name
		updated = true
	}
	if r.Description != nil {
		t.Description = *r.Description
		updated = true
	}
	return updated
}

type TagsIDsRequest struct {
	TagsIDs []uuid.UUID `json:"tagsIds"`
}
