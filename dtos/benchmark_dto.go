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
	"encoding/json"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"gorm.io/datatypes"
)

type BenchmarkCreateRequest struct {
	DockerImage string          `json:"docker_image" validate:"required"`
	DockerTag   string          `json:"docker_tag" validate:"required"`
	URL         string          `json:"url" validate:"required,url"`
	JSONSchema  json.RawMessage `json:"json_schema" validate:"required"`
	Description string          `json:"description"`
}

func (r BenchmarkCreateRequest) ToModel(uploader models.User, now time.Time) models.Benchmark {
	return models.Benchmark{
		DockerImage: r.DockerImage,
		DockerTag:   r.DockerTag,
		URL:         r.URL,
		JSONSchema:  datatypes.JSON(r.JSONSchema),
		Description: r.Description,
		Uploaded:    models.NewUploaded(uploader, now),
	}
}

// the docker reference and the schema stay fixed once results reference them
type BenchmarkPatchRequest struct {
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description"`
}

func (r BenchmarkPatchRequest) ApplyToModel(b *models.Benchmark) bool {
	updated := false
	if r.URL != nil {
		b.URL = *r.URL
		updated = true
	}
	if r.Description != nil {
		b.Description = *r.Description
		updated = true
	}
	return updated
}
