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

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Benchmark struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	DockerImage string         `json:"docker_image" gorm:"type:text;not null"`
	DockerTag   string         `json:"docker_tag" gorm:"type:text;not null"`
	URL         string         `json:"url" gorm:"type:text"`
	JSONSchema  datatypes.JSON `json:"json_schema" gorm:"type:jsonb;not null"`
	Description string         `json:"description" gorm:"type:text"`

	Uploaded
	Submit *Submit `json:"-" gorm:"foreignKey:BenchmarkID"`
}

func (b Benchmark) TableName() string {
	return "benchmarks"
}

func (b Benchmark) GetID() uuid.UUID {
	return b.ID
}

func (b Benchmark) GetResourceType() ResourceType {
	return ResourceTypeBenchmark
}

func (b Benchmark) GetSubmit() *Submit {
	return b.Submit
}

func (b Benchmark) GetUploaded() Uploaded {
	return b.Uploaded
}

func (b *Benchmark) SetSubmit(submit *Submit) {
	b.Submit = submit
}

// Image returns the docker reference of the benchmark container.
func (b Benchmark) Image() string {
	return b.DockerImage + ":" + b.DockerTag
}
