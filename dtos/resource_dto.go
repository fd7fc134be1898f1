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
	"github.com/google/uuid"
)

// status mirrors the moderation rule: a resource with a submit row is on review.
func status(submit *models.Submit) models.ResourceStatus {
	if submit != nil {
		return models.StatusOnReview
	}
	return models.StatusApproved
}

type BenchmarkDTO struct {
	ID             uuid.UUID             `json:"id"`
	DockerImage    string                `json:"docker_image"`
	DockerTag      string                `json:"docker_tag"`
	URL            string                `json:"url"`
	JSONSchema     json.RawMessage       `json:"json_schema"`
	Description    string                `json:"description"`
	UploadDatetime time.Time             `json:"upload_datetime"`
	Status         models.ResourceStatus `json:"status"`
}

func BenchmarkToDTO(b models.Benchmark) BenchmarkDTO {
	return BenchmarkDTO{
		ID:             b.ID,
		DockerImage:    b.DockerImage,
		DockerTag:      b.DockerTag,
		URL:            b.URL,
		JSONSchema:     json.RawMessage(b.JSONSchema),
		Description:    b.Description,
		UploadDatetime: b.UploadDatetime,
		Status:         status(b.Submit),
	}
}

type SiteDTO struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Address        string                `json:"address"`
	Description    string                `json:"description"`
	UploadDatetime time.Time             `json:"upload_datetime"`
	Status         models.ResourceStatus `json:"status"`
}

func SiteToDTO(s models.Site) SiteDTO {
	return SiteDTO{
		ID:             s.ID,
		Name:           s.Name,
		Address:        s.Address,
		Description:    s.Description,
		UploadDatetime: s.UploadDatetime,
		Status:         status(s.Submit),
	}
}

type FlavorDTO struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	SiteID         uuid.UUID             `json:"site_id"`
	UploadDatetime time.Time             `json:"upload_datetime"`
	Status         models.ResourceStatus `json:"status"`
}

func FlavorToDTO(f models.Flavor) FlavorDTO {
	return FlavorDTO{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		SiteID:         f.SiteID,
		UploadDatetime: f.UploadDatetime,
		Status:         status(f.Submit),
	}
}

type ResultDTO struct {
	ID                uuid.UUID       `json:"id"`
	JSON              json.RawMessage `json:"json"`
	ExecutionDatetime time.Time       `json:"execution_datetime"`
	UploadDatetime    time.Time       `json:"upload_datetime"`
	Benchmark         BenchmarkDTO    `json:"benchmark"`
	Site              SiteDTO         `json:"site"`
	Flavor            FlavorDTO       `json:"flavor"`
	Tags              []models.Tag    `json:"tags"`
	// only set for soft deleted results carrying an open claim
	Claimed bool `json:"claimed,omitempty"`
}

func ResultToDTO(r models.Result) ResultDTO {
	tags := r.Tags
	if tags == nil {
		tags = []models.Tag{}
	}
	return ResultDTO{
		ID:                r.ID,
		JSON:              json.RawMessage(r.JSON),
		ExecutionDatetime: r.ExecutionDatetime,
		UploadDatetime:    r.UploadDatetime,
		Benchmark:         BenchmarkToDTO(r.Benchmark),
		Site:              SiteToDTO(r.Site),
		Flavor:            FlavorToDTO(r.Flavor),
		Tags:              tags,
		Claimed:           r.IsDeleted() && r.IsClaimed(),
	}
}
