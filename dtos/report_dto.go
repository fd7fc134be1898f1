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

type SubmitDTO struct {
	ID             uuid.UUID           `json:"id"`
	ResourceType   models.ResourceType `json:"resource_type"`
	ResourceID     uuid.UUID           `json:"resource_id"`
	Uploader       *models.User        `json:"uploader,omitempty"`
	UploadDatetime time.Time           `json:"upload_datetime"`
}

func SubmitToDTO(s models.Submit) SubmitDTO {
	return SubmitDTO{
		ID:             s.ID,
		ResourceType:   s.ResourceType,
		ResourceID:     s.ResourceID(),
		Uploader:       s.Uploader,
		UploadDatetime: s.UploadDatetime,
	}
}

type ClaimDTO struct {
	ID             uuid.UUID           `json:"id"`
	ResourceType   models.ResourceType `json:"resource_type"`
	ResourceID     uuid.UUID           `json:"resource_id"`
	Message        string              `json:"message"`
	Uploader       *models.User        `json:"uploader,omitempty"`
	UploadDatetime time.Time           `json:"upload_datetime"`
}

func ClaimToDTO(c models.Claim) ClaimDTO {
	return ClaimDTO{
		ID:             c.ID,
		ResourceType:   c.ResourceType,
		ResourceID:     c.ResourceID(),
		Message:        c.Message,
		Uploader:       c.Uploader,
		UploadDatetime: c.UploadDatetime,
	}
}
