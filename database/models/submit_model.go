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
	"time"

	"github.com/google/uuid"
)

// Submit is the pending moderation record of a benchmark, site or flavor.
// Exactly one of the resource columns is set and it matches ResourceType.
// The row exists while the resource is on review and is removed on approval.
type Submit struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	ResourceType ResourceType `json:"resource_type" gorm:"type:text;not null"`

	BenchmarkID *uuid.UUID `json:"-" gorm:"type:uuid"`
	SiteID      *uuid.UUID `json:"-" gorm:"type:uuid"`
	FlavorID    *uuid.UUID `json:"-" gorm:"type:uuid"`

	Uploaded
	Uploader *User `json:"uploader,omitempty" gorm:"foreignKey:UploaderSub,UploaderIss;references:Sub,Iss"`
}

func (s Submit) TableName() string {
	return "submits"
}

func NewSubmit(resourceType ResourceType, resourceID uuid.UUID, uploader Uploaded, now time.Time) Submit {
	submit := Submit{
		ResourceType: resourceType,
		Uploaded: Uploaded{
			UploaderSub:    uploader.UploaderSub,
			UploaderIss:    uploader.UploaderIss,
			UploadDatetime: now,
		},
	}

	id := resourceID
	switch resourceType {
	case ResourceTypeBenchmark:
		submit.BenchmarkID = &id
	case ResourceTypeSite:
		submit.SiteID = &id
	case ResourceTypeFlavor:
		submit.FlavorID = &id
	}
	return submit
}

// ResourceID resolves the id of the resource this submit belongs to.
func (s Submit) ResourceID() uuid.UUID {
	var id *uuid.UUID
	switch s.ResourceType {
	case ResourceTypeBenchmark:
		id = s.BenchmarkID
	case ResourceTypeSite:
		id = s.SiteID
	case ResourceTypeFlavor:
		id = s.FlavorID
	}
	if id == nil {
		return uuid.Nil
	}
	return *id
}
