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
)

// ResourceType is the discriminator stored in the submits and claims tables.
type ResourceType string

const (
	ResourceTypeBenchmark ResourceType = "benchmark"
	ResourceTypeSite      ResourceType = "site"
	ResourceTypeFlavor    ResourceType = "flavor"
	ResourceTypeResult    ResourceType = "result"
)

func (r ResourceType) IsModerated() bool {
	switch r {
	case ResourceTypeBenchmark, ResourceTypeSite, ResourceTypeFlavor:
		return true
	}
	return false
}

// column on the submits table which points to a resource of this type
func (r ResourceType) SubmitColumn() string {
	return string(r) + "_id"
}

type ResourceStatus string

const (
	StatusOnReview ResourceStatus = "on_review"
	StatusApproved ResourceStatus = "approved"
)

// Uploaded is embedded by every row owned by a user.
// The uploader columns reference users(sub, iss) with ON DELETE CASCADE.
type Uploaded struct {
	UploaderSub    string    `json:"-" gorm:"type:text;not null"`
	UploaderIss    string    `json:"-" gorm:"type:text;not null"`
	UploadDatetime time.Time `json:"upload_datetime" gorm:"not null"`
}

func NewUploaded(uploader User, now time.Time) Uploaded {
	return Uploaded{
		UploaderSub:    uploader.Sub,
		UploaderIss:    uploader.Iss,
		UploadDatetime: now,
	}
}

func (u Uploaded) IsUploadedBy(sub, iss string) bool {
	return u.UploaderSub == sub && u.UploaderIss == iss
}
