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
)

// Claim is an open dispute against a result.
// While it exists the result is soft deleted. The result_id column is unique,
// so a result carries at most one open claim.
type Claim struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	ResourceType ResourceType `json:"resource_type" gorm:"type:text;not null"`
	Message      string       `json:"message" gorm:"type:text;not null"`

	ResultID uuid.UUID `json:"resource_id" gorm:"type:uuid;not null"`
	Result   *Result   `json:"-" gorm:"foreignKey:ResultID"`

	Uploaded
	Uploader *User `json:"uploader,omitempty" gorm:"foreignKey:UploaderSub,UploaderIss;references:Sub,Iss"`
}

func (c Claim) TableName() string {
	return "claims"
}

func (c Claim) ResourceID() uuid.UUID {
	return c.ResultID
}
