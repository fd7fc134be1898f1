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
	"gorm.io/datatypes"
)

type Result struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	Deleted           bool           `json:"-" gorm:"not null;default:false"`
	JSON              datatypes.JSON `json:"json" gorm:"column:json;type:jsonb;not null"`
	ExecutionDatetime time.Time      `json:"execution_datetime" gorm:"not null"`

	BenchmarkID uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	Benchmark   Benchmark `json:"benchmark" gorm:"foreignKey:BenchmarkID"`
	SiteID      uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	Site        Site      `json:"site" gorm:"foreignKey:SiteID"`
	FlavorID    uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	Flavor      Flavor    `json:"flavor" gorm:"foreignKey:FlavorID"`

	Tags  []Tag  `json:"tags" gorm:"many2many:result_tags;"`
	Claim *Claim `json:"-" gorm:"foreignKey:ResultID"`

	Uploaded
}

func (r Result) TableName() string {
	return "results"
}

func (r Result) IsDeleted() bool {
	return r.Deleted
}

func (r Result) IsClaimed() bool {
	return r.Claim != nil
}

func (r Result) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Tags))
	for i, t := range r.Tags {
		ids[i] = t.ID
	}
	return ids
}
