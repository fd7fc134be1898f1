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

import "github.com/google/uuid"

type Site struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Address     string    `json:"address" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`

	Uploaded
	Submit  *Submit  `json:"-" gorm:"foreignKey:SiteID"`
	Flavors []Flavor `json:"-" gorm:"foreignKey:SiteID"`
}

func (s Site) TableName() string {
	return "sites"
}

func (s Site) GetID() uuid.UUID {
	return s.ID
}

func (s Site) GetResourceType() ResourceType {
	return ResourceTypeSite
}

func (s Site) GetSubmit() *Submit {
	return s.Submit
}

func (s Site) GetUploaded() Uploaded {
	return s.Uploaded
}

func (s *Site) SetSubmit(submit *Submit) {
	s.Submit = submit
}

// Flavor is a hardware template offered by a site.
// Flavors are removed together with their site.
type Flavor struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	SiteID      uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	Site        *Site     `json:"-" gorm:"foreignKey:SiteID"`

	Uploaded
	Submit *Submit `json:"-" gorm:"foreignKey:FlavorID"`
}

func (f Flavor) TableName() string {
	return "flavors"
}

func (f Flavor) GetID() uuid.UUID {
	return f.ID
}

func (f Flavor) GetResourceType() ResourceType {
	return ResourceTypeFlavor
}

func (f Flavor) GetSubmit() *Submit {
	return f.Submit
}

func (f Flavor) GetUploaded() Uploaded {
	return f.Uploaded
}

func (f *Flavor) SetSubmit(submit *Submit) {
	f.Submit = submit
}
