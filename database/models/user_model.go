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

import "time"

// User is a federated identity. Subject and issuer together form the primary key.
// The email is not unique - the same person might log in through different providers.
type User struct {
	Sub                  string    `json:"sub" gorm:"primaryKey;type:text"`
	Iss                  string    `json:"iss" gorm:"primaryKey;type:text"`
	Email                string    `json:"email" gorm:"type:text;not null"`
	RegistrationDatetime time.Time `json:"registration_datetime" gorm:"not null"`
}

func (u User) TableName() string {
	return "users"
}

// GetID returns a stable identifier usable as a casbin subject or cache key.
func (u User) GetID() string {
	return u.Iss + "|" + u.Sub
}
