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

package repositories

import (
	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

type userRepository struct {
	// users carry a composite key, the id type is never used for lookups
	*GormRepository[string, models.User]
}

func NewUserRepository(db shared.DB) *userRepository {
	return &userRepository{
		GormRepository: newGormRepository[string, models.User](db),
	}
}

func (r *userRepository) Read(sub, iss string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "sub = ? AND iss = ?", sub, iss).Error
	return user, database.TranslateError(err)
}

func userWhere(q shared.DB, filter shared.UserFilter) shared.DB {
	if filter.Sub != "" {
		q = q.Where("users.sub = ?", filter.Sub)
	}
	if filter.Iss != "" {
		q = q.Where("users.iss = ?", filter.Iss)
	}
	if filter.Email != "" {
		q = q.Where("users.email = ?", filter.Email)
	}
	return q
}

var userSortColumns = sortColumns{
	"email":                 "users.email",
	"registration_datetime": "users.registration_datetime",
}

const userOrder = "users.registration_datetime, users.sub, users.iss"

func (r *userRepository) ListPaged(filter shared.UserFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.User], error) {
	q := userWhere(r.db.Model(&models.User{}), filter)
	q = matchTerms(q, filter.Terms, "users.email", "users.sub")
	return paginate[models.User](q, pageInfo, sort, userSortColumns, userOrder, nil)
}

// DeleteWhere removes every matching user. Everything they uploaded is removed by the
// foreign key cascades of the schema.
func (r *userRepository) DeleteWhere(tx shared.DB, filter shared.UserFilter) (int64, error) {
	if filter.IsEmpty() {
		return 0, errors.Wrap(shared.ErrValidation, "refusing to delete users without a filter")
	}
	res := userWhere(r.GetDB(tx), filter).Delete(&models.User{})
	return res.RowsAffected, database.TranslateError(res.Error)
}
