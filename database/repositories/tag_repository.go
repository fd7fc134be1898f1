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
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
)

type tagRepository struct {
	*GormRepository[uuid.UUID, models.Tag]
}

func NewTagRepository(db shared.DB) *tagRepository {
	return &tagRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Tag](db),
	}
}

var tagSortColumns = sortColumns{
	"name": "tags.name",
}

func (r *tagRepository) ListPaged(filter shared.TagFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Tag], error) {
	q := r.db.Model(&models.Tag{})
	if filter.Name != "" {
		q = q.Where("tags.name ILIKE ?", "%"+filter.Name+"%")
	}
	q = matchTerms(q, filter.Terms, "tags.name", "tags.description")
	return paginate[models.Tag](q, pageInfo, sort, tagSortColumns, "tags.name", nil)
}
