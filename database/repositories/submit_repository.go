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

type submitRepository struct {
	*GormRepository[uuid.UUID, models.Submit]
}

func NewSubmitRepository(db shared.DB) *submitRepository {
	return &submitRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Submit](db),
	}
}

var submitSortColumns = sortColumns{
	"resource_type":   "submits.resource_type",
	"upload_datetime": "submits.upload_datetime",
}

// oldest first, the queue is worked in order
const submitOrder = "submits.upload_datetime, submits.id"

// ListPaged lists the pending submits, the moderation queue.
func (r *submitRepository) ListPaged(filter shared.SubmitFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Submit], error) {
	q := r.db.Model(&models.Submit{})
	if filter.ResourceType != nil {
		q = q.Where("submits.resource_type = ?", *filter.ResourceType)
	}
	q = filter.Upload.ApplyOnDB(q, "submits.upload_datetime")

	return paginate[models.Submit](q, pageInfo, sort, submitSortColumns, submitOrder, func(q shared.DB) shared.DB {
		return q.Preload("Uploader")
	})
}
