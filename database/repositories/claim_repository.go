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
	"github.com/google/uuid"
)

type claimRepository struct {
	*GormRepository[uuid.UUID, models.Claim]
}

func NewClaimRepository(db shared.DB) *claimRepository {
	return &claimRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Claim](db),
	}
}

func (r *claimRepository) Read(id uuid.UUID) (models.Claim, error) {
	var claim models.Claim
	err := r.db.Preload("Uploader").First(&claim, "id = ?", id).Error
	return claim, database.TranslateError(err)
}

func (r *claimRepository) CountByResult(tx shared.DB, resultID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.Claim{}).Where("result_id = ?", resultID).Count(&count).Error
	return count, database.TranslateError(err)
}

var claimSortColumns = sortColumns{
	"upload_datetime": "claims.upload_datetime",
}

func (r *claimRepository) ListPaged(filter shared.ClaimFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Claim], error) {
	q := r.db.Model(&models.Claim{})
	if filter.UploaderSub != "" || filter.UploaderIss != "" {
		q = q.Where("claims.uploader_sub = ? AND claims.uploader_iss = ?", filter.UploaderSub, filter.UploaderIss)
	}
	if filter.ResultID != nil {
		q = q.Where("claims.result_id = ?", *filter.ResultID)
	}
	q = filter.Upload.ApplyOnDB(q, "claims.upload_datetime")

	return paginate[models.Claim](q, pageInfo, sort, claimSortColumns, "claims.id", func(q shared.DB) shared.DB {
		return q.Preload("Uploader")
	})
}
