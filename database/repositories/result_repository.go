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
	"github.com/pkg/errors"
)

// resultRepository is the soft delete store of results.
type resultRepository struct {
	*GormRepository[uuid.UUID, models.Result]
}

func NewResultRepository(db shared.DB) *resultRepository {
	return &resultRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Result](db),
	}
}

func visible(q shared.DB, includeDeleted bool) shared.DB {
	if includeDeleted {
		return q
	}
	return q.Where("results.deleted = ?", false)
}

func preloadResult(q shared.DB) shared.DB {
	return q.Preload("Benchmark").Preload("Site").Preload("Flavor").Preload("Tags").Preload("Claim")
}

// Create inserts the result and links the given tags. Referenced rows are never written.
func (r *resultRepository) Create(tx shared.DB, result *models.Result) error {
	result.Deleted = false
	err := r.GetDB(tx).Omit("Benchmark", "Site", "Flavor", "Claim", "Tags.*").Create(result).Error
	return database.TranslateError(err)
}

func (r *resultRepository) Read(id uuid.UUID, includeDeleted bool) (models.Result, error) {
	var result models.Result
	err := preloadResult(visible(r.db, includeDeleted)).First(&result, "results.id = ?", id).Error
	return result, database.TranslateError(err)
}

func (r *resultRepository) ReadForUpdate(tx shared.DB, id uuid.UUID, includeDeleted bool) (models.Result, error) {
	var result models.Result
	err := visible(r.GetDB(tx), includeDeleted).
		Clauses(lockForUpdate).
		Preload("Claim").
		First(&result, "results.id = ?", id).Error
	return result, database.TranslateError(err)
}

func (r *resultRepository) setDeleted(tx shared.DB, id uuid.UUID, deleted bool) error {
	res := r.GetDB(tx).Model(&models.Result{}).Where("id = ?", id).Update("deleted", deleted)
	if res.Error != nil {
		return database.TranslateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(shared.ErrNotFound, "result %s", id)
	}
	return nil
}

func (r *resultRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	return r.setDeleted(tx, id, true)
}

func (r *resultRepository) Undelete(tx shared.DB, id uuid.UUID) error {
	return r.setDeleted(tx, id, false)
}

// HardDelete removes the result. Claims and tag links go with it.
func (r *resultRepository) HardDelete(tx shared.DB, id uuid.UUID) error {
	return r.Delete(tx, id)
}

func (r *resultRepository) ReplaceTags(tx shared.DB, result *models.Result, tags []models.Tag) error {
	err := r.GetDB(tx).Model(result).Association("Tags").Replace(tags)
	return database.TranslateError(err)
}

var resultSortColumns = sortColumns{
	"execution_datetime": "results.execution_datetime",
	"upload_datetime":    "results.upload_datetime",
	"benchmark_id":       "results.benchmark_id",
	"site_id":            "results.site_id",
	"flavor_id":          "results.flavor_id",
}

// a term matches the benchmark image, the site, the flavor or exactly one of the tags
const resultTermCondition = `(EXISTS (SELECT 1 FROM benchmarks WHERE benchmarks.id = results.benchmark_id AND (benchmarks.docker_image ILIKE ? OR benchmarks.docker_tag ILIKE ?))
	OR EXISTS (SELECT 1 FROM sites WHERE sites.id = results.site_id AND (sites.name ILIKE ? OR sites.address ILIKE ?))
	OR EXISTS (SELECT 1 FROM flavors WHERE flavors.id = results.flavor_id AND flavors.name ILIKE ?)
	OR EXISTS (SELECT 1 FROM result_tags JOIN tags ON tags.id = result_tags.tag_id WHERE result_tags.result_id = results.id AND tags.name = ?))`

func resultTermArgs(term string) []any {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return []any{pattern, pattern, pattern, pattern, pattern, term}
}

func (r *resultRepository) ListPaged(filter shared.ResultFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Result], error) {
	q := visible(r.db.Model(&models.Result{}), filter.IncludeDeleted)

	if filter.BenchmarkID != nil {
		q = q.Where("results.benchmark_id = ?", *filter.BenchmarkID)
	}
	if filter.SiteID != nil {
		q = q.Where("results.site_id = ?", *filter.SiteID)
	}
	if filter.FlavorID != nil {
		q = q.Where("results.flavor_id = ?", *filter.FlavorID)
	}
	for _, tagID := range filter.TagIDs {
		q = q.Where("EXISTS (SELECT 1 FROM result_tags WHERE result_tags.result_id = results.id AND result_tags.tag_id = ?)", tagID)
	}
	if filter.UploaderSub != "" || filter.UploaderIss != "" {
		q = q.Where("results.uploader_sub = ? AND results.uploader_iss = ?", filter.UploaderSub, filter.UploaderIss)
	}
	q = filter.Execution.ApplyOnDB(q, "results.execution_datetime")
	q = filter.Upload.ApplyOnDB(q, "results.upload_datetime")

	for _, term := range filter.Terms {
		q = q.Where(resultTermCondition, resultTermArgs(term)...)
	}

	for _, f := range filter.JSONFilters {
		q = q.Where("jsonb_path_exists(results.json, ?::jsonpath, jsonb_build_object('v', ?::jsonb))", f.JSONPath(), f.JSONValue())
	}

	return paginate[models.Result](q, pageInfo, sort, resultSortColumns, "results.id", preloadResult)
}
