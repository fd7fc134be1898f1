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
)

type benchmarkRepository struct {
	*moderatedRepository[models.Benchmark]
}

func NewBenchmarkRepository(db shared.DB) *benchmarkRepository {
	return &benchmarkRepository{
		moderatedRepository: newModeratedRepository[models.Benchmark](db),
	}
}

var benchmarkSortColumns = sortColumns{
	"docker_image":    "benchmarks.docker_image",
	"docker_tag":      "benchmarks.docker_tag",
	"upload_datetime": "benchmarks.upload_datetime",
}

func (r *benchmarkRepository) ListApproved(filter shared.BenchmarkFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Benchmark], error) {
	q := r.approved(r.db.Model(&models.Benchmark{}))
	if filter.DockerImage != "" {
		q = q.Where("benchmarks.docker_image = ?", filter.DockerImage)
	}
	if filter.DockerTag != "" {
		q = q.Where("benchmarks.docker_tag = ?", filter.DockerTag)
	}
	q = filter.Upload.ApplyOnDB(q, "benchmarks.upload_datetime")
	q = matchTerms(q, filter.Terms, "benchmarks.docker_image", "benchmarks.docker_tag", "benchmarks.description")

	return paginate[models.Benchmark](q, pageInfo, sort, benchmarkSortColumns, "benchmarks.id", nil)
}
