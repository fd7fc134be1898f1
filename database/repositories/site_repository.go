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

type siteRepository struct {
	*moderatedRepository[models.Site]
}

func NewSiteRepository(db shared.DB) *siteRepository {
	return &siteRepository{
		moderatedRepository: newModeratedRepository[models.Site](db),
	}
}

var siteSortColumns = sortColumns{
	"name":            "sites.name",
	"address":         "sites.address",
	"upload_datetime": "sites.upload_datetime",
}

func (r *siteRepository) ListApproved(filter shared.SiteFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Site], error) {
	q := r.approved(r.db.Model(&models.Site{}))
	if filter.Name != "" {
		q = q.Where("sites.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		q = q.Where("sites.address ILIKE ?", "%"+filter.Address+"%")
	}
	q = filter.Upload.ApplyOnDB(q, "sites.upload_datetime")

	return paginate[models.Site](q, pageInfo, sort, siteSortColumns, "sites.id", nil)
}

type flavorRepository struct {
	*moderatedRepository[models.Flavor]
}

func NewFlavorRepository(db shared.DB) *flavorRepository {
	return &flavorRepository{
		moderatedRepository: newModeratedRepository[models.Flavor](db),
	}
}

var flavorSortColumns = sortColumns{
	"name":            "flavors.name",
	"upload_datetime": "flavors.upload_datetime",
}

func (r *flavorRepository) ListApproved(filter shared.FlavorFilter, pageInfo shared.PageInfo, sort []shared.SortQuery) (shared.Paged[models.Flavor], error) {
	q := r.approved(r.db.Model(&models.Flavor{}))
	if filter.SiteID != nil {
		q = q.Where("flavors.site_id = ?", *filter.SiteID)
	}
	if filter.Name != "" {
		q = q.Where("flavors.name ILIKE ?", "%"+filter.Name+"%")
	}
	q = filter.Upload.ApplyOnDB(q, "flavors.upload_datetime")

	return paginate[models.Flavor](q, pageInfo, sort, flavorSortColumns, "flavors.id", nil)
}
