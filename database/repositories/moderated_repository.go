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

type moderatedModel interface {
	Tabler
	GetResourceType() models.ResourceType
}

// moderatedRepository stores benchmarks, sites and flavors.
// A resource is approved when no submit row references it.
type moderatedRepository[T moderatedModel] struct {
	*GormRepository[uuid.UUID, T]
}

func newModeratedRepository[T moderatedModel](db shared.DB) *moderatedRepository[T] {
	return &moderatedRepository[T]{
		GormRepository: newGormRepository[uuid.UUID, T](db),
	}
}

func (m *moderatedRepository[T]) Read(id uuid.UUID) (T, error) {
	var t T
	err := m.db.Preload("Submit").First(&t, "id = ?", id).Error
	return t, database.TranslateError(err)
}

// ReadForUpdate locks the resource and its submit. Concurrent approvals and
// rejections of the same resource queue up behind the first one.
func (m *moderatedRepository[T]) ReadForUpdate(tx shared.DB, id uuid.UUID) (T, error) {
	var t T
	err := m.GetDB(tx).
		Clauses(lockForUpdate).
		Preload("Submit", func(db shared.DB) shared.DB {
			return db.Clauses(lockForUpdate)
		}).
		First(&t, "id = ?", id).Error
	return t, database.TranslateError(err)
}

// approved restricts a query on the resource table to approved rows.
func (m *moderatedRepository[T]) approved(q shared.DB) shared.DB {
	var t T
	table := t.TableName()
	return q.Where("NOT EXISTS (SELECT 1 FROM submits WHERE submits." + t.GetResourceType().SubmitColumn() + " = " + table + ".id)")
}
