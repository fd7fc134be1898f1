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
	"strings"

	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Tabler interface {
	TableName() string
}

type GormRepository[ID comparable, T Tabler] struct {
	db shared.DB
}

func newGormRepository[ID comparable, T Tabler](db shared.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

// Save writes the row itself. Loaded associations are left untouched.
func (g *GormRepository[ID, T]) Save(tx shared.DB, t *T) error {
	return database.TranslateError(g.GetDB(tx).Omit(clause.Associations).Save(t).Error)
}

func (g *GormRepository[ID, T]) Transaction(f func(tx shared.DB) error) error {
	tx := g.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return database.TranslateError(tx.Commit().Error)
}

func (g *GormRepository[ID, T]) GetDB(tx shared.DB) shared.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[ID, T]) Create(tx shared.DB, t *T) error {
	return database.TranslateError(g.GetDB(tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error

	return t, database.TranslateError(err)
}

// ReadForUpdate locks the row until tx ends.
func (g *GormRepository[ID, T]) ReadForUpdate(tx shared.DB, id ID) (T, error) {
	var t T
	err := g.GetDB(tx).Clauses(lockForUpdate).First(&t, "id = ?", id).Error

	return t, database.TranslateError(err)
}

// Delete removes the row for good. Deleting a missing row is reported as not found.
func (g *GormRepository[ID, T]) Delete(tx shared.DB, id ID) error {
	var t T
	res := g.GetDB(tx).Where("id = ?", id).Delete(&t)
	if res.Error != nil {
		return database.TranslateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(shared.ErrNotFound, "%s %v", t.TableName(), id)
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T

	err := g.db.Where("id IN ?", ids).Find(&ts).Error
	if err != nil {
		return ts, database.TranslateError(err)
	}
	return ts, nil
}

// sortColumns maps the public sort field names onto qualified columns.
type sortColumns map[string]string

func (s sortColumns) apply(q shared.DB, sort []shared.SortQuery, fallback string) (shared.DB, error) {
	if len(sort) == 0 {
		return q.Order(fallback), nil
	}
	for _, sq := range sort {
		column, ok := s[sq.Field]
		if !ok || !sq.IsValid() {
			return nil, errors.Wrapf(shared.ErrValidation, "cannot sort by %q", sq.Field)
		}
		q = q.Order(shared.SortQuery{Field: column, Operator: sq.Operator}.SQL())
	}
	// stable pages
	return q.Order(fallback), nil
}

// paginate counts the filtered query and loads the requested page.
// preload is applied to the page query only.
func paginate[T any](q shared.DB, pageInfo shared.PageInfo, sort []shared.SortQuery, columns sortColumns, fallback string, preload func(shared.DB) shared.DB) (shared.Paged[T], error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return shared.Paged[T]{}, database.TranslateError(err)
	}

	q, err := columns.apply(q, sort, fallback)
	if err != nil {
		return shared.Paged[T]{}, err
	}
	if preload != nil {
		q = preload(q)
	}

	items := []T{}
	if err := pageInfo.ApplyOnDB(q).Find(&items).Error; err != nil {
		return shared.Paged[T]{}, database.TranslateError(err)
	}
	return shared.NewPaged(pageInfo, total, items), nil
}

var lockForUpdate = clause.Locking{Strength: "UPDATE"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// matchTerms requires every term to appear in at least one of the columns.
func matchTerms(q shared.DB, terms []string, columns ...string) shared.DB {
	for _, term := range terms {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		conditions := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, column := range columns {
			conditions[i] = column + " ILIKE ?"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
	return q
}
