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

package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetRole(ctx Context) Role {
	role, ok := ctx.Get("role").(Role)
	if !ok {
		return RoleAnonymous
	}
	return role
}

func SetRole(ctx Context, role Role) {
	ctx.Set("role", role)
}

func IsAdmin(ctx Context) bool {
	return GetRole(ctx) == RoleAdmin
}

// GetUser returns the registered user of the request.
// Only available behind the registered user middleware.
func GetUser(ctx Context) models.User {
	return ctx.Get("user").(models.User)
}

func SetUser(ctx Context, user models.User) {
	ctx.Set("user", user)
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeParam(ctx.Param(param)))
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrValidation, "invalid %s", param)
	}
	return id, nil
}

// GetUUIDQueryParams parses every value of a repeated query parameter.
func GetUUIDQueryParams(ctx Context, param string) ([]uuid.UUID, error) {
	values := ctx.QueryParams()[param]
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s == "" {
				continue
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, errors.Wrapf(ErrValidation, "invalid %s: %s", param, s)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func GetOptionalUUIDQueryParam(ctx Context, param string) (*uuid.UUID, error) {
	v := ctx.QueryParam(param)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, errors.Wrapf(ErrValidation, "invalid %s", param)
	}
	return &id, nil
}

// GetTimeQueryParam parses an RFC 3339 timestamp. Missing parameters yield nil.
func GetTimeQueryParam(ctx Context, param string) (*time.Time, error) {
	v := ctx.QueryParam(param)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.Wrapf(ErrValidation, "%s must be an RFC 3339 timestamp", param)
	}
	return &t, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

const maxPageSize = 100

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("per_page"))
	switch {
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	case pageSize <= 0:
		pageSize = maxPageSize
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

// GetSortQuery reads sort_by=+field,-other. A missing sign sorts ascending.
func GetSortQuery(ctx Context) []SortQuery {
	sortQuerys := []SortQuery{}
	for _, value := range ctx.QueryParams()["sort_by"] {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			operator := "asc"
			switch field[0] {
			case '-':
				operator = "desc"
				field = field[1:]
			case '+':
				field = field[1:]
			}
			sortQuerys = append(sortQuerys, SortQuery{
				Field:    field,
				Operator: operator,
			})
		}
	}
	return sortQuerys
}

// Regular expression to validate field names
var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	for i, s := range split {
		split[i] = fmt.Sprintf(`"%s"`, s)
	}
	return strings.Join(split, ".")
}

func (s SortQuery) IsValid() bool {
	return validFieldNameRegex.MatchString(s.Field) && (s.Operator == "asc" || s.Operator == "desc")
}

func (s SortQuery) SQL() string {
	if !s.IsValid() {
		panic("invalid sort query - to risky, might be sql injection")
	}
	return quoteFields(s.Field) + " " + s.Operator
}
