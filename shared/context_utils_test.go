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

package shared_test

import (
	"net/http/httptest"
	"testing"

	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) shared.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSortQuery(t *testing.T) {
	t.Run("should return a valid SQL query", func(t *testing.T) {
		q := shared.SortQuery{
			Field:    "single",
			Operator: "asc",
		}

		assert.Equal(t, `"single" asc`, q.SQL())
	})

	t.Run("should quote every segment of a nested field", func(t *testing.T) {
		q := shared.SortQuery{
			Field:    "results.upload_datetime",
			Operator: "desc",
		}

		assert.Equal(t, `"results"."upload_datetime" desc`, q.SQL())
	})

	t.Run("should panic on fields which might be sql injection", func(t *testing.T) {
		q := shared.SortQuery{
			Field:    `name"; DROP TABLE users; --`,
			Operator: "asc",
		}

		assert.False(t, q.IsValid())
		assert.Panics(t, func() { q.SQL() })
	})
}

func TestGetSortQuery(t *testing.T) {
	t.Run("should parse the sign prefix into the sort direction", func(t *testing.T) {
		ctx := newContext("/?sort_by=%2Bname,-upload_datetime&sort_by=address")

		sort := shared.GetSortQuery(ctx)

		assert.Equal(t, []shared.SortQuery{
			{Field: "name", Operator: "asc"},
			{Field: "upload_datetime", Operator: "desc"},
			{Field: "address", Operator: "asc"},
		}, sort)
	})

	t.Run("should return an empty slice if nothing is requested", func(t *testing.T) {
		assert.Empty(t, shared.GetSortQuery(newContext("/")))
	})
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should default to the first page with 100 items", func(t *testing.T) {
		pageInfo := shared.GetPageInfo(newContext("/"))

		assert.Equal(t, shared.PageInfo{Page: 1, PageSize: 100}, pageInfo)
	})

	t.Run("should cap the page size", func(t *testing.T) {
		pageInfo := shared.GetPageInfo(newContext("/?page=3&per_page=1000"))

		assert.Equal(t, shared.PageInfo{Page: 3, PageSize: 100}, pageInfo)
	})

	t.Run("should keep a valid page size", func(t *testing.T) {
		pageInfo := shared.GetPageInfo(newContext("/?per_page=20"))

		assert.Equal(t, 20, pageInfo.PageSize)
	})
}

func TestGetUUIDQueryParams(t *testing.T) {
	t.Run("should read repeated and comma separated ids", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		ctx := newContext("/?tags_ids=" + a.String() + "," + b.String() + "&tags_ids=" + c.String())

		ids, err := shared.GetUUIDQueryParams(ctx, "tags_ids")

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b, c}, ids)
	})

	t.Run("should return a validation error for malformed ids", func(t *testing.T) {
		ctx := newContext("/?tags_ids=not-a-uuid")

		_, err := shared.GetUUIDQueryParams(ctx, "tags_ids")

		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestGetTimeQueryParam(t *testing.T) {
	t.Run("should parse rfc3339 timestamps", func(t *testing.T) {
		ctx := newContext("/?execution_before=2021-09-08T20:37:10Z")

		ts, err := shared.GetTimeQueryParam(ctx, "execution_before")

		require.NoError(t, err)
		require.NotNil(t, ts)
		assert.Equal(t, 2021, ts.Year())
	})

	t.Run("should return nil for a missing parameter", func(t *testing.T) {
		ts, err := shared.GetTimeQueryParam(newContext("/"), "execution_before")

		assert.NoError(t, err)
		assert.Nil(t, ts)
	})

	t.Run("should fail on dates without a zone", func(t *testing.T) {
		_, err := shared.GetTimeQueryParam(newContext("/?upload_after=2021-09-08"), "upload_after")

		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}
