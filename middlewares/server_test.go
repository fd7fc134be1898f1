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

package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	registerMiddlewares(e, config.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}})
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestErrorHandler(t *testing.T) {
	e := newTestEcho()
	e.GET("/claimed/", func(ctx echo.Context) error {
		return errors.Wrap(shared.ErrAlreadyClaimed, "result 42")
	})
	e.GET("/broken/", func(ctx echo.Context) error {
		return errors.New("password=secret")
	})
	e.GET("/explicit/", func(ctx echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("boom")
	})

	t.Run("should map domain errors onto their status", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/claimed/")
		assert.Equal(t, http.StatusConflict, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["message"], "already claimed")
	})

	t.Run("should not leak internal errors", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/broken/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("should render http errors as they are", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/explicit/")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"nope"}`, rec.Body.String())
	})

	t.Run("should turn panics into a 500", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/panic/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("should add the trailing slash", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/claimed")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestNewServer(t *testing.T) {
	hasRoute := func(e *echo.Echo, path string) bool {
		for _, r := range e.Routes() {
			if r.Path == path {
				return true
			}
		}
		return false
	}

	t.Run("should expose the profiler in development", func(t *testing.T) {
		e := NewServer(fxtest.NewLifecycle(t), config.Config{Environment: "dev", Port: "0"})
		assert.True(t, e.HideBanner)
		assert.True(t, hasRoute(e, "/debug/pprof/"))
	})

	t.Run("should not expose the profiler in production", func(t *testing.T) {
		e := NewServer(fxtest.NewLifecycle(t), config.Config{Environment: "prod", Port: "0"})
		assert.False(t, hasRoute(e, "/debug/pprof/"))
	})
}
