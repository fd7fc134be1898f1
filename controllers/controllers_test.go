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

package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/auth"
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var alice = models.User{Sub: "alice", Iss: "https://aai.example.org", Email: "alice@example.org", RegistrationDatetime: time.Now()}
var bob = models.User{Sub: "bob", Iss: "https://aai.example.org", Email: "bob@example.org", RegistrationDatetime: time.Now()}

func newRequest(method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, auth.NoSession)
	shared.SetRole(ctx, shared.RoleAnonymous)
	return ctx, rec
}

// as authenticates the request as a registered user.
func as(ctx shared.Context, user models.User, role shared.Role) {
	shared.SetSession(ctx, auth.NewSession(user.Sub, user.Iss, user.Email, nil, nil))
	shared.SetRole(ctx, role)
	shared.SetUser(ctx, user)
}

func withID(ctx shared.Context, id uuid.UUID) {
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected an http error, got %v", err)
	}
	return he.Code
}

func pendingBenchmark(uploader models.User) models.Benchmark {
	benchmark := models.Benchmark{
		ID:          uuid.New(),
		DockerImage: "perfboard/hepscore",
		DockerTag:   "v1",
		JSONSchema:  []byte(`{"type": "object"}`),
		Uploaded:    models.NewUploaded(uploader, time.Now()),
	}
	submit := models.NewSubmit(models.ResourceTypeBenchmark, benchmark.ID, benchmark.Uploaded, time.Now())
	benchmark.Submit = &submit
	return benchmark
}
