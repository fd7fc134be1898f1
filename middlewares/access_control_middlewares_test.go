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
	"net/http"
	"testing"

	"github.com/eosc-perf/perfboard/auth"
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/mocks"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected an http error, got %v", err)
	}
	return he.Code
}

func noop(ctx echo.Context) error {
	return ctx.NoContent(http.StatusNoContent)
}

func TestAccessControlFactory(t *testing.T) {
	t.Run("should call the next handler if the role is allowed", func(t *testing.T) {
		ctx, rec := newContext("")
		ac := mocks.NewAccessControl(t)
		shared.SetRole(ctx, shared.RoleUser)
		ac.On("IsAllowed", shared.RoleUser, shared.ObjectResult, shared.ActionClaim).Return(true, nil)

		err := AccessControlFactory(ac)(shared.ObjectResult, shared.ActionClaim)(noop)(ctx)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should ask anonymous callers to authenticate", func(t *testing.T) {
		ctx, _ := newContext("")
		ac := mocks.NewAccessControl(t)
		shared.SetSession(ctx, auth.NoSession)
		ac.On("IsAllowed", shared.RoleAnonymous, shared.ObjectBenchmark, shared.ActionCreate).Return(false, nil)

		err := AccessControlFactory(ac)(shared.ObjectBenchmark, shared.ActionCreate)(noop)(ctx)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("should forbid authenticated callers without permission", func(t *testing.T) {
		ctx, _ := newContext("")
		ac := mocks.NewAccessControl(t)
		shared.SetSession(ctx, auth.NewSession("bob", "https://aai.example.org", "", nil, nil))
		shared.SetRole(ctx, shared.RoleUser)
		ac.On("IsAllowed", shared.RoleUser, shared.ObjectReport, shared.ActionRead).Return(false, nil)

		err := AccessControlFactory(ac)(shared.ObjectReport, shared.ActionRead)(noop)(ctx)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestRegisteredUserMiddleware(t *testing.T) {
	alice := models.User{Sub: "alice", Iss: "https://aai.example.org", Email: "alice@example.org"}

	t.Run("should put the registered user into the context", func(t *testing.T) {
		ctx, _ := newContext("")
		repository := mocks.NewUserRepository(t)
		shared.SetSession(ctx, auth.NewSession(alice.Sub, alice.Iss, alice.Email, nil, nil))
		repository.On("Read", alice.Sub, alice.Iss).Return(alice, nil)

		err := RegisteredUserMiddleware(repository)(func(ctx echo.Context) error {
			assert.Equal(t, alice, shared.GetUser(ctx))
			return nil
		})(ctx)
		assert.NoError(t, err)
	})

	t.Run("should reject callers who did not register", func(t *testing.T) {
		ctx, _ := newContext("")
		repository := mocks.NewUserRepository(t)
		shared.SetSession(ctx, auth.NewSession(alice.Sub, alice.Iss, alice.Email, nil, nil))
		repository.On("Read", alice.Sub, alice.Iss).Return(models.User{}, errors.Wrap(shared.ErrNotFound, "user"))

		err := RegisteredUserMiddleware(repository)(noop)(ctx)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("should reject anonymous callers", func(t *testing.T) {
		ctx, _ := newContext("")
		shared.SetSession(ctx, auth.NoSession)

		err := RegisteredUserMiddleware(mocks.NewUserRepository(t))(noop)(ctx)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}
