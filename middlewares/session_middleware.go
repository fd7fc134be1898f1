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
	"log/slog"
	"net/http"
	"strings"

	"github.com/eosc-perf/perfboard/auth"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionMiddleware resolves the bearer token into a session and a role.
// Requests without a usable token continue anonymously, protected routes reject them later on.
func SessionMiddleware(introspector shared.Introspector, ac shared.AccessControl) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			token := bearerToken(ctx.Request())
			if token == "" {
				shared.SetSession(ctx, auth.NoSession)
				shared.SetRole(ctx, shared.RoleAnonymous)
				return next(ctx)
			}

			session, err := introspector.Introspect(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					slog.Debug("continuing anonymously", "err", err)
					shared.SetSession(ctx, auth.NoSession)
					shared.SetRole(ctx, shared.RoleAnonymous)
					return next(ctx)
				}
				return echo.NewHTTPError(http.StatusServiceUnavailable, "could not reach the identity provider").WithInternal(err)
			}

			shared.SetSession(ctx, session)
			shared.SetRole(ctx, ac.RoleOf(session))
			return next(ctx)
		}
	}
}
