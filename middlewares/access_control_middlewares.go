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

	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
)

type RBACMiddleware = func(obj shared.Object, act shared.Action) shared.MiddlewareFunc

// AccessControlFactory checks the role of the caller against the casbin policy.
// Anonymous callers get a 401, authenticated ones without permission a 403.
func AccessControlFactory(ac shared.AccessControl) RBACMiddleware {
	return func(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				role := shared.GetRole(ctx)

				allowed, err := ac.IsAllowed(role, obj, act)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not determine if the user has access").WithInternal(err)
				}

				if !allowed {
					if role == shared.RoleAnonymous {
						return echo.NewHTTPError(http.StatusUnauthorized, "a valid bearer token is required")
					}
					slog.Warn("access denied", "user", shared.GetSession(ctx).GetUserID(), "role", role, "object", obj, "action", act)
					return echo.NewHTTPError(http.StatusForbidden, "you are not allowed to do this")
				}

				return next(ctx)
			}
		}
	}
}

// NeedsSession rejects anonymous callers.
func NeedsSession() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if !shared.GetSession(ctx).IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "a valid bearer token is required")
			}
			return next(ctx)
		}
	}
}
