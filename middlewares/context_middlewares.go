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

	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// all middlewares which modify the current request context and fetch some data from the database

// RegisteredUserMiddleware loads the user row of the caller.
// Authenticated callers who did not register yet get a 403.
func RegisteredUserMiddleware(userRepository shared.UserRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			session := shared.GetSession(ctx)
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "a valid bearer token is required")
			}

			user, err := userRepository.Read(session.GetSubject(), session.GetIssuer())
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "register before using this endpoint")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "could not load user").WithInternal(err)
			}

			shared.SetUser(ctx, user)
			return next(ctx)
		}
	}
}
