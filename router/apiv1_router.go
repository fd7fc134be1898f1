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

package router

import (
	"github.com/eosc-perf/perfboard/controllers"
	"github.com/eosc-perf/perfboard/middlewares"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
	// RBAC guards a route with the casbin policy of the caller's role
	RBAC middlewares.RBACMiddleware
	// Registered loads the user row of the caller and rejects unregistered callers
	Registered shared.MiddlewareFunc
}

func NewAPIV1Router(e *echo.Echo,
	introspector shared.Introspector,
	ac shared.AccessControl,
	userRepository shared.UserRepository,
	healthController *controllers.HealthController,
) APIV1Router {
	apiV1Router := e.Group("/api/v1")
	// every request carries a session, anonymous callers get an empty one
	apiV1Router.Use(middlewares.SessionMiddleware(introspector, ac))

	apiV1Router.GET("/info/", healthController.Info)
	apiV1Router.GET("/health/", healthController.Health)
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	return APIV1Router{
		Group:      apiV1Router,
		RBAC:       middlewares.AccessControlFactory(ac),
		Registered: middlewares.RegisteredUserMiddleware(userRepository),
	}
}
