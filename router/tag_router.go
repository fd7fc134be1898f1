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
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
)

type TagRouter struct {
	*echo.Group
}

func NewTagRouter(apiV1Router APIV1Router, tagController *controllers.TagController) TagRouter {
	rbac := apiV1Router.RBAC
	tagRouter := apiV1Router.Group.Group("/tags", rbac(shared.ObjectTag, shared.ActionRead))
	tagRouter.GET("/", tagController.List)
	tagRouter.GET("/search/", tagController.Search)
	tagRouter.POST("/", tagController.Create, rbac(shared.ObjectTag, shared.ActionCreate), apiV1Router.Registered)

	tagRouter.GET("/:id/", tagController.Read)
	tagRouter.PUT("/:id/", tagController.Update, rbac(shared.ObjectTag, shared.ActionUpdate))
	tagRouter.DELETE("/:id/", tagController.Delete, rbac(shared.ObjectTag, shared.ActionDelete))

	return TagRouter{Group: tagRouter}
}
