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
)

type ResultRouter struct {
	*echo.Group
}

func NewResultRouter(apiV1Router APIV1Router, resultController *controllers.ResultController) ResultRouter {
	rbac := apiV1Router.RBAC
	resultRouter := apiV1Router.Group.Group("/results", rbac(shared.ObjectResult, shared.ActionRead))
	resultRouter.GET("/", resultController.List)
	resultRouter.GET("/search/", resultController.Search)
	resultRouter.POST("/", resultController.Create, rbac(shared.ObjectResult, shared.ActionCreate), apiV1Router.Registered)

	resultRouter.GET("/:id/", resultController.Read)
	resultRouter.DELETE("/:id/", resultController.Delete, rbac(shared.ObjectResult, shared.ActionDelete))
	resultRouter.POST("/:id/claim/", resultController.Claim, rbac(shared.ObjectResult, shared.ActionClaim), apiV1Router.Registered)
	// the controller checks that the caller uploaded the result
	resultRouter.GET("/:id/claims/", resultController.ListClaims, middlewares.NeedsSession())
	resultRouter.PUT("/:id/tags/", resultController.UpdateTags, middlewares.NeedsSession())
	resultRouter.GET("/:id/uploader/", resultController.ReadUploader, rbac(shared.ObjectReport, shared.ActionRead))

	return ResultRouter{Group: resultRouter}
}
