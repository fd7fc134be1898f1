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

type UserRouter struct {
	*echo.Group
}

func NewUserRouter(apiV1Router APIV1Router, userController *controllers.UserController) UserRouter {
	rbac := apiV1Router.RBAC
	userRouter := apiV1Router.Group.Group("/users")
	userRouter.GET("/", userController.List, rbac(shared.ObjectReport, shared.ActionRead))
	userRouter.GET("/search/", userController.Search, rbac(shared.ObjectReport, shared.ActionRead))
	userRouter.DELETE("/", userController.Remove, rbac(shared.ObjectUser, shared.ActionDelete))
	userRouter.POST("/register/", userController.Register, rbac(shared.ObjectUser, shared.ActionCreate))

	selfRouter := userRouter.Group("/self", middlewares.NeedsSession(), rbac(shared.ObjectUser, shared.ActionRead))
	selfRouter.GET("/", userController.Self)
	selfRouter.PUT("/", userController.UpdateSelf, rbac(shared.ObjectUser, shared.ActionUpdate), apiV1Router.Registered)
	selfRouter.GET("/try-admin/", userController.TryAdmin)
	selfRouter.GET("/results/", userController.SelfResults, apiV1Router.Registered)
	selfRouter.GET("/claims/", userController.SelfClaims, apiV1Router.Registered)

	return UserRouter{Group: userRouter}
}
