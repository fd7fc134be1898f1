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

type SiteRouter struct {
	*echo.Group
}

func NewSiteRouter(apiV1Router APIV1Router, siteController *controllers.SiteController) SiteRouter {
	rbac := apiV1Router.RBAC
	siteRouter := apiV1Router.Group.Group("/sites", rbac(shared.ObjectSite, shared.ActionRead))
	siteRouter.GET("/", siteController.List)
	siteRouter.POST("/", siteController.Create, rbac(shared.ObjectSite, shared.ActionCreate), apiV1Router.Registered)

	siteRouter.GET("/:id/", siteController.Read)
	siteRouter.PUT("/:id/", siteController.Update, rbac(shared.ObjectSite, shared.ActionUpdate))
	siteRouter.DELETE("/:id/", siteController.Delete, rbac(shared.ObjectSite, shared.ActionDelete))
	siteRouter.POST("/:id/approve/", siteController.Approve, rbac(shared.ObjectSite, shared.ActionModerate))
	siteRouter.POST("/:id/reject/", siteController.Reject, rbac(shared.ObjectSite, shared.ActionModerate))

	// flavors live below their site
	siteRouter.GET("/:id/flavors/", siteController.ListFlavors, rbac(shared.ObjectFlavor, shared.ActionRead))
	siteRouter.POST("/:id/flavors/", siteController.CreateFlavor, rbac(shared.ObjectFlavor, shared.ActionCreate), apiV1Router.Registered)

	return SiteRouter{Group: siteRouter}
}

type FlavorRouter struct {
	*echo.Group
}

func NewFlavorRouter(apiV1Router APIV1Router, flavorController *controllers.FlavorController) FlavorRouter {
	rbac := apiV1Router.RBAC
	flavorRouter := apiV1Router.Group.Group("/flavors", rbac(shared.ObjectFlavor, shared.ActionRead))
	flavorRouter.GET("/:id/", flavorController.Read)
	flavorRouter.GET("/:id/site/", flavorController.ReadSite)
	flavorRouter.PUT("/:id/", flavorController.Update, rbac(shared.ObjectFlavor, shared.ActionUpdate))
	flavorRouter.DELETE("/:id/", flavorController.Delete, rbac(shared.ObjectFlavor, shared.ActionDelete))
	flavorRouter.POST("/:id/approve/", flavorController.Approve, rbac(shared.ObjectFlavor, shared.ActionModerate))
	flavorRouter.POST("/:id/reject/", flavorController.Reject, rbac(shared.ObjectFlavor, shared.ActionModerate))

	return FlavorRouter{Group: flavorRouter}
}
