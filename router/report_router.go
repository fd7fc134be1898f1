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

type ReportRouter struct {
	*echo.Group
}

func NewReportRouter(apiV1Router APIV1Router, reportController *controllers.ReportController) ReportRouter {
	rbac := apiV1Router.RBAC
	reportRouter := apiV1Router.Group.Group("/reports")
	reportRouter.GET("/submits/", reportController.ListSubmits, rbac(shared.ObjectReport, shared.ActionRead))
	reportRouter.GET("/claims/", reportController.ListClaims, rbac(shared.ObjectClaim, shared.ActionRead))
	reportRouter.POST("/claims/:id/approve/", reportController.ApproveClaim, rbac(shared.ObjectClaim, shared.ActionModerate))
	reportRouter.POST("/claims/:id/reject/", reportController.RejectClaim, rbac(shared.ObjectClaim, shared.ActionModerate))

	return ReportRouter{Group: reportRouter}
}
