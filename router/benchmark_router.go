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

type BenchmarkRouter struct {
	*echo.Group
}

func NewBenchmarkRouter(apiV1Router APIV1Router, benchmarkController *controllers.BenchmarkController) BenchmarkRouter {
	rbac := apiV1Router.RBAC
	benchmarkRouter := apiV1Router.Group.Group("/benchmarks", rbac(shared.ObjectBenchmark, shared.ActionRead))
	benchmarkRouter.GET("/", benchmarkController.List)
	benchmarkRouter.GET("/search/", benchmarkController.Search)
	benchmarkRouter.POST("/", benchmarkController.Create, rbac(shared.ObjectBenchmark, shared.ActionCreate), apiV1Router.Registered)

	benchmarkRouter.GET("/:id/", benchmarkController.Read)
	benchmarkRouter.PUT("/:id/", benchmarkController.Update, rbac(shared.ObjectBenchmark, shared.ActionUpdate))
	benchmarkRouter.DELETE("/:id/", benchmarkController.Delete, rbac(shared.ObjectBenchmark, shared.ActionDelete))
	benchmarkRouter.POST("/:id/approve/", benchmarkController.Approve, rbac(shared.ObjectBenchmark, shared.ActionModerate))
	benchmarkRouter.POST("/:id/reject/", benchmarkController.Reject, rbac(shared.ObjectBenchmark, shared.ActionModerate))

	return BenchmarkRouter{Group: benchmarkRouter}
}
