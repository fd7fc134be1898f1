package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewBenchmarkRouter),
	fx.Provide(NewSiteRouter),
	fx.Provide(NewFlavorRouter),
	fx.Provide(NewResultRouter),
	fx.Provide(NewTagRouter),
	fx.Provide(NewUserRouter),
	fx.Provide(NewReportRouter),
)
