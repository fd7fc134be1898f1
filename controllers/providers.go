package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	// Catalogue
	fx.Provide(NewBenchmarkController),
	fx.Provide(NewSiteController),
	fx.Provide(NewFlavorController),
	fx.Provide(NewTagController),

	// Results & claims
	fx.Provide(NewResultController),
	fx.Provide(NewReportController),

	// Users & operations
	fx.Provide(NewUserController),
	fx.Provide(NewHealthController),
)
