package services

import (
	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"go.uber.org/fx"
)

func provideImageChecker(cfg config.Config) shared.ImageChecker {
	if cfg.RegistryCheckDisabled {
		return disabledImageChecker{}
	}
	return NewRegistryImageChecker()
}

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(func(cfg config.Config) config.Mail { return cfg.Mail }),
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationService)))),
	fx.Provide(fx.Annotate(NewSchemaValidator, fx.As(new(shared.SchemaValidator)))),
	fx.Provide(provideImageChecker),
	fx.Provide(fx.Annotate(NewModerationService[models.Benchmark, *models.Benchmark], fx.As(new(shared.ModerationService[models.Benchmark])))),
	fx.Provide(fx.Annotate(NewModerationService[models.Site, *models.Site], fx.As(new(shared.ModerationService[models.Site])))),
	fx.Provide(fx.Annotate(NewModerationService[models.Flavor, *models.Flavor], fx.As(new(shared.ModerationService[models.Flavor])))),
	fx.Provide(fx.Annotate(NewBenchmarkService, fx.As(new(shared.BenchmarkService)))),
	fx.Provide(fx.Annotate(NewResultService, fx.As(new(shared.ResultService)))),
	fx.Provide(fx.Annotate(NewClaimService, fx.As(new(shared.ClaimService)))),
	fx.Provide(fx.Annotate(NewUserService, fx.As(new(shared.UserService)))),
)
