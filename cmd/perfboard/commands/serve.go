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

package commands

import (
	"context"
	"log/slog"

	"github.com/eosc-perf/perfboard/accesscontrol"
	"github.com/eosc-perf/perfboard/auth"
	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/controllers"
	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/database/repositories"
	"github.com/eosc-perf/perfboard/middlewares"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/pubsub"
	"github.com/eosc-perf/perfboard/router"
	"github.com/eosc-perf/perfboard/services"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the http api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

// appOptions wires the whole application around the already opened connections.
func appOptions(cfg config.Config, db shared.DB, pool *pgxpool.Pool, broker shared.PubSubBroker) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(func() shared.DB { return db }),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() shared.PubSubBroker { return broker }),
		fx.Provide(middlewares.NewServer),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,
		accesscontrol.Module,
		auth.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.BenchmarkRouter) {}),
		fx.Invoke(func(router.SiteRouter) {}),
		fx.Invoke(func(router.FlavorRouter) {}),
		fx.Invoke(func(router.ResultRouter) {}),
		fx.Invoke(func(router.TagRouter) {}),
		fx.Invoke(func(router.UserRouter) {}),
		fx.Invoke(func(router.ReportRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
	)
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, flush, err := setup()
	if err != nil {
		return err
	}
	defer flush()

	shutdownTracing, err := monitoring.InitTracing(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "could not initialize tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("could not flush spans", "err", err)
		}
	}()

	db, pool, err := connect(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to setup database connection")
	}
	defer pool.Close()

	if cfg.TracingEnabled {
		if err := database.EnableTracing(db); err != nil {
			return errors.Wrap(err, "could not trace database statements")
		}
	}

	if !cfg.Database.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			return errors.Wrap(err, "failed to run database migrations")
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	broker, err := pubsub.NewPostgreSQLBroker(database.NewPoolConfig(cfg.Database))
	if err != nil {
		return errors.Wrap(err, "failed to create broker")
	}
	defer broker.Close() // nolint:errcheck
	// notifications published by this instance are delivered by this instance as well
	broker.SetShouldReceiveOwnMessages(true)

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := services.ListenForNotifications(listenCtx, broker, cfg.Mail); err != nil {
		return errors.Wrap(err, "could not subscribe to notifications")
	}

	app := fx.New(appOptions(cfg, db, pool, broker))
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}
