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
	"log/slog"
	"time"

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perfboard",
	Short: "Benchmark results sharing backend",
	Long:  `perfboard stores benchmark results together with the benchmarks, sites and flavors they were produced on.`,
	// serve is the default
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
}

// setup loads the configuration and installs the logger and error tracking.
// The returned function flushes pending error reports.
func setup() (config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, func() {}, err
	}
	shared.InitLogger(cfg.LogLevel)

	if cfg.ErrorTrackingDSN == "" {
		return cfg, func() {}, nil
	}
	initSentry(cfg)
	return cfg, func() { sentry.Flush(5 * time.Second) }, nil
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.IsDev(),

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}

func connect(cfg config.Config) (shared.DB, *pgxpool.Pool, error) {
	poolConfig := database.NewPoolConfig(cfg.Database)
	poolConfig.Tracing = cfg.TracingEnabled
	return database.NewConnection(poolConfig)
}
