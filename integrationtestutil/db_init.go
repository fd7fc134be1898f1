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

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	postgresImage = "postgres:16-alpine"
	dbName        = "perfboard"
	dbUser        = "user"
	dbPassword    = "password"
)

func startContainer(ctx context.Context) (database.PoolConfig, func()) {
	postgresC, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	return database.PoolConfig{
		User:            dbUser,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
		DBName:          dbName,
		MaxOpenConns:    10,
		ConnMaxLifetime: database.DefaultConnMaxLifetime,
		ConnMaxIdleTime: database.DefaultConnMaxIdleTime,
	}, terminate
}

// InitDatabaseContainer starts a throwaway postgres, runs the embedded
// migrations and returns a connected gorm instance.
func InitDatabaseContainer() (shared.DB, func()) {
	cfg, terminate := startContainer(context.Background())

	db, pool, err := database.NewConnection(cfg)
	if err != nil {
		terminate()
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		pool.Close()
		terminate()
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}

// InitPoolConfigContainer starts a throwaway postgres without touching its schema.
// Useful for components that open their own connections.
func InitPoolConfigContainer() (database.PoolConfig, func()) {
	return startContainer(context.Background())
}
