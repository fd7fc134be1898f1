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

package controllers

import (
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/middlewares"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InfoResponse is the typed response returned by the /api/v1/info/ endpoint.
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
}

// BuildInfo holds compiled build metadata
type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion,omitempty"`
	NumGoroutines int      `json:"numGoroutines,omitempty"`
	Mem           MemStats `json:"mem"`
}

// MemStats focuses on a small, relevant subset of runtime.MemStats
type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

// PoolInfo never carries credentials.
type PoolInfo struct {
	DBName          string `json:"dbName,omitempty"`
	MaxOpenConns    int32  `json:"maxOpenConns,omitempty"`
	ConnMaxLifetime string `json:"connMaxLifetime,omitempty"`
	ConnMaxIdleTime string `json:"connMaxIdleTime,omitempty"`

	TotalConns    int `json:"totalConns"`
	IdleConns     int `json:"idleConns"`
	AcquiredConns int `json:"acquiredConns"`
	MaxConns      int `json:"maxConns"`
}

type DatabaseInfo struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}

type HealthController struct {
	db   shared.DB
	pool *pgxpool.Pool
	cfg  config.Config
}

func NewHealthController(db shared.DB, pool *pgxpool.Pool, cfg config.Config) *HealthController {
	return &HealthController{
		db:   db,
		pool: pool,
		cfg:  cfg,
	}
}

func (c *HealthController) ping() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (c *HealthController) Health(ctx shared.Context) error {
	if err := c.ping(); err != nil {
		slog.Error("database ping failed", "err", err)
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database ping failed",
		})
	}
	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (c *HealthController) Info(ctx shared.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(middlewares.StartedAt).Seconds()),
		},
	}
	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	poolCfg := database.NewPoolConfig(c.cfg.Database)
	poolInfo := PoolInfo{
		DBName:          poolCfg.DBName,
		MaxOpenConns:    poolCfg.MaxOpenConns,
		ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
		ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
	}

	dbInfo := DatabaseInfo{Status: "healthy"}
	if err := c.ping(); err != nil {
		msg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &msg
	} else {
		if c.pool != nil {
			stats := c.pool.Stat()
			poolInfo.TotalConns = int(stats.TotalConns())
			poolInfo.IdleConns = int(stats.IdleConns())
			poolInfo.AcquiredConns = int(stats.AcquiredConns())
			poolInfo.MaxConns = int(stats.MaxConns())
		}
		if version, dirty, err := database.GetMigrationVersionWithDB(c.db); err == nil {
			dbInfo.MigrationVersion = &version
			dbInfo.MigrationDirty = &dirty
		} else {
			msg := err.Error()
			dbInfo.MigrationError = &msg
		}
	}
	dbInfo.Pool = &poolInfo
	resp.Database = dbInfo

	return ctx.JSON(http.StatusOK, resp)
}
