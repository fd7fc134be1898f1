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

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
)

var StartedAt = time.Now()

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	if cfg.TracingEnabled {
		e.Use(otelecho.Middleware("perfboard"))
	}

	e.Use(logger())
	e.Use(recoverMiddleware())

	e.HTTPErrorHandler = errorHandler
}

// errorHandler logs and renders every error returned by a handler or middleware.
// Plain domain errors are mapped onto their status code.
func errorHandler(err error, ctx echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		code := shared.HTTPStatus(err)
		he = echo.NewHTTPError(code).WithInternal(err)
		if code != http.StatusInternalServerError {
			he.Message = err.Error()
		}
	}

	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if he.Code >= http.StatusInternalServerError {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code)
	}

	if ctx.Response().Committed {
		return
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(he.Code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}

	message := he.Message
	if s, ok := message.(string); ok {
		message = echo.Map{"message": s}
	}
	if err := ctx.JSON(he.Code, message); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

// NewServer creates the echo instance and binds it to the application lifecycle.
func NewServer(lc fx.Lifecycle, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)

	if cfg.IsDev() {
		AddProfileEndpoints(e)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("server stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
	return e
}
