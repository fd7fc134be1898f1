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
	"net/http"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/eosc-perf/perfboard/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpError maps a domain error onto its status code. Internal failures keep
// the generic message, everything else explains itself.
func httpError(err error, msg string) *echo.HTTPError {
	code := shared.HTTPStatus(err)
	if code != http.StatusInternalServerError {
		msg = err.Error()
	}
	return echo.NewHTTPError(code, msg).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).WithInternal(err)
	}
	return nil
}

// caller returns the subject and issuer of the session, both empty for anonymous requests.
func caller(ctx shared.Context) (string, string) {
	session := shared.GetSession(ctx)
	return session.GetSubject(), session.GetIssuer()
}

func isVisible(ctx shared.Context, r statemachine.Moderated) bool {
	sub, iss := caller(ctx)
	return statemachine.VisibleTo(r, sub, iss, shared.IsAdmin(ctx))
}

func requireOwnerOrAdmin(ctx shared.Context, uploaded models.Uploaded) error {
	sub, iss := caller(ctx)
	return statemachine.RequireOwnerOrAdmin(uploaded, sub, iss, shared.IsAdmin(ctx))
}

func getTimeRange(ctx shared.Context, prefix string) (shared.TimeRange, error) {
	before, err := shared.GetTimeQueryParam(ctx, prefix+"_before")
	if err != nil {
		return shared.TimeRange{}, err
	}
	after, err := shared.GetTimeQueryParam(ctx, prefix+"_after")
	if err != nil {
		return shared.TimeRange{}, err
	}
	if before != nil && after != nil && !after.Before(*before) {
		return shared.TimeRange{}, errors.Wrapf(shared.ErrValidation, "%s_after has to lie before %s_before", prefix, prefix)
	}
	return shared.TimeRange{Before: before, After: after}, nil
}

func getTerms(ctx shared.Context) []string {
	return shared.SearchTerms(ctx.QueryParams()["terms"])
}

func approve[T any](ctx shared.Context, moderationService shared.ModerationService[T]) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if _, err := moderationService.Approve(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not approve")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func reject[T any](ctx shared.Context, moderationService shared.ModerationService[T]) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return httpError(err, "")
	}
	if _, err := moderationService.Reject(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not reject")
	}
	return ctx.NoContent(http.StatusNoContent)
}
