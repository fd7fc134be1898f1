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
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	userRepository   shared.UserRepository
	resultRepository shared.ResultRepository
	claimRepository  shared.ClaimRepository
	userService      shared.UserService
}

func NewUserController(
	userRepository shared.UserRepository,
	resultRepository shared.ResultRepository,
	claimRepository shared.ClaimRepository,
	userService shared.UserService,
) *UserController {
	return &UserController{
		userRepository:   userRepository,
		resultRepository: resultRepository,
		claimRepository:  claimRepository,
		userService:      userService,
	}
}

func userFilterFromQuery(ctx shared.Context) shared.UserFilter {
	return shared.UserFilter{
		Sub:   ctx.QueryParam("sub"),
		Iss:   ctx.QueryParam("iss"),
		Email: ctx.QueryParam("email"),
	}
}

func (c *UserController) list(ctx shared.Context, filter shared.UserFilter) error {
	paged, err := c.userRepository.ListPaged(filter, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list users")
	}
	return ctx.JSON(http.StatusOK, paged)
}

func (c *UserController) List(ctx shared.Context) error {
	return c.list(ctx, userFilterFromQuery(ctx))
}

func (c *UserController) Search(ctx shared.Context) error {
	return c.list(ctx, shared.UserFilter{Terms: getTerms(ctx)})
}

// Remove deletes every user matching the filter together with everything they uploaded.
func (c *UserController) Remove(ctx shared.Context) error {
	if _, err := c.userService.Remove(ctx.Request().Context(), userFilterFromQuery(ctx)); err != nil {
		return httpError(err, "could not remove users")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary Register the caller
// @Tags Users
// @Security BearerAuth
// @Success 201 {object} models.User
// @Router /users/register/ [post]
func (c *UserController) Register(ctx shared.Context) error {
	user, err := c.userService.Register(ctx.Request().Context(), shared.GetSession(ctx))
	if err != nil {
		return httpError(err, "could not register user")
	}
	return ctx.JSON(http.StatusCreated, user)
}

func (c *UserController) Self(ctx shared.Context) error {
	sub, iss := caller(ctx)
	user, err := c.userRepository.Read(sub, iss)
	if err != nil {
		return httpError(err, "could not read user")
	}
	return ctx.JSON(http.StatusOK, user)
}

// UpdateSelf refreshes the stored email from the identity provider.
func (c *UserController) UpdateSelf(ctx shared.Context) error {
	if _, err := c.userService.UpdateEmail(ctx.Request().Context(), shared.GetUser(ctx), shared.GetSession(ctx)); err != nil {
		return httpError(err, "could not update user")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *UserController) TryAdmin(ctx shared.Context) error {
	if !shared.IsAdmin(ctx) {
		return echo.NewHTTPError(http.StatusForbidden, "not an administrator")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SelfResults lists the uploads of the caller, claimed ones included.
func (c *UserController) SelfResults(ctx shared.Context) error {
	user := shared.GetUser(ctx)
	paged, err := c.resultRepository.ListPaged(shared.ResultFilter{
		UploaderSub:    user.Sub,
		UploaderIss:    user.Iss,
		IncludeDeleted: true,
	}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list results")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(r models.Result) any {
		return dtos.ResultToDTO(r)
	}))
}

func (c *UserController) SelfClaims(ctx shared.Context) error {
	user := shared.GetUser(ctx)
	paged, err := c.claimRepository.ListPaged(shared.ClaimFilter{
		UploaderSub: user.Sub,
		UploaderIss: user.Iss,
	}, shared.GetPageInfo(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return httpError(err, "could not list claims")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(claim models.Claim) any {
		return dtos.ClaimToDTO(claim)
	}))
}
