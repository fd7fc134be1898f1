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

package repositories

import (
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewBenchmarkRepository, fx.As(new(shared.BenchmarkRepository), new(shared.ModeratedRepository[models.Benchmark])))),
	fx.Provide(fx.Annotate(NewSiteRepository, fx.As(new(shared.SiteRepository), new(shared.ModeratedRepository[models.Site])))),
	fx.Provide(fx.Annotate(NewFlavorRepository, fx.As(new(shared.FlavorRepository), new(shared.ModeratedRepository[models.Flavor])))),
	fx.Provide(fx.Annotate(NewSubmitRepository, fx.As(new(shared.SubmitRepository)))),
	fx.Provide(fx.Annotate(NewClaimRepository, fx.As(new(shared.ClaimRepository)))),
	fx.Provide(fx.Annotate(NewResultRepository, fx.As(new(shared.ResultRepository)))),
	fx.Provide(fx.Annotate(NewTagRepository, fx.As(new(shared.TagRepository)))),
)
