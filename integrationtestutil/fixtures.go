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
	"fmt"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const issuer = "https://aai.example.org/oidc/"

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func CreateUser(db shared.DB, sub string) models.User {
	user := models.User{
		Sub:                  sub,
		Iss:                  issuer,
		Email:                sub + "@example.org",
		RegistrationDatetime: time.Now().UTC(),
	}
	must(db.Create(&user).Error)
	return user
}

// submitFor leaves the resource on review when pending is set.
func submitFor(db shared.DB, pending bool, rt models.ResourceType, id uuid.UUID, uploaded models.Uploaded) {
	if !pending {
		return
	}
	submit := models.NewSubmit(rt, id, uploaded, time.Now().UTC())
	must(db.Create(&submit).Error)
}

func CreateBenchmark(db shared.DB, uploader models.User, pending bool) models.Benchmark {
	benchmark := models.Benchmark{
		DockerImage: "perfboard/bench-" + uuid.NewString()[:8],
		DockerTag:   "1.0",
		JSONSchema:  datatypes.JSON(`{"type":"object","properties":{"score":{"type":"number"}}}`),
		Description: "fixture benchmark",
		Uploaded:    models.NewUploaded(uploader, time.Now().UTC()),
	}
	must(db.Create(&benchmark).Error)
	submitFor(db, pending, models.ResourceTypeBenchmark, benchmark.ID, benchmark.Uploaded)
	return benchmark
}

func CreateSite(db shared.DB, uploader models.User, pending bool) models.Site {
	site := models.Site{
		Name:     "site-" + uuid.NewString()[:8],
		Address:  "somewhere",
		Uploaded: models.NewUploaded(uploader, time.Now().UTC()),
	}
	must(db.Create(&site).Error)
	submitFor(db, pending, models.ResourceTypeSite, site.ID, site.Uploaded)
	return site
}

func CreateFlavor(db shared.DB, site models.Site, uploader models.User, pending bool) models.Flavor {
	flavor := models.Flavor{
		Name:     "flavor-" + uuid.NewString()[:8],
		SiteID:   site.ID,
		Uploaded: models.NewUploaded(uploader, time.Now().UTC()),
	}
	must(db.Create(&flavor).Error)
	submitFor(db, pending, models.ResourceTypeFlavor, flavor.ID, flavor.Uploaded)
	return flavor
}

func CreateTag(db shared.DB, name string) models.Tag {
	tag := models.Tag{Name: name}
	must(db.Create(&tag).Error)
	return tag
}

func CreateResult(db shared.DB, uploader models.User, benchmark models.Benchmark, flavor models.Flavor, score float64, tags ...models.Tag) models.Result {
	result := models.Result{
		JSON:              datatypes.JSON(fmt.Sprintf(`{"score":%v,"machine":{"cpus":8}}`, score)),
		ExecutionDatetime: time.Now().UTC().Add(-time.Hour),
		BenchmarkID:       benchmark.ID,
		SiteID:            flavor.SiteID,
		FlavorID:          flavor.ID,
		Tags:              tags,
		Uploaded:          models.NewUploaded(uploader, time.Now().UTC()),
	}
	must(db.Omit("Benchmark", "Site", "Flavor", "Claim", "Tags.*").Create(&result).Error)
	return result
}
