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
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/integrationtestutil"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPage = shared.PageInfo{Page: 1, PageSize: 100}

func TestModeratedRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	benchmarkRepository := NewBenchmarkRepository(db)
	siteRepository := NewSiteRepository(db)
	alice := integrationtestutil.CreateUser(db, "alice")

	t.Run("should only list benchmarks without a submit", func(t *testing.T) {
		pending := integrationtestutil.CreateBenchmark(db, alice, true)
		approved := integrationtestutil.CreateBenchmark(db, alice, false)

		page, err := benchmarkRepository.ListApproved(shared.BenchmarkFilter{}, firstPage, nil)
		require.NoError(t, err)

		ids := []any{}
		for _, b := range page.Data {
			ids = append(ids, b.ID)
		}
		assert.Contains(t, ids, approved.ID)
		assert.NotContains(t, ids, pending.ID)
	})

	t.Run("should preload the submit on read", func(t *testing.T) {
		pending := integrationtestutil.CreateBenchmark(db, alice, true)

		benchmark, err := benchmarkRepository.Read(pending.ID)
		require.NoError(t, err)
		require.NotNil(t, benchmark.Submit)
		assert.Equal(t, models.ResourceTypeBenchmark, benchmark.Submit.ResourceType)
		assert.Equal(t, pending.ID, benchmark.Submit.ResourceID())
	})

	t.Run("should lock the resource and its submit inside a transaction", func(t *testing.T) {
		pending := integrationtestutil.CreateSite(db, alice, true)

		err := siteRepository.Transaction(func(tx shared.DB) error {
			site, err := siteRepository.ReadForUpdate(tx, pending.ID)
			if err != nil {
				return err
			}
			assert.NotNil(t, site.Submit)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("should remove the submit together with the resource", func(t *testing.T) {
		pending := integrationtestutil.CreateBenchmark(db, alice, true)

		require.NoError(t, benchmarkRepository.Delete(nil, pending.ID))

		var count int64
		db.Model(&models.Submit{}).Where("benchmark_id = ?", pending.ID).Count(&count)
		assert.Zero(t, count)

		_, err := benchmarkRepository.Read(pending.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should report a missing row as not found on delete", func(t *testing.T) {
		site := integrationtestutil.CreateSite(db, alice, false)
		require.NoError(t, siteRepository.Delete(nil, site.ID))

		err := siteRepository.Delete(nil, site.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should surface a duplicate image as conflict", func(t *testing.T) {
		existing := integrationtestutil.CreateBenchmark(db, alice, false)
		duplicate := models.Benchmark{
			DockerImage: existing.DockerImage,
			DockerTag:   existing.DockerTag,
			JSONSchema:  existing.JSONSchema,
			Uploaded:    models.NewUploaded(alice, time.Now()),
		}

		err := benchmarkRepository.Create(nil, &duplicate)
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("should reject unknown sort fields", func(t *testing.T) {
		_, err := benchmarkRepository.ListApproved(shared.BenchmarkFilter{}, firstPage, []shared.SortQuery{{Field: "uploader_sub", Operator: "asc"}})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestResultRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	resultRepository := NewResultRepository(db)
	claimRepository := NewClaimRepository(db)

	alice := integrationtestutil.CreateUser(db, "alice")
	bob := integrationtestutil.CreateUser(db, "bob")
	benchmark := integrationtestutil.CreateBenchmark(db, alice, false)
	site := integrationtestutil.CreateSite(db, alice, false)
	flavor := integrationtestutil.CreateFlavor(db, site, alice, false)
	t1 := integrationtestutil.CreateTag(db, "t1")
	t2 := integrationtestutil.CreateTag(db, "t2")

	t.Run("should hide soft deleted results unless asked for", func(t *testing.T) {
		result := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1)

		require.NoError(t, resultRepository.SoftDelete(nil, result.ID))

		_, err := resultRepository.Read(result.ID, false)
		assert.True(t, errors.Is(err, shared.ErrNotFound))

		deleted, err := resultRepository.Read(result.ID, true)
		require.NoError(t, err)
		assert.True(t, deleted.IsDeleted())

		require.NoError(t, resultRepository.Undelete(nil, result.ID))
		restored, err := resultRepository.Read(result.ID, false)
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted())
		assert.JSONEq(t, string(result.JSON), string(restored.JSON))
	})

	t.Run("should be gone for good after a hard delete", func(t *testing.T) {
		result := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1)

		require.NoError(t, resultRepository.HardDelete(nil, result.ID))

		_, err := resultRepository.Read(result.ID, true)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should not allow a second claim on the same result", func(t *testing.T) {
		result := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1)

		first := models.Claim{ResourceType: models.ResourceTypeResult, Message: "wrong", ResultID: result.ID, Uploaded: models.NewUploaded(bob, time.Now())}
		require.NoError(t, claimRepository.Create(nil, &first))

		second := models.Claim{ResourceType: models.ResourceTypeResult, Message: "again", ResultID: result.ID, Uploaded: models.NewUploaded(bob, time.Now())}
		err := claimRepository.Create(nil, &second)
		assert.True(t, errors.Is(err, shared.ErrConflict))

		count, err := claimRepository.CountByResult(nil, result.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should only match results carrying every requested tag", func(t *testing.T) {
		both := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1, t1, t2)
		onlyFirst := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1, t1)

		page, err := resultRepository.ListPaged(shared.ResultFilter{TagIDs: []uuid.UUID{t1.ID, t2.ID}}, firstPage, nil)
		require.NoError(t, err)

		ids := map[string]bool{}
		for _, r := range page.Data {
			ids[r.ID.String()] = true
		}
		assert.True(t, ids[both.ID.String()])
		assert.False(t, ids[onlyFirst.ID.String()])
	})

	t.Run("should filter on values inside the result json", func(t *testing.T) {
		otherFlavor := integrationtestutil.CreateFlavor(db, site, alice, false)
		low := integrationtestutil.CreateResult(db, alice, benchmark, otherFlavor, 2)
		high := integrationtestutil.CreateResult(db, alice, benchmark, otherFlavor, 20)

		filter, err := shared.ParseJSONFilter("score > 10")
		require.NoError(t, err)

		page, err := resultRepository.ListPaged(shared.ResultFilter{FlavorID: &otherFlavor.ID, JSONFilters: []shared.JSONFilter{filter}}, firstPage, nil)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, high.ID, page.Data[0].ID)
		assert.NotEqual(t, low.ID, page.Data[0].ID)
	})

	t.Run("should replace the tags of a result", func(t *testing.T) {
		result := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1, t1)

		require.NoError(t, resultRepository.ReplaceTags(nil, &result, []models.Tag{t2}))

		reloaded, err := resultRepository.Read(result.ID, false)
		require.NoError(t, err)
		require.Len(t, reloaded.Tags, 1)
		assert.Equal(t, t2.ID, reloaded.Tags[0].ID)
	})

	t.Run("should only detach a deleted tag", func(t *testing.T) {
		t3 := integrationtestutil.CreateTag(db, "t3")
		result := integrationtestutil.CreateResult(db, alice, benchmark, flavor, 1, t3)

		require.NoError(t, NewTagRepository(db).Delete(nil, t3.ID))

		reloaded, err := resultRepository.Read(result.ID, false)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Tags)
	})
}

func TestUserRepositoryCascade(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	userRepository := NewUserRepository(db)

	alice := integrationtestutil.CreateUser(db, "alice")
	bob := integrationtestutil.CreateUser(db, "bob")

	benchmark := integrationtestutil.CreateBenchmark(db, bob, false)
	aliceSite := integrationtestutil.CreateSite(db, alice, true)
	// bob adds a flavor to the site of alice
	bobFlavor := integrationtestutil.CreateFlavor(db, aliceSite, bob, false)
	bobSite := integrationtestutil.CreateSite(db, bob, false)
	bobOwnFlavor := integrationtestutil.CreateFlavor(db, bobSite, bob, false)
	bobResult := integrationtestutil.CreateResult(db, bob, benchmark, bobOwnFlavor, 1)
	claim := models.Claim{ResourceType: models.ResourceTypeResult, Message: "mine", ResultID: bobResult.ID, Uploaded: models.NewUploaded(alice, time.Now())}
	require.NoError(t, db.Create(&claim).Error)

	t.Run("should refuse to delete without a filter", func(t *testing.T) {
		_, err := userRepository.DeleteWhere(nil, shared.UserFilter{})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should remove everything alice uploaded including flavors of her sites", func(t *testing.T) {
		n, err := userRepository.DeleteWhere(nil, shared.UserFilter{Sub: alice.Sub, Iss: alice.Iss})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		var count int64
		db.Model(&models.Site{}).Where("id = ?", aliceSite.ID).Count(&count)
		assert.Zero(t, count)
		db.Model(&models.Flavor{}).Where("id = ?", bobFlavor.ID).Count(&count)
		assert.Zero(t, count)
		db.Model(&models.Submit{}).Where("uploader_sub = ?", alice.Sub).Count(&count)
		assert.Zero(t, count)
		db.Model(&models.Claim{}).Where("id = ?", claim.ID).Count(&count)
		assert.Zero(t, count)

		// untouched
		db.Model(&models.Result{}).Where("id = ?", bobResult.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should remove results of a deleted uploader", func(t *testing.T) {
		_, err := userRepository.DeleteWhere(nil, shared.UserFilter{Email: bob.Email})
		require.NoError(t, err)

		var count int64
		db.Model(&models.Result{}).Where("id = ?", bobResult.ID).Count(&count)
		assert.Zero(t, count)
		db.Model(&models.Benchmark{}).Where("id = ?", benchmark.ID).Count(&count)
		assert.Zero(t, count)
	})
}
