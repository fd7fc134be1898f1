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

package statemachine

import (
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaim(t *testing.T) {
	bob := models.User{Sub: "bob", Iss: "https://aai.example.org"}
	result := models.Result{ID: uuid.New(), Uploaded: models.NewUploaded(alice, time.Now())}

	t.Run("should open a claim on an active result", func(t *testing.T) {
		claim, err := Claim(result, bob, "  not my numbers ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, models.ResourceTypeResult, claim.ResourceType)
		assert.Equal(t, result.ID, claim.ResourceID())
		assert.Equal(t, "not my numbers", claim.Message)
		assert.True(t, claim.IsUploadedBy(bob.Sub, bob.Iss))
	})

	t.Run("should refuse a second claim", func(t *testing.T) {
		claimed := result
		claimed.Deleted = true
		claimed.Claim = &models.Claim{ID: uuid.New(), ResultID: result.ID}

		_, err := Claim(claimed, bob, "again", time.Now())
		assert.True(t, errors.Is(err, shared.ErrAlreadyClaimed))
	})

	t.Run("should not find a deleted result without claim", func(t *testing.T) {
		deleted := result
		deleted.Deleted = true

		_, err := Claim(deleted, bob, "gone", time.Now())
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should require a message", func(t *testing.T) {
		_, err := Claim(result, bob, " ", time.Now())
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestClaimResolution(t *testing.T) {
	result := models.Result{ID: uuid.New(), Deleted: true}
	claim := models.Claim{ID: uuid.New(), ResultID: result.ID}

	t.Run("should accept an open claim", func(t *testing.T) {
		assert.NoError(t, ApproveClaim(result, claim))
		assert.NoError(t, ResolveClaim(result, claim))
	})

	t.Run("should report an active result as already approved", func(t *testing.T) {
		active := result
		active.Deleted = false
		assert.True(t, errors.Is(ResolveClaim(active, claim), shared.ErrAlreadyApproved))
	})

	t.Run("should refuse a claim of another result", func(t *testing.T) {
		other := models.Claim{ID: uuid.New(), ResultID: uuid.New()}
		assert.Error(t, ApproveClaim(result, other))
	})

	t.Run("should only undelete once no claim is left", func(t *testing.T) {
		assert.True(t, ShouldUndelete(0))
		assert.False(t, ShouldUndelete(1))
	})
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	uploaded := models.NewUploaded(alice, time.Now())

	assert.NoError(t, RequireOwnerOrAdmin(uploaded, alice.Sub, alice.Iss, false))
	assert.NoError(t, RequireOwnerOrAdmin(uploaded, "bob", alice.Iss, true))
	assert.True(t, errors.Is(RequireOwnerOrAdmin(uploaded, "bob", alice.Iss, false), shared.ErrForbidden))
	// same subject of another provider is a different person
	assert.Error(t, RequireOwnerOrAdmin(uploaded, alice.Sub, "https://other.example.org", false))
}
