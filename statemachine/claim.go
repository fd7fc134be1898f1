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
	"strings"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

// Claim opens a claim against an active result. The caller soft deletes the
// result and stores the claim in the same transaction.
func Claim(result models.Result, claimer models.User, message string, now time.Time) (models.Claim, error) {
	if result.IsClaimed() {
		return models.Claim{}, errors.Wrapf(shared.ErrAlreadyClaimed, "result %s", result.ID)
	}
	if result.IsDeleted() {
		return models.Claim{}, errors.Wrapf(shared.ErrNotFound, "result %s", result.ID)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Claim{}, errors.Wrap(shared.ErrValidation, "a claim needs a message")
	}

	return models.Claim{
		ResourceType: models.ResourceTypeResult,
		Message:      message,
		ResultID:     result.ID,
		Uploaded:     models.NewUploaded(claimer, now),
	}, nil
}

func checkOpen(result models.Result, claim models.Claim) error {
	if claim.ResultID != result.ID {
		return errors.Errorf("claim %s does not target result %s", claim.ID, result.ID)
	}
	if !result.IsDeleted() {
		return errors.Wrapf(shared.ErrAlreadyApproved, "result %s is not under claim", result.ID)
	}
	return nil
}

// ApproveClaim validates that approving the claim may purge the result.
func ApproveClaim(result models.Result, claim models.Claim) error {
	return checkOpen(result, claim)
}

// ResolveClaim validates the claim can be dropped. The result is undeleted once
// no claim targets it anymore.
func ResolveClaim(result models.Result, claim models.Claim) error {
	return checkOpen(result, claim)
}

// ShouldUndelete reports whether a resolved result returns to the listings.
// It stays hidden while another claim still targets it.
func ShouldUndelete(remainingClaims int64) bool {
	return remainingClaims == 0
}

// RequireOwnerOrAdmin guards operations restricted to the uploader of a row.
func RequireOwnerOrAdmin(uploaded models.Uploaded, sub, iss string, admin bool) error {
	if admin || uploaded.IsUploadedBy(sub, iss) {
		return nil
	}
	return errors.Wrap(shared.ErrForbidden, "only the uploader or an administrator may do this")
}
