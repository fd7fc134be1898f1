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
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Moderated is implemented by benchmarks, sites and flavors.
type Moderated interface {
	GetID() uuid.UUID
	GetResourceType() models.ResourceType
	GetSubmit() *models.Submit
	GetUploaded() models.Uploaded
}

// Status derives the moderation status. The submit row is the only source of truth.
func Status(r Moderated) models.ResourceStatus {
	if r.GetSubmit() != nil {
		return models.StatusOnReview
	}
	return models.StatusApproved
}

// Submit builds the pending submit of a freshly inserted resource.
func Submit(r Moderated, now time.Time) (models.Submit, error) {
	if !r.GetResourceType().IsModerated() {
		return models.Submit{}, errors.Errorf("%s does not go through moderation", r.GetResourceType())
	}
	if r.GetID() == uuid.Nil {
		return models.Submit{}, errors.New("resource has to be stored before it can be submitted")
	}
	if r.GetSubmit() != nil {
		return models.Submit{}, errors.Wrapf(shared.ErrConflict, "%s %s is already on review", r.GetResourceType(), r.GetID())
	}
	return models.NewSubmit(r.GetResourceType(), r.GetID(), r.GetUploaded(), now), nil
}

// pending returns the submit that approve and reject consume.
func pending(r Moderated) (models.Submit, error) {
	submit := r.GetSubmit()
	if submit == nil {
		return models.Submit{}, errors.Wrapf(shared.ErrAlreadyApproved, "%s %s", r.GetResourceType(), r.GetID())
	}
	if submit.ResourceType != r.GetResourceType() || submit.ResourceID() != r.GetID() {
		return models.Submit{}, errors.Errorf("submit %s does not belong to %s %s", submit.ID, r.GetResourceType(), r.GetID())
	}
	return *submit, nil
}

// Approve returns the submit which has to be deleted to approve the resource.
func Approve(r Moderated) (models.Submit, error) {
	return pending(r)
}

// Reject returns the submit of the resource. The caller hard deletes the resource,
// the submit goes with it.
func Reject(r Moderated) (models.Submit, error) {
	return pending(r)
}

// VisibleTo reports whether a caller may see the resource.
// Resources on review are only shown to their uploader and administrators.
func VisibleTo(r Moderated, sub, iss string, admin bool) bool {
	if Status(r) == models.StatusApproved || admin {
		return true
	}
	return r.GetUploaded().IsUploadedBy(sub, iss)
}
