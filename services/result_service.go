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

package services

import (
	"context"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/dtos"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/eosc-perf/perfboard/statemachine"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type resultService struct {
	resultRepository    shared.ResultRepository
	claimRepository     shared.ClaimRepository
	benchmarkRepository shared.BenchmarkRepository
	siteRepository      shared.SiteRepository
	flavorRepository    shared.FlavorRepository
	tagRepository       shared.TagRepository
	schemaValidator     shared.SchemaValidator
	notificationService shared.NotificationService
	now                 func() time.Time
}

var _ shared.ResultService = &resultService{}

func NewResultService(
	resultRepository shared.ResultRepository,
	claimRepository shared.ClaimRepository,
	benchmarkRepository shared.BenchmarkRepository,
	siteRepository shared.SiteRepository,
	flavorRepository shared.FlavorRepository,
	tagRepository shared.TagRepository,
	schemaValidator shared.SchemaValidator,
	notificationService shared.NotificationService,
) *resultService {
	return &resultService{
		resultRepository:    resultRepository,
		claimRepository:     claimRepository,
		benchmarkRepository: benchmarkRepository,
		siteRepository:      siteRepository,
		flavorRepository:    flavorRepository,
		tagRepository:       tagRepository,
		schemaValidator:     schemaValidator,
		notificationService: notificationService,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func requireApproved(r statemachine.Moderated) error {
	if statemachine.Status(r) != models.StatusApproved {
		return errors.Wrapf(shared.ErrValidation, "%s %s is still on review", r.GetResourceType(), r.GetID())
	}
	return nil
}

// resolveTags loads every tag. A single unknown id fails the lookup.
func (s *resultService) resolveTags(ids []uuid.UUID) ([]models.Tag, error) {
	ids = uniqueIDs(ids)
	tags, err := s.tagRepository.List(ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, errors.Wrap(shared.ErrNotFound, "unknown tag")
	}
	return tags, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Create validates every reference and the payload before anything is written.
// The site is taken from the flavor.
func (s *resultService) Create(ctx context.Context, uploader models.User, req dtos.ResultCreateRequest) (models.Result, error) {
	if req.ExecutionDatetime.After(s.now()) {
		return models.Result{}, errors.Wrap(shared.ErrValidation, "execution datetime lies in the future")
	}

	benchmark, err := s.benchmarkRepository.Read(req.BenchmarkID)
	if err != nil {
		return models.Result{}, err
	}
	if err := requireApproved(benchmark); err != nil {
		return models.Result{}, err
	}

	flavor, err := s.flavorRepository.Read(req.FlavorID)
	if err != nil {
		return models.Result{}, err
	}
	if err := requireApproved(flavor); err != nil {
		return models.Result{}, err
	}

	site, err := s.siteRepository.Read(flavor.SiteID)
	if err != nil {
		return models.Result{}, err
	}
	if err := requireApproved(site); err != nil {
		return models.Result{}, err
	}

	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return models.Result{}, err
	}

	if err := s.schemaValidator.Validate(benchmark.JSONSchema, req.JSON); err != nil {
		return models.Result{}, err
	}

	result := models.Result{
		JSON:              datatypes.JSON(req.JSON),
		ExecutionDatetime: req.ExecutionDatetime.UTC(),
		BenchmarkID:       benchmark.ID,
		SiteID:            site.ID,
		FlavorID:          flavor.ID,
		Tags:              tags,
		Uploaded:          models.NewUploaded(uploader, s.now()),
	}
	if err := s.resultRepository.Create(nil, &result); err != nil {
		return models.Result{}, err
	}
	return s.resultRepository.Read(result.ID, false)
}

// Claim soft deletes the result and opens a claim against it.
func (s *resultService) Claim(ctx context.Context, resultID uuid.UUID, claimer models.User, message string) (models.Claim, error) {
	var claim models.Claim
	err := s.resultRepository.Transaction(func(tx shared.DB) error {
		// deleted rows are read to tell an existing claim apart from a missing result
		result, err := s.resultRepository.ReadForUpdate(tx, resultID, true)
		if err != nil {
			return err
		}
		claim, err = statemachine.Claim(result, claimer, message, s.now())
		if err != nil {
			return err
		}
		if err := s.resultRepository.SoftDelete(tx, result.ID); err != nil {
			return err
		}
		if err := s.claimRepository.Create(tx, &claim); err != nil {
			if errors.Is(err, shared.ErrConflict) {
				return errors.Wrapf(shared.ErrAlreadyClaimed, "result %s", result.ID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Claim{}, err
	}

	monitoring.ClaimTransitions.WithLabelValues("claimed").Inc()
	s.notificationService.Notify(ctx, shared.Notification{
		Event:        shared.EventResultClaimed,
		ResourceType: models.ResourceTypeResult,
		ResourceID:   resultID,
	})
	return claim, nil
}

func (s *resultService) UpdateTags(ctx context.Context, resultID uuid.UUID, tagIDs []uuid.UUID) (models.Result, error) {
	result, err := s.resultRepository.Read(resultID, true)
	if err != nil {
		return models.Result{}, err
	}
	tags, err := s.resolveTags(tagIDs)
	if err != nil {
		return models.Result{}, err
	}
	if err := s.resultRepository.ReplaceTags(nil, &result, tags); err != nil {
		return models.Result{}, err
	}
	return s.resultRepository.Read(resultID, true)
}

// Delete hides the result without a claim.
func (s *resultService) Delete(ctx context.Context, resultID uuid.UUID) error {
	return s.resultRepository.Transaction(func(tx shared.DB) error {
		if _, err := s.resultRepository.ReadForUpdate(tx, resultID, false); err != nil {
			return err
		}
		return s.resultRepository.SoftDelete(tx, resultID)
	})
}
