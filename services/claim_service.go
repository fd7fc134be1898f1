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

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/eosc-perf/perfboard/statemachine"
	"github.com/google/uuid"
)

type claimService struct {
	claimRepository  shared.ClaimRepository
	resultRepository shared.ResultRepository
}

var _ shared.ClaimService = &claimService{}

func NewClaimService(claimRepository shared.ClaimRepository, resultRepository shared.ResultRepository) *claimService {
	return &claimService{
		claimRepository:  claimRepository,
		resultRepository: resultRepository,
	}
}

// lockOpenClaim locks the claim and its result.
func (s *claimService) lockOpenClaim(tx shared.DB, claimID uuid.UUID) (models.Claim, models.Result, error) {
	claim, err := s.claimRepository.ReadForUpdate(tx, claimID)
	if err != nil {
		return claim, models.Result{}, err
	}
	result, err := s.resultRepository.ReadForUpdate(tx, claim.ResultID, true)
	return claim, result, err
}

// Approve accepts the claim and purges the result. The claim goes with it.
func (s *claimService) Approve(ctx context.Context, claimID uuid.UUID) error {
	err := s.claimRepository.Transaction(func(tx shared.DB) error {
		claim, result, err := s.lockOpenClaim(tx, claimID)
		if err != nil {
			return err
		}
		if err := statemachine.ApproveClaim(result, claim); err != nil {
			return err
		}
		return s.resultRepository.HardDelete(tx, result.ID)
	})
	if err != nil {
		return err
	}
	monitoring.ClaimTransitions.WithLabelValues("approved").Inc()
	return nil
}

// Resolve drops the claim and restores the result once it is unclaimed.
func (s *claimService) Resolve(ctx context.Context, claimID uuid.UUID) (models.Result, error) {
	var resultID uuid.UUID
	err := s.claimRepository.Transaction(func(tx shared.DB) error {
		claim, result, err := s.lockOpenClaim(tx, claimID)
		if err != nil {
			return err
		}
		if err := statemachine.ResolveClaim(result, claim); err != nil {
			return err
		}
		if err := s.claimRepository.Delete(tx, claim.ID); err != nil {
			return err
		}
		remaining, err := s.claimRepository.CountByResult(tx, result.ID)
		if err != nil {
			return err
		}
		if statemachine.ShouldUndelete(remaining) {
			if err := s.resultRepository.Undelete(tx, result.ID); err != nil {
				return err
			}
		}
		resultID = result.ID
		return nil
	})
	if err != nil {
		return models.Result{}, err
	}

	monitoring.ClaimTransitions.WithLabelValues("resolved").Inc()
	return s.resultRepository.Read(resultID, true)
}
