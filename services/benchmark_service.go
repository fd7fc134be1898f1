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
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

type benchmarkService struct {
	moderationService shared.ModerationService[models.Benchmark]
	imageChecker      shared.ImageChecker
	schemaValidator   shared.SchemaValidator
}

func NewBenchmarkService(moderationService shared.ModerationService[models.Benchmark], imageChecker shared.ImageChecker, schemaValidator shared.SchemaValidator) *benchmarkService {
	return &benchmarkService{
		moderationService: moderationService,
		imageChecker:      imageChecker,
		schemaValidator:   schemaValidator,
	}
}

// Create checks the schema and the container image before submitting the benchmark.
func (s *benchmarkService) Create(ctx context.Context, benchmark *models.Benchmark) error {
	if err := s.schemaValidator.CheckSchema(benchmark.JSONSchema); err != nil {
		return err
	}

	exists, err := s.imageChecker.Exists(ctx, benchmark.DockerImage, benchmark.DockerTag)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(shared.ErrValidation, "image %s not found in the registry", benchmark.Image())
	}

	return s.moderationService.Submit(ctx, benchmark)
}
