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
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/mocks"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func newBenchmark() models.Benchmark {
	return models.Benchmark{
		DockerImage: "deephdc/deep-oc-benchmarks_cnn",
		DockerTag:   "benchmark",
		URL:         "https://github.com/deephdc/DEEP-OC-benchmarks_cnn",
		JSONSchema:  datatypes.JSON(`{"type":"object"}`),
		Uploaded:    models.NewUploaded(uploader, time.Now()),
	}
}

func TestBenchmarkServiceCreate(t *testing.T) {
	t.Run("should submit the benchmark if the schema and the image are fine", func(t *testing.T) {
		moderation := mocks.NewModerationService[models.Benchmark](t)
		imageChecker := mocks.NewImageChecker(t)
		schemaValidator := mocks.NewSchemaValidator(t)
		benchmark := newBenchmark()

		schemaValidator.On("CheckSchema", []byte(benchmark.JSONSchema)).Return(nil)
		imageChecker.On("Exists", mock.Anything, benchmark.DockerImage, benchmark.DockerTag).Return(true, nil)
		moderation.On("Submit", mock.Anything, &benchmark).Return(nil)

		err := NewBenchmarkService(moderation, imageChecker, schemaValidator).Create(context.Background(), &benchmark)
		assert.NoError(t, err)
	})

	t.Run("should not ask the registry if the schema is invalid", func(t *testing.T) {
		moderation := mocks.NewModerationService[models.Benchmark](t)
		imageChecker := mocks.NewImageChecker(t)
		schemaValidator := mocks.NewSchemaValidator(t)
		benchmark := newBenchmark()

		schemaValidator.On("CheckSchema", mock.Anything).Return(errors.Wrap(shared.ErrValidation, "invalid json schema"))

		err := NewBenchmarkService(moderation, imageChecker, schemaValidator).Create(context.Background(), &benchmark)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		imageChecker.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail with a validation error if the image does not exist", func(t *testing.T) {
		moderation := mocks.NewModerationService[models.Benchmark](t)
		imageChecker := mocks.NewImageChecker(t)
		schemaValidator := mocks.NewSchemaValidator(t)
		benchmark := newBenchmark()

		schemaValidator.On("CheckSchema", mock.Anything).Return(nil)
		imageChecker.On("Exists", mock.Anything, benchmark.DockerImage, benchmark.DockerTag).Return(false, nil)

		err := NewBenchmarkService(moderation, imageChecker, schemaValidator).Create(context.Background(), &benchmark)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		moderation.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("should pass registry errors through", func(t *testing.T) {
		moderation := mocks.NewModerationService[models.Benchmark](t)
		imageChecker := mocks.NewImageChecker(t)
		schemaValidator := mocks.NewSchemaValidator(t)
		benchmark := newBenchmark()

		schemaValidator.On("CheckSchema", mock.Anything).Return(nil)
		imageChecker.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

		err := NewBenchmarkService(moderation, imageChecker, schemaValidator).Create(context.Background(), &benchmark)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, shared.ErrValidation))
	})
}
