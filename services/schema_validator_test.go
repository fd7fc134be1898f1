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
	"testing"

	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const scoreSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"score": {"type": "number", "minimum": 0},
		"machine": {"type": "object", "properties": {"cpus": {"type": "integer"}}}
	},
	"required": ["score"]
}`

func TestSchemaValidator(t *testing.T) {
	validator := NewSchemaValidator()

	t.Run("should accept a valid schema", func(t *testing.T) {
		assert.NoError(t, validator.CheckSchema([]byte(scoreSchema)))
	})

	t.Run("should reject a schema which is not json", func(t *testing.T) {
		err := validator.CheckSchema([]byte(`{"type":`))
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject a schema which does not compile", func(t *testing.T) {
		err := validator.CheckSchema([]byte(`{"type": 12}`))
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	cases := []struct {
		name     string
		document string
		valid    bool
	}{
		{name: "matching document", document: `{"score": 42, "machine": {"cpus": 8}}`, valid: true},
		{name: "missing required property", document: `{"machine": {"cpus": 8}}`, valid: false},
		{name: "wrong nested type", document: `{"score": 1, "machine": {"cpus": "eight"}}`, valid: false},
		{name: "below minimum", document: `{"score": -1}`, valid: false},
		{name: "not json", document: `score=1`, valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate([]byte(scoreSchema), []byte(tc.document))
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, shared.ErrValidation))
		})
	}
}
