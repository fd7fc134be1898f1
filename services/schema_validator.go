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
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/eosc-perf/perfboard/shared"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaResourceURL = "https://perfboard.local/benchmark.schema.json"

// SchemaValidator compiles benchmark json schemas and checks results against them.
// Compiled schemas are kept in a bounded cache keyed by their content.
type SchemaValidator struct {
	compiled *lru.Cache[string, *jsonschema.Schema]
}

var _ shared.SchemaValidator = &SchemaValidator{}

func NewSchemaValidator() *SchemaValidator {
	cache, err := lru.New[string, *jsonschema.Schema](256)
	if err != nil {
		// only fails for a non positive size
		panic(err)
	}
	return &SchemaValidator{compiled: cache}
}

func (v *SchemaValidator) compile(schema []byte) (*jsonschema.Schema, error) {
	sum := sha256.Sum256(schema)
	key := hex.EncodeToString(sum[:])
	if sch, ok := v.compiled.Get(key); ok {
		return sch, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, errors.Wrapf(shared.ErrValidation, "json schema is not valid json: %s", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceURL, doc); err != nil {
		return nil, errors.Wrapf(shared.ErrValidation, "invalid json schema: %s", err)
	}
	sch, err := compiler.Compile(schemaResourceURL)
	if err != nil {
		return nil, errors.Wrapf(shared.ErrValidation, "invalid json schema: %s", err)
	}

	v.compiled.Add(key, sch)
	return sch, nil
}

func (v *SchemaValidator) CheckSchema(schema []byte) error {
	_, err := v.compile(schema)
	return err
}

func (v *SchemaValidator) Validate(schema []byte, document []byte) error {
	sch, err := v.compile(schema)
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(document))
	if err != nil {
		return errors.Wrapf(shared.ErrValidation, "result is not valid json: %s", err)
	}
	if err := sch.Validate(inst); err != nil {
		return errors.Wrapf(shared.ErrValidation, "result does not match the benchmark schema: %s", err)
	}
	return nil
}
