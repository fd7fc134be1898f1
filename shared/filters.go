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

package shared

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type TimeRange struct {
	Before *time.Time
	After  *time.Time
}

func (r TimeRange) ApplyOnDB(db DB, column string) DB {
	if r.Before != nil {
		db = db.Where(column+" < ?", *r.Before)
	}
	if r.After != nil {
		db = db.Where(column+" > ?", *r.After)
	}
	return db
}

type BenchmarkFilter struct {
	DockerImage string
	DockerTag   string
	Upload      TimeRange
	Terms       []string
}

type SiteFilter struct {
	Name    string
	Address string
	Upload  TimeRange
}

type FlavorFilter struct {
	SiteID *uuid.UUID
	Name   string
	Upload TimeRange
}

type TagFilter struct {
	Name  string
	Terms []string
}

type UserFilter struct {
	Sub   string
	Iss   string
	Email string
	// search only, never used to select users for deletion
	Terms []string
}

func (f UserFilter) IsEmpty() bool {
	return f.Sub == "" && f.Iss == "" && f.Email == ""
}

type SubmitFilter struct {
	ResourceType *models.ResourceType
	Upload       TimeRange
}

type ClaimFilter struct {
	UploaderSub string
	UploaderIss string
	ResultID    *uuid.UUID
	Upload      TimeRange
}

type ResultFilter struct {
	BenchmarkID *uuid.UUID
	SiteID      *uuid.UUID
	FlavorID    *uuid.UUID
	// every tag has to be attached to the result
	TagIDs      []uuid.UUID
	Execution   TimeRange
	Upload      TimeRange
	JSONFilters []JSONFilter
	Terms       []string

	UploaderSub string
	UploaderIss string

	IncludeDeleted bool
}

// SearchTerms splits the repeated terms query parameter. Every term has to match.
func SearchTerms(values []string) []string {
	terms := []string{}
	for _, v := range values {
		terms = append(terms, strings.Fields(v)...)
	}
	return terms
}

// JSONFilter matches a value inside the result json: "<path.separated.by.dots> <operator> <value>"
type JSONFilter struct {
	Path     []string
	Operator string
	Value    string
}

var jsonFilterOperators = map[string]struct{}{
	"==": {},
	">":  {},
	"<":  {},
	">=": {},
	"<=": {},
}

var jsonPathSegmentRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

func ParseJSONFilter(s string) (JSONFilter, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return JSONFilter{}, errors.Wrapf(ErrValidation, "filter %q must look like '<path> <operator> <value>'", s)
	}

	path := strings.Split(parts[0], ".")
	for _, segment := range path {
		if !jsonPathSegmentRegex.MatchString(segment) {
			return JSONFilter{}, errors.Wrapf(ErrValidation, "filter %q contains an invalid path", s)
		}
	}

	if _, ok := jsonFilterOperators[parts[1]]; !ok {
		return JSONFilter{}, errors.Wrapf(ErrValidation, "filter %q uses an unknown operator, use one of ==, >, <, >=, <=", s)
	}

	return JSONFilter{
		Path:     path,
		Operator: parts[1],
		Value:    parts[2],
	}, nil
}

// JSONPath builds a postgres jsonpath predicate comparing the path against $v.
func (f JSONFilter) JSONPath() string {
	quoted := make([]string, len(f.Path))
	for i, segment := range f.Path {
		quoted[i] = `"` + segment + `"`
	}
	return "$." + strings.Join(quoted, ".") + " ? (@ " + f.Operator + " $v)"
}

// JSONValue returns the filter value as a json literal.
// Numbers, booleans and null are passed through, everything else becomes a string.
func (f JSONFilter) JSONValue() string {
	var v any
	if err := json.Unmarshal([]byte(f.Value), &v); err == nil {
		switch v.(type) {
		case float64, bool, nil:
			return f.Value
		}
	}
	b, _ := json.Marshal(f.Value)
	return string(b)
}
