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
	"net/http"

	"github.com/pkg/errors"
)

// Error kinds returned by repositories and services.
// Callers wrap them with errors.Wrap and match them with errors.Is.
var (
	// the key does not resolve to a visible row
	ErrNotFound = errors.New("not found")
	// approve or reject without an open submit, or claim resolution without an open claim
	ErrAlreadyApproved = errors.New("already approved")
	// the result carries an open claim already
	ErrAlreadyClaimed = errors.New("already claimed")
	// unique or foreign key violation
	ErrConflict = errors.New("conflict")
	// caller is neither the owner nor an administrator
	ErrForbidden = errors.New("forbidden")
	// input was malformed or referenced something not usable
	ErrValidation = errors.New("validation failed")
)

// HTTPStatus maps an error kind onto its response code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrAlreadyApproved), errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
