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

package accesscontrol

import "github.com/eosc-perf/perfboard/shared"

var allActions = []shared.Action{
	shared.ActionRead,
	shared.ActionCreate,
	shared.ActionUpdate,
	shared.ActionDelete,
	shared.ActionModerate,
	shared.ActionClaim,
}

// BootstrapPolicy writes the default policy. Running it again is a no-op.
//
// anonymous callers read the public catalogue, users inherit that and may submit
// and claim, administrators may do everything.
func BootstrapPolicy(ac shared.AccessControl) error {
	for _, obj := range []shared.Object{shared.ObjectBenchmark, shared.ObjectSite, shared.ObjectFlavor, shared.ObjectResult, shared.ObjectTag} {
		if err := ac.AllowRole(shared.RoleAnonymous, obj, []shared.Action{shared.ActionRead}); err != nil {
			return err
		}
		if err := ac.AllowRole(shared.RoleUser, obj, []shared.Action{shared.ActionCreate}); err != nil {
			return err
		}
	}
	if err := ac.AllowRole(shared.RoleUser, shared.ObjectResult, []shared.Action{shared.ActionClaim}); err != nil {
		return err
	}
	if err := ac.AllowRole(shared.RoleUser, shared.ObjectUser, []shared.Action{shared.ActionRead, shared.ActionCreate, shared.ActionUpdate}); err != nil {
		return err
	}

	for _, obj := range []shared.Object{shared.ObjectBenchmark, shared.ObjectSite, shared.ObjectFlavor, shared.ObjectResult, shared.ObjectClaim, shared.ObjectTag, shared.ObjectUser, shared.ObjectReport} {
		if err := ac.AllowRole(shared.RoleAdmin, obj, allActions); err != nil {
			return err
		}
	}

	if err := ac.InheritRole(shared.RoleUser, shared.RoleAnonymous); err != nil {
		return err
	}
	return ac.InheritRole(shared.RoleAdmin, shared.RoleUser)
}
