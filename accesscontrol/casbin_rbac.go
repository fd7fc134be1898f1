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

import (
	"log/slog"
	"slices"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var _ shared.AccessControl = &casbinRBAC{}

type casbinRBAC struct {
	enforcer          *casbin.SyncedEnforcer
	adminEntitlements []string
}

func NewCasbinRBAC(db shared.DB, broker shared.PubSubBroker, cfg config.OIDC) (*casbinRBAC, error) {
	enforcer, err := buildEnforcer(db, broker)
	if err != nil {
		return nil, err
	}
	rbac := &casbinRBAC{
		enforcer:          enforcer,
		adminEntitlements: cfg.AdminEntitlements,
	}
	if err := BootstrapPolicy(rbac); err != nil {
		return nil, errors.Wrap(err, "could not bootstrap the access control policy")
	}
	return rbac, nil
}

func roleName(role shared.Role) string {
	return "role::" + string(role)
}

// RoleOf maps a session onto its role. Without configured admin entitlements every
// authenticated caller is an administrator.
func (c *casbinRBAC) RoleOf(session shared.AuthSession) shared.Role {
	if session == nil || !session.IsAuthenticated() {
		return shared.RoleAnonymous
	}
	if len(c.adminEntitlements) == 0 {
		return shared.RoleAdmin
	}
	for _, e := range session.GetEntitlements() {
		if slices.Contains(c.adminEntitlements, e) {
			return shared.RoleAdmin
		}
	}
	return shared.RoleUser
}

func (c *casbinRBAC) IsAllowed(role shared.Role, object shared.Object, action shared.Action) (bool, error) {
	return c.enforcer.Enforce(roleName(role), "obj::"+string(object), "act::"+string(action))
}

func (c *casbinRBAC) AllowRole(role shared.Role, object shared.Object, actions []shared.Action) error {
	policies := make([][]string, len(actions))
	for i, ac := range actions {
		policies[i] = []string{roleName(role), "obj::" + string(object), "act::" + string(ac)}
	}

	// existing rules are skipped
	_, err := c.enforcer.AddPoliciesEx(policies)
	return err
}

func (c *casbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := c.enforcer.AddRoleForUser(roleName(roleWhichGetsPermissions), roleName(roleWhichProvidesPermissions))
	return err
}

func buildEnforcer(db shared.DB, broker shared.PubSubBroker) (*casbin.SyncedEnforcer, error) {
	// the adapter creates the casbin_rule table if it does not exist
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, errors.Wrap(err, "could not create casbin adapter")
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse rbac model")
	}

	e, err := casbin.NewSyncedEnforcer(m, a)
	if err != nil {
		return nil, errors.Wrap(err, "could not create enforcer")
	}
	e.EnableLog(false)

	// every instance reloads the policy when another one changes it
	watcher, err := newCasbinPubSubWatcher(broker)
	if err != nil {
		return nil, err
	}
	if err := e.SetWatcher(watcher); err != nil {
		return nil, errors.Wrap(err, "could not set watcher")
	}
	err = watcher.SetUpdateCallback(func(string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("error while loading policy after update", "err", err)
		} else {
			slog.Debug("policy successfully reloaded after update")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not set update callback")
	}

	if err = e.LoadPolicy(); err != nil {
		return nil, errors.Wrap(err, "could not load policy")
	}
	return e, nil
}
