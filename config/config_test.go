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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply the defaults if nothing is set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, int32(25), cfg.Database.MaxOpenConns)
		assert.Equal(t, 4*time.Hour, cfg.Database.ConnMaxLifetime)
		assert.Empty(t, cfg.OIDC.AdminEntitlements)
		assert.True(t, cfg.IsDev())
	})

	t.Run("should split comma separated lists", func(t *testing.T) {
		t.Setenv("ADMIN_ENTITLEMENTS", "urn:admin,urn:superuser")
		t.Setenv("TRUSTED_OP_LIST", "https://aai.egi.eu/oidc/")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "30s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"urn:admin", "urn:superuser"}, cfg.OIDC.AdminEntitlements)
		assert.Equal(t, []string{"https://aai.egi.eu/oidc/"}, cfg.OIDC.TrustedIssuers)
		assert.Equal(t, 30*time.Second, cfg.Database.ConnMaxIdleTime)
	})

	t.Run("should fail on malformed durations", func(t *testing.T) {
		t.Setenv("TOKEN_CACHE_TTL", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}
