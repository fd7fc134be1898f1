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

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/hashicorp/golang-lru/v2/expirable"
	client "github.com/ory/client-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidToken marks tokens which are inactive, expired or issued by an untrusted provider.
var ErrInvalidToken = errors.New("invalid token")

const (
	claimEmail        = "email"
	claimEntitlements = "eduperson_entitlement"
)

type oryIntrospector struct {
	api            *client.APIClient
	clientID       string
	clientSecret   string
	trustedIssuers []string
	cache          *expirable.LRU[string, cachedSession]
	// a page load fires several requests carrying the same token
	group *singleflight.Group
	now   func() time.Time
}

// cachedSession remembers when the token itself expires. The cache ttl never outlives it.
type cachedSession struct {
	session   shared.AuthSession
	expiresAt time.Time
}

var _ shared.Introspector = &oryIntrospector{}

func NewOryIntrospector(cfg config.OIDC) *oryIntrospector {
	conf := client.NewConfiguration()
	conf.Servers = client.ServerConfigurations{{URL: strings.TrimSuffix(cfg.IntrospectionURL, "/")}}

	size := cfg.TokenCacheSize
	if size <= 0 {
		size = 1024
	}

	return &oryIntrospector{
		api:            client.NewAPIClient(conf),
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		trustedIssuers: cfg.TrustedIssuers,
		cache:          expirable.NewLRU[string, cachedSession](size, nil, cfg.TokenCacheTTL),
		group:          &singleflight.Group{},
		now:            time.Now,
	}
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (o *oryIntrospector) isTrusted(issuer string) bool {
	if len(o.trustedIssuers) == 0 {
		return true
	}
	return slices.Contains(o.trustedIssuers, issuer)
}

// Introspect resolves the token at the identity provider.
// Only active tokens are cached, so a revoked token is rejected after the cache ttl at the latest.
// A cached session is dropped once the token's own expiry passes.
func (o *oryIntrospector) Introspect(ctx context.Context, token string) (shared.AuthSession, error) {
	key := cacheKey(token)
	if c, ok := o.cache.Get(key); ok {
		if c.expiresAt.IsZero() || o.now().Before(c.expiresAt) {
			monitoring.TokenIntrospections.WithLabelValues("cache_hit").Inc()
			return c.session, nil
		}
		o.cache.Remove(key)
	}

	v, err, _ := o.group.Do(key, func() (any, error) {
		return o.introspect(ctx, key, token)
	})
	if err != nil {
		return nil, err
	}
	return v.(shared.AuthSession), nil
}

func (o *oryIntrospector) introspect(ctx context.Context, key, token string) (shared.AuthSession, error) {
	if o.clientID != "" {
		ctx = context.WithValue(ctx, client.ContextBasicAuth, client.BasicAuth{
			UserName: o.clientID,
			Password: o.clientSecret,
		})
	}

	res, _, err := o.api.OAuth2API.IntrospectOAuth2Token(ctx).Token(token).Execute()
	if err != nil {
		monitoring.TokenIntrospections.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, "could not introspect token")
	}

	if !res.GetActive() {
		monitoring.TokenIntrospections.WithLabelValues("inactive").Inc()
		return nil, errors.Wrap(ErrInvalidToken, "token is not active")
	}

	if res.GetSub() == "" || !o.isTrusted(res.GetIss()) {
		monitoring.TokenIntrospections.WithLabelValues("untrusted").Inc()
		slog.Warn("rejecting token of untrusted issuer", "iss", res.GetIss())
		return nil, errors.Wrapf(ErrInvalidToken, "issuer %q is not trusted", res.GetIss())
	}

	ext := res.GetExt()
	s := NewSession(
		res.GetSub(),
		res.GetIss(),
		stringClaim(ext, claimEmail),
		stringsClaim(ext, claimEntitlements),
		strings.Fields(res.GetScope()),
	)

	c := cachedSession{session: s}
	if exp := res.GetExp(); exp > 0 {
		c.expiresAt = time.Unix(exp, 0)
	}
	o.cache.Add(key, c)
	monitoring.TokenIntrospections.WithLabelValues("active").Inc()
	return s, nil
}

func stringClaim(ext map[string]any, name string) string {
	v, _ := ext[name].(string)
	return v
}

// stringsClaim accepts a json array of strings or a single string.
func stringsClaim(ext map[string]any, name string) []string {
	switch v := ext[name].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
