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
	"net/http"
	"time"

	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RegistryImageChecker struct {
	// public registries throttle anonymous manifest requests
	rateLimiter *rate.Limiter
}

var _ shared.ImageChecker = &RegistryImageChecker{}

func NewRegistryImageChecker() *RegistryImageChecker {
	return &RegistryImageChecker{
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// Exists asks the registry for the manifest of image:tag.
// Registries answer unknown repositories with 401 or 404, both count as missing.
func (r *RegistryImageChecker) Exists(ctx context.Context, image, tag string) (bool, error) {
	ref, err := name.ParseReference(image + ":" + tag)
	if err != nil {
		return false, errors.Wrapf(shared.ErrValidation, "invalid image reference %s:%s", image, tag)
	}

	if err := r.rateLimiter.Wait(ctx); err != nil {
		return false, errors.Wrap(err, "could not wait for the registry rate limit")
	}

	start := time.Now()
	defer func() {
		monitoring.ImageChecks.Observe(time.Since(start).Seconds())
	}()

	if _, err := remote.Head(ref, remote.WithContext(ctx)); err != nil {
		var terr *transport.Error
		if errors.As(err, &terr) {
			switch terr.StatusCode {
			case http.StatusNotFound, http.StatusUnauthorized, http.StatusForbidden:
				return false, nil
			}
		}
		return false, errors.Wrap(err, "could not reach the container registry")
	}
	return true, nil
}

// disabledImageChecker accepts every image. Used when REGISTRY_CHECK_DISABLED is set.
type disabledImageChecker struct{}

func (disabledImageChecker) Exists(ctx context.Context, image, tag string) (bool, error) {
	return true, nil
}
