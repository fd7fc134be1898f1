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
	"log/slog"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/eosc-perf/perfboard/statemachine"
	"github.com/google/uuid"
)

// moderatable is satisfied by *models.Benchmark, *models.Site and *models.Flavor.
type moderatable[T any] interface {
	*T
	statemachine.Moderated
	SetSubmit(submit *models.Submit)
}

type ModerationService[T any, PT moderatable[T]] struct {
	repository          shared.ModeratedRepository[T]
	submitRepository    shared.SubmitRepository
	userRepository      shared.UserRepository
	notificationService shared.NotificationService
	now                 func() time.Time
}

var _ shared.ModerationService[models.Site] = &ModerationService[models.Site, *models.Site]{}

func NewModerationService[T any, PT moderatable[T]](
	repository shared.ModeratedRepository[T],
	submitRepository shared.SubmitRepository,
	userRepository shared.UserRepository,
	notificationService shared.NotificationService,
) *ModerationService[T, PT] {
	return &ModerationService[T, PT]{
		repository:          repository,
		submitRepository:    submitRepository,
		userRepository:      userRepository,
		notificationService: notificationService,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores the resource on review.
func (s *ModerationService[T, PT]) Submit(ctx context.Context, resource *T) error {
	p := PT(resource)
	err := s.repository.Transaction(func(tx shared.DB) error {
		if err := s.repository.Create(tx, resource); err != nil {
			return err
		}
		submit, err := statemachine.Submit(p, s.now())
		if err != nil {
			return err
		}
		if err := s.submitRepository.Create(tx, &submit); err != nil {
			return err
		}
		p.SetSubmit(&submit)
		return nil
	})
	if err != nil {
		return err
	}

	monitoring.ModerationTransitions.WithLabelValues(string(p.GetResourceType()), "submitted").Inc()
	s.notify(ctx, p, shared.EventResourceSubmitted, false)
	return nil
}

// Approve removes the pending submit. Approving twice fails with shared.ErrAlreadyApproved.
func (s *ModerationService[T, PT]) Approve(ctx context.Context, id uuid.UUID) (T, error) {
	var resource T
	err := s.repository.Transaction(func(tx shared.DB) error {
		r, err := s.repository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}
		submit, err := statemachine.Approve(PT(&r))
		if err != nil {
			return err
		}
		if err := s.submitRepository.Delete(tx, submit.ID); err != nil {
			return err
		}
		resource = r
		return nil
	})
	if err != nil {
		return resource, err
	}

	p := PT(&resource)
	p.SetSubmit(nil)
	monitoring.ModerationTransitions.WithLabelValues(string(p.GetResourceType()), "approved").Inc()
	s.notify(ctx, p, shared.EventResourceApproved, true)
	return resource, nil
}

// Reject hard deletes a resource on review. The submit is removed by the cascade.
func (s *ModerationService[T, PT]) Reject(ctx context.Context, id uuid.UUID) (T, error) {
	var resource T
	err := s.repository.Transaction(func(tx shared.DB) error {
		r, err := s.repository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}
		if _, err := statemachine.Reject(PT(&r)); err != nil {
			return err
		}
		if err := s.repository.Delete(tx, id); err != nil {
			return err
		}
		resource = r
		return nil
	})
	if err != nil {
		return resource, err
	}

	p := PT(&resource)
	monitoring.ModerationTransitions.WithLabelValues(string(p.GetResourceType()), "rejected").Inc()
	s.notify(ctx, p, shared.EventResourceRejected, true)
	return resource, nil
}

// notify goes to the uploader, or to the administrators when toUploader is false.
func (s *ModerationService[T, PT]) notify(ctx context.Context, p PT, event shared.NotificationEvent, toUploader bool) {
	notification := shared.Notification{
		Event:        event,
		ResourceType: p.GetResourceType(),
		ResourceID:   p.GetID(),
	}
	if toUploader {
		uploaded := p.GetUploaded()
		uploader, err := s.userRepository.Read(uploaded.UploaderSub, uploaded.UploaderIss)
		if err != nil {
			slog.Warn("could not resolve uploader for notification", "event", event, "err", err)
			return
		}
		notification.Recipient = uploader.Email
	}
	s.notificationService.Notify(ctx, notification)
}
