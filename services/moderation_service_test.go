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
	"testing"
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/mocks"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var uploader = models.User{Sub: "alice", Iss: "https://aai.example.org", Email: "alice@example.org"}

func onReviewSite() models.Site {
	site := models.Site{ID: uuid.New(), Name: "cern", Address: "geneva", Uploaded: models.NewUploaded(uploader, time.Now())}
	submit := models.NewSubmit(models.ResourceTypeSite, site.ID, site.Uploaded, time.Now())
	submit.ID = uuid.New()
	site.Submit = &submit
	return site
}

type moderationMocks struct {
	repository          *mocks.ModeratedRepository[models.Site]
	submitRepository    *mocks.SubmitRepository
	userRepository      *mocks.UserRepository
	notificationService *mocks.NotificationService
}

func newModerationServiceWithMocks(t *testing.T) (*ModerationService[models.Site, *models.Site], moderationMocks) {
	m := moderationMocks{
		repository:          mocks.NewModeratedRepository[models.Site](t),
		submitRepository:    mocks.NewSubmitRepository(t),
		userRepository:      mocks.NewUserRepository(t),
		notificationService: mocks.NewNotificationService(t),
	}
	m.repository.On("Transaction", mock.Anything).Return(mocks.RunTransaction).Maybe()
	return NewModerationService[models.Site, *models.Site](m.repository, m.submitRepository, m.userRepository, m.notificationService), m
}

func TestModerationServiceSubmit(t *testing.T) {
	t.Run("should store the resource together with a pending submit and inform the administrators", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := models.Site{Name: "cern", Address: "geneva", Uploaded: models.NewUploaded(uploader, time.Now())}
		siteID := uuid.New()

		m.repository.On("Create", mock.Anything, &site).Return(func(_ shared.DB, s *models.Site) error {
			s.ID = siteID
			return nil
		})
		m.submitRepository.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Submit) bool {
			return s.ResourceType == models.ResourceTypeSite && s.ResourceID() == siteID
		})).Return(nil)
		m.notificationService.On("Notify", mock.Anything, shared.Notification{
			Event:        shared.EventResourceSubmitted,
			ResourceType: models.ResourceTypeSite,
			ResourceID:   siteID,
		}).Return()

		err := service.Submit(context.Background(), &site)
		require.NoError(t, err)
		assert.NotNil(t, site.Submit)
	})

	t.Run("should not notify anyone if the submit could not be stored", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := models.Site{Name: "cern", Uploaded: models.NewUploaded(uploader, time.Now())}

		m.repository.On("Create", mock.Anything, &site).Return(func(_ shared.DB, s *models.Site) error {
			s.ID = uuid.New()
			return nil
		})
		m.submitRepository.On("Create", mock.Anything, mock.Anything).Return(shared.ErrConflict)

		err := service.Submit(context.Background(), &site)
		assert.True(t, errors.Is(err, shared.ErrConflict))
		m.notificationService.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}

func TestModerationServiceApprove(t *testing.T) {
	t.Run("should delete the pending submit and notify the uploader", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := onReviewSite()

		m.repository.On("ReadForUpdate", mock.Anything, site.ID).Return(site, nil)
		m.submitRepository.On("Delete", mock.Anything, site.Submit.ID).Return(nil)
		m.userRepository.On("Read", uploader.Sub, uploader.Iss).Return(uploader, nil)
		m.notificationService.On("Notify", mock.Anything, shared.Notification{
			Event:        shared.EventResourceApproved,
			ResourceType: models.ResourceTypeSite,
			ResourceID:   site.ID,
			Recipient:    uploader.Email,
		}).Return()

		approved, err := service.Approve(context.Background(), site.ID)
		require.NoError(t, err)
		assert.Nil(t, approved.Submit)
		assert.Equal(t, site.ID, approved.ID)
	})

	t.Run("should fail with already approved if there is no pending submit", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := onReviewSite()
		site.Submit = nil

		m.repository.On("ReadForUpdate", mock.Anything, site.ID).Return(site, nil)

		_, err := service.Approve(context.Background(), site.ID)
		assert.True(t, errors.Is(err, shared.ErrAlreadyApproved))
		m.submitRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		id := uuid.New()
		m.repository.On("ReadForUpdate", mock.Anything, id).Return(models.Site{}, errors.Wrap(shared.ErrNotFound, "site"))

		_, err := service.Approve(context.Background(), id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should still approve if the uploader can not be resolved for the notification", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := onReviewSite()

		m.repository.On("ReadForUpdate", mock.Anything, site.ID).Return(site, nil)
		m.submitRepository.On("Delete", mock.Anything, site.Submit.ID).Return(nil)
		m.userRepository.On("Read", uploader.Sub, uploader.Iss).Return(models.User{}, shared.ErrNotFound)

		_, err := service.Approve(context.Background(), site.ID)
		assert.NoError(t, err)
		m.notificationService.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}

func TestModerationServiceReject(t *testing.T) {
	t.Run("should hard delete the resource", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := onReviewSite()

		m.repository.On("ReadForUpdate", mock.Anything, site.ID).Return(site, nil)
		m.repository.On("Delete", mock.Anything, site.ID).Return(nil)
		m.userRepository.On("Read", uploader.Sub, uploader.Iss).Return(uploader, nil)
		m.notificationService.On("Notify", mock.Anything, mock.MatchedBy(func(n shared.Notification) bool {
			return n.Event == shared.EventResourceRejected && n.Recipient == uploader.Email
		})).Return()

		rejected, err := service.Reject(context.Background(), site.ID)
		require.NoError(t, err)
		assert.Equal(t, site.Name, rejected.Name)
	})

	t.Run("should refuse to reject an approved resource", func(t *testing.T) {
		service, m := newModerationServiceWithMocks(t)
		site := onReviewSite()
		site.Submit = nil

		m.repository.On("ReadForUpdate", mock.Anything, site.ID).Return(site, nil)

		_, err := service.Reject(context.Background(), site.ID)
		assert.True(t, errors.Is(err, shared.ErrAlreadyApproved))
		m.repository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
