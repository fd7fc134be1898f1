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
	"time"

	"github.com/eosc-perf/perfboard/database/models"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/pkg/errors"
)

type userService struct {
	userRepository      shared.UserRepository
	notificationService shared.NotificationService
	now                 func() time.Time
}

var _ shared.UserService = &userService{}

func NewUserService(userRepository shared.UserRepository, notificationService shared.NotificationService) *userService {
	return &userService{
		userRepository:      userRepository,
		notificationService: notificationService,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func emailOf(session shared.AuthSession) (string, error) {
	email := session.GetEmail()
	if email == "" {
		return "", errors.Wrap(shared.ErrValidation, "the token does not carry an email address")
	}
	return email, nil
}

// Register stores the caller. Registering twice is a conflict.
func (s *userService) Register(ctx context.Context, session shared.AuthSession) (models.User, error) {
	email, err := emailOf(session)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Sub:                  session.GetSubject(),
		Iss:                  session.GetIssuer(),
		Email:                email,
		RegistrationDatetime: s.now(),
	}
	if err := s.userRepository.Create(nil, &user); err != nil {
		return models.User{}, err
	}

	s.notificationService.Notify(ctx, shared.Notification{Event: shared.EventUserWelcome, Recipient: user.Email})
	return user, nil
}

// UpdateEmail refreshes the stored email from the token.
func (s *userService) UpdateEmail(ctx context.Context, user models.User, session shared.AuthSession) (models.User, error) {
	email, err := emailOf(session)
	if err != nil {
		return models.User{}, err
	}

	user.Email = email
	if err := s.userRepository.Save(nil, &user); err != nil {
		return models.User{}, err
	}

	s.notificationService.Notify(ctx, shared.Notification{Event: shared.EventEmailUpdated, Recipient: user.Email})
	return user, nil
}

// Remove deletes the matching users and everything they uploaded.
func (s *userService) Remove(ctx context.Context, filter shared.UserFilter) (int64, error) {
	return s.userRepository.DeleteWhere(nil, filter)
}
