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

	"github.com/eosc-perf/perfboard/config"
	"github.com/eosc-perf/perfboard/monitoring"
	"github.com/eosc-perf/perfboard/shared"
)

type notificationService struct {
	broker shared.PubSubBroker
	mail   config.Mail
}

var _ shared.NotificationService = &notificationService{}

func NewNotificationService(broker shared.PubSubBroker, mail config.Mail) *notificationService {
	return &notificationService{
		broker: broker,
		mail:   mail,
	}
}

// Notify publishes the event. Failures are reported and never handed to the caller,
// the transaction which caused the event is committed already.
func (s *notificationService) Notify(ctx context.Context, notification shared.Notification) {
	if notification.Recipient == "" {
		notification.Recipient = s.mail.Support
	}
	if err := s.broker.Publish(ctx, notification); err != nil {
		monitoring.NotificationsPublished.WithLabelValues(string(notification.Event), "failed").Inc()
		monitoring.Alert("could not publish notification", err)
		return
	}
	monitoring.NotificationsPublished.WithLabelValues(string(notification.Event), "published").Inc()
}

// ListenForNotifications logs every notification delivered on the channel until ctx is done.
func ListenForNotifications(ctx context.Context, broker shared.PubSubBroker, mail config.Mail) error {
	ch, err := broker.Subscribe(shared.Notifications)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-ch:
				if !ok {
					return
				}
				slog.Info("notification delivered",
					"event", payload["event"],
					"recipient", payload["recipient"],
					"resourceType", payload["resourceType"],
					"resourceId", payload["resourceId"],
					"from", mail.From,
				)
			}
		}
	}()
	return nil
}
