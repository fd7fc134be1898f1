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
	"github.com/eosc-perf/perfboard/database/models"
	"github.com/google/uuid"
)

type NotificationEvent string

const (
	EventResourceSubmitted NotificationEvent = "resource_submitted"
	EventResourceApproved  NotificationEvent = "resource_approved"
	EventResourceRejected  NotificationEvent = "resource_rejected"
	EventResultClaimed     NotificationEvent = "result_claimed"
	EventUserWelcome       NotificationEvent = "user_welcome"
	EventEmailUpdated      NotificationEvent = "email_updated"
)

type Notification struct {
	Event        NotificationEvent
	ResourceType models.ResourceType
	ResourceID   uuid.UUID
	// email address of the recipient, empty means the administrators
	Recipient string
}

func (n Notification) GetChannel() PubSubChannel {
	return Notifications
}

func (n Notification) GetPayload() map[string]any {
	payload := map[string]any{
		"event":     string(n.Event),
		"recipient": n.Recipient,
	}
	if n.ResourceType != "" {
		payload["resourceType"] = string(n.ResourceType)
	}
	if n.ResourceID != uuid.Nil {
		payload["resourceId"] = n.ResourceID.String()
	}
	return payload
}
