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

package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/eosc-perf/perfboard/database"
	"github.com/eosc-perf/perfboard/shared"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

// PostgreSQLBroker implements shared.PubSubBroker using PostgreSQL LISTEN/NOTIFY
type PostgreSQLBroker struct {
	db                       *sql.DB
	listener                 *pq.Listener
	subscribers              map[shared.PubSubChannel][]chan map[string]any
	subscribeMux             sync.RWMutex
	ctx                      context.Context
	cancel                   context.CancelFunc
	wg                       sync.WaitGroup
	isListening              bool
	listeningMux             sync.Mutex
	ID                       string // unique identifier of the broker instance
	shouldReceiveOwnMessages bool
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

// NewPostgreSQLBroker opens a dedicated connection for publishing and a listener connection.
func NewPostgreSQLBroker(cfg database.PoolConfig) (*PostgreSQLBroker, error) {
	connectionString := cfg.DSN()

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}
	db.SetMaxOpenConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	listener := pq.NewListener(connectionString, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("PostgreSQL listener error", "error", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())

	return &PostgreSQLBroker{
		db:          db,
		listener:    listener,
		subscribers: make(map[shared.PubSubChannel][]chan map[string]any),
		ctx:         ctx,
		cancel:      cancel,
		ID:          uuid.New().String(),
	}, nil
}

// Publish sends the message payload to every listener of its channel.
func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return errors.Wrap(err, "failed to marshal PostgreSQL message")
	}

	// pg_notify binds the payload instead of splicing it into the statement
	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", string(pgMessage.Channel), string(messageJSON)); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	slog.Debug("message published", "topic", pgMessage.Channel, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	if _, exists := b.subscribers[topic]; !exists {
		if err := b.listener.Listen(string(topic)); err != nil {
			close(ch)
			return nil, errors.Wrapf(err, "failed to listen on topic %s", topic)
		}
		b.subscribers[topic] = []chan map[string]any{}
		slog.Info("started listening on topic", "topic", topic)
	}

	b.subscribers[topic] = append(b.subscribers[topic], ch)

	b.listeningMux.Lock()
	if !b.isListening {
		b.isListening = true
		b.wg.Add(1)
		go b.processMessages()
	}
	b.listeningMux.Unlock()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()
	defer func() {
		b.listeningMux.Lock()
		b.isListening = false
		b.listeningMux.Unlock()
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-b.ctx.Done():
			slog.Info("message processing stopped")
			return
		case notification := <-b.listener.Notify:
			// nil after a reconnect
			if notification != nil {
				b.handleNotification(notification)
			}
		case <-ping.C:
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "error", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var message PostgreSQLMessage
	if err := json.Unmarshal([]byte(notification.Extra), &message); err != nil {
		slog.Error("failed to unmarshal message", "error", err, "payload", notification.Extra)
		return
	}

	if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
		slog.Debug("ignoring message sent by self", "messageID", message.ID, "topic", message.Channel)
		return
	}

	topic := shared.PubSubChannel(notification.Channel)

	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	subscribers, exists := b.subscribers[topic]
	if !exists {
		slog.Warn("no subscribers for topic", "topic", topic)
		return
	}

	for _, subscriber := range subscribers {
		select {
		case subscriber <- message.Payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
		}
	}

	slog.Debug("message distributed", "topic", topic, "messageID", message.ID, "subscribers", len(subscribers))
}

// Close stops the broker and closes every subscriber channel.
func (b *PostgreSQLBroker) Close() error {
	slog.Info("closing PostgreSQL broker")

	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	for topic, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
	b.subscribeMux.Unlock()

	if err := b.listener.Close(); err != nil {
		return errors.Wrap(err, "failed to close listener")
	}
	if err := b.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close database connection")
	}
	return nil
}

func (b *PostgreSQLBroker) IsHealthy(ctx context.Context) bool {
	return b.db.PingContext(ctx) == nil
}
