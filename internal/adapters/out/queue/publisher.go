// Package queue hands outbox messages to the notification worker through asynq.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/ports"

	"github.com/hibiken/asynq"
)

const (
	DefaultQueue = "notifications"
	TaskPrefix   = "notify:"
)

// ErrPublisherDisabled is returned by a publisher built without a queue, so the
// outbox keeps its messages until one is configured.
var ErrPublisherDisabled = errors.New("queue publisher is disabled")

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	Queue    string
}

// Envelope is the task body consumed by the notification worker.
type Envelope struct {
	ID          string          `json:"id"`
	Event       string          `json:"event"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Publisher enqueues one task per message. A disabled publisher refuses every
// message with ErrPublisherDisabled.
type Publisher struct {
	client  *asynq.Client
	enabled bool
	queue   string
}

func NewPublisher(cfg Config) *Publisher {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}
	if !cfg.Enabled {
		return &Publisher{queue: queue}
	}
	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port == 0 {
		port = 6379
	}
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Publisher{client: client, enabled: true, queue: queue}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.enabled && p.client != nil
}

func (p *Publisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

// Publish enqueues msg with its id as the task id, so a message relayed twice
// is enqueued once.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if !p.Enabled() {
		return ErrPublisherDisabled
	}
	task, err := NewTask(msg)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue(p.queue),
		asynq.TaskID(msg.ID.String()),
		asynq.MaxRetry(10),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// NewTask wraps msg in an Envelope typed by its event name.
func NewTask(msg ports.OutboxMessage) (*asynq.Task, error) {
	payload := json.RawMessage(msg.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	body, err := json.Marshal(Envelope{
		ID:          msg.ID.String(),
		Event:       msg.EventName,
		AggregateID: msg.AggregateID.String(),
		OccurredAt:  msg.OccurredAt,
		Payload:     payload,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPrefix+msg.EventName, body), nil
}

var _ ports.EventPublisher = (*Publisher)(nil)
