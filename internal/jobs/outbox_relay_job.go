package jobs

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRelayBatchSize = 100

// OutboxRelayJob hands stored domain events to the notification publisher in
// occurrence order. A message is marked published only after the publisher
// accepted it, so delivery is at least once.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	schedule  string
	batchSize int
	cron      *cron.Cron
	log       *zap.Logger
}

func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	schedule string,
	batchSize int,
	log *zap.Logger,
) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = defaultRelayBatchSize
	}
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		log:       logger.Component(log, "outbox_relay_job"),
	}
}

// RunOnce relays one batch and returns how many messages were published. It
// stops at the first publish failure so later events never overtake it.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (int, error) {
	messages, err := j.outbox.FetchUnpublished(ctx, j.batchSize)
	if err != nil {
		return 0, fmt.Errorf("fetch outbox: %w", err)
	}

	published := 0
	for _, msg := range messages {
		if err = j.publisher.Publish(ctx, msg); err != nil {
			return published, fmt.Errorf("publish %s %s: %w", msg.EventName, msg.ID, err)
		}
		if err = j.outbox.MarkPublished(ctx, msg.ID, time.Now()); err != nil {
			return published, fmt.Errorf("mark %s published: %w", msg.ID, err)
		}
		published++
	}
	return published, nil
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		published, err := j.RunOnce(context.Background())
		if err != nil {
			j.log.Error("outbox relay failed", zap.Int("published", published), zap.Error(err))
			return
		}
		if published > 0 {
			j.log.Debug("outbox relayed", zap.Int("published", published))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("outbox relay job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("outbox relay job stopped")
}
