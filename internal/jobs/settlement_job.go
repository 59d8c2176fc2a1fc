package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SettleableCouriers lists couriers with unsettled deliveries in [from, to).
type SettleableCouriers interface {
	CouriersWithSettleable(ctx context.Context, from, to time.Time) ([]kernel.UUID, error)
}

type courierPayoutCreator interface {
	Handle(ctx context.Context, cmd commands.CreateCourierPayoutCommand) (commands.CreatedPayout, error)
}

// SettlementJob creates one courier payout per courier for the previous ISO week.
type SettlementJob struct {
	couriers SettleableCouriers
	handler  courierPayoutCreator
	schedule string
	cron     *cron.Cron
	log      *zap.Logger
}

func NewSettlementJob(
	couriers SettleableCouriers,
	handler courierPayoutCreator,
	schedule string,
	log *zap.Logger,
) *SettlementJob {
	return &SettlementJob{
		couriers: couriers,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		log:      logger.Component(log, "settlement_job"),
	}
}

// PreviousWeek returns the Monday-to-Monday UTC week before the one containing now.
func PreviousWeek(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	end := time.Date(now.Year(), now.Month(), now.Day()-daysSinceMonday, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -7), end
}

// RunOnce settles the week before now. A courier whose shipments were settled
// concurrently is skipped; other failures are collected and the run goes on.
func (j *SettlementJob) RunOnce(ctx context.Context, now time.Time) (int, error) {
	start, end := PreviousWeek(now)

	courierIDs, err := j.couriers.CouriersWithSettleable(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("list settleable couriers: %w", err)
	}

	var failures []error
	created := 0
	for _, courierID := range courierIDs {
		cmd, cmdErr := commands.NewCreateCourierPayoutCommand(courierID, start, end)
		if cmdErr != nil {
			failures = append(failures, cmdErr)
			continue
		}
		payout, handleErr := j.handler.Handle(ctx, cmd)
		if errors.Is(handleErr, commands.ErrNoSettleableShipments) {
			continue
		}
		if handleErr != nil {
			j.log.Error("courier settlement failed", zap.String("courier_id", courierID.String()), zap.Error(handleErr))
			failures = append(failures, fmt.Errorf("courier %s: %w", courierID, handleErr))
			continue
		}
		j.log.Info("courier settled",
			zap.String("courier_id", courierID.String()),
			zap.String("payout_id", payout.ID.String()),
			zap.String("net_amount", payout.NetAmount.String()),
			zap.Int("items", payout.ItemCount))
		created++
	}
	return created, errors.Join(failures...)
}

func (j *SettlementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		created, err := j.RunOnce(context.Background(), time.Now())
		if err != nil {
			j.log.Error("settlement run finished with errors", zap.Int("created", created), zap.Error(err))
			return
		}
		j.log.Info("settlement run finished", zap.Int("created", created))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("settlement job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *SettlementJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("settlement job stopped")
}
