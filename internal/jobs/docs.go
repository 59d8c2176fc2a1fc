// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3 with second-resolution schedules.
//
// # Available Jobs
//
//  1. OutboxRelayJob - publishes stored domain events to the notification queue
//  2. SettlementJob - creates weekly courier payouts for the previous ISO week
//
// # Usage
//
//	manager := jobs.NewJobManager()
//	manager.Register("outbox relay", jobs.NewOutboxRelayJob(outbox, publisher, "*/5 * * * * *", 100, log))
//	manager.Register("settlement", jobs.NewSettlementJob(shipments, payoutHandler, "0 0 2 * * MON", log))
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
//   - The relay stops a batch at the first failed publish and retries on the next tick
//   - Settlement skips couriers whose shipments were settled in the meantime
//   - A failed start stops the jobs already running
package jobs
