package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repositories to one transaction. Events recorded by the
// aggregates written through it are stored in the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	StatusRepository() StatusRepository

	ShipmentRepository() ShipmentRepository

	ReturnLinkRepository() ReturnLinkRepository

	ManifestRepository() ManifestRepository

	PayoutRepository() PayoutRepository

	PricingRepository() PricingRepository

	SettingRepository() SettingRepository

	UserRepository() UserRepository

	OutboxRepository() OutboxRepository
}
