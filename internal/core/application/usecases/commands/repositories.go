// Package commands contains business operations that modify system state.
// Every command is built through its constructor, validated, and executed by a
// handler inside one unit of work. Batch workflows open one unit per item.
package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories a handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	ReturnLinkRepoFactory interface {
		ReturnLinkRepository() ports.ReturnLinkRepository
	}

	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	SettingRepoFactory interface {
		SettingRepository() ports.SettingRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StatusUoW manages the status registry.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// ShipmentUoW changes the status of existing shipments.
	ShipmentUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CreateShipmentUoW also reads the pricing tables to resolve the fee.
	CreateShipmentUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
		PricingRepoFactory
		SettingRepoFactory
	}

	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}

	// PricingUoW maintains zones, merchant prices and the system fee setting.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
		SettingRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// WarehouseUoW dispatches and reconciles shipments on behalf of a courier.
	WarehouseUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
		ManifestRepoFactory
		UserRepoFactory
	}

	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// ReturnUoW covers the three writes of a return to origin.
	ReturnUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
		ReturnLinkRepoFactory
	}

	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// PayoutUoW creates and advances payouts.
	PayoutUoW interface {
		TxManager
		ShipmentRepoFactory
		PayoutRepoFactory
		UserRepoFactory
	}

	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
	}

	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
