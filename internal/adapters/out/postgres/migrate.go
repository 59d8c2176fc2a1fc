package postgres

import (
	"courierhub/internal/adapters/out/postgres/manifestrepo"
	"courierhub/internal/adapters/out/postgres/outboxrepo"
	"courierhub/internal/adapters/out/postgres/payoutrepo"
	"courierhub/internal/adapters/out/postgres/pricingrepo"
	"courierhub/internal/adapters/out/postgres/settingrepo"
	"courierhub/internal/adapters/out/postgres/shipmentrepo"
	"courierhub/internal/adapters/out/postgres/statusrepo"
	"courierhub/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&statusrepo.StatusDTO{},
		&userrepo.UserDTO{},
		&pricingrepo.ZoneDTO{},
		&pricingrepo.MerchantZonePriceDTO{},
		&settingrepo.SettingDTO{},
		&manifestrepo.ManifestDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryDTO{},
		&shipmentrepo.ReturnLinkDTO{},
		&payoutrepo.PayoutDTO{},
		&payoutrepo.PayoutItemDTO{},
		&outboxrepo.OutboxDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
