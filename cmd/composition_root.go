package cmd

import (
	"context"

	httpin "courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/numbering"
	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/queue"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/ports"
	"courierhub/internal/jobs"
	"courierhub/internal/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	numbers    ports.NumberGenerator
	publisher  *queue.Publisher
	log        *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *zap.Logger) (*CompositionRoot, error) {
	numbers, err := numbering.NewSnowflakeGenerator(cfg.Numbering.NodeID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		numbers:    numbers,
		publisher:  queue.NewPublisher(cfg.Queue.ToQueueConfig()),
		log:        log,
	}, nil
}

// Close releases the queue client.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// SeedStatuses inserts the missing canonical statuses.
func (c *CompositionRoot) SeedStatuses(ctx context.Context) (int, error) {
	return c.CreateSeedStatusesCommandHandler().Handle(ctx, commands.NewSeedStatusesCommand())
}

// LoadStatusRegistry reads the registry outside of any transaction.
func (c *CompositionRoot) LoadStatusRegistry(ctx context.Context) (*status.Registry, error) {
	statuses, err := c.uowFactory.Create().StatusRepository().All(ctx)
	if err != nil {
		return nil, err
	}
	return status.NewRegistry(statuses)
}

func (c *CompositionRoot) statusUoW() commands.StatusUoWFactory {
	return FuncUoWFactory[commands.StatusUoW](func() commands.StatusUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) shipmentUoW() commands.ShipmentUoWFactory {
	return FuncUoWFactory[commands.ShipmentUoW](func() commands.ShipmentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) createShipmentUoW() commands.CreateShipmentUoWFactory {
	return FuncUoWFactory[commands.CreateShipmentUoW](func() commands.CreateShipmentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) pricingUoW() commands.PricingUoWFactory {
	return FuncUoWFactory[commands.PricingUoW](func() commands.PricingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) warehouseUoW() commands.WarehouseUoWFactory {
	return FuncUoWFactory[commands.WarehouseUoW](func() commands.WarehouseUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) returnUoW() commands.ReturnUoWFactory {
	return FuncUoWFactory[commands.ReturnUoW](func() commands.ReturnUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) payoutUoW() commands.PayoutUoWFactory {
	return FuncUoWFactory[commands.PayoutUoW](func() commands.PayoutUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) manifestUoW() commands.ManifestUoWFactory {
	return FuncUoWFactory[commands.ManifestUoW](func() commands.ManifestUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUoWFactory[commands.UserUoW](func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateSeedStatusesCommandHandler() commands.SeedStatusesCommandHandler {
	return commands.NewSeedStatusesCommandHandler(c.statusUoW())
}

func (c *CompositionRoot) CreateCreateStatusCommandHandler() commands.CreateStatusCommandHandler {
	return commands.NewCreateStatusCommandHandler(c.statusUoW())
}

func (c *CompositionRoot) CreateRenameStatusCommandHandler() commands.RenameStatusCommandHandler {
	return commands.NewRenameStatusCommandHandler(c.statusUoW())
}

func (c *CompositionRoot) CreateDeleteStatusCommandHandler() commands.DeleteStatusCommandHandler {
	return commands.NewDeleteStatusCommandHandler(c.statusUoW())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.pricingUoW())
}

func (c *CompositionRoot) CreateSetMerchantZonePriceCommandHandler() commands.SetMerchantZonePriceCommandHandler {
	return commands.NewSetMerchantZonePriceCommandHandler(c.pricingUoW())
}

func (c *CompositionRoot) CreateSetDefaultDeliveryFeeCommandHandler() commands.SetDefaultDeliveryFeeCommandHandler {
	return commands.NewSetDefaultDeliveryFeeCommandHandler(c.pricingUoW())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.createShipmentUoW(), c.numbers)
}

func (c *CompositionRoot) CreateAdvanceShipmentCommandHandler() commands.AdvanceShipmentCommandHandler {
	return commands.NewAdvanceShipmentCommandHandler(c.shipmentUoW())
}

func (c *CompositionRoot) CreateReportFailedAttemptCommandHandler() commands.ReportFailedAttemptCommandHandler {
	return commands.NewReportFailedAttemptCommandHandler(c.shipmentUoW(), nil)
}

func (c *CompositionRoot) CreateCreateReturnCommandHandler() commands.CreateReturnCommandHandler {
	return commands.NewCreateReturnCommandHandler(c.returnUoW(), c.numbers)
}

func (c *CompositionRoot) CreateReceiveAtHubCommandHandler() commands.ReceiveAtHubCommandHandler {
	return commands.NewReceiveAtHubCommandHandler(c.shipmentUoW(), logger.Component(c.log, "receive_at_hub"))
}

func (c *CompositionRoot) CreateDispatchToCourierCommandHandler() commands.DispatchToCourierCommandHandler {
	return commands.NewDispatchToCourierCommandHandler(c.warehouseUoW(), c.numbers, logger.Component(c.log, "dispatch"))
}

func (c *CompositionRoot) CreateReconcileWithCourierCommandHandler() commands.ReconcileWithCourierCommandHandler {
	return commands.NewReconcileWithCourierCommandHandler(c.warehouseUoW(), logger.Component(c.log, "reconcile"))
}

func (c *CompositionRoot) CreateChangeManifestStatusCommandHandler() commands.ChangeManifestStatusCommandHandler {
	return commands.NewChangeManifestStatusCommandHandler(c.manifestUoW())
}

func (c *CompositionRoot) CreateCreateCourierPayoutCommandHandler() commands.CreateCourierPayoutCommandHandler {
	return commands.NewCreateCourierPayoutCommandHandler(c.payoutUoW())
}

func (c *CompositionRoot) CreateCreateMerchantPayoutCommandHandler() commands.CreateMerchantPayoutCommandHandler {
	return commands.NewCreateMerchantPayoutCommandHandler(c.payoutUoW())
}

func (c *CompositionRoot) CreateUpdatePayoutStatusCommandHandler() commands.UpdatePayoutStatusCommandHandler {
	return commands.NewUpdatePayoutStatusCommandHandler(c.payoutUoW())
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayoutQueryHandler() queries.GetPayoutQueryHandler {
	return queries.NewGetPayoutQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStatusesQueryHandler() queries.ListStatusesQueryHandler {
	return queries.NewListStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SeedStatuses:          c.CreateSeedStatusesCommandHandler(),
		CreateStatus:          c.CreateCreateStatusCommandHandler(),
		RenameStatus:          c.CreateRenameStatusCommandHandler(),
		DeleteStatus:          c.CreateDeleteStatusCommandHandler(),
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		CreateZone:            c.CreateCreateZoneCommandHandler(),
		SetMerchantZonePrice:  c.CreateSetMerchantZonePriceCommandHandler(),
		SetDefaultDeliveryFee: c.CreateSetDefaultDeliveryFeeCommandHandler(),
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		AdvanceShipment:       c.CreateAdvanceShipmentCommandHandler(),
		ReportFailedAttempt:   c.CreateReportFailedAttemptCommandHandler(),
		CreateReturn:          c.CreateCreateReturnCommandHandler(),
		ReceiveAtHub:          c.CreateReceiveAtHubCommandHandler(),
		DispatchToCourier:     c.CreateDispatchToCourierCommandHandler(),
		ReconcileWithCourier:  c.CreateReconcileWithCourierCommandHandler(),
		ChangeManifestStatus:  c.CreateChangeManifestStatusCommandHandler(),
		CreateCourierPayout:   c.CreateCreateCourierPayoutCommandHandler(),
		CreateMerchantPayout:  c.CreateCreateMerchantPayoutCommandHandler(),
		UpdatePayoutStatus:    c.CreateUpdatePayoutStatusCommandHandler(),
		GetShipmentHistory:    c.CreateGetShipmentHistoryQueryHandler(),
		GetPayout:             c.CreateGetPayoutQueryHandler(),
		ListStatuses:          c.CreateListStatusesQueryHandler(),
	}, c.log)
}

func (c *CompositionRoot) CreateOutboxRelayJob() *jobs.OutboxRelayJob {
	return jobs.NewOutboxRelayJob(
		c.uowFactory.Create().OutboxRepository(),
		c.publisher,
		c.cfg.Jobs.OutboxSchedule,
		c.cfg.Jobs.OutboxBatchSize,
		c.log,
	)
}

func (c *CompositionRoot) CreateSettlementJob() *jobs.SettlementJob {
	return jobs.NewSettlementJob(
		c.uowFactory.Create().ShipmentRepository(),
		c.CreateCreateCourierPayoutCommandHandler(),
		c.cfg.Jobs.SettlementSchedule,
		c.log,
	)
}

// CreateJobManager registers the background jobs. It is empty when jobs are
// disabled. The outbox relay needs a queue; without one the events stay
// unpublished in the outbox.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	manager := jobs.NewJobManager()
	if !c.cfg.Jobs.Enabled {
		return manager
	}
	if c.publisher.Enabled() {
		manager.Register("outbox_relay", c.CreateOutboxRelayJob())
	} else {
		c.log.Warn("queue disabled, outbox relay not scheduled")
	}
	manager.Register("settlement", c.CreateSettlementJob())
	return manager
}

// FuncUoWFactory adapts a constructor function to any narrowed UoW factory.
type FuncUoWFactory[T any] func() T

func (f FuncUoWFactory[T]) Create() T {
	return f()
}
