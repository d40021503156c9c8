package cmd

import (
	"log/slog"
	"os"

	httpin "deliveryhub/internal/adapters/in/http"
	"deliveryhub/internal/adapters/out/notify"
	"deliveryhub/internal/adapters/out/postgres"
	"deliveryhub/internal/adapters/out/postgres/userrepo"
	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	timing     delivery.Timing
	notifier   ports.Notifier
	logger     *slog.Logger
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	timing, err := delivery.NewTiming(
		config.DeliveryExpiry,
		config.OfferWindow,
		config.PickupTimeout,
		config.StaleThreshold,
	)
	if err != nil {
		logger.Error("Invalid timing configuration", "error", err)
		os.Exit(1)
	}

	providers := []notify.Provider{}
	if config.WhatsAppAPIURL != "" {
		providers = append(providers,
			notify.NewWhatsAppProvider(config.WhatsAppAPIURL, config.WhatsAppToken, config.NotifyTimeout))
	}
	providers = append(providers, notify.NewConsoleProvider(logger))

	notifier, err := notify.NewSmartNotifier(
		userrepo.NewGormUserRepository(gormDB),
		providers,
		config.NotifyMaxRetries,
		config.NotifyRetryDelay,
		logger,
	)
	if err != nil {
		logger.Error("Invalid notifier configuration", "error", err)
		os.Exit(1)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		timing:     timing,
		notifier:   notifier,
		logger:     logger,
		config:     config,
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.CreateDeliveryUoWFactory = FuncCreateDeliveryUoWFactory(func() commands.CreateDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.timing)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory(), c.notifier, c.timing)
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	return commands.NewPickUpDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelDeliveryByCourierCommandHandler() commands.CancelDeliveryByCourierCommandHandler {
	return commands.NewCancelDeliveryByCourierCommandHandler(c.deliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelDeliveryByMerchantCommandHandler() commands.CancelDeliveryByMerchantCommandHandler {
	return commands.NewCancelDeliveryByMerchantCommandHandler(c.deliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelDeliveryByAdminCommandHandler() commands.CancelDeliveryByAdminCommandHandler {
	return commands.NewCancelDeliveryByAdminCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.deliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCleanupDeliveriesCommandHandler() commands.CleanupDeliveriesCommandHandler {
	return commands.NewCleanupDeliveriesCommandHandler(c.deliveryUoWFactory(), c.timing)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantDeliveriesQueryHandler() queries.GetMerchantDeliveriesQueryHandler {
	return queries.NewGetMerchantDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreatePickUpDeliveryCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelDeliveryByCourierCommandHandler(),
		c.CreateCancelDeliveryByMerchantCommandHandler(),
		c.CreateCancelDeliveryByAdminCommandHandler(),
		c.CreateReportIssueCommandHandler(),
		c.CreateGetAvailableDeliveriesQueryHandler(),
		c.CreateGetCourierDeliveriesQueryHandler(),
		c.CreateGetMerchantDeliveriesQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthMiddleware() *httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware(c.config.JWTSecret, userrepo.NewGormUserRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCleanupDeliveriesCommandHandler(), c.logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCreateDeliveryUoWFactory func() commands.CreateDeliveryUoW

func (f FuncCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	return f()
}
