package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lastmile/internal/adapters/out/orderclient"
	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/tariff"
	"lastmile/internal/core/ports"
	"lastmile/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	orderClient *orderclient.Client
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	client, err := orderclient.NewClient(
		configs.OrderServiceBaseURL,
		time.Duration(configs.OrderServiceTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderClient: client,
		logger:      logger,
	}, nil
}

// SeedTariffs inserts one tariff per vehicle class when the table is empty,
// so a fresh deployment can price orders immediately.
func (c *CompositionRoot) SeedTariffs(ctx context.Context) error {
	repo := c.uowFactory.Create().TariffRepository()

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read tariffs: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []struct {
		vehicleType tariff.VehicleType
		baseCost    decimal.Decimal
		costPerKm   decimal.Decimal
		minDistance int
	}{
		{tariff.Motorcycle, decimal.NewFromFloat(2.5), decimal.NewFromFloat(0.5), 2},
		{tariff.LightVehicle, decimal.NewFromFloat(4), decimal.NewFromFloat(0.75), 3},
		{tariff.Truck, decimal.NewFromFloat(10), decimal.NewFromFloat(1.5), 5},
	}

	for _, d := range defaults {
		t, err := tariff.NewTariff(d.vehicleType, "default", d.baseCost, d.costPerKm, nil, d.minDistance)
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, t); err != nil {
			return fmt.Errorf("failed to seed tariff for %s: %w", d.vehicleType, err)
		}
		c.logger.InfoContext(ctx, "Seeded tariff", "vehicleType", d.vehicleType.String())
	}

	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePatchOrderCommandHandler() commands.PatchOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPatchOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f, c.orderClient)
}

func (c *CompositionRoot) CreateIssueInvoiceCommandHandler() commands.IssueInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueInvoiceCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderExistsQueryHandler() queries.OrderExistsQueryHandler {
	return queries.NewOrderExistsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceByOrderQueryHandler() queries.GetInvoiceByOrderQueryHandler {
	return queries.NewGetInvoiceByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoicesQueryHandler() queries.GetInvoicesQueryHandler {
	return queries.NewGetInvoicesQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs against a non-transactional
// invoice repository.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var invoices ports.InvoiceRepository = c.uowFactory.Create().InvoiceRepository()
	return jobs.NewJobManager(invoices, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
