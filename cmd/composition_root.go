package cmd

import (
	"log/slog"

	apihttp "cogs/internal/adapters/in/http"
	"cogs/internal/adapters/out/postgres"
	"cogs/internal/adapters/out/postgres/purchaseorderrepo"
	"cogs/internal/core/application/usecases/commands"
	"cogs/internal/core/application/usecases/queries"
	"cogs/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateSetPurchaseOrderStatusCommandHandler() commands.SetPurchaseOrderStatusCommandHandler {
	return commands.NewSetPurchaseOrderStatusCommandHandler(c.purchaseOrderUoWFactoryFunc())
}

func (c *CompositionRoot) CreateAddLabelingCostCommandHandler() commands.AddLabelingCostCommandHandler {
	return commands.NewAddLabelingCostCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateRecalculatePurchaseOrderCommandHandler() commands.RecalculatePurchaseOrderCommandHandler {
	return commands.NewRecalculatePurchaseOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateRecalculateOpenPurchaseOrdersCommandHandler() commands.RecalculateOpenPurchaseOrdersCommandHandler {
	return commands.NewRecalculateOpenPurchaseOrdersCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateDeletePurchaseOrderCommandHandler() commands.DeletePurchaseOrderCommandHandler {
	return commands.NewDeletePurchaseOrderCommandHandler(c.purchaseOrderUoWFactoryFunc())
}

func (c *CompositionRoot) CreateListPurchaseOrdersQueryHandler() queries.ListPurchaseOrdersQueryHandler {
	return queries.NewListPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(purchaseorderrepo.NewGormPurchaseOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST server and returns the
// echo instance serving it.
func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := apihttp.NewServer(apihttp.Handlers{
		Create:       c.CreateCreatePurchaseOrderCommandHandler(),
		SetStatus:    c.CreateSetPurchaseOrderStatusCommandHandler(),
		AddLabeling:  c.CreateAddLabelingCostCommandHandler(),
		Recalculate:  c.CreateRecalculatePurchaseOrderCommandHandler(),
		Delete:       c.CreateDeletePurchaseOrderCommandHandler(),
		ListOrders:   c.CreateListPurchaseOrdersQueryHandler(),
		GetOrder:     c.CreateGetPurchaseOrderQueryHandler(),
		ListProducts: c.CreateListProductsQueryHandler(),
	}, c.logger)

	return apihttp.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRecalculateOpenPurchaseOrdersCommandHandler(),
		c.configs.RecalculationSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) uowFactoryFunc() FuncUoWFactory {
	return func() commands.UoW {
		return c.uowFactory.Create()
	}
}

func (c *CompositionRoot) purchaseOrderUoWFactoryFunc() FuncPurchaseOrderUoWFactory {
	return func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	}
}

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
