package cmd

import (
	"log/slog"
	"net/http"
	"slices"

	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/notifier"
	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	hub        *notifier.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, clock kernel.Clock, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		hub:        notifier.NewHub(httpin.PresentOrderEvent, originChecker(config.CORSAllowOrigins), logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.hub, c.logger)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory(), c.clock, c.hub, c.logger)
}

func (c *CompositionRoot) CreatePauseOrderCommandHandler() commands.PauseOrderCommandHandler {
	return commands.NewPauseOrderCommandHandler(c.orderUoWFactory(), c.clock, c.hub, c.logger)
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	return commands.NewResumeOrderCommandHandler(c.orderUoWFactory(), c.clock, c.hub, c.logger)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.orderUoWFactory(), c.clock, c.hub, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderReportQueryHandler() queries.GetOrderReportQueryHandler {
	return queries.NewGetOrderReportQueryHandler(c.gormDB)
}

// Hub is the websocket notifier shared by the command handlers and /ws.
func (c *CompositionRoot) Hub() *notifier.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.hub, c.config.HeartbeatSchedule, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		StartOrder:     c.CreateStartOrderCommandHandler(),
		PauseOrder:     c.CreatePauseOrderCommandHandler(),
		ResumeOrder:    c.CreateResumeOrderCommandHandler(),
		FinishOrder:    c.CreateFinishOrderCommandHandler(),
		GetAllOrders:   c.CreateGetAllOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetOrderReport: c.CreateGetOrderReportQueryHandler(),
	}, c.config.IsProduction(), c.logger)

	return httpin.NewRouter(server, httpin.RouterConfig{
		AllowOrigins:  c.config.CORSAllowOrigins,
		Production:    c.config.IsProduction(),
		LogLevel:      c.config.EchoLogLevel(),
		Notifications: c.hub,
		Logger:        c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// originChecker accepts websocket upgrades from the configured CORS origins.
// Requests without an Origin header come from non-browser clients and pass.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
