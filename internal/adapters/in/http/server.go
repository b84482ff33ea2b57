package http

import (
	"log/slog"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	startOrderHandler  commands.StartOrderCommandHandler
	pauseOrderHandler  commands.PauseOrderCommandHandler
	resumeOrderHandler commands.ResumeOrderCommandHandler
	finishOrderHandler commands.FinishOrderCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getOrderReportHandler queries.GetOrderReportQueryHandler

	errors errorResponder
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	StartOrder  commands.StartOrderCommandHandler
	PauseOrder  commands.PauseOrderCommandHandler
	ResumeOrder commands.ResumeOrderCommandHandler
	FinishOrder commands.FinishOrderCommandHandler

	GetAllOrders   queries.GetAllOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetOrderReport queries.GetOrderReportQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
// In production error bodies omit the details field.
func NewServer(h Handlers, production bool, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:    h.CreateOrder,
		startOrderHandler:     h.StartOrder,
		pauseOrderHandler:     h.PauseOrder,
		resumeOrderHandler:    h.ResumeOrder,
		finishOrderHandler:    h.FinishOrder,
		getAllOrdersHandler:   h.GetAllOrders,
		getOrderHandler:       h.GetOrder,
		getOrderReportHandler: h.GetOrderReport,
		errors: errorResponder{
			production: production,
			logger:     logger.With("component", "http"),
		},
	}
}

// GetOrders handles GET /ordenes - lists orders newest first with their pauses.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errors.respond(ctx, err, "Error retrieving orders")
	}

	response := make([]servers.Order, 0, len(views))
	for _, v := range views {
		response = append(response, presentOrderView(v))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /ordenes - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, s.errors.body("Invalid request body", err))
	}

	var description string
	if body.Descripcion != nil {
		description = *body.Descripcion
	}

	cmd, err := commands.NewCreateOrderCommand(body.Nombre, description)
	if err != nil {
		return s.errors.respond(ctx, err, "Error creating order")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err, "Error creating order")
	}

	return ctx.JSON(http.StatusCreated, PresentOrder(created))
}

// StartOrder handles PUT /ordenes/:id/iniciar.
func (s *Server) StartOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error starting order")
	}

	cmd, err := commands.NewStartOrderCommand(orderID)
	if err != nil {
		return s.errors.respond(ctx, err, "Error starting order")
	}

	started, err := s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err, "Error starting order")
	}

	return ctx.JSON(http.StatusOK, PresentOrder(started))
}

// PauseOrder handles POST /ordenes/:id/pausar.
func (s *Server) PauseOrder(ctx echo.Context, id servers.OrderId) error {
	var body servers.PauseOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, s.errors.body("Invalid request body", err))
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error pausing order")
	}

	cmd, err := commands.NewPauseOrderCommand(orderID, body.Motivo)
	if err != nil {
		return s.errors.respond(ctx, err, "Error pausing order")
	}

	pause, err := s.pauseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err, "Error pausing order")
	}

	return ctx.JSON(http.StatusCreated, presentPause(pause))
}

// ResumeOrder handles PUT /ordenes/:id/reanudar.
func (s *Server) ResumeOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error resuming order")
	}

	cmd, err := commands.NewResumeOrderCommand(orderID)
	if err != nil {
		return s.errors.respond(ctx, err, "Error resuming order")
	}

	pause, err := s.resumeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err, "Error resuming order")
	}

	return ctx.JSON(http.StatusOK, presentPause(pause))
}

// FinishOrder handles PUT /ordenes/:id/finalizar.
func (s *Server) FinishOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error finishing order")
	}

	cmd, err := commands.NewFinishOrderCommand(orderID)
	if err != nil {
		return s.errors.respond(ctx, err, "Error finishing order")
	}

	finished, err := s.finishOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err, "Error finishing order")
	}

	return ctx.JSON(http.StatusOK, PresentOrder(finished))
}

// GetOrderStatus handles GET /ordenes/:id/estado.
func (s *Server) GetOrderStatus(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error retrieving order status")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errors.respond(ctx, err, "Error retrieving order status")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err, "Error retrieving order status")
	}

	return ctx.JSON(http.StatusOK, presentOrderView(view))
}

// GetOrderReport handles GET /ordenes/:id/reporte.
func (s *Server) GetOrderReport(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.errors.respond(ctx, err, "Error generating order report")
	}

	query, err := queries.NewGetOrderReportQuery(orderID)
	if err != nil {
		return s.errors.respond(ctx, err, "Error generating order report")
	}

	report, err := s.getOrderReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err, "Error generating order report")
	}

	return ctx.JSON(http.StatusOK, presentReport(report))
}
