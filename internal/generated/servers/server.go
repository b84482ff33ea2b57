package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, most recently created first, each with its pauses
	// (GET /ordenes)
	GetOrders(ctx echo.Context) error
	// Create an order
	// (POST /ordenes)
	CreateOrder(ctx echo.Context) error
	// Current state of an order
	// (GET /ordenes/{id}/estado)
	GetOrderStatus(ctx echo.Context, id OrderId) error
	// Finish an order
	// (PUT /ordenes/{id}/finalizar)
	FinishOrder(ctx echo.Context, id OrderId) error
	// Start an order
	// (PUT /ordenes/{id}/iniciar)
	StartOrder(ctx echo.Context, id OrderId) error
	// Open a pause on an order
	// (POST /ordenes/{id}/pausar)
	PauseOrder(ctx echo.Context, id OrderId) error
	// Close the open pause of an order
	// (PUT /ordenes/{id}/reanudar)
	ResumeOrder(ctx echo.Context, id OrderId) error
	// Time report of an order
	// (GET /ordenes/{id}/reporte)
	GetOrderReport(ctx echo.Context, id OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderStatus(ctx, id)
}

// FinishOrder converts echo context to params.
func (w *ServerInterfaceWrapper) FinishOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.FinishOrder(ctx, id)
}

// StartOrder converts echo context to params.
func (w *ServerInterfaceWrapper) StartOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StartOrder(ctx, id)
}

// PauseOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PauseOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PauseOrder(ctx, id)
}

// ResumeOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ResumeOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ResumeOrder(ctx, id)
}

// GetOrderReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderReport(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderReport(ctx, id)
}

// bindOrderID reads the "id" path parameter.
func bindOrderID(ctx echo.Context) (OrderId, error) {
	var id OrderId

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/ordenes", wrapper.GetOrders)
	router.POST(baseURL+"/ordenes", wrapper.CreateOrder)
	router.GET(baseURL+"/ordenes/:id/estado", wrapper.GetOrderStatus)
	router.PUT(baseURL+"/ordenes/:id/finalizar", wrapper.FinishOrder)
	router.PUT(baseURL+"/ordenes/:id/iniciar", wrapper.StartOrder)
	router.POST(baseURL+"/ordenes/:id/pausar", wrapper.PauseOrder)
	router.PUT(baseURL+"/ordenes/:id/reanudar", wrapper.ResumeOrder)
	router.GET(baseURL+"/ordenes/:id/reporte", wrapper.GetOrderReport)
}
