package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/notifier"
	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/adapters/out/postgres/pgtest"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/generated/servers"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/suite"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type orderUoWFactory struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

// OrderAPIIntegrationTestSuite drives the HTTP API end to end: echo router,
// use cases, the postgres store and the websocket notifier.
type OrderAPIIntegrationTestSuite struct {
	suite.Suite
	pg     *pgtest.Database
	clock  *kernel.FixedClock
	hub    *notifier.Hub
	router *echo.Echo
}

func (suite *OrderAPIIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderAPIIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *OrderAPIIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.clock = kernel.NewFixedClock(t0)
	suite.hub = notifier.NewHub(httpin.PresentOrderEvent, nil, slog.New(slog.DiscardHandler))
	suite.router = suite.newRouter(false)
}

func (suite *OrderAPIIntegrationTestSuite) TearDownTest() {
	suite.hub.Close()
}

func (suite *OrderAPIIntegrationTestSuite) newRouter(production bool) *echo.Echo {
	logger := slog.New(slog.DiscardHandler)
	uow := orderUoWFactory{factory: postgres.NewGormUnitOfWorkFactory(suite.pg.DB)}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:    commands.NewCreateOrderCommandHandler(uow, suite.clock, suite.hub, logger),
		StartOrder:     commands.NewStartOrderCommandHandler(uow, suite.clock, suite.hub, logger),
		PauseOrder:     commands.NewPauseOrderCommandHandler(uow, suite.clock, suite.hub, logger),
		ResumeOrder:    commands.NewResumeOrderCommandHandler(uow, suite.clock, suite.hub, logger),
		FinishOrder:    commands.NewFinishOrderCommandHandler(uow, suite.clock, suite.hub, logger),
		GetAllOrders:   queries.NewGetAllOrdersQueryHandler(suite.pg.DB),
		GetOrder:       queries.NewGetOrderQueryHandler(suite.pg.DB),
		GetOrderReport: queries.NewGetOrderReportQueryHandler(suite.pg.DB),
	}, production, logger)

	router, err := httpin.NewRouter(server, httpin.RouterConfig{
		Production:    production,
		LogLevel:      log.OFF,
		Notifications: suite.hub,
		Logger:        logger,
	})
	suite.Require().NoError(err)
	return router
}

func (suite *OrderAPIIntegrationTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *OrderAPIIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func (suite *OrderAPIIntegrationTestSuite) createOrder(name string) servers.Order {
	rec := suite.do(http.MethodPost, "/ordenes", fmt.Sprintf(`{"nombre":%q}`, name))
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.Order
	suite.decode(rec, &created)
	return created
}

func (suite *OrderAPIIntegrationTestSuite) expectError(rec *httptest.ResponseRecorder, status int, message string) {
	suite.Require().Equal(status, rec.Code, rec.Body.String())
	var body servers.Error
	suite.decode(rec, &body)
	suite.Equal(message, body.Error)
}

func path(id int64, action string) string {
	return fmt.Sprintf("/ordenes/%d/%s", id, action)
}

func (suite *OrderAPIIntegrationTestSuite) TestFullLifecycle() {
	// Create
	rec := suite.do(http.MethodPost, "/ordenes", `{"nombre":"Batch 42","descripcion":"night shift"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Order
	suite.decode(rec, &created)
	suite.Positive(created.Id)
	suite.Equal("Batch 42", created.Nombre)
	suite.Require().NotNil(created.Descripcion)
	suite.Equal("night shift", *created.Descripcion)
	suite.Equal(servers.OrderStatusCreated, created.Estado)
	suite.Nil(created.HoraInicio)
	suite.Empty(created.Pausas)
	id := created.Id

	// Start
	rec = suite.do(http.MethodPut, path(id, "iniciar"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var started servers.Order
	suite.decode(rec, &started)
	suite.Equal(servers.OrderStatusRunning, started.Estado)
	suite.Require().NotNil(started.HoraInicio)
	suite.True(t0.Equal(*started.HoraInicio))

	// Pause after 30s
	suite.clock.Advance(30 * time.Second)
	rec = suite.do(http.MethodPost, path(id, "pausar"), `{"motivo":"lunch"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var pause servers.Pause
	suite.decode(rec, &pause)
	suite.Positive(pause.Id)
	suite.Equal(id, pause.OrdenId)
	suite.Equal("lunch", pause.Motivo)
	suite.Nil(pause.Fin)
	suite.Nil(pause.Tiempo)

	suite.expectError(suite.do(http.MethodPost, path(id, "pausar"), `{"motivo":"again"}`),
		http.StatusBadRequest, "An active pause already exists for this order")

	// Resume after 60s of pause
	suite.clock.Advance(60 * time.Second)
	rec = suite.do(http.MethodPut, path(id, "reanudar"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resumed servers.Pause
	suite.decode(rec, &resumed)
	suite.Equal(pause.Id, resumed.Id)
	suite.Require().NotNil(resumed.Tiempo)
	suite.Equal(int64(60), *resumed.Tiempo)

	suite.expectError(suite.do(http.MethodPut, path(id, "reanudar"), ""),
		http.StatusBadRequest, "No active pause for this order")

	// Finish 200s after start
	suite.clock.Advance(110 * time.Second)
	rec = suite.do(http.MethodPut, path(id, "finalizar"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var finished servers.Order
	suite.decode(rec, &finished)
	suite.Equal(servers.OrderStatusFinished, finished.Estado)
	suite.Equal(int64(140), finished.TiempoTotal)
	suite.Equal(int64(60), finished.TiempoTotalPausas)
	suite.Require().Len(finished.Pausas, 1)

	suite.expectError(suite.do(http.MethodPut, path(id, "finalizar"), ""),
		http.StatusBadRequest, "Order has already been finished")
	suite.expectError(suite.do(http.MethodPut, path(id, "iniciar"), ""),
		http.StatusBadRequest, "Order has already been started")

	// Report
	rec = suite.do(http.MethodGet, path(id, "reporte"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var report servers.Report
	suite.decode(rec, &report)
	suite.Equal(id, report.Id)
	suite.Equal(int64(140), report.TiempoTotal)
	suite.Equal(int64(60), report.TiempoTotalPausas)
	suite.Require().Len(report.Pausas, 1)
	suite.Equal("lunch", report.Pausas[0].Motivo)
	suite.Require().NotNil(report.Pausas[0].Tiempo)
	suite.Equal(int64(60), *report.Pausas[0].Tiempo)

	// Status
	rec = suite.do(http.MethodGet, path(id, "estado"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var status servers.Order
	suite.decode(rec, &status)
	suite.Equal(servers.OrderStatusFinished, status.Estado)
	suite.Equal(int64(140), status.TiempoTotal)
}

func (suite *OrderAPIIntegrationTestSuite) TestFinishBeforeStart_IsRejected() {
	created := suite.createOrder("Batch 1")

	suite.expectError(suite.do(http.MethodPut, path(created.Id, "finalizar"), ""),
		http.StatusBadRequest, "Order has not been started")
}

func (suite *OrderAPIIntegrationTestSuite) TestMissingOrder_Returns404() {
	cases := []struct {
		method string
		action string
		body   string
	}{
		{http.MethodPut, "iniciar", ""},
		{http.MethodPost, "pausar", `{"motivo":"lunch"}`},
		{http.MethodPut, "reanudar", ""},
		{http.MethodPut, "finalizar", ""},
		{http.MethodGet, "estado", ""},
		{http.MethodGet, "reporte", ""},
	}

	for _, c := range cases {
		suite.Run(c.action, func() {
			suite.expectError(suite.do(c.method, path(999, c.action), c.body), http.StatusNotFound, "Order not found")
		})
	}
}

func (suite *OrderAPIIntegrationTestSuite) TestMissingOrder_DetailsNameTheID() {
	rec := suite.do(http.MethodPut, path(999, "iniciar"), "")

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	var body servers.Error
	suite.decode(rec, &body)
	suite.Require().NotNil(body.Details)
	suite.Equal("object not found: 999", *body.Details)

	rec = suite.do(http.MethodGet, path(999, "estado"), "")

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.decode(rec, &body)
	suite.Require().NotNil(body.Details)
	suite.Equal("object not found: 999", *body.Details)
}

func (suite *OrderAPIIntegrationTestSuite) TestPauseReason_IsCheckedAfterTheOrderIsFound() {
	suite.expectError(suite.do(http.MethodPost, path(999, "pausar"), `{"motivo":""}`),
		http.StatusNotFound, "Order not found")

	created := suite.createOrder("Batch 1")
	suite.expectError(suite.do(http.MethodPost, path(created.Id, "pausar"), `{}`),
		http.StatusBadRequest, "Invalid request")
	suite.expectError(suite.do(http.MethodPost, path(created.Id, "pausar"), `{"motivo":"`+strings.Repeat("r", 256)+`"}`),
		http.StatusBadRequest, "Invalid request")

	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, path(created.Id, "pausar"), `{"motivo":"break"}`).Code)
	suite.expectError(suite.do(http.MethodPost, path(created.Id, "pausar"), `{"motivo":""}`),
		http.StatusBadRequest, "An active pause already exists for this order")
}

func (suite *OrderAPIIntegrationTestSuite) TestPauseBeforeStart_IsAccepted() {
	created := suite.createOrder("Batch 1")

	rec := suite.do(http.MethodPost, path(created.Id, "pausar"), `{"motivo":"waiting for material"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, path(created.Id, "estado"), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var status servers.Order
	suite.decode(rec, &status)
	suite.Equal(servers.OrderStatusPaused, status.Estado)
	suite.Nil(status.HoraInicio)
}

func (suite *OrderAPIIntegrationTestSuite) TestFinishWhilePaused_LeavesPauseOpen() {
	created := suite.createOrder("Batch 1")
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPut, path(created.Id, "iniciar"), "").Code)

	suite.clock.Advance(50 * time.Second)
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, path(created.Id, "pausar"), `{"motivo":"break"}`).Code)

	suite.clock.Advance(25 * time.Second)
	rec := suite.do(http.MethodPut, path(created.Id, "finalizar"), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var finished servers.Order
	suite.decode(rec, &finished)
	suite.Equal(int64(75), finished.TiempoTotal)
	suite.Equal(int64(0), finished.TiempoTotalPausas)
	suite.Require().Len(finished.Pausas, 1)
	suite.Nil(finished.Pausas[0].Fin)

	rec = suite.do(http.MethodGet, path(created.Id, "reporte"), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var report servers.Report
	suite.decode(rec, &report)
	suite.Require().Len(report.Pausas, 1)
	suite.Nil(report.Pausas[0].Fin)
	suite.Nil(report.Pausas[0].Tiempo)
}

func (suite *OrderAPIIntegrationTestSuite) TestListOrders_NewestFirst() {
	rec := suite.do(http.MethodGet, "/ordenes", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())

	first := suite.createOrder("first")
	suite.clock.Advance(time.Minute)
	second := suite.createOrder("second")
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, path(first.Id, "pausar"), `{"motivo":"setup"}`).Code)

	rec = suite.do(http.MethodGet, "/ordenes", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var orders []servers.Order
	suite.decode(rec, &orders)
	suite.Require().Len(orders, 2)
	suite.Equal(second.Id, orders[0].Id)
	suite.Empty(orders[0].Pausas)
	suite.Equal(first.Id, orders[1].Id)
	suite.Require().Len(orders[1].Pausas, 1)
	suite.Equal("setup", orders[1].Pausas[0].Motivo)
}

func (suite *OrderAPIIntegrationTestSuite) TestProduction_HidesDetails() {
	suite.router = suite.newRouter(true)

	rec := suite.do(http.MethodPut, path(999, "iniciar"), "")

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.JSONEq(`{"error":"Order not found"}`, rec.Body.String())
}

func (suite *OrderAPIIntegrationTestSuite) TestNotifications_AreBroadcastAfterCommit() {
	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	suite.Require().NoError(err)
	_ = resp.Body.Close()
	defer func() { _ = conn.Close() }()

	suite.Require().Eventually(func() bool { return suite.hub.Subscribers() == 1 }, 5*time.Second, 10*time.Millisecond)

	created := suite.createOrder("Batch 42")
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPut, path(created.Id, "iniciar"), "").Code)

	// Rejected transitions emit nothing.
	suite.Require().Equal(http.StatusBadRequest, suite.do(http.MethodPut, path(created.Id, "iniciar"), "").Code)

	first := suite.readNotification(conn)
	suite.Equal(notifier.EventOrderCreated, first.Event)
	suite.Equal(created.Id, first.Data.Id)
	suite.Equal(servers.OrderStatusCreated, first.Data.Estado)

	second := suite.readNotification(conn)
	suite.Equal(notifier.EventOrderUpdated, second.Event)
	suite.Equal(servers.OrderStatusRunning, second.Data.Estado)

	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, _, err = conn.ReadMessage()
	suite.Error(err)
}

type notification struct {
	ID    string        `json:"id"`
	Event string        `json:"event"`
	Data  servers.Order `json:"data"`
}

func (suite *OrderAPIIntegrationTestSuite) readNotification(conn *websocket.Conn) notification {
	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	_, raw, err := conn.ReadMessage()
	suite.Require().NoError(err)

	var n notification
	suite.Require().NoError(json.Unmarshal(raw, &n))
	suite.NotEmpty(n.ID)
	return n
}

func TestOrderAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderAPIIntegrationTestSuite))
}
