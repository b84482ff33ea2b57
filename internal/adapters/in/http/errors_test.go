package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/generated/servers"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         errs.NewObjectNotFoundError("orderID", "7"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Order not found",
		},
		{
			name:        "already started",
			err:         errs.NewInvalidTransitionErrorWithCause("start", "Running", order.ErrAlreadyStarted),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Order has already been started",
		},
		{
			name:        "not started",
			err:         errs.NewInvalidTransitionErrorWithCause("finish", "Created", order.ErrNotStarted),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Order has not been started",
		},
		{
			name:        "already finished",
			err:         errs.NewInvalidTransitionErrorWithCause("finish", "Finished", order.ErrAlreadyFinished),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Order has already been finished",
		},
		{
			name:        "active pause",
			err:         errs.NewInvalidTransitionErrorWithCause("pause", "Paused", order.ErrActivePauseExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "An active pause already exists for this order",
		},
		{
			name:        "no active pause",
			err:         fmt.Errorf("resume: %w", errs.NewInvalidTransitionErrorWithCause("resume", "Running", order.ErrNoActivePause)),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No active pause for this order",
		},
		{
			name:        "transition without known cause",
			err:         errs.NewInvalidTransitionError("start", "Finished"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid transition",
		},
		{
			name:        "required value",
			err:         errs.NewValueIsRequiredError("name"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request",
		},
		{
			name:        "out of range",
			err:         errs.NewValueIsOutOfRangeError("name length", 101, 1, 100),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request",
		},
		{
			name:        "unexpected",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error starting order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err, "Error starting order")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestErrorResponder_Body(t *testing.T) {
	err := errors.New("connection reset")

	t.Run("development includes details", func(t *testing.T) {
		body := errorResponder{production: false}.body("Error listing orders", err)

		assert.Equal(t, "Error listing orders", body.Error)
		require.NotNil(t, body.Details)
		assert.Equal(t, "connection reset", *body.Details)
	})

	t.Run("production omits details", func(t *testing.T) {
		body := errorResponder{production: true}.body("Error listing orders", err)

		assert.Equal(t, "Error listing orders", body.Error)
		assert.Nil(t, body.Details)

		raw, marshalErr := json.Marshal(body)
		require.NoError(t, marshalErr)
		assert.JSONEq(t, `{"error":"Error listing orders"}`, string(raw))
	})
}

func TestErrorResponder_Respond(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	responder := errorResponder{production: false, logger: discardLogger()}
	err := responder.respond(c, errs.NewObjectNotFoundError("orderID", "3"), "Error retrieving order status")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order not found", body.Error)
	require.NotNil(t, body.Details)
	assert.Equal(t, "object not found: 3", *body.Details)
}

func TestErrorResponder_HTTPErrorHandler(t *testing.T) {
	t.Run("echo error keeps status and message", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nowhere", nil), rec)

		errorResponder{production: true, logger: discardLogger()}.HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		errorResponder{production: true, logger: discardLogger()}.HTTPErrorHandler(errors.New("boom"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("head request has no body", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		errorResponder{logger: discardLogger()}.HTTPErrorHandler(echo.ErrMethodNotAllowed, c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
