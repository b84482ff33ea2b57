package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/generated/servers"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var transitionMessages = []struct {
	cause   error
	message string
}{
	{order.ErrAlreadyStarted, "Order has already been started"},
	{order.ErrNotStarted, "Order has not been started"},
	{order.ErrAlreadyFinished, "Order has already been finished"},
	{order.ErrActivePauseExists, "An active pause already exists for this order"},
	{order.ErrNoActivePause, "No active pause for this order"},
}

// errorResponder turns errors into JSON error bodies. Details carry the
// underlying error text and are left out in production.
type errorResponder struct {
	production bool
	logger     *slog.Logger
}

// classify maps an error to its HTTP status and public message. fallback is
// the message used for unexpected failures.
func classify(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, errs.ErrInvalidTransition):
		for _, t := range transitionMessages {
			if errors.Is(err, t.cause) {
				return http.StatusBadRequest, t.message
			}
		}
		return http.StatusBadRequest, "Invalid transition"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, fallback
	}
}

func (r errorResponder) respond(c echo.Context, err error, fallback string) error {
	status, message := classify(err, fallback)

	if status >= http.StatusInternalServerError {
		r.logger.ErrorContext(c.Request().Context(), message,
			"error", err,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}

	return c.JSON(status, r.body(message, err))
}

func (r errorResponder) body(message string, err error) servers.Error {
	body := servers.Error{Error: message}
	if !r.production && err != nil {
		details := err.Error()
		body.Details = &details
	}
	return body
}

// HTTPErrorHandler renders errors returned outside the handlers (unknown
// routes, bad path parameters, panics recovered by middleware) in the same
// JSON shape as handler errors.
func (r errorResponder) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
		if he.Internal != nil {
			err = he.Internal
		}
	}

	if status >= http.StatusInternalServerError {
		r.logger.ErrorContext(c.Request().Context(), "Unhandled request error", "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, r.body(message, err))
	}
	if writeErr != nil {
		r.logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}
