package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/rider"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor classifies a use-case error into an HTTP status: bad input is
// 400, unknown identifiers are 404, lost races are 409, and requests that
// are well-formed but illegal in the aggregate's current state are 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, rider.ErrRiderUnavailable),
		errors.Is(err, rider.ErrRiderBusy),
		errors.Is(err, payment.ErrAlreadySettled),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrRiderRequired),
		errors.Is(err, order.ErrRiderAssignmentNotAllowed),
		errors.Is(err, payment.ErrNotRefundable),
		errors.Is(err, payment.ErrNotVoidable):
		return http.StatusUnprocessableEntity

	case errors.Is(err, payment.ErrDuplicateActivePayment),
		errors.Is(err, payment.ErrOverRefund),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// errInvalidBody wraps a bind failure so it classifies as a 400.
func errInvalidBody(cause error) error {
	return errs.NewValueIsInvalidErrorWithCause("body", cause)
}

func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, DataResponse{
		Success: true,
		Data:    data,
	})
}
