package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail converts an application error into the uniform error payload.
// Validation problems map to 400, missing objects to 404, business-rule
// conflicts (refused transitions, locked orders, overpayment in strict
// mode, lost concurrent races) to 409, everything else to 500.
func fail(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		message = "internal server error"
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, order.ErrOrderHasNoItems):
		return http.StatusBadRequest

	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, order.ErrLineItemNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, services.ErrOverpayment),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
