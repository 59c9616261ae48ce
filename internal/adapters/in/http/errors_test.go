package http

import (
	"errors"
	"net/http"
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor_ValidationErrorsAreBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.NewValueIsRequiredError("customerId")))
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.NewValueIsInvalidError("status")))
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.NewValueIsOutOfRangeError("limit", 500, 1, 100)))
	assert.Equal(t, http.StatusBadRequest, statusFor(order.ErrOrderHasNoItems))
}

func TestStatusFor_MissingObjectsAreNotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(errs.NewObjectNotFoundError("orderId", "x")))
	assert.Equal(t, http.StatusNotFound, statusFor(order.ErrLineItemNotFound))
}

func TestStatusFor_BusinessConflictsAreConflict(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor(order.ErrInvalidTransition))
	assert.Equal(t, http.StatusConflict, statusFor(order.ErrOrderLocked))
	assert.Equal(t, http.StatusConflict, statusFor(services.ErrOverpayment))
	assert.Equal(t, http.StatusConflict, statusFor(errs.NewConcurrentModificationError("orderId", "x")))
	assert.Equal(t, http.StatusConflict, statusFor(errs.NewObjectAlreadyExistsError("number", "ORD-20260831-00001")))
}

func TestStatusFor_WrappedErrorsKeepTheirStatus(t *testing.T) {
	wrapped := errs.NewValueIsInvalidErrorWithCause("items[0]", order.ErrOrderHasNoItems)
	assert.Equal(t, http.StatusBadRequest, statusFor(wrapped))
}

func TestStatusFor_UnknownErrorsAreInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("connection reset")))
}
