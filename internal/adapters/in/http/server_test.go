package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func strPtr(v string) *string     { return &v }

func TestItemSpecs_ConvertsWeightToTenths(t *testing.T) {
	specs, err := itemSpecs([]LineItemRequest{
		{
			ServiceName:    "Wash & Fold",
			UnitPriceMinor: int64Ptr(700),
			PricingModel:   "per_weight",
			WeightKg:       floatPtr(2.5),
		},
	})

	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, order.PerWeight, specs[0].Model)
	assert.Equal(t, int64(25), specs[0].WeightTenths)
	assert.Equal(t, "Wash & Fold", specs[0].ServiceName)
	require.NotNil(t, specs[0].UnitPriceMinor)
	assert.Equal(t, int64(700), *specs[0].UnitPriceMinor)
}

func TestItemSpecs_ResolvesServiceID(t *testing.T) {
	raw := uuid.New().String()

	specs, err := itemSpecs([]LineItemRequest{
		{
			ServiceID:    strPtr(raw),
			PricingModel: "per_unit",
			Quantity:     intPtr(3),
		},
	})

	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.NotNil(t, specs[0].ServiceID)
	assert.Equal(t, raw, specs[0].ServiceID.String())
	assert.Equal(t, order.PerUnit, specs[0].Model)
	assert.Equal(t, 3, specs[0].Quantity)
}

func TestItemSpecs_RejectsUnknownPricingModel(t *testing.T) {
	_, err := itemSpecs([]LineItemRequest{
		{ServiceName: "Dry Cleaning", PricingModel: "flat"},
		{ServiceName: "Mystery", PricingModel: "per_smile"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[1]")
}

func TestItemSpecs_RejectsMalformedServiceID(t *testing.T) {
	_, err := itemSpecs([]LineItemRequest{
		{ServiceID: strPtr("not-a-uuid"), PricingModel: "flat"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[0].serviceId")
}

func TestItemSpecs_RejectsNegativeWeight(t *testing.T) {
	_, err := itemSpecs([]LineItemRequest{
		{ServiceName: "Wash", PricingModel: "per_weight", WeightKg: floatPtr(-1.0)},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[0].weightKg")
}

func TestWeightString(t *testing.T) {
	assert.Equal(t, "2.5", weightString(25))
	assert.Equal(t, "0", weightString(-5))
}

func TestPathOrderID(t *testing.T) {
	id := kernel.NewUUID()

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	parsed, err := pathOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	ctx.SetParamValues("not-a-uuid")
	_, err = pathOrderID(ctx)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
