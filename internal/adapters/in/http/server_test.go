package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchOrderContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPatch, "/orders/:id", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("7c9d5f1e-2a4b-4c6d-8e0f-1a2b3c4d5e6f")
	return ctx, rec
}

func TestServer_PatchOrder_HalfCoordinatePairRejected(t *testing.T) {
	tests := map[string]string{
		"latitude only":  `{"instructions":"ring twice","latitude":-0.18}`,
		"longitude only": `{"instructions":"ring twice","longitude":-78.48}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, rec := patchOrderContext(t, body)

			srv := &Server{}
			require.NoError(t, srv.PatchOrder(ctx))
			assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "required")
		})
	}
}

func TestServer_CreateOrder_HalfCoordinatePairRejected(t *testing.T) {
	body := `{
		"customerId": "7c9d5f1e-2a4b-4c6d-8e0f-1a2b3c4d5e6f",
		"vehicleType": "MOTORCYCLE",
		"pickupAddress": {"street": "Av. Amazonas 123", "city": "Quito", "longitude": -78.48},
		"deliveryAddress": {"street": "Av. Shyris 456", "city": "Quito"},
		"items": [{"description": "documents", "quantity": 1, "weightKg": "0.5"}]
	}`

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	srv := &Server{}
	require.NoError(t, srv.CreateOrder(ctx))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestPointFromRequest(t *testing.T) {
	lat, lon := -0.1807, -78.4678

	t.Run("no coordinates means no point", func(t *testing.T) {
		point, err := pointFromRequest(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, point)
	})

	t.Run("full pair builds a point", func(t *testing.T) {
		point, err := pointFromRequest(&lat, &lon)
		require.NoError(t, err)
		require.NotNil(t, point)
		assert.InDelta(t, lat, point.Latitude(), 1e-9)
		assert.InDelta(t, lon, point.Longitude(), 1e-9)
	})

	t.Run("missing longitude is rejected", func(t *testing.T) {
		_, err := pointFromRequest(&lat, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing latitude is rejected", func(t *testing.T) {
		_, err := pointFromRequest(nil, &lon)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
