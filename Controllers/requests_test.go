package Controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestData(t *testing.T) *Store.Data {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.StoredCollection{}))
	return Store.NewData(Store.NewGateway(Store.NewLocalStore(db), nil), Models.DefaultRates())
}

func newRequestApp(t *testing.T) *fiber.App {
	t.Helper()
	handler := NewRequestHandler(newTestData(t))

	app := fiber.New()
	app.Get("/requests", handler.GetRequests)
	app.Post("/requests", handler.CreateRequest)
	app.Put("/requests", handler.UpdateRequest)
	app.Patch("/requests/:id/status", handler.UpdateStatus)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeRequestBody(t *testing.T, resp *http.Response) Models.TransportRequest {
	t.Helper()
	var body struct {
		Request Models.TransportRequest `json:"request"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Request
}

func TestCreateRequestDerivesFeesAndInvoice(t *testing.T) {
	app := newRequestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/requests", fiber.Map{
		"clientName":  "Cliente Demo",
		"origin":      "Av. Paulista, 1000",
		"destination": "Rua Augusta, 500",
		"vehicleType": "CARRO",
		"distanceKm":  10,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeRequestBody(t, resp)
	assert.Equal(t, 33.00, created.DriverFee)
	assert.Equal(t, 48.00, created.ClientCharge)
	assert.Equal(t, "IBEC - 001", created.InvoiceNumber)
	assert.Equal(t, Models.StatusPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreateRequestUnknownCategoryIsConfigurationError(t *testing.T) {
	app := newRequestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/requests", fiber.Map{
		"clientName":  "Cliente Demo",
		"origin":      "A",
		"destination": "B",
		"vehicleType": "TRATOR",
		"distanceKm":  10,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateRequestPreservesManualFeeOverride(t *testing.T) {
	app := newRequestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/requests", fiber.Map{
		"clientName":  "Cliente Demo",
		"origin":      "A",
		"destination": "B",
		"vehicleType": "CARRO",
		"distanceKm":  10,
	}))
	require.NoError(t, err)
	created := decodeRequestBody(t, resp)

	// Operator overrides the fees without touching distance or category.
	created.DriverFee = 99.00
	created.ClientCharge = 120.00
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/requests", created))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	overridden := decodeRequestBody(t, resp)
	assert.Equal(t, 99.00, overridden.DriverFee)
	assert.Equal(t, 120.00, overridden.ClientCharge)

	// A later edit touching only observations keeps the override.
	overridden.Observations = "entregar na portaria"
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/requests", overridden))
	require.NoError(t, err)

	edited := decodeRequestBody(t, resp)
	assert.Equal(t, 99.00, edited.DriverFee)
	assert.Equal(t, 120.00, edited.ClientCharge)
	assert.Equal(t, "entregar na portaria", edited.Observations)
}

func TestUpdateRequestRecomputesWhenDistanceChanges(t *testing.T) {
	app := newRequestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/requests", fiber.Map{
		"clientName":  "Cliente Demo",
		"origin":      "A",
		"destination": "B",
		"vehicleType": "CARRO",
		"distanceKm":  10,
	}))
	require.NoError(t, err)
	created := decodeRequestBody(t, resp)

	created.DriverFee = 99.00 // override is discarded once the route changes
	created.DistanceKm = 20
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/requests", created))
	require.NoError(t, err)

	edited := decodeRequestBody(t, resp)
	assert.Equal(t, 58.00, edited.DriverFee)
	assert.Equal(t, 88.00, edited.ClientCharge)
}

func TestUpdateStatusAllowsAnyOfTheThreeStates(t *testing.T) {
	app := newRequestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/requests", fiber.Map{
		"clientName":  "Cliente Demo",
		"origin":      "A",
		"destination": "B",
		"vehicleType": "MOTO",
		"distanceKm":  5,
	}))
	require.NoError(t, err)
	created := decodeRequestBody(t, resp)

	// Straight from PENDENTE to CONCLUIDO; monotonicity is not enforced.
	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/requests/"+created.ID+"/status", fiber.Map{
		"status": "CONCLUIDO",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/requests/"+created.ID+"/status", fiber.Map{
		"status": "INVENTADO",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNextInvoiceNumber(t *testing.T) {
	assert.Equal(t, "IBEC - 001", NextInvoiceNumber(nil))
	assert.Equal(t, "IBEC - 008", NextInvoiceNumber([]Models.TransportRequest{
		{InvoiceNumber: "IBEC - 007"},
		{InvoiceNumber: "IBEC - 002"},
		{InvoiceNumber: "AVULSA-99"},
	}))
}
