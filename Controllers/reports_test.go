package Controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportApp(t *testing.T) *fiber.App {
	t.Helper()
	handler := NewReportHandler(newTestData(t))

	app := fiber.New()
	app.Get("/reports/payroll", handler.GetPayrollStatement)
	app.Get("/reports/payroll/export", handler.ExportPayrollStatement)
	return app
}

func TestPayrollStatementRejectsUnknownKind(t *testing.T) {
	app := newReportApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/payroll?kind=FORNECEDOR&id=x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/reports/payroll/export?kind=FORNECEDOR&id=x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPayrollStatementRequiresPayeeID(t *testing.T) {
	app := newReportApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/payroll?kind=DRIVER", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPayrollStatementAcceptsBothKinds(t *testing.T) {
	app := newReportApp(t)

	for _, kind := range []string{"DRIVER", "STAFF"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/payroll?kind="+kind+"&id=unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "kind %s", kind)
	}
}
