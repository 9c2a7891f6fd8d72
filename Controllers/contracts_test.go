package Controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"LogiTrack/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContractApp(t *testing.T) *fiber.App {
	t.Helper()
	handler := NewContractHandler(newTestData(t))

	app := fiber.New()
	app.Post("/contracts", handler.CreateContract)
	app.Put("/contracts", handler.UpdateContract)
	app.Post("/contracts/:id/staff", handler.AddStaff)
	return app
}

func decodeContractBody(t *testing.T, resp *http.Response) Models.FixedContract {
	t.Helper()
	var body struct {
		Contract Models.FixedContract `json:"contract"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Contract
}

func TestCreateContractAssignsInlineStaffIDs(t *testing.T) {
	app := newContractApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/contracts", fiber.Map{
		"clientName":    "Condomínio Central",
		"contractValue": 10000,
		"invoiceDay":    5,
		"staff": []fiber.Map{
			{"employeeName": "Maria", "salary": 2000},
			{"employeeName": "João", "salary": 1500},
		},
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	contract := decodeContractBody(t, resp)
	require.Len(t, contract.Staff, 2)
	assert.NotEmpty(t, contract.Staff[0].ID)
	assert.NotEmpty(t, contract.Staff[1].ID)
	assert.NotEqual(t, contract.Staff[0].ID, contract.Staff[1].ID)
	assert.NotEmpty(t, contract.Staff[0].CreatedAt)

	_, found := contract.FindStaff(contract.Staff[0].ID)
	assert.True(t, found)
}

func TestUpdateContractKeepsExistingStaffIDs(t *testing.T) {
	app := newContractApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/contracts", fiber.Map{
		"clientName":    "Condomínio Central",
		"contractValue": 10000,
		"invoiceDay":    5,
		"staff": []fiber.Map{
			{"employeeName": "Maria", "salary": 2000},
		},
	}))
	require.NoError(t, err)
	contract := decodeContractBody(t, resp)
	mariaID := contract.Staff[0].ID

	// Edit the contract carrying the existing staff plus a new inline one.
	contract.Staff = append(contract.Staff, Models.StaffExpense{
		EmployeeName: "João",
		Salary:       1500,
	})
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/contracts", contract))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	edited := decodeContractBody(t, resp)
	require.Len(t, edited.Staff, 2)
	assert.Equal(t, mariaID, edited.Staff[0].ID)
	assert.NotEmpty(t, edited.Staff[1].ID)
	assert.NotEqual(t, mariaID, edited.Staff[1].ID)
}
