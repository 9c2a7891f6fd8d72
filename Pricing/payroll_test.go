package Pricing

import (
	"testing"

	"LogiTrack/Models"

	"github.com/stretchr/testify/assert"
)

func TestDriverStatement(t *testing.T) {
	requests := []Models.TransportRequest{
		{ID: "r1", DriverID: "d1", Status: Models.StatusCompleted, DriverFee: 100.00},
		{ID: "r2", DriverID: "d1", Status: Models.StatusCompleted, DriverFee: 50.00},
		// Not completed yet, must not count
		{ID: "r3", DriverID: "d1", Status: Models.StatusPending, DriverFee: 70.00},
		// Another driver's work
		{ID: "r4", DriverID: "d2", Status: Models.StatusCompleted, DriverFee: 500.00},
	}
	expenses := []Models.DriverExpense{
		{ID: "e1", Payee: Models.PayeeRef{Kind: Models.PayeeDriver, ID: "d1"}, Type: Models.ExpenseFuel, Amount: 30.00},
		{ID: "e2", Payee: Models.PayeeRef{Kind: Models.PayeeStaff, ID: "d1"}, Type: Models.ExpenseFuel, Amount: 999.00},
	}

	statement := DriverStatement("d1", requests, expenses)
	assert.Equal(t, 150.00, statement.Earnings)
	assert.Equal(t, 30.00, statement.Debits)
	assert.Equal(t, 120.00, statement.Net)
}

func TestStaffStatement(t *testing.T) {
	staff := Models.StaffExpense{
		ID:                 "s1",
		EmployeeName:       "Maria",
		Salary:             2000,
		MealAllowance:      400,
		TransportAllowance: 200,
	}

	statement := StaffStatement(staff, nil)
	assert.Equal(t, 2600.00, statement.Earnings)
	assert.Equal(t, 0.00, statement.Debits)
	assert.Equal(t, 2600.00, statement.Net)
}

func TestStaffStatementWithDebits(t *testing.T) {
	staff := Models.StaffExpense{ID: "s1", Salary: 1800, VehicleRentalAllowance: 300}
	expenses := []Models.DriverExpense{
		{ID: "e1", Payee: Models.PayeeRef{Kind: Models.PayeeStaff, ID: "s1"}, Type: Models.ExpenseAdvance, Amount: 250.00},
	}

	statement := StaffStatement(staff, expenses)
	assert.Equal(t, 2100.00, statement.Earnings)
	assert.Equal(t, 250.00, statement.Debits)
	assert.Equal(t, 1850.00, statement.Net)
}

func TestSummarizeContract(t *testing.T) {
	contract := Models.FixedContract{
		ID:            "c1",
		ContractValue: 10000,
		Staff: []Models.StaffExpense{
			{ID: "s1", Salary: 2000, MealAllowance: 400, TransportAllowance: 200},
			{ID: "s2", Salary: 1500},
		},
	}

	summary := SummarizeContract(contract)
	assert.Equal(t, 800.00, summary.Tax)
	assert.Equal(t, 4100.00, summary.StaffCost)
	assert.Equal(t, 5100.00, summary.Net)
}

func TestSummarizeContractsGlobal(t *testing.T) {
	contracts := []Models.FixedContract{
		{ID: "c1", ContractValue: 10000, Staff: []Models.StaffExpense{{Salary: 4000}}},
		{ID: "c2", ContractValue: 5000, Staff: []Models.StaffExpense{{Salary: 1000}, {Salary: 500}}},
	}

	global := SummarizeContracts(contracts)
	assert.Equal(t, 15000.00, global.Revenue)
	assert.Equal(t, 1200.00, global.Tax)
	assert.Equal(t, 5500.00, global.StaffCost)
	assert.Equal(t, 8300.00, global.Margin)
}

func TestSummarizeContractsEmpty(t *testing.T) {
	global := SummarizeContracts(nil)
	assert.Equal(t, 0.00, global.Revenue)
	assert.Equal(t, 0.00, global.Margin)
}
