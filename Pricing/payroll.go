package Pricing

import (
	"LogiTrack/Models"
)

// Statement is one payee's payroll position: what they earned, what was
// advanced or spent against them, and what remains payable.
type Statement struct {
	Earnings float64 `json:"earnings"`
	Debits   float64 `json:"debits"`
	Net      float64 `json:"net"`
}

// DriverStatement totals a contracted driver: earnings are the driver fees
// of their completed requests, debits their personal expense ledger.
func DriverStatement(driverID string, requests []Models.TransportRequest, expenses []Models.DriverExpense) Statement {
	var earnings float64
	for _, r := range requests {
		if r.DriverID == driverID && r.Status == Models.StatusCompleted {
			earnings += r.DriverFee
		}
	}
	debits := PayeeDebits(Models.PayeeRef{Kind: Models.PayeeDriver, ID: driverID}, expenses)
	return Statement{
		Earnings: Round2(earnings),
		Debits:   Round2(debits),
		Net:      Round2(earnings - debits),
	}
}

// StaffEarnings is a fixed-contract staff member's monthly compensation:
// salary plus every allowance, absent allowances counting as zero.
func StaffEarnings(s Models.StaffExpense) float64 {
	return Round2(s.Salary + s.MealAllowance + s.TransportAllowance + s.HazardAllowance + s.VehicleRentalAllowance)
}

// StaffStatement totals a fixed-contract staff member against the same
// expense ledger drivers use.
func StaffStatement(staff Models.StaffExpense, expenses []Models.DriverExpense) Statement {
	earnings := StaffEarnings(staff)
	debits := PayeeDebits(Models.PayeeRef{Kind: Models.PayeeStaff, ID: staff.ID}, expenses)
	return Statement{
		Earnings: earnings,
		Debits:   Round2(debits),
		Net:      Round2(earnings - debits),
	}
}

// PayeeDebits sums the expense ledger for one tagged payee.
func PayeeDebits(payee Models.PayeeRef, expenses []Models.DriverExpense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Payee == payee {
			total += e.Amount
		}
	}
	return Round2(total)
}

// ContractSummary is one fixed contract's financial position. Staff cost
// counts earnings only; personal expense ledgers are not a contract cost.
type ContractSummary struct {
	ContractValue float64 `json:"contractValue"`
	Tax           float64 `json:"tax"`
	StaffCost     float64 `json:"staffCost"`
	Net           float64 `json:"net"`
}

func SummarizeContract(c Models.FixedContract) ContractSummary {
	var staffCost float64
	for _, s := range c.Staff {
		staffCost += StaffEarnings(s)
	}
	tax := Round2(c.ContractValue * TaxRate)
	return ContractSummary{
		ContractValue: c.ContractValue,
		Tax:           tax,
		StaffCost:     Round2(staffCost),
		Net:           Round2(c.ContractValue - tax - staffCost),
	}
}

// GlobalSummary aggregates every fixed contract.
type GlobalSummary struct {
	Revenue   float64 `json:"revenue"`
	Tax       float64 `json:"tax"`
	StaffCost float64 `json:"staffCost"`
	Margin    float64 `json:"margin"`
}

func SummarizeContracts(contracts []Models.FixedContract) GlobalSummary {
	var revenue, staffCost float64
	for _, c := range contracts {
		revenue += c.ContractValue
		for _, s := range c.Staff {
			staffCost += StaffEarnings(s)
		}
	}
	tax := Round2(revenue * TaxRate)
	return GlobalSummary{
		Revenue:   Round2(revenue),
		Tax:       tax,
		StaffCost: Round2(staffCost),
		Margin:    Round2(revenue - tax - staffCost),
	}
}
