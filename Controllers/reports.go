package Controllers

import (
	"errors"
	"fmt"
	"time"

	"LogiTrack/Models"
	"LogiTrack/Pricing"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

type ReportHandler struct {
	Data *Store.Data
}

func NewReportHandler(data *Store.Data) *ReportHandler {
	return &ReportHandler{Data: data}
}

// ReportRow is one request in a period report, with the shared tax model
// applied per row.
type ReportRow struct {
	Date          string  `json:"date"`
	InvoiceNumber string  `json:"invoiceNumber"`
	ClientName    string  `json:"clientName"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Tax           float64 `json:"tax"`
	Profit        float64 `json:"profit"`
}

// GetPeriodReport builds the request profitability report, optionally
// bounded by ?from=YYYY-MM-DD&to=YYYY-MM-DD and ?vehicle=<category>.
func (h *ReportHandler) GetPeriodReport(c *fiber.Ctx) error {
	requests, err := h.Data.Requests.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch requests",
		})
	}

	from, to, err := parsePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dates must be YYYY-MM-DD",
		})
	}
	vehicleFilter := c.Query("vehicle")

	rows := []ReportRow{}
	var totalRevenue, totalCost float64
	for _, r := range requests {
		if vehicleFilter != "" && string(r.VehicleType) != vehicleFilter {
			continue
		}
		if !inPeriod(r.CreatedAt, from, to) {
			continue
		}
		margin := Pricing.ComputeMargin(r.ClientCharge, r.DriverFee)
		rows = append(rows, ReportRow{
			Date:          r.CreatedAt,
			InvoiceNumber: r.InvoiceNumber,
			ClientName:    r.ClientName,
			Revenue:       r.ClientCharge,
			Cost:          r.DriverFee,
			Tax:           margin.Tax,
			Profit:        margin.NetProfit,
		})
		totalRevenue += r.ClientCharge
		totalCost += r.DriverFee
	}

	totals := Pricing.ComputeMargin(totalRevenue, totalCost)
	return c.JSON(fiber.Map{
		"rows": rows,
		"totals": fiber.Map{
			"revenue": Pricing.Round2(totalRevenue),
			"cost":    Pricing.Round2(totalCost),
			"tax":     totals.Tax,
			"profit":  totals.NetProfit,
		},
	})
}

// StatementRow is one line of a payee statement: completed requests as
// credits, ledger expenses as negative values. The shape feeds the CSV
// export directly (date, type, details, value).
type StatementRow struct {
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	Details string  `json:"details"`
	Value   float64 `json:"value"`
}

// payeeFromQuery reads ?kind=DRIVER|STAFF&id=... . An unknown kind or a
// missing id is a client error, never a silent driver default.
func payeeFromQuery(c *fiber.Ctx) (Models.PayeeRef, error) {
	payee := Models.PayeeRef{
		Kind: Models.PayeeKind(c.Query("kind", string(Models.PayeeDriver))),
		ID:   c.Query("id"),
	}
	switch payee.Kind {
	case Models.PayeeDriver, Models.PayeeStaff:
	default:
		return payee, errors.New("Unknown payee kind")
	}
	if payee.ID == "" {
		return payee, errors.New("Payee id is required")
	}
	return payee, nil
}

// GetPayrollStatement resolves one payee (?kind=DRIVER|STAFF&id=...) into
// statement rows plus totals.
func (h *ReportHandler) GetPayrollStatement(c *fiber.Ctx) error {
	payee, err := payeeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	name, rows, statement, err := h.buildStatement(c, payee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build statement",
		})
	}

	return c.JSON(fiber.Map{
		"payee":     name,
		"rows":      rows,
		"statement": statement,
	})
}

// ExportPayrollStatement streams the same statement as an XLSX workbook.
func (h *ReportHandler) ExportPayrollStatement(c *fiber.Ctx) error {
	payee, err := payeeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	name, rows, statement, err := h.buildStatement(c, payee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build statement",
		})
	}

	f := excelize.NewFile()
	sheetName := "Statement"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create workbook",
		})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Extrato Detalhado: %s", name))
	headers := []string{"Data", "Tipo", "Detalhes", "Valor (R$)"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c3", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 3, 3, headerStyle)
	}

	for i, row := range rows {
		line := i + 4
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", line), row.Details)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", line), row.Value)
	}

	summaryLine := len(rows) + 5
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryLine), "Total Receitas")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryLine), statement.Earnings)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryLine+1), "Total Despesas")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryLine+1), statement.Debits)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryLine+2), "Saldo Líquido")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryLine+2), statement.Net)
	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 22)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to write workbook",
		})
	}

	filename := fmt.Sprintf("extrato_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.SendStream(buffer)
}

func (h *ReportHandler) buildStatement(c *fiber.Ctx, payee Models.PayeeRef) (string, []StatementRow, Pricing.Statement, error) {
	expenses, err := h.Data.Expenses.FetchAll(c.Context())
	if err != nil {
		return "", nil, Pricing.Statement{}, err
	}

	var name string
	var statement Pricing.Statement
	rows := []StatementRow{}

	switch payee.Kind {
	case Models.PayeeStaff:
		contracts, err := h.Data.Contracts.FetchAll(c.Context())
		if err != nil {
			return "", nil, Pricing.Statement{}, err
		}
		name = "Desconhecido"
		for _, contract := range contracts {
			if staff, ok := contract.FindStaff(payee.ID); ok {
				name = staff.EmployeeName
				statement = Pricing.StaffStatement(staff, expenses)
				rows = append(rows, StatementRow{
					Date:    staff.CreatedAt,
					Type:    "Remuneração (Contrato Fixo)",
					Details: contract.ClientName,
					Value:   Pricing.StaffEarnings(staff),
				})
				break
			}
		}
	default:
		requests, err := h.Data.Requests.FetchAll(c.Context())
		if err != nil {
			return "", nil, Pricing.Statement{}, err
		}
		name = "Desconhecido"
		drivers, err := h.Data.Drivers.FetchAll(c.Context())
		if err != nil {
			return "", nil, Pricing.Statement{}, err
		}
		for _, d := range drivers {
			if d.ID == payee.ID {
				name = d.Name
				break
			}
		}
		statement = Pricing.DriverStatement(payee.ID, requests, expenses)
		for _, r := range requests {
			if r.DriverID == payee.ID && r.Status == Models.StatusCompleted {
				rows = append(rows, StatementRow{
					Date:    r.CreatedAt,
					Type:    "Receita (Corrida)",
					Details: fmt.Sprintf("Nota: %s - %s", r.InvoiceNumber, r.Destination),
					Value:   r.DriverFee,
				})
			}
		}
	}

	for _, e := range expenses {
		if e.Payee == payee {
			details := e.Description
			if details == "" {
				details = "-"
			}
			rows = append(rows, StatementRow{
				Date:    e.Date,
				Type:    fmt.Sprintf("Despesa (%s)", e.Type),
				Details: details,
				Value:   -e.Amount,
			})
		}
	}

	slices.SortFunc(rows, func(a, b StatementRow) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})

	return name, rows, statement, nil
}

func parsePeriod(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, err
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, err
		}
		// Inclusive upper bound
		to = to.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

func inPeriod(timestamp string, from, to time.Time) bool {
	t, err := Models.ParseTimestamp(timestamp)
	if err != nil {
		return false
	}
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
