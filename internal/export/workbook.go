package export

import (
	"fmt"
	"io"
	"time"

	"bilantra/internal/core"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary   = "Summary"
	sheetSales     = "Sales"
	sheetCashFlow  = "Cash Flow"
	sheetInventory = "Inventory"
)

// WriteWorkbook writes an XLSX export of s with one sheet per report section.
func WriteWorkbook(w io.Writer, s core.Snapshot, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{sheetSales, sheetCashFlow, sheetInventory} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	sum := core.Summarize(s)
	summary := [][]any{
		{"Business", s.Profile.BusinessName},
		{"Currency", s.Profile.CurrencyCode},
		{"Generated", now.Format("2006-01-02 15:04")},
		{"Total Revenue", sum.TotalRevenue.InexactFloat64()},
		{"Total Income", sum.TotalIncome.InexactFloat64()},
		{"Total Expenses", sum.TotalExpenses.InexactFloat64()},
		{"Net Profit", sum.NetProfit.InexactFloat64()},
		{"Profit Margin %", sum.ProfitMargin.Round(1).InexactFloat64()},
		{"Inventory Value", sum.InventoryValue.InexactFloat64()},
		{"Loan Readiness", core.LoanReadinessScore(s)},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return err
	}

	sales := [][]any{{"Day", "Revenue"}}
	for _, r := range s.Sales {
		sales = append(sales, []any{r.Day, r.Revenue.InexactFloat64()})
	}
	if err := writeRows(f, sheetSales, sales); err != nil {
		return err
	}

	ledger := [][]any{{"ID", "Type", "Amount", "Description", "Date", "Time"}}
	for _, e := range s.Ledger {
		ledger = append(ledger, []any{e.ID, string(e.Kind), e.Amount.InexactFloat64(), e.Description, e.Date, e.Time})
	}
	if err := writeRows(f, sheetCashFlow, ledger); err != nil {
		return err
	}

	items := [][]any{{"ID", "Name", "Stock", "Min Stock", "Price", "Value", "Status"}}
	for _, it := range s.Inventory {
		value := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Stock)))
		items = append(items, []any{it.ID, it.Name, it.Stock, it.MinStock, it.UnitPrice.InexactFloat64(), value.InexactFloat64(), string(it.Status())})
	}
	if err := writeRows(f, sheetInventory, items); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
