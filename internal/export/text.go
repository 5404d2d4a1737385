// Package export renders invoices and reports for download: plain text, PDF
// and XLSX.
package export

import (
	"fmt"
	"strings"
	"time"

	"bilantra/internal/core"
	"bilantra/internal/locale"
)

// InvoiceText renders the printable plain-text invoice.
func InvoiceText(inv core.Invoice) string {
	amount := locale.FormatMoney(inv.Currency, inv.Amount)
	link := inv.PaymentLink
	if link == "" {
		link = "N/A"
	}

	var b strings.Builder
	b.WriteString("BILANTRA OS - INVOICE\n\n")
	fmt.Fprintf(&b, "Invoice #: %s\n", inv.Number)
	fmt.Fprintf(&b, "Date: %s\n\n", inv.IssuedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "From:\n%s\n%s\n%s\n\n", inv.BusinessName, inv.BusinessCity, inv.BusinessMail)
	fmt.Fprintf(&b, "To:\n%s\n%s\n\n", inv.ClientName, inv.ClientEmail)
	fmt.Fprintf(&b, "Description: %s\n", inv.Description)
	fmt.Fprintf(&b, "Amount: %s\n\n", amount)
	fmt.Fprintf(&b, "Total: %s\n\n", amount)
	fmt.Fprintf(&b, "Payment Link: %s\n\n", link)
	b.WriteString("Thank you for your business!\n")
	b.WriteString("Powered by Bilantra OS - Advanced Business Management Platform\n")
	return b.String()
}

// ReportText renders the full business report covering the given number of days.
func ReportText(s core.Snapshot, periodDays int, now time.Time) string {
	cur := s.Profile.CurrencyCode
	fin := core.BuildFinancialReport(s)
	inv := core.BuildInventoryReport(s.Inventory)

	var b strings.Builder
	b.WriteString("BILANTRA OS - ADVANCED BUSINESS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Business: %s\n", s.Profile.BusinessName)
	fmt.Fprintf(&b, "Period: Last %d days\n\n", periodDays)

	b.WriteString("=== FINANCIAL SUMMARY ===\n")
	fmt.Fprintf(&b, "Total Revenue: %s\n", locale.FormatMoney(cur, fin.Revenue))
	fmt.Fprintf(&b, "Total Expenses: %s\n", locale.FormatMoney(cur, fin.Expenses))
	fmt.Fprintf(&b, "Net Profit: %s\n", locale.FormatMoney(cur, fin.Profit))
	fmt.Fprintf(&b, "Profit Margin: %s%%\n\n", fin.ProfitMargin.StringFixed(1))

	b.WriteString("=== INVENTORY OVERVIEW ===\n")
	fmt.Fprintf(&b, "Total Inventory Value: %s\n", locale.FormatMoney(cur, inv.TotalValue))
	fmt.Fprintf(&b, "Total Items: %d\n", inv.TotalItems)
	fmt.Fprintf(&b, "Low Stock Alerts: %d\n", inv.LowStockItems)
	fmt.Fprintf(&b, "Average Item Value: %s\n\n", locale.FormatMoney(cur, inv.AverageValue))

	b.WriteString("=== CASH FLOW ANALYSIS ===\n")
	for _, e := range s.Ledger {
		sign := "+"
		if e.Kind == core.Expense {
			sign = "-"
		}
		fmt.Fprintf(&b, "%s: %s%s - %s\n", e.Date, sign, locale.FormatMoney(cur, e.Amount), e.Description)
	}

	b.WriteString("\n=== RECOMMENDATIONS ===\n")
	for _, in := range core.GenerateInsights(s, core.InsightOptions{CurrencySymbol: locale.Symbol(cur)}) {
		if in.Actionable {
			fmt.Fprintf(&b, "• %s\n", in.Title)
		}
	}
	b.WriteString("\nGenerated by Bilantra OS - Advanced Business Management Platform\n")
	return b.String()
}
