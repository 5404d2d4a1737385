package export

import (
	"bytes"
	"fmt"

	"bilantra/internal/core"

	"github.com/go-pdf/fpdf"
)

// InvoicePDF renders inv as a single-page A4 PDF. Amounts are printed with the
// ISO currency code because the core PDF fonts lack most currency glyphs.
func InvoicePDF(inv core.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "BILANTRA OS - INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Invoice #: "+inv.Number)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+inv.IssuedAt.Format("2006-01-02"))
	pdf.Ln(10)

	block := func(title string, lines ...string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, title)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, l := range lines {
			if l == "" {
				continue
			}
			pdf.Cell(0, 5, tr(l))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}
	block("From:", inv.BusinessName, inv.BusinessCity, inv.BusinessMail)
	block("To:", inv.ClientName, inv.ClientEmail)

	amount := fmt.Sprintf("%s %s", inv.Currency, inv.Amount.StringFixed(2))

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(130, 8, tr(inv.Description), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, amount, "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, amount, "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	if inv.PaymentLink != "" {
		pdf.Cell(0, 5, "Payment Link: "+inv.PaymentLink)
		pdf.Ln(8)
	}
	pdf.Cell(0, 5, "Thank you for your business!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
