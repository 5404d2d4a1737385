package app

import (
	"context"
	"io"

	"bilantra/internal/core"
	"bilantra/internal/export"
	"bilantra/internal/store"

	"github.com/google/uuid"
)

const defaultReportDays = 30

// invoice builds an invoice from the business profile.
func (s *appService) invoice(ctx context.Context, email string, req InvoiceRequest) (core.Invoice, error) {
	var inv core.Invoice
	err := s.read(ctx, email, func(sess *store.Session) error {
		var err error
		inv, err = core.NewInvoice(sess.Snapshot.Profile, uuid.NewString(),
			req.ClientName, req.ClientEmail, req.Description, req.Amount, s.now())
		return err
	})
	return inv, err
}

func (s *appService) CreateInvoice(ctx context.Context, email string, req InvoiceRequest) (*InvoiceResult, error) {
	inv, err := s.invoice(ctx, email, req)
	if err != nil {
		return nil, err
	}
	return &InvoiceResult{Invoice: inv, Text: export.InvoiceText(inv)}, nil
}

func (s *appService) InvoicePDF(ctx context.Context, email string, req InvoiceRequest) ([]byte, error) {
	inv, err := s.invoice(ctx, email, req)
	if err != nil {
		return nil, err
	}
	if inv.ClientEmail != "" {
		inv.PaymentLink, _ = core.PaymentLink(inv, s.now())
	}
	return export.InvoicePDF(inv)
}

func (s *appService) PaymentLink(ctx context.Context, email string, req InvoiceRequest) (*InvoiceResult, error) {
	inv, err := s.invoice(ctx, email, req)
	if err != nil {
		return nil, err
	}
	link, err := core.PaymentLink(inv, s.now())
	if err != nil {
		return nil, err
	}
	inv.PaymentLink = link
	return &InvoiceResult{Invoice: inv, Text: export.InvoiceText(inv)}, nil
}

// ─── Reports ────────────────────────────────────────────────────────────────

func (s *appService) Report(ctx context.Context, email string, kind core.ReportKind) (*core.Report, error) {
	var out core.Report
	err := s.read(ctx, email, func(sess *store.Session) error {
		var err error
		out, err = core.BuildReport(sess.Snapshot, kind, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) ReportText(ctx context.Context, email string, periodDays int) (string, error) {
	if periodDays <= 0 {
		periodDays = defaultReportDays
	}
	var out string
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = export.ReportText(sess.Snapshot, periodDays, s.now())
		return nil
	})
	return out, err
}

func (s *appService) ExportWorkbook(ctx context.Context, email string, w io.Writer) error {
	var snap core.Snapshot
	err := s.read(ctx, email, func(sess *store.Session) error {
		snap = sess.Snapshot.Clone()
		return nil
	})
	if err != nil {
		return err
	}
	return export.WriteWorkbook(w, snap, s.now())
}
