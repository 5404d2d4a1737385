package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultInvoiceDescription = "Services Rendered"
	defaultInvoiceCity        = "City, Country"
	defaultInvoiceEmail       = "contact@business.com"
	paymentLinkBase           = "https://checkout.stripe.com/pay/demo-"
)

// Invoice is a one-line invoice issued by the business to a client.
type Invoice struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	IssuedAt     time.Time       `json:"issuedAt"`
	BusinessName string          `json:"businessName"`
	BusinessCity string          `json:"businessCity"`
	BusinessMail string          `json:"businessEmail"`
	ClientName   string          `json:"clientName" validate:"required"`
	ClientEmail  string          `json:"clientEmail,omitempty" validate:"omitempty,email"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	PaymentLink  string          `json:"paymentLink,omitempty"`
}

// InvoiceNumber is "BIL-" followed by the last six digits of the millisecond
// timestamp.
func InvoiceNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "BIL-" + ms
}

// NewInvoice fills business details from the profile, applying the same
// fallbacks the printed invoice uses.
func NewInvoice(p BusinessProfile, id, clientName, clientEmail, description string, amount decimal.Decimal, now time.Time) (Invoice, error) {
	inv := Invoice{
		ID:           id,
		Number:       InvoiceNumber(now),
		IssuedAt:     now,
		BusinessName: p.BusinessName,
		BusinessCity: p.City,
		BusinessMail: p.Email,
		ClientName:   clientName,
		ClientEmail:  clientEmail,
		Description:  description,
		Amount:       amount,
		Currency:     p.CurrencyCode,
	}
	if inv.BusinessCity == "" {
		inv.BusinessCity = defaultInvoiceCity
	}
	if inv.BusinessMail == "" {
		inv.BusinessMail = defaultInvoiceEmail
	}
	if inv.Description == "" {
		inv.Description = defaultInvoiceDescription
	}

	if err := ValidateStruct(inv); err != nil {
		return Invoice{}, err
	}
	if !amount.IsPositive() {
		return Invoice{}, fmt.Errorf("%w: invoice amount must be > 0", ErrInvalidInput)
	}
	return inv, nil
}

// PaymentLink returns a simulated checkout URL. A client email is required.
func PaymentLink(inv Invoice, now time.Time) (string, error) {
	if inv.ClientEmail == "" {
		return "", fmt.Errorf("%w: client email is required for a payment link", ErrInvalidInput)
	}
	return paymentLinkBase + strconv.FormatInt(now.UnixMilli(), 10), nil
}
