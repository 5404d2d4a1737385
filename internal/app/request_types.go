package app

import "github.com/shopspring/decimal"

// SignUpRequest is the onboarding form.
type SignUpRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	OwnerName    string `json:"ownerName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	City         string `json:"city"`
	Currency     string `json:"currency"` // defaults to USD
}

type SaleRequest struct {
	Day    string          `json:"day" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionRequest is one income or expense line.
type TransactionRequest struct {
	Kind        string          `json:"type" validate:"oneof=income expense"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
}

type InventoryItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Stock    int             `json:"stock" validate:"gte=0"`
	MinStock int             `json:"minStock" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

// GoalRequest creates a goal. Deadline is YYYY-MM-DD.
type GoalRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Type        string          `json:"type" validate:"oneof=revenue savings customers inventory custom"`
	Deadline    string          `json:"deadline" validate:"required,datetime=2006-01-02"`
	Unit        string          `json:"unit"`
}

type InvoiceRequest struct {
	ClientName  string          `json:"clientName"`
	ClientEmail string          `json:"clientEmail"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// LenderRequest describes the loan being sought. Location defaults to the
// business city.
type LenderRequest struct {
	Location string          `json:"location"`
	Amount   decimal.Decimal `json:"amount"`
	Purpose  string          `json:"purpose"`
}

type TeamMemberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}
