package app

import (
	"bilantra/internal/core"

	"github.com/shopspring/decimal"
)

// AccountResult identifies an account after signup, login or a settings change.
type AccountResult struct {
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	OwnerName    string `json:"ownerName"`
	Currency     string `json:"currency"`
	Language     string `json:"language"`
}

// DashboardResult is the home screen: the snapshot plus every derived figure
// and the label table for the account's language.
type DashboardResult struct {
	Account        AccountResult         `json:"account"`
	Greeting       string                `json:"greeting"`
	Labels         map[string]string     `json:"labels"`
	CurrencySymbol string                `json:"currencySymbol"`
	Snapshot       core.Snapshot         `json:"snapshot"`
	Summary        core.Summary          `json:"summary"`
	Score          core.LoanReadiness    `json:"score"`
	Insights       []core.Insight        `json:"insights"`
	Alerts         []core.InventoryAlert `json:"alerts"`
	Goals          []core.GoalProgress   `json:"goals"`
}

type AlertsResult struct {
	Settings core.AlertSettings    `json:"settings"`
	Alerts   []core.InventoryAlert `json:"alerts"`
}

type InvoiceResult struct {
	Invoice core.Invoice `json:"invoice"`
	Text    string       `json:"text"`
}

// Lender is one entry of the lender directory.
type Lender struct {
	Name         string `json:"name"`
	Match        int    `json:"match"`
	Rate         string `json:"rate"`
	MaxAmount    string `json:"maxAmount"`
	ApprovalTime string `json:"approvalTime"`
}

type LenderResult struct {
	Location  string          `json:"location"`
	Amount    decimal.Decimal `json:"amount"`
	Purpose   string          `json:"purpose,omitempty"`
	LoanScore int             `json:"loanScore"`
	Lenders   []Lender        `json:"lenders"`
}

type AssistantResult struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}
