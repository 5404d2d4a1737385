package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ReportKind string

const (
	ReportFinancial   ReportKind = "financial"
	ReportInventory   ReportKind = "inventory"
	ReportCashFlow    ReportKind = "cashflow"
	ReportPerformance ReportKind = "performance"
)

var ReportKinds = []ReportKind{ReportFinancial, ReportInventory, ReportCashFlow, ReportPerformance}

func ParseReportKind(s string) (ReportKind, error) {
	for _, k := range ReportKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown report %q", ErrInvalidInput, s)
}

type FinancialReport struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
}

type InventoryReport struct {
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalItems    int             `json:"totalItems"`
	LowStockItems int             `json:"lowStockItems"`
	AverageValue  decimal.Decimal `json:"averageValue"`
	Items         []InventoryItem `json:"items"`
}

type CashFlowReport struct {
	Entries       []CashFlowEntry `json:"entries"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Net           decimal.Decimal `json:"net"`
}

type PerformanceReport struct {
	Weekly              []SalesRecord   `json:"weekly"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	AverageDailyRevenue decimal.Decimal `json:"averageDailyRevenue"`
	BestDay             *SalesRecord    `json:"bestDay,omitempty"`
	LoanScore           int             `json:"loanScore"`
}

// Report carries exactly one populated section, selected by Kind.
type Report struct {
	Kind        ReportKind         `json:"kind"`
	Business    string             `json:"business"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Financial   *FinancialReport   `json:"financial,omitempty"`
	Inventory   *InventoryReport   `json:"inventory,omitempty"`
	CashFlow    *CashFlowReport    `json:"cashflow,omitempty"`
	Performance *PerformanceReport `json:"performance,omitempty"`
}

// BuildReport assembles the report of the given kind from s.
func BuildReport(s Snapshot, kind ReportKind, now time.Time) (Report, error) {
	r := Report{Kind: kind, Business: s.Profile.BusinessName, GeneratedAt: now}
	switch kind {
	case ReportFinancial:
		r.Financial = BuildFinancialReport(s)
	case ReportInventory:
		r.Inventory = BuildInventoryReport(s.Inventory)
	case ReportCashFlow:
		r.CashFlow = BuildCashFlowReport(s.Ledger)
	case ReportPerformance:
		r.Performance = BuildPerformanceReport(s)
	default:
		return Report{}, fmt.Errorf("%w: unknown report %q", ErrInvalidInput, kind)
	}
	return r, nil
}

func BuildFinancialReport(s Snapshot) *FinancialReport {
	return &FinancialReport{
		Revenue:      TotalRevenue(s.Sales),
		Income:       TotalIncome(s.Ledger),
		Expenses:     TotalExpenses(s.Ledger),
		Profit:       NetProfit(s.Sales, s.Ledger),
		ProfitMargin: ProfitMargin(s.Sales, s.Ledger),
	}
}

func BuildInventoryReport(items []InventoryItem) *InventoryReport {
	total := InventoryValue(items)
	avg := decimal.Zero
	if len(items) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(items))))
	}
	return &InventoryReport{
		TotalValue:    total,
		TotalItems:    len(items),
		LowStockItems: LowStockCount(items),
		AverageValue:  avg,
		Items:         items,
	}
}

func BuildCashFlowReport(ledger []CashFlowEntry) *CashFlowReport {
	return &CashFlowReport{
		Entries:       ledger,
		TotalIncome:   TotalIncome(ledger),
		TotalExpenses: TotalExpenses(ledger),
		Net:           NetCashFlow(ledger),
	}
}

func BuildPerformanceReport(s Snapshot) *PerformanceReport {
	p := &PerformanceReport{
		Weekly:              s.Sales,
		TotalRevenue:        TotalRevenue(s.Sales),
		AverageDailyRevenue: AverageDailyRevenue(s.Sales),
		LoanScore:           LoanReadinessScore(s),
	}
	if best, ok := BestDay(s.Sales); ok {
		p.BestDay = &best
	}
	return p
}
