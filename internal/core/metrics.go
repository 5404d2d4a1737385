package core

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summary bundles every aggregate figure for one snapshot.
type Summary struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetCashFlow         decimal.Decimal `json:"netCashFlow"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	ProfitMargin        decimal.Decimal `json:"profitMargin"`
	InventoryValue      decimal.Decimal `json:"inventoryValue"`
	AverageDailyRevenue decimal.Decimal `json:"averageDailyRevenue"`
	LowStockCount       int             `json:"lowStockCount"`
	BestDay             *SalesRecord    `json:"bestDay,omitempty"`
}

// Summarize computes all aggregates for s.
func Summarize(s Snapshot) Summary {
	sum := Summary{
		TotalRevenue:        TotalRevenue(s.Sales),
		TotalIncome:         TotalIncome(s.Ledger),
		TotalExpenses:       TotalExpenses(s.Ledger),
		NetCashFlow:         NetCashFlow(s.Ledger),
		NetProfit:           NetProfit(s.Sales, s.Ledger),
		ProfitMargin:        ProfitMargin(s.Sales, s.Ledger),
		InventoryValue:      InventoryValue(s.Inventory),
		AverageDailyRevenue: AverageDailyRevenue(s.Sales),
		LowStockCount:       LowStockCount(s.Inventory),
	}
	if best, ok := BestDay(s.Sales); ok {
		sum.BestDay = &best
	}
	return sum
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func TotalRevenue(sales []SalesRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range sales {
		total = total.Add(r.Revenue)
	}
	return total
}

// AverageDailyRevenue is zero for an empty sequence.
func AverageDailyRevenue(sales []SalesRecord) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return TotalRevenue(sales).Div(decimal.NewFromInt(int64(len(sales))))
}

// BestDay returns the record with the highest revenue. Ties go to the earliest
// record. ok is false when sales is empty.
func BestDay(sales []SalesRecord) (best SalesRecord, ok bool) {
	if len(sales) == 0 {
		return SalesRecord{}, false
	}
	best = sales[0]
	for _, r := range sales[1:] {
		if r.Revenue.GreaterThan(best.Revenue) {
			best = r
		}
	}
	return best, true
}

// ── Ledger ────────────────────────────────────────────────────────────────────

func TotalIncome(ledger []CashFlowEntry) decimal.Decimal {
	return sumKind(ledger, Income)
}

func TotalExpenses(ledger []CashFlowEntry) decimal.Decimal {
	return sumKind(ledger, Expense)
}

func sumKind(ledger []CashFlowEntry, kind EntryKind) decimal.Decimal {
	total := decimal.Zero
	for _, e := range ledger {
		if e.Kind == kind {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func countKind(ledger []CashFlowEntry, kind EntryKind) int {
	n := 0
	for _, e := range ledger {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func NetCashFlow(ledger []CashFlowEntry) decimal.Decimal {
	return TotalIncome(ledger).Sub(TotalExpenses(ledger))
}

// NetProfit = revenue + income - expenses.
func NetProfit(sales []SalesRecord, ledger []CashFlowEntry) decimal.Decimal {
	return TotalRevenue(sales).Add(NetCashFlow(ledger))
}

// ProfitMargin is net profit as a percentage of revenue plus income. It is zero
// when revenue plus income is zero, whatever the expenses.
func ProfitMargin(sales []SalesRecord, ledger []CashFlowEntry) decimal.Decimal {
	gross := TotalRevenue(sales).Add(TotalIncome(ledger))
	if gross.IsZero() {
		return decimal.Zero
	}
	return NetProfit(sales, ledger).Div(gross).Mul(hundred)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// InventoryStatus: Critical iff stock == 0, Low iff 0 < stock <= minStock, else Good.
func InventoryStatus(stock, minStock int) StockStatus {
	switch {
	case stock == 0:
		return StockCritical
	case stock <= minStock:
		return StockLow
	default:
		return StockGood
	}
}

func InventoryValue(items []InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Stock))))
	}
	return total
}

// LowStockCount counts items whose status is not Good.
func LowStockCount(items []InventoryItem) int {
	n := 0
	for _, it := range items {
		if it.Status() != StockGood {
			n++
		}
	}
	return n
}
