package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type InsightKind string

const (
	Opportunity    InsightKind = "opportunity"
	Warning        InsightKind = "warning"
	Recommendation InsightKind = "recommendation"
	Achievement    InsightKind = "achievement"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

type InsightCategory string

const (
	CategoryRevenue    InsightCategory = "revenue"
	CategoryExpenses   InsightCategory = "expenses"
	CategoryInventory  InsightCategory = "inventory"
	CategoryGrowth     InsightCategory = "growth"
	CategoryEfficiency InsightCategory = "efficiency"
)

// Insight is a ranked observation about a snapshot. Lower Priority ranks first.
type Insight struct {
	ID         string          `json:"id"`
	Kind       InsightKind     `json:"type"`
	Title      string          `json:"title"`
	Body       string          `json:"description"`
	Impact     Impact          `json:"impact"`
	Category   InsightCategory `json:"category"`
	Actionable bool            `json:"actionable"`
	Priority   int             `json:"priority"`
}

// InsightOptions carries presentation details the caller owns.
type InsightOptions struct {
	CurrencySymbol string
}

var lowTurnover = decimal.NewFromInt(2)

// GenerateInsights evaluates every rule against s and returns the emitted
// insights stable-sorted by ascending priority.
func GenerateInsights(s Snapshot, opts InsightOptions) []Insight {
	sym := opts.CurrencySymbol
	revenue := TotalRevenue(s.Sales)
	insights := make([]Insight, 0, 6)

	if revenue.IsPositive() {
		best, _ := BestDay(s.Sales)
		insights = append(insights, Insight{
			ID:         "revenue-growth",
			Kind:       Opportunity,
			Title:      "Revenue Growth Opportunity",
			Body:       fmt.Sprintf("Your best performing day was %s with %s%s. Focus marketing efforts on replicating this success.", best.Day, sym, best.Revenue.StringFixed(2)),
			Impact:     ImpactHigh,
			Category:   CategoryRevenue,
			Actionable: true,
			Priority:   1,
		})
	}

	if low := LowStockCount(s.Inventory); low > 0 {
		insights = append(insights, Insight{
			ID:         "inventory-warning",
			Kind:       Warning,
			Title:      "Inventory Stock Alert",
			Body:       fmt.Sprintf("%d items are running low. Restock soon to avoid lost sales.", low),
			Impact:     ImpactMedium,
			Category:   CategoryInventory,
			Actionable: true,
			Priority:   2,
		})
	}

	net := NetCashFlow(s.Ledger)
	switch {
	case net.IsPositive():
		insights = append(insights, Insight{
			ID:         "positive-cashflow",
			Kind:       Achievement,
			Title:      "Positive Cash Flow",
			Body:       fmt.Sprintf("Excellent! Your cash flow is positive with %s%s net income.", sym, net.StringFixed(2)),
			Impact:     ImpactHigh,
			Category:   CategoryGrowth,
			Actionable: false,
			Priority:   3,
		})
	case net.IsNegative():
		insights = append(insights, Insight{
			ID:         "negative-cashflow",
			Kind:       Warning,
			Title:      "Cash Flow Concern",
			Body:       fmt.Sprintf("Your expenses exceed income by %s%s. Review expenses and boost sales.", sym, net.Abs().StringFixed(2)),
			Impact:     ImpactHigh,
			Category:   CategoryExpenses,
			Actionable: true,
			Priority:   1,
		})
	}

	if len(s.Inventory) > 0 && revenue.IsPositive() {
		if value := InventoryValue(s.Inventory); !value.IsZero() {
			if revenue.Div(value).LessThan(lowTurnover) {
				insights = append(insights, Insight{
					ID:         "inventory-efficiency",
					Kind:       Recommendation,
					Title:      "Improve Inventory Turnover",
					Body:       "Your inventory turnover is low. Consider promotional sales to move slow-moving items.",
					Impact:     ImpactMedium,
					Category:   CategoryEfficiency,
					Actionable: true,
					Priority:   4,
				})
			} else {
				insights = append(insights, Insight{
					ID:         "good-turnover",
					Kind:       Achievement,
					Title:      "Efficient Inventory Management",
					Body:       "Great job! Your inventory turnover rate indicates efficient stock management.",
					Impact:     ImpactMedium,
					Category:   CategoryEfficiency,
					Actionable: false,
					Priority:   5,
				})
			}
		}
	}

	if avg := AverageDailyRevenue(s.Sales); avg.IsPositive() {
		insights = append(insights, Insight{
			ID:         "growth-potential",
			Kind:       Opportunity,
			Title:      "Scale Your Business",
			Body:       fmt.Sprintf("With %s%s average daily revenue, you're ready to explore loan options for expansion.", sym, avg.StringFixed(0)),
			Impact:     ImpactHigh,
			Category:   CategoryGrowth,
			Actionable: true,
			Priority:   2,
		})
	}

	if top := TopDays(s.Sales, 2); len(top) > 0 {
		names := make([]string, len(top))
		for i, r := range top {
			names[i] = r.Day
		}
		insights = append(insights, Insight{
			ID:         "seasonal-pattern",
			Kind:       Recommendation,
			Title:      "Optimize Peak Days",
			Body:       fmt.Sprintf("%s are your strongest days. Plan special promotions and ensure adequate stock.", strings.Join(names, " and ")),
			Impact:     ImpactMedium,
			Category:   CategoryRevenue,
			Actionable: true,
			Priority:   3,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority < insights[j].Priority
	})
	return insights
}

// TopDays returns up to n records by descending revenue. Equal revenues keep
// their sequence order.
func TopDays(sales []SalesRecord, n int) []SalesRecord {
	sorted := make([]SalesRecord, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue.GreaterThan(sorted[j].Revenue)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
