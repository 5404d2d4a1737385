package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Loan readiness weights. Each sub-score is capped at its weight.
const (
	WeightSales     = 40
	WeightInventory = 30
	WeightCashFlow  = 20
	WeightProfile   = 10

	MaxReadinessScore = 100
)

const (
	inventoryValuePerPoint = 100
	pointsPerIncomeEntry   = 4
	minLedgerEntries       = 3
)

// ScoringPolicy selects the sub-score rules.
type ScoringPolicy string

const (
	// LinearPolicy awards inventory and cash-flow points in proportion to value
	// and entry count.
	LinearPolicy ScoringPolicy = "linear"
	// TieredPolicy awards inventory and cash-flow points in fixed bands.
	TieredPolicy ScoringPolicy = "tiered"
)

// ScoreComponent is one weighted sub-score.
type ScoreComponent struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Max       int    `json:"max"`
	Reasoning string `json:"reasoning"`
}

// LoanReadiness is the scored result with its breakdown.
type LoanReadiness struct {
	Score           int              `json:"score"`
	Policy          ScoringPolicy    `json:"policy"`
	Components      []ScoreComponent `json:"components"`
	Recommendations []string         `json:"recommendations"`
}

// LoanReadinessScore returns the linear-policy score in [0, 100].
func LoanReadinessScore(s Snapshot) int {
	return ScoreLoanReadiness(s, LinearPolicy).Score
}

// ScoreLoanReadiness scores s under the given policy. Unknown policies fall back
// to LinearPolicy.
func ScoreLoanReadiness(s Snapshot, policy ScoringPolicy) LoanReadiness {
	if policy != TieredPolicy {
		policy = LinearPolicy
	}

	revenue := TotalRevenue(s.Sales)
	invValue := InventoryValue(s.Inventory)
	incomeEntries := countKind(s.Ledger, Income)

	components := []ScoreComponent{
		salesComponent(revenue),
		inventoryComponent(invValue, policy),
		cashFlowComponent(incomeEntries, policy),
		profileComponent(s.Profile),
	}

	total := 0
	for _, c := range components {
		total += c.Score
	}

	return LoanReadiness{
		Score:           ClampInt(total, 0, MaxReadinessScore),
		Policy:          policy,
		Components:      components,
		Recommendations: LoanRecommendations(s),
	}
}

func salesComponent(revenue decimal.Decimal) ScoreComponent {
	c := ScoreComponent{Name: "sales", Max: WeightSales}
	if revenue.IsPositive() {
		c.Score = WeightSales
		c.Reasoning = fmt.Sprintf("revenue %s recorded", revenue.StringFixed(2))
	} else {
		c.Reasoning = "no sales recorded"
	}
	return c
}

func inventoryComponent(value decimal.Decimal, policy ScoringPolicy) ScoreComponent {
	c := ScoreComponent{Name: "inventory", Max: WeightInventory}
	if policy == TieredPolicy {
		switch {
		case value.GreaterThan(decimal.NewFromInt(2000)):
			c.Score = 30
		case value.GreaterThan(decimal.NewFromInt(1000)):
			c.Score = 25
		case value.GreaterThan(decimal.NewFromInt(500)):
			c.Score = 15
		case value.IsPositive():
			c.Score = 10
		}
	} else {
		points := value.Div(decimal.NewFromInt(inventoryValuePerPoint)).Floor().IntPart()
		if points > WeightInventory {
			points = WeightInventory
		}
		c.Score = ClampInt(int(points), 0, WeightInventory)
	}
	c.Reasoning = fmt.Sprintf("inventory value %s", value.StringFixed(2))
	return c
}

func cashFlowComponent(incomeEntries int, policy ScoringPolicy) ScoreComponent {
	c := ScoreComponent{Name: "cashflow", Max: WeightCashFlow}
	if policy == TieredPolicy {
		switch {
		case incomeEntries > 5:
			c.Score = 20
		case incomeEntries > 2:
			c.Score = 15
		case incomeEntries > 0:
			c.Score = 10
		}
	} else {
		c.Score = ClampInt(incomeEntries*pointsPerIncomeEntry, 0, WeightCashFlow)
	}
	c.Reasoning = fmt.Sprintf("%d income entries", incomeEntries)
	return c
}

func profileComponent(p BusinessProfile) ScoreComponent {
	c := ScoreComponent{Name: "profile", Max: WeightProfile, Reasoning: "business name or city missing"}
	if p.BusinessName != "" && p.City != "" {
		c.Score = WeightProfile
		c.Reasoning = "profile complete"
	}
	return c
}

// LoanRecommendations lists the steps that would raise the score.
func LoanRecommendations(s Snapshot) []string {
	var recs []string
	if TotalRevenue(s.Sales).IsZero() {
		recs = append(recs, "Start recording your daily sales to improve your score")
	}
	if len(s.Inventory) == 0 {
		recs = append(recs, "Add your inventory items to show business assets")
	}
	if len(s.Ledger) < minLedgerEntries {
		recs = append(recs, "Record more transactions to demonstrate cash flow")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great! Your business data looks strong for loan applications")
	}
	return recs
}

// ClampInt restricts value to [lo, hi].
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
