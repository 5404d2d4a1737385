package core_test

import (
	"testing"

	"bilantra/internal/core"
)

func TestLoanReadinessScore_Example(t *testing.T) {
	got := core.ScoreLoanReadiness(exampleSnapshot(), core.LinearPolicy)
	if got.Score != 54 {
		t.Fatalf("want 54, got %d", got.Score)
	}

	want := map[string]int{"sales": 40, "inventory": 0, "cashflow": 4, "profile": 10}
	for _, c := range got.Components {
		if c.Score != want[c.Name] {
			t.Errorf("%s: want %d, got %d", c.Name, want[c.Name], c.Score)
		}
	}
}

func TestLoanReadinessScore_InventorySubScore(t *testing.T) {
	tests := []struct {
		name  string
		price string
		stock int
		want  int
	}{
		{"below one point", "10", 3, 0},
		{"exactly one point", "100", 1, 1},
		{"floors fractions", "1", 299, 2},
		{"capped", "1000", 50, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.Snapshot{Inventory: []core.InventoryItem{{ID: 1, Name: "x", Stock: tt.stock, MinStock: 0, UnitPrice: d(tt.price)}}}
			if got := core.LoanReadinessScore(s); got != tt.want {
				t.Errorf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLoanReadinessScore_CashFlowSubScore(t *testing.T) {
	var ledger []core.CashFlowEntry
	for i := int64(1); i <= 8; i++ {
		ledger = append(ledger, entry(i, core.Income, "1"))
	}
	ledger = append(ledger, entry(99, core.Expense, "500"))

	tests := []struct {
		entries int
		want    int
	}{
		{0, 0}, {1, 4}, {3, 12}, {5, 20}, {8, 20},
	}
	for _, tt := range tests {
		s := core.Snapshot{Ledger: append([]core.CashFlowEntry{ledger[8]}, ledger[:tt.entries]...)}
		if got := core.LoanReadinessScore(s); got != tt.want {
			t.Errorf("%d income entries: want %d, got %d", tt.entries, tt.want, got)
		}
	}
}

func TestLoanReadinessScore_ProfileNeedsNameAndCity(t *testing.T) {
	tests := []struct {
		profile core.BusinessProfile
		want    int
	}{
		{core.BusinessProfile{BusinessName: "Shop", City: "Accra"}, 10},
		{core.BusinessProfile{BusinessName: "Shop"}, 0},
		{core.BusinessProfile{City: "Accra"}, 0},
	}
	for _, tt := range tests {
		if got := core.LoanReadinessScore(core.Snapshot{Profile: tt.profile}); got != tt.want {
			t.Errorf("%+v: want %d, got %d", tt.profile, tt.want, got)
		}
	}
}

func TestLoanReadinessScore_AlwaysInRange(t *testing.T) {
	big := core.Snapshot{
		Profile:   core.BusinessProfile{BusinessName: "Big", City: "Lagos"},
		Sales:     week("99999", "99999", "99999", "99999", "99999", "99999", "99999"),
		Inventory: []core.InventoryItem{{ID: 1, Name: "x", Stock: 1000000, UnitPrice: d("1000")}},
	}
	for i := int64(0); i < 50; i++ {
		big.Ledger = append(big.Ledger, entry(i, core.Income, "1"))
	}

	for _, s := range []core.Snapshot{{}, exampleSnapshot(), big} {
		for _, policy := range []core.ScoringPolicy{core.LinearPolicy, core.TieredPolicy} {
			got := core.ScoreLoanReadiness(s, policy).Score
			if got < 0 || got > 100 {
				t.Errorf("%s: score %d out of range", policy, got)
			}
		}
	}
	if got := core.LoanReadinessScore(big); got != 100 {
		t.Errorf("saturated snapshot: want 100, got %d", got)
	}
}

func TestScoreLoanReadiness_TieredPolicy(t *testing.T) {
	s := exampleSnapshot()
	s.Inventory = []core.InventoryItem{{ID: 1, Name: "x", Stock: 60, UnitPrice: d("10")}}

	got := core.ScoreLoanReadiness(s, core.TieredPolicy)
	// 40 sales + 15 inventory (600) + 10 cash flow (1 entry) + 10 profile
	if got.Score != 75 {
		t.Errorf("want 75, got %d", got.Score)
	}
	if got.Policy != core.TieredPolicy {
		t.Errorf("want tiered policy, got %s", got.Policy)
	}
}

func TestScoreLoanReadiness_UnknownPolicyFallsBack(t *testing.T) {
	got := core.ScoreLoanReadiness(exampleSnapshot(), core.ScoringPolicy("bogus"))
	if got.Policy != core.LinearPolicy || got.Score != 54 {
		t.Errorf("want linear 54, got %s %d", got.Policy, got.Score)
	}
}

func TestLoanRecommendations(t *testing.T) {
	empty := core.LoanRecommendations(core.Snapshot{Sales: week()})
	if len(empty) != 3 {
		t.Fatalf("want 3 recommendations for an empty business, got %v", empty)
	}
	if empty[0] != "Start recording your daily sales to improve your score" {
		t.Errorf("unexpected first recommendation: %q", empty[0])
	}

	s := exampleSnapshot()
	s.Inventory = []core.InventoryItem{{ID: 1, Name: "x", Stock: 1, UnitPrice: d("1")}}
	s.Ledger = append(s.Ledger, entry(2, core.Expense, "1"), entry(3, core.Income, "2"))
	strong := core.LoanRecommendations(s)
	if len(strong) != 1 || strong[0] != "Great! Your business data looks strong for loan applications" {
		t.Errorf("want the single positive message, got %v", strong)
	}
}
