package core_test

import (
	"reflect"
	"sort"
	"testing"

	"bilantra/internal/core"
)

func insightIDs(insights []core.Insight) []string {
	ids := make([]string, len(insights))
	for i, in := range insights {
		ids[i] = in.ID
	}
	return ids
}

func TestGenerateInsights_Rules(t *testing.T) {
	tests := []struct {
		name string
		snap core.Snapshot
		want []string
	}{
		{
			name: "empty week only names peak days",
			snap: core.Snapshot{Sales: week()},
			want: []string{"seasonal-pattern"},
		},
		{
			name: "no sales at all emits nothing",
			snap: core.Snapshot{},
			want: []string{},
		},
		{
			name: "example snapshot",
			snap: exampleSnapshot(),
			// p1 revenue, p2 growth, p3 positive cash flow, p3 peak days
			want: []string{"revenue-growth", "growth-potential", "positive-cashflow", "seasonal-pattern"},
		},
		{
			name: "negative cash flow ranks with revenue",
			snap: core.Snapshot{
				Sales:  week("100"),
				Ledger: []core.CashFlowEntry{entry(1, core.Expense, "40")},
			},
			want: []string{"revenue-growth", "negative-cashflow", "growth-potential", "seasonal-pattern"},
		},
		{
			name: "low turnover with low stock",
			snap: core.Snapshot{
				Sales:     week("100"),
				Inventory: []core.InventoryItem{{ID: 1, Name: "A", Stock: 2, MinStock: 5, UnitPrice: d("100")}},
			},
			want: []string{"revenue-growth", "inventory-warning", "growth-potential", "seasonal-pattern", "inventory-efficiency"},
		},
		{
			name: "good turnover",
			snap: core.Snapshot{
				Sales:     week("100"),
				Inventory: []core.InventoryItem{{ID: 1, Name: "A", Stock: 10, MinStock: 1, UnitPrice: d("5")}},
			},
			want: []string{"revenue-growth", "growth-potential", "seasonal-pattern", "good-turnover"},
		},
		{
			name: "zero inventory value skips turnover",
			snap: core.Snapshot{
				Sales:     week("100"),
				Inventory: []core.InventoryItem{{ID: 1, Name: "Free", Stock: 10, MinStock: 1, UnitPrice: d("0")}},
			},
			want: []string{"revenue-growth", "growth-potential", "seasonal-pattern"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insightIDs(core.GenerateInsights(tt.snap, core.InsightOptions{CurrencySymbol: "$"}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGenerateInsights_SortedAndStable(t *testing.T) {
	s := core.Snapshot{
		Sales:     week("10", "90", "40", "90"),
		Ledger:    []core.CashFlowEntry{entry(1, core.Expense, "5")},
		Inventory: []core.InventoryItem{{ID: 1, Name: "A", Stock: 0, MinStock: 3, UnitPrice: d("1")}},
	}
	first := core.GenerateInsights(s, core.InsightOptions{})
	if !sort.SliceIsSorted(first, func(i, j int) bool { return first[i].Priority < first[j].Priority }) {
		t.Errorf("insights not sorted by priority: %v", insightIDs(first))
	}
	for i := 0; i < 5; i++ {
		again := core.GenerateInsights(s, core.InsightOptions{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, insightIDs(first), insightIDs(again))
		}
	}
}

func TestGenerateInsights_Bodies(t *testing.T) {
	s := core.Snapshot{
		Sales:  week("10", "90", "40", "90"),
		Ledger: []core.CashFlowEntry{entry(1, core.Expense, "12.5")},
	}
	byID := map[string]core.Insight{}
	for _, in := range core.GenerateInsights(s, core.InsightOptions{CurrencySymbol: "KSh"}) {
		byID[in.ID] = in
	}

	tests := []struct {
		id, want string
	}{
		{"revenue-growth", "Your best performing day was Tue with KSh90.00. Focus marketing efforts on replicating this success."},
		{"negative-cashflow", "Your expenses exceed income by KSh12.50. Review expenses and boost sales."},
		{"growth-potential", "With KSh33 average daily revenue, you're ready to explore loan options for expansion."},
		{"seasonal-pattern", "Tue and Thu are your strongest days. Plan special promotions and ensure adequate stock."},
	}
	for _, tt := range tests {
		if got := byID[tt.id].Body; got != tt.want {
			t.Errorf("%s:\nwant %q\n got %q", tt.id, tt.want, got)
		}
	}
}

func TestTopDays_DoesNotReorderInput(t *testing.T) {
	sales := week("1", "3", "2")
	top := core.TopDays(sales, 2)
	if len(top) != 2 || top[0].Day != "Tue" || top[1].Day != "Wed" {
		t.Errorf("unexpected top days: %+v", top)
	}
	if sales[0].Day != "Mon" || sales[1].Day != "Tue" {
		t.Error("input order changed")
	}
}
