package core_test

import (
	"errors"
	"testing"
	"time"

	"bilantra/internal/core"
)

func TestBuildReport(t *testing.T) {
	s := exampleSnapshot()
	s.Inventory = []core.InventoryItem{
		{ID: 1, Name: "A", Stock: 4, MinStock: 1, UnitPrice: d("5")},
		{ID: 2, Name: "B", Stock: 0, MinStock: 1, UnitPrice: d("9")},
	}
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	fin, err := core.BuildReport(s, core.ReportFinancial, now)
	if err != nil {
		t.Fatalf("financial: %v", err)
	}
	if !fin.Financial.Profit.Equal(d("150")) || fin.Business != "Shop" {
		t.Errorf("unexpected financial report: %+v", fin.Financial)
	}

	inv, _ := core.BuildReport(s, core.ReportInventory, now)
	if !inv.Inventory.TotalValue.Equal(d("20")) || !inv.Inventory.AverageValue.Equal(d("10")) {
		t.Errorf("inventory totals: %+v", inv.Inventory)
	}
	if inv.Inventory.LowStockItems != 1 {
		t.Errorf("low stock: want 1, got %d", inv.Inventory.LowStockItems)
	}

	perf, _ := core.BuildReport(s, core.ReportPerformance, now)
	if perf.Performance.LoanScore != core.LoanReadinessScore(s) {
		t.Errorf("performance score %d does not match engine", perf.Performance.LoanScore)
	}

	if _, err := core.BuildReport(s, core.ReportKind("tax"), now); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("unknown kind: want ErrInvalidInput, got %v", err)
	}
}

func TestBuildInventoryReport_EmptyAverage(t *testing.T) {
	r := core.BuildInventoryReport(nil)
	if !r.AverageValue.IsZero() || r.TotalItems != 0 {
		t.Errorf("empty inventory report: %+v", r)
	}
}

func TestSalesByPeriod(t *testing.T) {
	sales := week("10", "20", "30", "40", "50", "60", "70")

	monthly, err := core.SalesByPeriod(sales, core.PeriodMonthly)
	if err != nil {
		t.Fatal(err)
	}
	wantMonthly := []string{"30", "70", "110", "70"}
	for i, w := range wantMonthly {
		if !monthly[i].Revenue.Equal(d(w)) {
			t.Errorf("%s: want %s, got %s", monthly[i].Label, w, monthly[i].Revenue)
		}
	}

	yearly, _ := core.SalesByPeriod(sales, core.PeriodYearly)
	wantYearly := []string{"224", "336", "420", "252"}
	for i, w := range wantYearly {
		if !yearly[i].Revenue.Equal(d(w)) {
			t.Errorf("%s: want %s, got %s", yearly[i].Label, w, yearly[i].Revenue)
		}
	}

	weekly, _ := core.SalesByPeriod(sales, core.PeriodWeekly)
	if len(weekly) != 7 || weekly[6].Label != "Sun" {
		t.Errorf("weekly: %+v", weekly)
	}

	short, _ := core.SalesByPeriod(sales[:3], core.PeriodMonthly)
	if !short[3].Revenue.IsZero() || !short[1].Revenue.Equal(d("30")) {
		t.Errorf("short week buckets: %+v", short)
	}

	if _, err := core.SalesByPeriod(sales, "daily"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role  core.Role
		count int
		can   core.Permission
		cant  core.Permission
	}{
		{core.RoleOwner, 8, core.PermDeleteData, ""},
		{core.RoleAdmin, 6, core.PermManageUsers, core.PermDeleteData},
		{core.RoleManager, 4, core.PermExportData, core.PermManageUsers},
		{core.RoleEmployee, 2, core.PermManageInventory, core.PermManageFinances},
		{core.RoleViewer, 1, core.PermViewReports, core.PermManageInventory},
	}
	for _, tt := range tests {
		if got := len(tt.role.Permissions()); got != tt.count {
			t.Errorf("%s: want %d permissions, got %d", tt.role, tt.count, got)
		}
		if !tt.role.Can(tt.can) {
			t.Errorf("%s should have %s", tt.role, tt.can)
		}
		if tt.cant != "" && tt.role.Can(tt.cant) {
			t.Errorf("%s should not have %s", tt.role, tt.cant)
		}
	}

	if _, err := core.ParseRole("superuser"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
}
