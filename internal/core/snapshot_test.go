package core_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"bilantra/internal/core"
)

func TestSnapshot_NormalizationAndValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *core.Snapshot)
		expectErr bool
	}{
		{
			name:   "Happy Path",
			mutate: func(s *core.Snapshot) {},
		},
		{
			name: "Ledger kind in mixed case",
			mutate: func(s *core.Snapshot) {
				s.Ledger[0].Kind = " Income "
			},
		},
		{
			name: "Unknown ledger kind",
			mutate: func(s *core.Snapshot) {
				s.Ledger[0].Kind = "transfer"
			},
			expectErr: true,
		},
		{
			name: "Zero ledger amount",
			mutate: func(s *core.Snapshot) {
				s.Ledger[0].Amount = d("0")
			},
			expectErr: true,
		},
		{
			name: "Duplicate ledger id",
			mutate: func(s *core.Snapshot) {
				s.Ledger = append(s.Ledger, s.Ledger[0])
			},
			expectErr: true,
		},
		{
			name: "Negative revenue",
			mutate: func(s *core.Snapshot) {
				s.Sales[2].Revenue = d("-1")
			},
			expectErr: true,
		},
		{
			name: "Blank day label",
			mutate: func(s *core.Snapshot) {
				s.Sales[0].Day = "   "
			},
			expectErr: true,
		},
		{
			name: "Negative stock",
			mutate: func(s *core.Snapshot) {
				s.Inventory = []core.InventoryItem{{ID: 1, Name: "A", Stock: -1, UnitPrice: d("1")}}
			},
			expectErr: true,
		},
		{
			name: "Nameless item",
			mutate: func(s *core.Snapshot) {
				s.Inventory = []core.InventoryItem{{ID: 1, Name: " ", Stock: 1, UnitPrice: d("1")}}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := exampleSnapshot()
			tt.mutate(&s)
			s.Normalize()
			err := s.Validate()
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if err != nil && !errors.Is(err, core.ErrInvalidInput) {
				t.Errorf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSnapshot_NormalizeProfile(t *testing.T) {
	s := core.Snapshot{Profile: core.BusinessProfile{Email: "  Owner@Shop.COM ", CurrencyCode: ""}}
	s.Normalize()
	if s.Profile.Email != "owner@shop.com" {
		t.Errorf("email: want owner@shop.com, got %q", s.Profile.Email)
	}
	if s.Profile.CurrencyCode != "USD" {
		t.Errorf("currency: want USD default, got %q", s.Profile.CurrencyCode)
	}
}

func TestInventoryItem_JSONCarriesDerivedStatus(t *testing.T) {
	raw := []byte(`{"id":1,"name":"Rice","stock":0,"minStock":5,"price":"2.50","status":"good"}`)
	var it core.InventoryItem
	if err := json.Unmarshal(raw, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Status() != core.StockCritical {
		t.Errorf("stored status must be ignored: want critical, got %s", it.Status())
	}

	out, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"status":"critical"`) {
		t.Errorf("encoded item missing derived status: %s", out)
	}
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	s := exampleSnapshot()
	c := s.Clone()
	c.Sales[0].Revenue = d("999")
	c.Ledger = append(c.Ledger, entry(2, core.Expense, "1"))
	if !s.Sales[0].Revenue.Equal(d("100")) {
		t.Errorf("clone shares sales backing array")
	}
	if len(s.Ledger) != 1 {
		t.Errorf("clone shares ledger")
	}
}
