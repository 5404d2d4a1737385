package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and folds any failures into a
// single ErrInvalidInput.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(fields)
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

// Normalize cleans up user-entered text fields.
func (s *Snapshot) Normalize() {
	s.Profile.BusinessName = strings.TrimSpace(s.Profile.BusinessName)
	s.Profile.OwnerName = strings.TrimSpace(s.Profile.OwnerName)
	s.Profile.Email = strings.ToLower(strings.TrimSpace(s.Profile.Email))
	s.Profile.City = strings.TrimSpace(s.Profile.City)
	s.Profile.CurrencyCode = strings.ToUpper(strings.TrimSpace(s.Profile.CurrencyCode))
	if s.Profile.CurrencyCode == "" {
		s.Profile.CurrencyCode = "USD"
	}

	for i := range s.Sales {
		s.Sales[i].Day = strings.TrimSpace(s.Sales[i].Day)
	}
	for i := range s.Ledger {
		e := &s.Ledger[i]
		e.Kind = EntryKind(strings.ToLower(strings.TrimSpace(string(e.Kind))))
		e.Description = strings.TrimSpace(e.Description)
	}
	for i := range s.Inventory {
		s.Inventory[i].Name = strings.TrimSpace(s.Inventory[i].Name)
	}
}

// Validate checks the stored values: non-negative revenue, positive
// ledger amounts of a known kind, unique ids, and non-negative stock and price.
func (s *Snapshot) Validate() error {
	for _, r := range s.Sales {
		if err := ValidateStruct(r); err != nil {
			return err
		}
		if r.Revenue.IsNegative() {
			return fmt.Errorf("%w: revenue for %s cannot be negative", ErrInvalidInput, r.Day)
		}
	}

	seen := make(map[int64]bool, len(s.Ledger))
	for _, e := range s.Ledger {
		if err := ValidateStruct(e); err != nil {
			return err
		}
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: amount must be > 0 for entry %d", ErrInvalidInput, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate ledger id %d", ErrInvalidInput, e.ID)
		}
		seen[e.ID] = true
	}

	seen = make(map[int64]bool, len(s.Inventory))
	for _, it := range s.Inventory {
		if err := ValidateStruct(it); err != nil {
			return err
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: price cannot be negative for %s", ErrInvalidInput, it.Name)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate inventory id %d", ErrInvalidInput, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without touching s.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Sales = append([]SalesRecord(nil), s.Sales...)
	c.Ledger = append([]CashFlowEntry(nil), s.Ledger...)
	c.Inventory = append([]InventoryItem(nil), s.Inventory...)
	return c
}

// NewWeek returns the seven zero-revenue days created at onboarding.
func NewWeek() []SalesRecord {
	week := make([]SalesRecord, len(Weekdays))
	for i, d := range Weekdays {
		week[i] = SalesRecord{Day: d}
	}
	return week
}
