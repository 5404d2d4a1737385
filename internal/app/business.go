package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"bilantra/internal/core"
	"bilantra/internal/store"
)

// nextID returns the millisecond timestamp, bumped past any id already taken.
func nextID(ms int64, taken func(int64) bool) int64 {
	for taken(ms) {
		ms++
	}
	return ms
}

// ─── Sales ──────────────────────────────────────────────────────────────────

func (s *appService) RecordSale(ctx context.Context, email string, req SaleRequest) ([]core.SalesRecord, error) {
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be > 0", core.ErrInvalidInput)
	}

	var out []core.SalesRecord
	err := s.update(ctx, email, func(sess *store.Session) error {
		sales := sess.Snapshot.Sales
		i := slices.IndexFunc(sales, func(r core.SalesRecord) bool {
			return strings.EqualFold(r.Day, strings.TrimSpace(req.Day))
		})
		if i < 0 {
			return fmt.Errorf("%w: unknown day %q", core.ErrInvalidInput, req.Day)
		}
		sales[i].Revenue = sales[i].Revenue.Add(req.Amount)
		out = slices.Clone(sales)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) SalesByPeriod(ctx context.Context, email string, period core.Period) ([]core.PeriodPoint, error) {
	var out []core.PeriodPoint
	err := s.read(ctx, email, func(sess *store.Session) error {
		points, err := core.SalesByPeriod(sess.Snapshot.Sales, period)
		out = points
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Ledger ─────────────────────────────────────────────────────────────────

func (s *appService) AddTransaction(ctx context.Context, email string, req TransactionRequest) (*core.CashFlowEntry, error) {
	req.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be > 0", core.ErrInvalidInput)
	}

	var out core.CashFlowEntry
	err := s.update(ctx, email, func(sess *store.Session) error {
		now := s.now()
		ledger := sess.Snapshot.Ledger
		id := nextID(now.UnixMilli(), func(id int64) bool {
			return slices.ContainsFunc(ledger, func(e core.CashFlowEntry) bool { return e.ID == id })
		})
		out = core.CashFlowEntry{
			ID:          id,
			Kind:        core.EntryKind(req.Kind),
			Amount:      req.Amount,
			Description: strings.TrimSpace(req.Description),
			Date:        now.Format("2006-01-02"),
			Time:        now.Format("15:04"),
		}
		sess.Snapshot.Ledger = append([]core.CashFlowEntry{out}, ledger...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) DeleteTransaction(ctx context.Context, email string, id int64) error {
	return s.update(ctx, email, func(sess *store.Session) error {
		ledger := sess.Snapshot.Ledger
		i := slices.IndexFunc(ledger, func(e core.CashFlowEntry) bool { return e.ID == id })
		if i < 0 {
			return fmt.Errorf("transaction %d: %w", id, core.ErrNotFound)
		}
		sess.Snapshot.Ledger = slices.Delete(ledger, i, i+1)
		return nil
	})
}

// ─── Inventory ──────────────────────────────────────────────────────────────

func (s *appService) AddInventoryItem(ctx context.Context, email string, req InventoryItemRequest) (*core.InventoryItem, error) {
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", core.ErrInvalidInput)
	}

	var out core.InventoryItem
	err := s.update(ctx, email, func(sess *store.Session) error {
		items := sess.Snapshot.Inventory
		id := nextID(s.now().UnixMilli(), func(id int64) bool {
			return slices.ContainsFunc(items, func(it core.InventoryItem) bool { return it.ID == id })
		})
		out = core.InventoryItem{
			ID:        id,
			Name:      strings.TrimSpace(req.Name),
			Stock:     req.Stock,
			MinStock:  req.MinStock,
			UnitPrice: req.Price,
		}
		sess.Snapshot.Inventory = append(items, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) UpdateStock(ctx context.Context, email string, id int64, stock int) (*core.InventoryItem, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", core.ErrInvalidInput)
	}
	var out core.InventoryItem
	err := s.update(ctx, email, func(sess *store.Session) error {
		items := sess.Snapshot.Inventory
		i := slices.IndexFunc(items, func(it core.InventoryItem) bool { return it.ID == id })
		if i < 0 {
			return fmt.Errorf("inventory item %d: %w", id, core.ErrNotFound)
		}
		items[i].Stock = stock
		out = items[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) DeleteInventoryItem(ctx context.Context, email string, id int64) error {
	return s.update(ctx, email, func(sess *store.Session) error {
		items := sess.Snapshot.Inventory
		i := slices.IndexFunc(items, func(it core.InventoryItem) bool { return it.ID == id })
		if i < 0 {
			return fmt.Errorf("inventory item %d: %w", id, core.ErrNotFound)
		}
		sess.Snapshot.Inventory = slices.Delete(items, i, i+1)
		return nil
	})
}
