package core

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	Income  EntryKind = "income"
	Expense EntryKind = "expense"
)

type StockStatus string

const (
	StockGood     StockStatus = "good"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

type GoalType string

const (
	GoalRevenue   GoalType = "revenue"
	GoalSavings   GoalType = "savings"
	GoalCustomers GoalType = "customers"
	GoalInventory GoalType = "inventory"
	GoalCustom    GoalType = "custom"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalOverdue   GoalStatus = "overdue"
)

// Weekdays is the fixed order of the trailing-week sales sequence created at onboarding.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// SalesRecord is one day of the trailing week.
type SalesRecord struct {
	Day     string          `json:"day" validate:"required"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CashFlowEntry is a single ledger line. IDs are millisecond timestamps assigned on insert.
type CashFlowEntry struct {
	ID          int64           `json:"id"`
	Kind        EntryKind       `json:"type" validate:"oneof=income expense"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
}

// InventoryItem holds stock counts. Its status is never stored; see Status.
type InventoryItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Stock     int             `json:"stock" validate:"gte=0"`
	MinStock  int             `json:"minStock" validate:"gte=0"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Status is recomputed from Stock and MinStock on every call.
func (i InventoryItem) Status() StockStatus {
	return InventoryStatus(i.Stock, i.MinStock)
}

// MarshalJSON emits the derived status next to the stored fields. Any status
// present on input is ignored when decoding.
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type item InventoryItem
	return json.Marshal(struct {
		item
		Status StockStatus `json:"status"`
	}{item(i), i.Status()})
}

type BusinessProfile struct {
	BusinessName string `json:"businessName"`
	OwnerName    string `json:"ownerName"`
	Email        string `json:"email"`
	City         string `json:"city"`
	CurrencyCode string `json:"currency"`
}

// Goal is a user-defined target. For revenue goals Current is replaced by live
// figures when progress is computed.
type Goal struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description,omitempty"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Type        GoalType        `json:"type" validate:"oneof=revenue savings customers inventory custom"`
	Deadline    time.Time       `json:"deadline"`
	CreatedAt   time.Time       `json:"createdAt"`
	Unit        string          `json:"unit,omitempty"`
}

// Snapshot is the complete business state taken at one instant. Engine
// functions read it and never modify it.
type Snapshot struct {
	Profile   BusinessProfile `json:"profile"`
	Sales     []SalesRecord   `json:"salesData"`
	Ledger    []CashFlowEntry `json:"cashFlowData"`
	Inventory []InventoryItem `json:"inventoryData"`
}
