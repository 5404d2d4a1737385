package core

import "fmt"

type AlertType string

const (
	AlertCriticalStock AlertType = "critical_stock"
	AlertLowStock      AlertType = "low_stock"
	AlertReorder       AlertType = "reorder"
)

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertSettings toggles each alert type.
type AlertSettings struct {
	CriticalStock bool `json:"criticalStockEnabled"`
	LowStock      bool `json:"lowStockEnabled"`
	Reorder       bool `json:"reorderEnabled"`
}

func DefaultAlertSettings() AlertSettings {
	return AlertSettings{CriticalStock: true, LowStock: true, Reorder: true}
}

type InventoryAlert struct {
	ItemID   int64         `json:"itemId"`
	ItemName string        `json:"itemName"`
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// InventoryAlerts walks items in order. An item yields at most one of
// critical_stock or low_stock, and independently a reorder alert when stock is
// at or below half of minStock.
func InventoryAlerts(items []InventoryItem, settings AlertSettings) []InventoryAlert {
	var alerts []InventoryAlert
	for _, it := range items {
		switch it.Status() {
		case StockCritical:
			if settings.CriticalStock {
				alerts = append(alerts, InventoryAlert{
					ItemID: it.ID, ItemName: it.Name, Type: AlertCriticalStock, Severity: SeverityHigh,
					Message: fmt.Sprintf("%s is out of stock!", it.Name),
				})
			}
		case StockLow:
			if settings.LowStock {
				alerts = append(alerts, InventoryAlert{
					ItemID: it.ID, ItemName: it.Name, Type: AlertLowStock, Severity: SeverityMedium,
					Message: fmt.Sprintf("%s is running low (%d left)", it.Name, it.Stock),
				})
			}
		}

		if settings.Reorder && it.Stock*2 <= it.MinStock {
			alerts = append(alerts, InventoryAlert{
				ItemID: it.ID, ItemName: it.Name, Type: AlertReorder, Severity: SeverityLow,
				Message: fmt.Sprintf("Consider reordering %s", it.Name),
			})
		}
	}
	return alerts
}
