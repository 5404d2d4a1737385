package core_test

import (
	"testing"

	"bilantra/internal/core"
)

func TestInventoryAlerts(t *testing.T) {
	items := []core.InventoryItem{
		{ID: 1, Name: "Soap", Stock: 0, MinStock: 4},
		{ID: 2, Name: "Rice", Stock: 2, MinStock: 4},
		{ID: 3, Name: "Oil", Stock: 3, MinStock: 4},
		{ID: 4, Name: "Salt", Stock: 20, MinStock: 4},
	}

	type alert struct {
		id  int64
		typ core.AlertType
	}
	tests := []struct {
		name     string
		settings core.AlertSettings
		want     []alert
	}{
		{
			name:     "all enabled",
			settings: core.DefaultAlertSettings(),
			want: []alert{
				{1, core.AlertCriticalStock}, {1, core.AlertReorder},
				{2, core.AlertLowStock}, {2, core.AlertReorder},
				{3, core.AlertLowStock},
			},
		},
		{
			name:     "reorder disabled",
			settings: core.AlertSettings{CriticalStock: true, LowStock: true},
			want:     []alert{{1, core.AlertCriticalStock}, {2, core.AlertLowStock}, {3, core.AlertLowStock}},
		},
		{
			name:     "critical disabled does not fall through to low",
			settings: core.AlertSettings{LowStock: true},
			want:     []alert{{2, core.AlertLowStock}, {3, core.AlertLowStock}},
		},
		{
			name:     "all disabled",
			settings: core.AlertSettings{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.InventoryAlerts(items, tt.settings)
			if len(got) != len(tt.want) {
				t.Fatalf("want %d alerts, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if got[i].ItemID != w.id || got[i].Type != w.typ {
					t.Errorf("alert %d: want %d/%s, got %d/%s", i, w.id, w.typ, got[i].ItemID, got[i].Type)
				}
			}
		})
	}
}

func TestInventoryAlerts_Messages(t *testing.T) {
	got := core.InventoryAlerts([]core.InventoryItem{{ID: 7, Name: "Rice", Stock: 1, MinStock: 2}}, core.DefaultAlertSettings())
	if len(got) != 2 {
		t.Fatalf("want low + reorder, got %+v", got)
	}
	if got[0].Message != "Rice is running low (1 left)" || got[0].Severity != core.SeverityMedium {
		t.Errorf("unexpected low alert: %+v", got[0])
	}
	if got[1].Message != "Consider reordering Rice" || got[1].Severity != core.SeverityLow {
		t.Errorf("unexpected reorder alert: %+v", got[1])
	}
}
