package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// PeriodPoint is one bar of a sales chart.
type PeriodPoint struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// monthBuckets are half-open day index ranges of the recorded week.
var monthBuckets = [4][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 7}}

// quarterFactors project the weekly total onto quarters.
var quarterFactors = [4]string{"0.8", "1.2", "1.5", "0.9"}

// SalesByPeriod projects the recorded week onto the requested chart period.
func SalesByPeriod(sales []SalesRecord, period Period) ([]PeriodPoint, error) {
	switch period {
	case PeriodWeekly:
		points := make([]PeriodPoint, len(sales))
		for i, r := range sales {
			points[i] = PeriodPoint{Label: r.Day, Revenue: r.Revenue}
		}
		return points, nil

	case PeriodMonthly:
		points := make([]PeriodPoint, len(monthBuckets))
		for i, b := range monthBuckets {
			lo, hi := min(b[0], len(sales)), min(b[1], len(sales))
			points[i] = PeriodPoint{
				Label:   fmt.Sprintf("Week %d", i+1),
				Revenue: TotalRevenue(sales[lo:hi]),
			}
		}
		return points, nil

	case PeriodYearly:
		total := TotalRevenue(sales)
		points := make([]PeriodPoint, len(quarterFactors))
		for i, f := range quarterFactors {
			points[i] = PeriodPoint{
				Label:   fmt.Sprintf("Q%d", i+1),
				Revenue: total.Mul(decimal.RequireFromString(f)),
			}
		}
		return points, nil
	}
	return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
}
