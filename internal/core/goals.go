package core

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalProgress is the derived view of a goal at a point in time.
type GoalProgress struct {
	Goal          Goal            `json:"goal"`
	Current       decimal.Decimal `json:"current"`
	Percent       decimal.Decimal `json:"percent"`
	Status        GoalStatus      `json:"status"`
	DaysRemaining int             `json:"daysRemaining"`
}

// ComputeGoalProgress derives percent and status for g. Revenue goals take
// their current value from the snapshot (revenue plus income); other types keep
// the stored Current. A non-positive target counts as fully reached.
func ComputeGoalProgress(g Goal, s Snapshot, now time.Time) GoalProgress {
	current := g.Current
	if g.Type == GoalRevenue {
		current = TotalRevenue(s.Sales).Add(TotalIncome(s.Ledger))
	}

	percent := hundred
	if g.Target.IsPositive() {
		percent = decimal.Min(hundred, current.Div(g.Target).Mul(hundred))
		if percent.IsNegative() {
			percent = decimal.Zero
		}
	}

	status := GoalActive
	switch {
	case current.GreaterThanOrEqual(g.Target):
		status = GoalCompleted
	case now.After(g.Deadline):
		status = GoalOverdue
	}

	return GoalProgress{
		Goal:          g,
		Current:       current,
		Percent:       percent,
		Status:        status,
		DaysRemaining: DaysUntil(g.Deadline, now),
	}
}

// DaysUntil rounds the distance to deadline up to whole days. Past deadlines
// give zero or negative values.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
