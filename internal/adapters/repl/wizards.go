package repl

import (
	"fmt"
	"strings"

	"bilantra/internal/app"
	"bilantra/internal/core"
)

// newGoal runs an interactive goal creation session.
func (s *session) newGoal() error {
	w := s.w
	fmt.Fprintln(w, "Creating a goal. Type 'cancel' at any prompt to abort.")

	ask := func(prompt string) (string, bool) {
		fmt.Fprintf(w, "  %s: ", prompt)
		raw, err := s.reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if err != nil && raw == "" {
			return "", false
		}
		return raw, !strings.EqualFold(raw, "cancel")
	}

	var req app.GoalRequest
	var ok bool
	if req.Title, ok = ask("Title"); !ok {
		fmt.Fprintln(w, "Goal creation cancelled.")
		return nil
	}
	if req.Description, ok = ask("Description (optional)"); !ok {
		fmt.Fprintln(w, "Goal creation cancelled.")
		return nil
	}

	for {
		raw, ok := ask("Target amount")
		if !ok {
			fmt.Fprintln(w, "Goal creation cancelled.")
			return nil
		}
		target, err := parseAmount(raw)
		if err != nil || !target.IsPositive() {
			fmt.Fprintln(w, "  Target must be a number greater than zero.")
			continue
		}
		req.Target = target
		break
	}

	for {
		raw, ok := ask("Type (revenue, savings, customers, inventory, custom) [custom]")
		if !ok {
			fmt.Fprintln(w, "Goal creation cancelled.")
			return nil
		}
		if raw == "" {
			raw = string(core.GoalCustom)
		}
		switch core.GoalType(strings.ToLower(raw)) {
		case core.GoalRevenue, core.GoalSavings, core.GoalCustomers, core.GoalInventory, core.GoalCustom:
			req.Type = strings.ToLower(raw)
		default:
			fmt.Fprintln(w, "  Unknown goal type.")
			continue
		}
		break
	}

	if req.Deadline, ok = ask("Deadline (YYYY-MM-DD)"); !ok {
		fmt.Fprintln(w, "Goal creation cancelled.")
		return nil
	}

	g, err := s.svc.CreateGoal(s.ctx, s.account, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Goal %q created: %s%% complete, %d days remaining.\n", g.Goal.Title, g.Percent.StringFixed(0), g.DaysRemaining)
	return nil
}
