package repl

import (
	"fmt"
	"io"
	"strings"

	"bilantra/internal/app"
	"bilantra/internal/core"
	"bilantra/internal/locale"
)

func rule(w io.Writer, ch string, n int) {
	fmt.Fprintln(w, strings.Repeat(ch, n))
}

// PrintDashboard renders the home screen figures.
func PrintDashboard(w io.Writer, d *app.DashboardResult) {
	cur := d.Account.Currency
	lang := locale.Lang(d.Account.Language)
	fmt.Fprintln(w)
	rule(w, "=", 62)
	fmt.Fprintf(w, "  %s, %s\n", d.Greeting, d.Account.OwnerName)
	fmt.Fprintf(w, "  %s (%s)\n", d.Account.BusinessName, cur)
	rule(w, "=", 62)
	fmt.Fprintf(w, "  %-28s %20s\n", locale.T(lang, "weeklyRevenue"), locale.FormatMoney(cur, d.Summary.TotalRevenue))
	fmt.Fprintf(w, "  %-28s %20s\n", locale.T(lang, "expenses"), locale.FormatMoney(cur, d.Summary.TotalExpenses))
	fmt.Fprintf(w, "  %-28s %20s\n", locale.T(lang, "profit"), locale.FormatMoney(cur, d.Summary.NetProfit))
	fmt.Fprintf(w, "  %-28s %19s%%\n", "Margin", d.Summary.ProfitMargin.StringFixed(1))
	fmt.Fprintf(w, "  %-28s %20s\n", locale.T(lang, "inventory"), locale.FormatMoney(cur, d.Summary.InventoryValue))
	fmt.Fprintf(w, "  %-28s %17d/100\n", locale.T(lang, "loanReadiness"), d.Score.Score)
	rule(w, "-", 62)
	PrintSales(w, cur, d.Snapshot.Sales)
	if len(d.Alerts) > 0 {
		rule(w, "-", 62)
		PrintAlerts(w, d.Alerts)
	}
	rule(w, "=", 62)
}

func PrintSales(w io.Writer, cur string, sales []core.SalesRecord) {
	for _, r := range sales {
		fmt.Fprintf(w, "  %-6s %20s\n", r.Day, locale.FormatMoney(cur, r.Revenue))
	}
}

func PrintPeriod(w io.Writer, cur string, points []core.PeriodPoint) {
	for _, p := range points {
		fmt.Fprintf(w, "  %-8s %20s\n", p.Label, locale.FormatMoney(cur, p.Revenue))
	}
}

func PrintScore(w io.Writer, r *core.LoanReadiness) {
	fmt.Fprintf(w, "\nLoan readiness: %d/100 (%s policy)\n", r.Score, r.Policy)
	for _, c := range r.Components {
		fmt.Fprintf(w, "  %-10s %3d/%-3d %s\n", c.Name, c.Score, c.Max, c.Reasoning)
	}
	fmt.Fprintln(w, "Recommendations:")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

func PrintInsights(w io.Writer, insights []core.Insight) {
	if len(insights) == 0 {
		fmt.Fprintln(w, "No insights yet. Record some sales and transactions first.")
		return
	}
	for _, in := range insights {
		fmt.Fprintf(w, "\n[%s/%s] %s\n  %s\n", strings.ToUpper(string(in.Kind)), in.Impact, in.Title, in.Body)
	}
}

func PrintAlerts(w io.Writer, alerts []core.InventoryAlert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "  No inventory alerts.")
		return
	}
	for _, a := range alerts {
		fmt.Fprintf(w, "  [%-6s] %s\n", a.Severity, a.Message)
	}
}

func PrintLedger(w io.Writer, cur string, ledger []core.CashFlowEntry) {
	if len(ledger) == 0 {
		fmt.Fprintln(w, "  No transactions recorded.")
		return
	}
	fmt.Fprintf(w, "  %-14s %-10s %-8s %15s  %s\n", "ID", "DATE", "TYPE", "AMOUNT", "DESCRIPTION")
	for _, e := range ledger {
		fmt.Fprintf(w, "  %-14d %-10s %-8s %15s  %s\n", e.ID, e.Date, e.Kind, locale.FormatMoney(cur, e.Amount), e.Description)
	}
}

func PrintInventory(w io.Writer, cur string, items []core.InventoryItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "  No inventory items.")
		return
	}
	fmt.Fprintf(w, "  %-14s %-24s %6s %6s %12s  %s\n", "ID", "NAME", "STOCK", "MIN", "PRICE", "STATUS")
	for _, it := range items {
		fmt.Fprintf(w, "  %-14d %-24s %6d %6d %12s  %s\n",
			it.ID, it.Name, it.Stock, it.MinStock, locale.FormatMoney(cur, it.UnitPrice), it.Status())
	}
}

func PrintGoals(w io.Writer, goals []core.GoalProgress) {
	if len(goals) == 0 {
		fmt.Fprintln(w, "  No goals set.")
		return
	}
	for _, g := range goals {
		fmt.Fprintf(w, "  %-14d %-28s %6s%%  %-9s %d days left\n",
			g.Goal.ID, g.Goal.Title, g.Percent.StringFixed(0), g.Status, g.DaysRemaining)
	}
}

func PrintLenders(w io.Writer, res *app.LenderResult) {
	fmt.Fprintf(w, "\nLenders near %s (loan score %d/100)\n", res.Location, res.LoanScore)
	for _, l := range res.Lenders {
		fmt.Fprintf(w, "  %-22s %3d%% match  %-6s up to %-12s %s\n", l.Name, l.Match, l.Rate, l.MaxAmount, l.ApprovalTime)
	}
}

func PrintTeam(w io.Writer, team []core.TeamMember) {
	for _, m := range team {
		fmt.Fprintf(w, "  %-24s %-30s %-9s %s\n", m.Name, m.Email, m.Role, m.Status)
	}
}

func PrintReport(w io.Writer, r *core.Report) {
	fmt.Fprintf(w, "\n%s report for %s\n", strings.ToUpper(string(r.Kind)), r.Business)
	switch {
	case r.Financial != nil:
		f := r.Financial
		fmt.Fprintf(w, "  Revenue %s  Income %s  Expenses %s  Profit %s  Margin %s%%\n",
			f.Revenue.StringFixed(2), f.Income.StringFixed(2), f.Expenses.StringFixed(2), f.Profit.StringFixed(2), f.ProfitMargin.StringFixed(1))
	case r.Inventory != nil:
		i := r.Inventory
		fmt.Fprintf(w, "  Value %s  Items %d  Low stock %d  Average %s\n",
			i.TotalValue.StringFixed(2), i.TotalItems, i.LowStockItems, i.AverageValue.StringFixed(2))
	case r.CashFlow != nil:
		c := r.CashFlow
		fmt.Fprintf(w, "  Income %s  Expenses %s  Net %s\n", c.TotalIncome.StringFixed(2), c.TotalExpenses.StringFixed(2), c.Net.StringFixed(2))
	case r.Performance != nil:
		p := r.Performance
		fmt.Fprintf(w, "  Average daily %s  Loan score %d\n", p.AverageDailyRevenue.StringFixed(2), p.LoanScore)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  /dash                          dashboard
  /score                         loan readiness breakdown
  /insights                      business insights
  /alerts                        inventory alerts
  /sales [weekly|monthly|yearly] sales by period
  /sale <day> <amount>           add revenue to a weekday
  /income <amount> <desc...>     record income
  /expense <amount> <desc...>    record an expense
  /ledger                        list transactions
  /delete-tx <id>                delete a transaction
  /stock                         list inventory
  /add-item <name> <stock> <min> <price>
  /set-stock <id> <stock>        update stock level
  /goals                         list goals
  /new-goal                      create a goal interactively
  /report <financial|inventory|cashflow|performance>
  /lenders [location]            match lenders
  /invoice <client> <amount> [email]
  /team                          list team members
  /currency <code>               change currency
  /language <code>               change language
  /help, /exit
Anything else is sent to the assistant.`)
}
