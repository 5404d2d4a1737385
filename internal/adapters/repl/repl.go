package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bilantra/internal/app"
	"bilantra/internal/core"

	"github.com/shopspring/decimal"
)

var errExit = errors.New("exit")

// Run starts the interactive REPL loop for one account.
// It reads commands from reader, dispatches slash commands deterministically,
// and routes free text to the assistant.
func Run(ctx context.Context, svc app.ApplicationService, account string, reader *bufio.Reader, w io.Writer) error {
	dash, err := svc.Dashboard(ctx, account)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Bilantra")
	fmt.Fprintf(w, "%s - %s (%s)\n", dash.Account.BusinessName, dash.Account.OwnerName, dash.Account.Currency)
	fmt.Fprintln(w, "Ask a question about your business, or use /help for commands.")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	s := &session{ctx: ctx, svc: svc, account: account, reader: reader, w: w, currency: dash.Account.Currency}

	for {
		fmt.Fprint(w, "\n> ")
		input, readErr := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			if readErr != nil {
				return nil
			}
			continue
		}

		// Slash prefix → deterministic command dispatcher, no assistant invoked.
		if strings.HasPrefix(input, "/") {
			if err := s.dispatch(input); err != nil {
				if errors.Is(err, errExit) {
					fmt.Fprintln(w, "Goodbye!")
					return nil
				}
				if errors.Is(err, core.ErrSessionExpired) {
					fmt.Fprintln(w, "Session expired. Please sign in again.")
					return err
				}
				fmt.Fprintf(w, "Error: %v\n", err)
			}
		} else {
			reply, err := svc.AskAssistant(ctx, account, input)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
			} else {
				fmt.Fprintf(w, "\n[AI]: %s\n", reply.Message)
				for _, sug := range reply.Suggestions {
					fmt.Fprintf(w, "  - %s\n", sug)
				}
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

type session struct {
	ctx      context.Context
	svc      app.ApplicationService
	account  string
	reader   *bufio.Reader
	w        io.Writer
	currency string
}

func (s *session) usage(text string) error {
	fmt.Fprintln(s.w, "Usage: "+text)
	return nil
}

func (s *session) dispatch(input string) error {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]
	ctx, svc, acct, w := s.ctx, s.svc, s.account, s.w

	switch cmd {
	case "dash", "dashboard", "d":
		d, err := svc.Dashboard(ctx, acct)
		if err != nil {
			return err
		}
		PrintDashboard(w, d)

	case "score":
		r, err := svc.Score(ctx, acct)
		if err != nil {
			return err
		}
		PrintScore(w, r)

	case "insights":
		ins, err := svc.Insights(ctx, acct)
		if err != nil {
			return err
		}
		PrintInsights(w, ins)

	case "alerts":
		res, err := svc.Alerts(ctx, acct)
		if err != nil {
			return err
		}
		PrintAlerts(w, res.Alerts)

	case "sales":
		period := core.PeriodWeekly
		if len(args) > 0 {
			period = core.Period(strings.ToLower(args[0]))
		}
		points, err := svc.SalesByPeriod(ctx, acct, period)
		if err != nil {
			return err
		}
		PrintPeriod(w, s.currency, points)

	case "sale":
		if len(args) < 2 {
			return s.usage("/sale <day> <amount>")
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		sales, err := svc.RecordSale(ctx, acct, app.SaleRequest{Day: args[0], Amount: amount})
		if err != nil {
			return err
		}
		PrintSales(w, s.currency, sales)

	case "income", "expense":
		if len(args) < 2 {
			return s.usage("/" + cmd + " <amount> <description...>")
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		e, err := svc.AddTransaction(ctx, acct, app.TransactionRequest{
			Kind:        cmd,
			Amount:      amount,
			Description: strings.Join(args[1:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Recorded %s %d: %s %s\n", e.Kind, e.ID, e.Amount.StringFixed(2), e.Description)

	case "ledger":
		d, err := svc.Dashboard(ctx, acct)
		if err != nil {
			return err
		}
		PrintLedger(w, s.currency, d.Snapshot.Ledger)

	case "delete-tx":
		if len(args) < 1 {
			return s.usage("/delete-tx <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := svc.DeleteTransaction(ctx, acct, id); err != nil {
			return err
		}
		fmt.Fprintf(w, "Transaction %d deleted.\n", id)

	case "stock":
		d, err := svc.Dashboard(ctx, acct)
		if err != nil {
			return err
		}
		PrintInventory(w, s.currency, d.Snapshot.Inventory)

	case "add-item":
		if len(args) < 4 {
			return s.usage("/add-item <name> <stock> <min> <price>")
		}
		n := len(args)
		stock, err1 := strconv.Atoi(args[n-3])
		minStock, err2 := strconv.Atoi(args[n-2])
		price, err3 := decimal.NewFromString(args[n-1])
		if err := errors.Join(err1, err2, err3); err != nil {
			return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
		}
		it, err := svc.AddInventoryItem(ctx, acct, app.InventoryItemRequest{
			Name:     strings.Join(args[:n-3], " "),
			Stock:    stock,
			MinStock: minStock,
			Price:    price,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Added %s (id %d), status %s.\n", it.Name, it.ID, it.Status())

	case "set-stock":
		if len(args) < 2 {
			return s.usage("/set-stock <id> <stock>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stock, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: stock %q", core.ErrInvalidInput, args[1])
		}
		it, err := svc.UpdateStock(ctx, acct, id, stock)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s now has %d in stock (%s).\n", it.Name, it.Stock, it.Status())

	case "goals":
		goals, err := svc.ListGoals(ctx, acct)
		if err != nil {
			return err
		}
		PrintGoals(w, goals)

	case "new-goal":
		return s.newGoal()

	case "report":
		if len(args) < 1 {
			return s.usage("/report <financial|inventory|cashflow|performance>")
		}
		kind, err := core.ParseReportKind(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		r, err := svc.Report(ctx, acct, kind)
		if err != nil {
			return err
		}
		PrintReport(w, r)

	case "lenders":
		res, err := svc.MatchLenders(ctx, acct, app.LenderRequest{Location: strings.Join(args, " ")})
		if err != nil {
			return err
		}
		PrintLenders(w, res)

	case "invoice":
		if len(args) < 2 {
			return s.usage("/invoice <client> <amount> [email]")
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		req := app.InvoiceRequest{ClientName: args[0], Amount: amount}
		if len(args) > 2 {
			req.ClientEmail = args[2]
		}
		res, err := svc.CreateInvoice(ctx, acct, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res.Text)

	case "team":
		team, err := svc.ListTeam(ctx, acct)
		if err != nil {
			return err
		}
		PrintTeam(w, team)

	case "currency":
		if len(args) < 1 {
			return s.usage("/currency <code>")
		}
		a, err := svc.SetCurrency(ctx, acct, args[0])
		if err != nil {
			return err
		}
		s.currency = a.Currency
		fmt.Fprintf(w, "Currency set to %s.\n", a.Currency)

	case "language":
		if len(args) < 1 {
			return s.usage("/language <code>")
		}
		a, err := svc.SetLanguage(ctx, acct, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Language set to %s.\n", a.Language)

	case "help", "h":
		printHelp(w)

	case "exit", "quit", "e", "q":
		return errExit

	default:
		fmt.Fprintf(w, "Unknown command: /%s  (type /help for all commands)\n", cmd)
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", core.ErrInvalidInput, s)
	}
	return d, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", core.ErrInvalidInput, s)
	}
	return id, nil
}
