// Package cli exposes the application service as one-shot cobra commands.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bilantra/internal/adapters/repl"
	"bilantra/internal/app"
	"bilantra/internal/core"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// AccountEnv names the environment variable that supplies --account.
const AccountEnv = "BILANTRA_ACCOUNT"

type runner struct {
	svc     app.ApplicationService
	account string
	asJSON  bool
}

// NewRootCommand builds the command tree over svc.
func NewRootCommand(svc app.ApplicationService) *cobra.Command {
	r := &runner{svc: svc}

	root := &cobra.Command{
		Use:           "bilantra",
		Short:         "Small-business metrics: sales, cash flow, inventory and loan readiness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&r.account, "account", "a", os.Getenv(AccountEnv), "account email (env "+AccountEnv+")")
	root.PersistentFlags().BoolVar(&r.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		r.signupCmd(),
		r.dashboardCmd(),
		r.scoreCmd(),
		r.insightsCmd(),
		r.saleCmd(),
		r.ledgerCmd("income"),
		r.ledgerCmd("expense"),
		r.stockCmd(),
		r.reportCmd(),
		r.invoiceCmd(),
		r.lendersCmd(),
		r.replCmd(),
	)
	return root
}

// requireAccount is a PreRunE for commands that act on an existing account.
func (r *runner) requireAccount(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(r.account) == "" {
		return fmt.Errorf("--account is required (or set %s)", AccountEnv)
	}
	return nil
}

func (r *runner) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", core.ErrInvalidInput, s)
	}
	return d, nil
}

// ─── signup ─────────────────────────────────────────────────────────────────

func (r *runner) signupCmd() *cobra.Command {
	var req app.SignUpRequest
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a business account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Email == "" {
				req.Email = r.account
			}
			acct, err := r.svc.SignUp(cmd.Context(), req)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, acct)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s (%s).\n", acct.BusinessName, acct.Email)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.BusinessName, "business", "", "business name")
	f.StringVar(&req.OwnerName, "owner", "", "owner name")
	f.StringVar(&req.Email, "email", "", "login email (defaults to --account)")
	f.StringVar(&req.Password, "password", "", "password (min 6 characters)")
	f.StringVar(&req.City, "city", "", "city, used for lender matching")
	f.StringVar(&req.Currency, "currency", "USD", "ISO currency code")
	_ = cmd.MarkFlagRequired("business")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// ─── read-only views ────────────────────────────────────────────────────────

func (r *runner) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the business dashboard",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := r.svc.Dashboard(cmd.Context(), r.account)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, d)
			}
			repl.PrintDashboard(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (r *runner) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "score",
		Short:   "Show the loan readiness score and its breakdown",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := r.svc.Score(cmd.Context(), r.account)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, s)
			}
			repl.PrintScore(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func (r *runner) insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "insights",
		Short:   "List business insights, most important first",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ins, err := r.svc.Insights(cmd.Context(), r.account)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, ins)
			}
			repl.PrintInsights(cmd.OutOrStdout(), ins)
			return nil
		},
	}
}

// ─── mutations ──────────────────────────────────────────────────────────────

func (r *runner) saleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sale DAY AMOUNT",
		Short:   "Add revenue to a weekday (Mon..Sun)",
		Args:    cobra.ExactArgs(2),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal(args[1])
			if err != nil {
				return err
			}
			sales, err := r.svc.RecordSale(cmd.Context(), r.account, app.SaleRequest{Day: args[0], Amount: amount})
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, sales)
			}
			sum, err := r.svc.Summary(cmd.Context(), r.account)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded. Weekly revenue is now %s.\n", sum.TotalRevenue.StringFixed(2))
			return nil
		},
	}
}

func (r *runner) ledgerCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:     kind + " AMOUNT DESCRIPTION...",
		Short:   "Record " + kind,
		Args:    cobra.MinimumNArgs(2),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			e, err := r.svc.AddTransaction(cmd.Context(), r.account, app.TransactionRequest{
				Kind:        kind,
				Amount:      amount,
				Description: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %d on %s at %s.\n", e.Kind, e.ID, e.Date, e.Time)
			return nil
		},
	}
}

func (r *runner) stockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stock",
		Short:   "List or change inventory",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := r.svc.Dashboard(cmd.Context(), r.account)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, d.Snapshot.Inventory)
			}
			repl.PrintInventory(cmd.OutOrStdout(), d.Account.Currency, d.Snapshot.Inventory)
			return nil
		},
	}

	add := &cobra.Command{
		Use:     "add NAME STOCK MIN_STOCK PRICE",
		Short:   "Add an inventory item",
		Args:    cobra.ExactArgs(4),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: stock %q", core.ErrInvalidInput, args[1])
			}
			minStock, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: min stock %q", core.ErrInvalidInput, args[2])
			}
			price, err := parseDecimal(args[3])
			if err != nil {
				return err
			}
			it, err := r.svc.AddInventoryItem(cmd.Context(), r.account, app.InventoryItemRequest{
				Name: args[0], Stock: stock, MinStock: minStock, Price: price,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %d), status %s.\n", it.Name, it.ID, it.Status())
			return nil
		},
	}

	set := &cobra.Command{
		Use:     "set ID STOCK",
		Short:   "Set the stock level of an item",
		Args:    cobra.ExactArgs(2),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: id %q", core.ErrInvalidInput, args[0])
			}
			stock, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: stock %q", core.ErrInvalidInput, args[1])
			}
			it, err := r.svc.UpdateStock(cmd.Context(), r.account, id, stock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d in stock (%s).\n", it.Name, it.Stock, it.Status())
			return nil
		},
	}

	cmd.AddCommand(add, set)
	return cmd
}

// ─── outputs ────────────────────────────────────────────────────────────────

func (r *runner) reportCmd() *cobra.Command {
	var days int
	var xlsx string
	cmd := &cobra.Command{
		Use:     "report [financial|inventory|cashflow|performance]",
		Short:   "Print a report; with no kind prints the full text report",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if xlsx != "" {
				f, err := os.Create(xlsx)
				if err != nil {
					return err
				}
				if err := r.svc.ExportWorkbook(ctx, r.account, f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", xlsx)
				return nil
			}

			if len(args) == 0 {
				text, err := r.svc.ReportText(ctx, r.account, days)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			kind, err := core.ParseReportKind(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			rep, err := r.svc.Report(ctx, r.account, kind)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, rep)
			}
			repl.PrintReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "period covered by the text report")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write an XLSX workbook to this path instead")
	return cmd
}

func (r *runner) invoiceCmd() *cobra.Command {
	var req app.InvoiceRequest
	var pdfPath string
	var link bool
	cmd := &cobra.Command{
		Use:     "invoice CLIENT AMOUNT",
		Short:   "Create a quick invoice",
		Args:    cobra.ExactArgs(2),
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal(args[1])
			if err != nil {
				return err
			}
			req.ClientName, req.Amount = args[0], amount
			ctx := cmd.Context()

			if pdfPath != "" {
				data, err := r.svc.InvoicePDF(ctx, r.account, req)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Invoice written to %s\n", pdfPath)
				return nil
			}

			create := r.svc.CreateInvoice
			if link {
				create = r.svc.PaymentLink
			}
			res, err := create(ctx, r.account, req)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ClientEmail, "email", "", "client email")
	cmd.Flags().StringVar(&req.Description, "desc", "", "line description")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF to this path")
	cmd.Flags().BoolVar(&link, "link", false, "attach a payment link (requires --email)")
	return cmd
}

func (r *runner) lendersCmd() *cobra.Command {
	var req app.LenderRequest
	var amount string
	cmd := &cobra.Command{
		Use:     "lenders",
		Short:   "Match lenders for the business location",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if amount != "" {
				d, err := parseDecimal(amount)
				if err != nil {
					return err
				}
				req.Amount = d
			}
			res, err := r.svc.MatchLenders(cmd.Context(), r.account, req)
			if err != nil {
				return err
			}
			if r.asJSON {
				return r.printJSON(cmd, res)
			}
			repl.PrintLenders(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Location, "location", "", "location (defaults to the business city)")
	cmd.Flags().StringVar(&amount, "amount", "", "loan amount sought")
	cmd.Flags().StringVar(&req.Purpose, "purpose", "", "what the loan is for")
	return cmd
}

func (r *runner) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Short:   "Start the interactive shell",
		PreRunE: r.requireAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return repl.Run(cmd.Context(), r.svc, r.account, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
		},
	}
}
