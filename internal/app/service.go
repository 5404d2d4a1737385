package app

import (
	"context"
	"io"

	"bilantra/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI, Web) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
//
// Every method other than SignUp and Login takes the account email of an
// authenticated session. Loading an account idle for longer than the session
// TTL deletes it and returns core.ErrSessionExpired.
type ApplicationService interface {
	// SignUp creates a new account with an empty week, ledger and inventory.
	SignUp(ctx context.Context, req SignUpRequest) (*AccountResult, error)

	// Login verifies credentials. Unknown emails and wrong passwords both
	// return core.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*AccountResult, error)

	// Logout records the end of a session. Account data stays in the store
	// until it expires.
	Logout(ctx context.Context, email string) error

	// Dashboard returns everything the home screen shows in one call.
	Dashboard(ctx context.Context, email string) (*DashboardResult, error)

	Summary(ctx context.Context, email string) (*core.Summary, error)
	Score(ctx context.Context, email string) (*core.LoanReadiness, error)
	Insights(ctx context.Context, email string) ([]core.Insight, error)
	Alerts(ctx context.Context, email string) (*AlertsResult, error)
	UpdateAlertSettings(ctx context.Context, email string, settings core.AlertSettings) (*AlertsResult, error)

	// RecordSale adds amount to the revenue of an existing weekday.
	RecordSale(ctx context.Context, email string, req SaleRequest) ([]core.SalesRecord, error)

	// SalesByPeriod returns the weekly, monthly or yearly sales series.
	SalesByPeriod(ctx context.Context, email string, period core.Period) ([]core.PeriodPoint, error)

	// AddTransaction prepends a ledger entry stamped with the current date and time.
	AddTransaction(ctx context.Context, email string, req TransactionRequest) (*core.CashFlowEntry, error)
	DeleteTransaction(ctx context.Context, email string, id int64) error

	AddInventoryItem(ctx context.Context, email string, req InventoryItemRequest) (*core.InventoryItem, error)
	UpdateStock(ctx context.Context, email string, id int64, stock int) (*core.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, email string, id int64) error

	// ListGoals returns each goal with its live progress.
	ListGoals(ctx context.Context, email string) ([]core.GoalProgress, error)
	CreateGoal(ctx context.Context, email string, req GoalRequest) (*core.GoalProgress, error)
	UpdateGoalProgress(ctx context.Context, email string, id int64, current string) (*core.GoalProgress, error)
	DeleteGoal(ctx context.Context, email string, id int64) error

	// CreateInvoice builds an invoice from the business profile and returns
	// it with its plain-text rendering.
	CreateInvoice(ctx context.Context, email string, req InvoiceRequest) (*InvoiceResult, error)
	InvoicePDF(ctx context.Context, email string, req InvoiceRequest) ([]byte, error)
	// PaymentLink returns a simulated checkout URL. The client email is required.
	PaymentLink(ctx context.Context, email string, req InvoiceRequest) (*InvoiceResult, error)

	// Report builds one report section. ReportText renders the full printable report.
	Report(ctx context.Context, email string, kind core.ReportKind) (*core.Report, error)
	ReportText(ctx context.Context, email string, periodDays int) (string, error)
	ExportWorkbook(ctx context.Context, email string, w io.Writer) error

	// MatchLenders returns the lender directory for a location, best match first.
	MatchLenders(ctx context.Context, email string, req LenderRequest) (*LenderResult, error)

	// Team management. actor is the member performing the change and must hold
	// manage_users; the owner can never be removed.
	ListTeam(ctx context.Context, email string) ([]core.TeamMember, error)
	AddTeamMember(ctx context.Context, email, actor string, req TeamMemberRequest) (*core.TeamMember, error)
	ChangeRole(ctx context.Context, email, actor, member string, role core.Role) (*core.TeamMember, error)
	RemoveTeamMember(ctx context.Context, email, actor, member string) error

	SetCurrency(ctx context.Context, email, code string) (*AccountResult, error)
	SetLanguage(ctx context.Context, email, code string) (*AccountResult, error)

	// AskAssistant answers a free-form question about the business.
	AskAssistant(ctx context.Context, email, question string) (*AssistantResult, error)
}
