package app_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"bilantra/internal/app"
	"bilantra/internal/core"
	"bilantra/internal/store"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "amina@duka.co.ke"

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newService(t *testing.T) (app.ApplicationService, *store.MemoryStore, *clock) {
	t.Helper()
	st := store.NewMemoryStore()
	clk := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	logger, _ := logtest.NewNullLogger()
	svc := app.NewAppService(st, nil, logger, app.WithClock(clk.now))

	_, err := svc.SignUp(context.Background(), app.SignUpRequest{
		BusinessName: "Amina's Duka",
		OwnerName:    "Amina",
		Email:        "  Amina@Duka.co.ke ",
		Password:     "s3cret!",
		City:         "Nairobi",
		Currency:     "kes",
	})
	require.NoError(t, err)
	return svc, st, clk
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignUpAndLogin(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()

	sess, err := st.Load(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, sess.Snapshot.Sales, 7)
	assert.Equal(t, "KES", sess.Snapshot.Profile.CurrencyCode)
	assert.Equal(t, "en", sess.Language)
	assert.NotEqual(t, "s3cret!", sess.PasswordHash)
	require.Len(t, sess.Team, 1)
	assert.Equal(t, core.RoleOwner, sess.Team[0].Role)

	_, err = svc.SignUp(ctx, app.SignUpRequest{BusinessName: "x", OwnerName: "y", Email: owner, Password: "another"})
	assert.ErrorIs(t, err, core.ErrAccountExists)

	acct, err := svc.Login(ctx, owner, "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "Amina's Duka", acct.BusinessName)

	_, err = svc.Login(ctx, owner, "wrong")
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "s3cret!")
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.SignUp(context.Background(), app.SignUpRequest{BusinessName: "x", OwnerName: "y", Email: "not-an-email", Password: "123456"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.SignUp(context.Background(), app.SignUpRequest{BusinessName: "x", OwnerName: "y", Email: "a@b.io", Password: "123456", Currency: "XXX"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSessionExpiry(t *testing.T) {
	svc, st, clk := newService(t)
	ctx := context.Background()

	clk.advance(23 * time.Hour)
	_, err := svc.Summary(ctx, owner)
	require.NoError(t, err, "activity inside the window refreshes the session")

	clk.advance(23 * time.Hour)
	_, err = svc.Summary(ctx, owner)
	require.NoError(t, err)

	clk.advance(24*time.Hour + time.Minute)
	_, err = svc.Summary(ctx, owner)
	assert.ErrorIs(t, err, core.ErrSessionExpired)

	_, err = st.Load(ctx, owner)
	assert.ErrorIs(t, err, core.ErrNotFound, "expired session is removed")
}

func TestLedgerMutations(t *testing.T) {
	svc, _, clk := newService(t)
	ctx := context.Background()

	first, err := svc.AddTransaction(ctx, owner, app.TransactionRequest{Kind: "Income", Amount: dec("500"), Description: "Catering"})
	require.NoError(t, err)
	assert.Equal(t, clk.now().UnixMilli(), first.ID)
	assert.Equal(t, "2026-03-10", first.Date)
	assert.Equal(t, "09:00", first.Time)

	second, err := svc.AddTransaction(ctx, owner, app.TransactionRequest{Kind: "expense", Amount: dec("120"), Description: "Transport"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID, "colliding ids are bumped")

	dash, err := svc.Dashboard(ctx, owner)
	require.NoError(t, err)
	require.Len(t, dash.Snapshot.Ledger, 2)
	assert.Equal(t, second.ID, dash.Snapshot.Ledger[0].ID, "newest first")
	assert.True(t, dash.Summary.NetCashFlow.Equal(dec("380")))

	_, err = svc.AddTransaction(ctx, owner, app.TransactionRequest{Kind: "income", Amount: dec("0"), Description: "x"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = svc.AddTransaction(ctx, owner, app.TransactionRequest{Kind: "refund", Amount: dec("5"), Description: "x"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	require.NoError(t, svc.DeleteTransaction(ctx, owner, first.ID))
	assert.ErrorIs(t, svc.DeleteTransaction(ctx, owner, first.ID), core.ErrNotFound)
}

func TestSalesAndPeriods(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	sales, err := svc.RecordSale(ctx, owner, app.SaleRequest{Day: "fri", Amount: dec("300")})
	require.NoError(t, err)
	assert.True(t, sales[4].Revenue.Equal(dec("300")))

	_, err = svc.RecordSale(ctx, owner, app.SaleRequest{Day: "Funday", Amount: dec("1")})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = svc.RecordSale(ctx, owner, app.SaleRequest{Day: "Mon", Amount: dec("-1")})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	points, err := svc.SalesByPeriod(ctx, owner, core.PeriodYearly)
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.True(t, points[2].Revenue.Equal(dec("450")), "Q3 is total x 1.5")
}

func TestInventoryAndAlerts(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	item, err := svc.AddInventoryItem(ctx, owner, app.InventoryItemRequest{Name: "Maize flour", Stock: 10, MinStock: 5, Price: dec("120")})
	require.NoError(t, err)
	assert.Equal(t, core.StockGood, item.Status())

	item, err = svc.UpdateStock(ctx, owner, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, core.StockCritical, item.Status())

	alerts, err := svc.Alerts(ctx, owner)
	require.NoError(t, err)
	require.Len(t, alerts.Alerts, 2)
	assert.Equal(t, core.AlertCriticalStock, alerts.Alerts[0].Type)
	assert.Equal(t, core.AlertReorder, alerts.Alerts[1].Type)

	off := core.DefaultAlertSettings()
	off.Reorder = false
	alerts, err = svc.UpdateAlertSettings(ctx, owner, off)
	require.NoError(t, err)
	assert.Len(t, alerts.Alerts, 1)

	_, err = svc.UpdateStock(ctx, owner, 42, 3)
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, svc.DeleteInventoryItem(ctx, owner, item.ID))
}

func TestGoals(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, owner, app.GoalRequest{
		Title: "Emergency Fund", Target: dec("5000"), Current: dec("2000"), Type: "savings", Deadline: "2026-03-25",
	})
	require.NoError(t, err)
	assert.True(t, g.Percent.Equal(dec("40")))
	assert.Equal(t, 15, g.DaysRemaining)
	assert.Equal(t, core.GoalActive, g.Status)

	g, err = svc.UpdateGoalProgress(ctx, owner, g.Goal.ID, "5000")
	require.NoError(t, err)
	assert.Equal(t, core.GoalCompleted, g.Status)

	_, err = svc.CreateGoal(ctx, owner, app.GoalRequest{Title: "x", Target: dec("0"), Type: "custom", Deadline: "2026-04-01"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	goals, err := svc.ListGoals(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
	require.NoError(t, svc.DeleteGoal(ctx, owner, g.Goal.ID))
	assert.ErrorIs(t, svc.DeleteGoal(ctx, owner, g.Goal.ID), core.ErrNotFound)
}

func TestTeam(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.AddTeamMember(ctx, owner, owner, app.TeamMemberRequest{Name: "Juma", Email: "juma@duka.co.ke", Role: "employee"})
	require.NoError(t, err)
	_, err = svc.AddTeamMember(ctx, owner, owner, app.TeamMemberRequest{Name: "Juma", Email: "JUMA@duka.co.ke", Role: "viewer"})
	assert.ErrorIs(t, err, core.ErrAccountExists)

	_, err = svc.AddTeamMember(ctx, owner, "juma@duka.co.ke", app.TeamMemberRequest{Name: "Wanjiru", Email: "w@duka.co.ke", Role: "viewer"})
	assert.ErrorIs(t, err, core.ErrForbidden, "employees cannot manage users")

	m, err := svc.ChangeRole(ctx, owner, owner, "juma@duka.co.ke", core.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, m.Role)

	assert.ErrorIs(t, svc.RemoveTeamMember(ctx, owner, "juma@duka.co.ke", owner), core.ErrForbidden)
	require.NoError(t, svc.RemoveTeamMember(ctx, owner, owner, "juma@duka.co.ke"))

	team, err := svc.ListTeam(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, team, 1)
}

func TestInvoicesAndReports(t *testing.T) {
	svc, _, clk := newService(t)
	ctx := context.Background()

	res, err := svc.CreateInvoice(ctx, owner, app.InvoiceRequest{ClientName: "Acme", Amount: dec("1500")})
	require.NoError(t, err)
	assert.Equal(t, core.InvoiceNumber(clk.now()), res.Invoice.Number)
	assert.Contains(t, res.Text, "KSh1,500.00")

	_, err = svc.PaymentLink(ctx, owner, app.InvoiceRequest{ClientName: "Acme", Amount: dec("1500")})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	res, err = svc.PaymentLink(ctx, owner, app.InvoiceRequest{ClientName: "Acme", ClientEmail: "ap@acme.io", Amount: dec("1500")})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Invoice.PaymentLink)

	pdf, err := svc.InvoicePDF(ctx, owner, app.InvoiceRequest{ClientName: "Acme", Amount: dec("10")})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	rep, err := svc.Report(ctx, owner, core.ReportInventory)
	require.NoError(t, err)
	require.NotNil(t, rep.Inventory)
	assert.True(t, rep.Inventory.AverageValue.IsZero())

	text, err := svc.ReportText(ctx, owner, 0)
	require.NoError(t, err)
	assert.Contains(t, text, "Period: Last 30 days")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportWorkbook(ctx, owner, &buf))
	assert.NotZero(t, buf.Len())
}

func TestMatchLenders(t *testing.T) {
	svc, _, _ := newService(t)
	res, err := svc.MatchLenders(context.Background(), owner, app.LenderRequest{Amount: dec("1000")})
	require.NoError(t, err)
	assert.Equal(t, "Nairobi", res.Location)
	require.Len(t, res.Lenders, 4)
	assert.Equal(t, "KCB Bank", res.Lenders[0].Name)

	assert.Equal(t, "Standard Bank", app.LendersFor("Sandton, South Africa")[0].Name)
	assert.Equal(t, "Global SME Bank", app.LendersFor("Lima")[0].Name)
}

func TestSettingsAndAssistant(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	acct, err := svc.SetCurrency(ctx, owner, "ngn")
	require.NoError(t, err)
	assert.Equal(t, "NGN", acct.Currency)
	_, err = svc.SetCurrency(ctx, owner, "ZZZ")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	acct, err = svc.SetLanguage(ctx, owner, "SW")
	require.NoError(t, err)
	assert.Equal(t, "sw", acct.Language)
	_, err = svc.SetLanguage(ctx, owner, "de")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	dash, err := svc.Dashboard(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "₦", dash.CurrencySymbol)
	assert.Equal(t, "sw", dash.Account.Language)

	reply, err := svc.AskAssistant(ctx, owner, "What is my loan score?")
	require.NoError(t, err)
	assert.Contains(t, reply.Message, "/100")

	_, err = svc.AskAssistant(ctx, owner, "  ")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestConcurrentWritesAreSerialised(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddTransaction(ctx, owner, app.TransactionRequest{Kind: "income", Amount: dec("1"), Description: "tip"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	dash, err := svc.Dashboard(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, dash.Snapshot.Ledger, 20)
	assert.True(t, dash.Summary.TotalIncome.Equal(dec("20")))
}
