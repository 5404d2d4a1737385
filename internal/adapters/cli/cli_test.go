package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"bilantra/internal/adapters/cli"
	"bilantra/internal/app"
	"bilantra/internal/core"
	"bilantra/internal/store"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const account = "kofi@chopbar.gh"

func newService(t *testing.T) app.ApplicationService {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return app.NewAppService(store.NewMemoryStore(), nil, logger)
}

func execute(t *testing.T, svc app.ApplicationService, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(svc)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func signUp(t *testing.T, svc app.ApplicationService) {
	t.Helper()
	out, err := execute(t, svc, "signup", "--account", account,
		"--business", "Kofi's Chop Bar", "--owner", "Kofi", "--password", "waakye1",
		"--city", "Accra", "--currency", "GHS")
	require.NoError(t, err)
	assert.Contains(t, out, "Account created for Kofi's Chop Bar")
}

func TestSignupAndRecord(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)

	out, err := execute(t, svc, "sale", "tue", "420.50", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Weekly revenue is now 420.50")

	out, err = execute(t, svc, "expense", "60", "gas", "refill", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded expense")

	sum, err := svc.Summary(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "360.5", sum.NetProfit.String())

	out, err = execute(t, svc, "dashboard", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Kofi's Chop Bar")
}

func TestAccountRequired(t *testing.T) {
	t.Setenv(cli.AccountEnv, "")
	_, err := execute(t, newService(t), "score")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--account is required")
}

func TestInvalidArguments(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)

	_, err := execute(t, svc, "sale", "Funday", "10", "-a", account)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = execute(t, svc, "income", "lots", "of money", "-a", account)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = execute(t, svc, "report", "weather", "-a", account)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestStock(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)

	out, err := execute(t, svc, "stock", "add", "Tilapia", "12", "5", "35", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Added Tilapia")
	assert.Contains(t, out, "status good")

	dash, err := svc.Dashboard(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, dash.Snapshot.Inventory, 1)
	id := strconv.FormatInt(dash.Snapshot.Inventory[0].ID, 10)

	out, err = execute(t, svc, "stock", "set", id, "0", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Tilapia now has 0 in stock (critical)")

	out, err = execute(t, svc, "stock", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Tilapia")
}

func TestReportsAndExports(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)
	_, err := execute(t, svc, "sale", "Mon", "100", "-a", account)
	require.NoError(t, err)

	out, err := execute(t, svc, "report", "financial", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "FINANCIAL report for Kofi's Chop Bar")

	out, err = execute(t, svc, "report", "--days", "7", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Period: Last 7 days")

	dir := t.TempDir()
	xlsx := filepath.Join(dir, "week.xlsx")
	_, err = execute(t, svc, "report", "--xlsx", xlsx, "-a", account)
	require.NoError(t, err)
	data, err := os.ReadFile(xlsx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))

	pdf := filepath.Join(dir, "inv.pdf")
	_, err = execute(t, svc, "invoice", "Ama Catering", "250", "--pdf", pdf, "-a", account)
	require.NoError(t, err)
	data, err = os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	out, err = execute(t, svc, "invoice", "Ama Catering", "250", "--email", "ama@catering.gh", "--link", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "https://checkout.stripe.com/pay/demo-")
}

func TestLendersAndJSON(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)

	out, err := execute(t, svc, "lenders", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, "Lenders near Accra")
	assert.Contains(t, out, "Ecobank")

	out, err = execute(t, svc, "score", "--json", "-a", account)
	require.NoError(t, err)
	assert.Contains(t, out, `"score":`)
}

func TestReplCommand(t *testing.T) {
	svc := newService(t)
	signUp(t, svc)

	cmd := cli.NewRootCommand(svc)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("/sale Wed 75\n/exit\n"))
	cmd.SetArgs([]string{"repl", "-a", account})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "₵75.00")
}
