package repl_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"bilantra/internal/adapters/repl"
	"bilantra/internal/app"
	"bilantra/internal/store"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const account = "zanele@spaza.co.za"

func newService(t *testing.T) app.ApplicationService {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	svc := app.NewAppService(store.NewMemoryStore(), nil, logger)
	_, err := svc.SignUp(context.Background(), app.SignUpRequest{
		BusinessName: "Zanele's Spaza", OwnerName: "Zanele", Email: account,
		Password: "umuntu1", City: "Johannesburg", Currency: "ZAR",
	})
	require.NoError(t, err)
	return svc
}

func run(t *testing.T, svc app.ApplicationService, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(script, "\n") + "\n"))
	require.NoError(t, repl.Run(context.Background(), svc, account, in, &out))
	return out.String()
}

func TestSlashCommands(t *testing.T) {
	svc := newService(t)
	out := run(t, svc,
		"/sale Mon 150",
		"/income 80 school uniforms",
		"/add-item Bread loaves 0 10 15.50",
		"/alerts",
		"/report financial",
		"/lenders",
		"/bogus",
		"/exit",
	)

	assert.Contains(t, out, "Zanele's Spaza - Zanele (ZAR)")
	assert.Contains(t, out, "R150.00")
	assert.Contains(t, out, "Recorded income")
	assert.Contains(t, out, "Added Bread loaves")
	assert.Contains(t, out, "Bread loaves is out of stock")
	assert.Contains(t, out, "Revenue 150.00  Income 80.00")
	assert.Contains(t, out, "Standard Bank")
	assert.Contains(t, out, "Unknown command: /bogus")
	assert.Contains(t, out, "Goodbye!")

	sum, err := svc.Summary(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "230", sum.NetProfit.String())
}

func TestErrorsAreReportedAndLoopContinues(t *testing.T) {
	svc := newService(t)
	out := run(t, svc, "/sale Funday 10", "/delete-tx 1", "/score", "/exit")
	assert.Contains(t, out, `Error: invalid input: unknown day "Funday"`)
	assert.Contains(t, out, "Error: transaction 1: not found")
	assert.Contains(t, out, "Loan readiness:")
}

func TestFreeTextGoesToAssistant(t *testing.T) {
	svc := newService(t)
	out := run(t, svc, "how are my sales?")
	assert.Contains(t, out, "[AI]: This week's revenue is R0.00")
}

func TestNewGoalWizard(t *testing.T) {
	svc := newService(t)
	out := run(t, svc,
		"/new-goal",
		"Emergency Fund",
		"",
		"abc",
		"5000",
		"holiday",
		"savings",
		"2099-01-01",
		"/goals",
		"/exit",
	)
	assert.Contains(t, out, "Target must be a number greater than zero.")
	assert.Contains(t, out, "Unknown goal type.")
	assert.Contains(t, out, `Goal "Emergency Fund" created: 0% complete`)

	goals, err := svc.ListGoals(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "savings", string(goals[0].Goal.Type))
}
