// seed-demo writes a demo account with a sample week, ledger, inventory and
// goals. An existing account with the same email is replaced.
//
// Usage: go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"bilantra/internal/app"
	"bilantra/internal/config"
	"bilantra/internal/store"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultEmail    = "demo@bilantra.app"
	defaultPassword = "demo1234"
)

var week = []struct {
	day     string
	revenue int64
}{
	{"Mon", 1200}, {"Tue", 950}, {"Wed", 1430}, {"Thu", 1100},
	{"Fri", 1875}, {"Sat", 2240}, {"Sun", 610},
}

var ledger = []app.TransactionRequest{
	{Kind: "income", Amount: decimal.NewFromInt(1500), Description: "Catering order"},
	{Kind: "expense", Amount: decimal.NewFromInt(2300), Description: "Stock purchase"},
	{Kind: "expense", Amount: decimal.NewFromInt(800), Description: "Rent"},
	{Kind: "income", Amount: decimal.NewFromInt(400), Description: "Delivery fees"},
}

var inventory = []app.InventoryItemRequest{
	{Name: "Rice 5kg", Stock: 24, MinStock: 10, Price: decimal.RequireFromString("12.50")},
	{Name: "Cooking oil 2L", Stock: 6, MinStock: 8, Price: decimal.RequireFromString("7.80")},
	{Name: "Sugar 1kg", Stock: 0, MinStock: 12, Price: decimal.RequireFromString("2.40")},
	{Name: "Bottled water", Stock: 60, MinStock: 24, Price: decimal.RequireFromString("0.90")},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("BILANTRA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Log)
	ctx := context.Background()

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open session store")
	}
	defer st.Close()

	email := envOr("BILANTRA_ACCOUNT", defaultEmail)
	password := envOr("BILANTRA_PASSWORD", defaultPassword)

	if err := st.Delete(ctx, email); err != nil {
		logger.WithError(err).Fatal("failed to clear existing demo account")
	}

	ttl, _ := cfg.Store.TTL()
	svc := app.NewAppService(st, nil, logger, app.WithSessionTTL(ttl))
	if err := seed(ctx, svc, email, password, time.Now()); err != nil {
		logger.WithError(err).Fatal("seed failed")
	}
	logger.WithField("email", email).Info("demo account seeded")
}

func seed(ctx context.Context, svc app.ApplicationService, email, password string, now time.Time) error {
	step := func(name string) { fmt.Printf("Seeding %s...\n", name) }

	step("account")
	if _, err := svc.SignUp(ctx, app.SignUpRequest{
		BusinessName: "Demo Corner Shop",
		OwnerName:    "Demo Owner",
		Email:        email,
		Password:     password,
		City:         "Nairobi",
		Currency:     "KES",
	}); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	step("sales week")
	for _, d := range week {
		if _, err := svc.RecordSale(ctx, email, app.SaleRequest{Day: d.day, Amount: decimal.NewFromInt(d.revenue)}); err != nil {
			return fmt.Errorf("sale %s: %w", d.day, err)
		}
	}

	step("ledger")
	for _, tx := range ledger {
		if _, err := svc.AddTransaction(ctx, email, tx); err != nil {
			return fmt.Errorf("transaction %q: %w", tx.Description, err)
		}
	}

	step("inventory")
	for _, it := range inventory {
		if _, err := svc.AddInventoryItem(ctx, email, it); err != nil {
			return fmt.Errorf("item %q: %w", it.Name, err)
		}
	}

	step("goals")
	goals := []app.GoalRequest{
		{
			Title:       "Monthly Revenue Target",
			Description: "Reach monthly revenue target",
			Target:      decimal.NewFromInt(10000),
			Current:     decimal.NewFromInt(7500),
			Type:        "revenue",
			Deadline:    now.AddDate(0, 0, 15).Format("2006-01-02"),
		},
		{
			Title:       "Emergency Fund",
			Description: "Build emergency savings fund",
			Target:      decimal.NewFromInt(5000),
			Current:     decimal.NewFromInt(2000),
			Type:        "savings",
			Deadline:    now.AddDate(0, 0, 90).Format("2006-01-02"),
		},
	}
	for _, g := range goals {
		if _, err := svc.CreateGoal(ctx, email, g); err != nil {
			return fmt.Errorf("goal %q: %w", g.Title, err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
