package ai

import (
	"context"
	"fmt"
	"strings"

	"bilantra/internal/locale"
)

const cannedDefault = "Based on your business data, I recommend focusing on inventory turnover and digital marketing. Would you like specific strategies for either?"

// Canned answers from the brief alone. It is the fallback whenever no model is
// configured or the model call fails.
type Canned struct{}

func (Canned) Ask(_ context.Context, question string, brief Brief) (*Reply, error) {
	q := strings.ToLower(question)
	sum := brief.Summary
	reply := &Reply{Suggestions: brief.Insights}
	if len(reply.Suggestions) > 3 {
		reply.Suggestions = reply.Suggestions[:3]
	}

	switch {
	case strings.Contains(q, "loan") || strings.Contains(q, "credit") || strings.Contains(q, "score"):
		reply.Message = fmt.Sprintf("Your loan readiness score is %d/100. Lenders look for steady sales, a healthy inventory and a regular income record.", brief.LoanScore)
	case strings.Contains(q, "profit") || strings.Contains(q, "margin"):
		reply.Message = fmt.Sprintf("Net profit stands at %s with a %s%% margin.",
			locale.FormatMoney(brief.Currency, sum.NetProfit), sum.ProfitMargin.StringFixed(1))
	case strings.Contains(q, "sale") || strings.Contains(q, "revenue"):
		msg := fmt.Sprintf("This week's revenue is %s, averaging %s per day.",
			locale.FormatMoney(brief.Currency, sum.TotalRevenue), locale.FormatMoney(brief.Currency, sum.AverageDailyRevenue))
		if sum.BestDay != nil {
			msg += fmt.Sprintf(" %s was your best day.", sum.BestDay.Day)
		}
		reply.Message = msg
	case strings.Contains(q, "stock") || strings.Contains(q, "inventory"):
		reply.Message = fmt.Sprintf("Inventory is worth %s and %d item(s) are running low.",
			locale.FormatMoney(brief.Currency, sum.InventoryValue), sum.LowStockCount)
	default:
		reply.Message = cannedDefault
	}
	return reply, nil
}

// Fallback tries Primary and answers with Canned when it fails.
type Fallback struct {
	Primary Advisor
	OnError func(error)
}

func (f Fallback) Ask(ctx context.Context, question string, brief Brief) (*Reply, error) {
	if f.Primary != nil {
		reply, err := f.Primary.Ask(ctx, question, brief)
		if err == nil {
			return reply, nil
		}
		if f.OnError != nil {
			f.OnError(err)
		}
	}
	return Canned{}.Ask(ctx, question, brief)
}

// New returns the OpenAI-backed advisor when apiKey is set, with Canned as the fallback.
func New(apiKey, model string, onError func(error)) Advisor {
	if apiKey == "" {
		return Canned{}
	}
	return Fallback{Primary: NewAgent(apiKey, model), OnError: onError}
}
