package app

import (
	"context"
	"fmt"
	"strings"

	"bilantra/internal/ai"
	"bilantra/internal/config"
	"bilantra/internal/core"
	"bilantra/internal/locale"
	"bilantra/internal/observability"
	"bilantra/internal/store"
)

func (s *appService) score(snap core.Snapshot) core.LoanReadiness {
	r := core.ScoreLoanReadiness(snap, s.policy)
	observability.LoanScore.Observe(float64(r.Score))
	return r
}

func (s *appService) insights(snap core.Snapshot) []core.Insight {
	out := core.GenerateInsights(snap, core.InsightOptions{
		CurrencySymbol: locale.Symbol(snap.Profile.CurrencyCode),
	})
	for _, in := range out {
		observability.InsightsEmitted.WithLabelValues(string(in.Kind)).Inc()
	}
	return out
}

func (s *appService) goalProgress(sess *store.Session) []core.GoalProgress {
	now := s.now()
	out := make([]core.GoalProgress, len(sess.Goals))
	for i, g := range sess.Goals {
		out[i] = core.ComputeGoalProgress(g, sess.Snapshot, now)
	}
	return out
}

func (s *appService) Dashboard(ctx context.Context, email string) (*DashboardResult, error) {
	var out *DashboardResult
	err := s.read(ctx, email, func(sess *store.Session) error {
		snap := sess.Snapshot.Clone()
		lang := locale.Lang(sess.Language)
		out = &DashboardResult{
			Account:        *accountOf(sess),
			Greeting:       locale.Greeting(lang, s.now().Hour()),
			Labels:         locale.Labels(lang),
			CurrencySymbol: locale.Symbol(snap.Profile.CurrencyCode),
			Snapshot:       snap,
			Summary:        core.Summarize(snap),
			Score:          s.score(snap),
			Insights:       s.insights(snap),
			Alerts:         core.InventoryAlerts(snap.Inventory, sess.Alerts),
			Goals:          s.goalProgress(sess),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) Summary(ctx context.Context, email string) (*core.Summary, error) {
	var out core.Summary
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = core.Summarize(sess.Snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) Score(ctx context.Context, email string) (*core.LoanReadiness, error) {
	var out core.LoanReadiness
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = s.score(sess.Snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) Insights(ctx context.Context, email string) ([]core.Insight, error) {
	var out []core.Insight
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = s.insights(sess.Snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) Alerts(ctx context.Context, email string) (*AlertsResult, error) {
	var out *AlertsResult
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = &AlertsResult{
			Settings: sess.Alerts,
			Alerts:   core.InventoryAlerts(sess.Snapshot.Inventory, sess.Alerts),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) UpdateAlertSettings(ctx context.Context, email string, settings core.AlertSettings) (*AlertsResult, error) {
	var out *AlertsResult
	err := s.update(ctx, email, func(sess *store.Session) error {
		sess.Alerts = settings
		out = &AlertsResult{
			Settings: settings,
			Alerts:   core.InventoryAlerts(sess.Snapshot.Inventory, settings),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Assistant ──────────────────────────────────────────────────────────────

func (s *appService) AskAssistant(ctx context.Context, email, question string) (*AssistantResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", core.ErrInvalidInput)
	}

	var brief ai.Brief
	err := s.read(ctx, email, func(sess *store.Session) error {
		snap := sess.Snapshot
		brief = ai.Brief{
			BusinessName: snap.Profile.BusinessName,
			Currency:     snap.Profile.CurrencyCode,
			Summary:      core.Summarize(snap),
			LoanScore:    s.score(snap).Score,
		}
		for _, in := range s.insights(snap) {
			brief.Insights = append(brief.Insights, in.Title)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The advisor call runs outside the account lock.
	reply, err := s.advisor.Ask(ctx, question, brief)
	if err != nil {
		config.LogError(s.logger, moduleName, "AskAssistant", "advisor", question, err)
		return nil, err
	}
	return &AssistantResult{Message: reply.Message, Suggestions: reply.Suggestions}, nil
}
