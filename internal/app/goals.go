package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"bilantra/internal/core"
	"bilantra/internal/store"

	"github.com/shopspring/decimal"
)

func (s *appService) ListGoals(ctx context.Context, email string) ([]core.GoalProgress, error) {
	var out []core.GoalProgress
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = s.goalProgress(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) CreateGoal(ctx context.Context, email string, req GoalRequest) (*core.GoalProgress, error) {
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.Target.IsPositive() {
		return nil, fmt.Errorf("%w: goal target must be > 0", core.ErrInvalidInput)
	}
	if req.Current.IsNegative() {
		return nil, fmt.Errorf("%w: goal progress cannot be negative", core.ErrInvalidInput)
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: deadline: %v", core.ErrInvalidInput, err)
	}

	var out core.GoalProgress
	err = s.update(ctx, email, func(sess *store.Session) error {
		now := s.now()
		id := nextID(now.UnixMilli(), func(id int64) bool {
			return slices.ContainsFunc(sess.Goals, func(g core.Goal) bool { return g.ID == id })
		})
		g := core.Goal{
			ID:          id,
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
			Target:      req.Target,
			Current:     req.Current,
			Type:        core.GoalType(req.Type),
			Deadline:    deadline,
			CreatedAt:   now,
			Unit:        req.Unit,
		}
		sess.Goals = append(sess.Goals, g)
		out = core.ComputeGoalProgress(g, sess.Snapshot, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) UpdateGoalProgress(ctx context.Context, email string, id int64, current string) (*core.GoalProgress, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(current))
	if err != nil {
		return nil, fmt.Errorf("%w: current: %v", core.ErrInvalidInput, err)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: goal progress cannot be negative", core.ErrInvalidInput)
	}

	var out core.GoalProgress
	err = s.update(ctx, email, func(sess *store.Session) error {
		i := slices.IndexFunc(sess.Goals, func(g core.Goal) bool { return g.ID == id })
		if i < 0 {
			return fmt.Errorf("goal %d: %w", id, core.ErrNotFound)
		}
		sess.Goals[i].Current = value
		out = core.ComputeGoalProgress(sess.Goals[i], sess.Snapshot, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) DeleteGoal(ctx context.Context, email string, id int64) error {
	return s.update(ctx, email, func(sess *store.Session) error {
		i := slices.IndexFunc(sess.Goals, func(g core.Goal) bool { return g.ID == id })
		if i < 0 {
			return fmt.Errorf("goal %d: %w", id, core.ErrNotFound)
		}
		sess.Goals = slices.Delete(sess.Goals, i, i+1)
		return nil
	})
}
