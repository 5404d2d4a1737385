package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bilantra/internal/ai"
	"bilantra/internal/config"
	"bilantra/internal/core"
	"bilantra/internal/locale"
	"bilantra/internal/observability"
	"bilantra/internal/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const moduleName = "app"

// DefaultSessionTTL is the inactivity window after which an account is dropped.
const DefaultSessionTTL = 24 * time.Hour

type appService struct {
	store   store.Store
	advisor ai.Advisor
	logger  logrus.FieldLogger
	ttl     time.Duration
	policy  core.ScoringPolicy
	now     func() time.Time

	locks sync.Map // normalized email -> *sync.Mutex
}

// Option customises an appService.
type Option func(*appService)

func WithClock(now func() time.Time) Option {
	return func(s *appService) { s.now = now }
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *appService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithScoringPolicy(p core.ScoringPolicy) Option {
	return func(s *appService) { s.policy = p }
}

// NewAppService constructs an appService that satisfies ApplicationService.
// A nil advisor answers with canned replies.
func NewAppService(st store.Store, advisor ai.Advisor, logger logrus.FieldLogger, opts ...Option) ApplicationService {
	if advisor == nil {
		advisor = ai.Canned{}
	}
	s := &appService{
		store:   st,
		advisor: advisor,
		logger:  logger,
		ttl:     DefaultSessionTTL,
		policy:  core.LinearPolicy,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ─── Sessions ───────────────────────────────────────────────────────────────

// lock serialises all work on one account.
func (s *appService) lock(email string) func() {
	v, _ := s.locks.LoadOrStore(store.NormalizeEmail(email), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// load fetches the session and enforces the inactivity window. The caller
// must hold the account lock.
func (s *appService) load(ctx context.Context, email string) (*store.Session, error) {
	sess, err := s.store.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now(), s.ttl) {
		if err := s.store.Delete(ctx, email); err != nil {
			config.LogError(s.logger, moduleName, "load", "delete expired session", email, err)
		}
		observability.SessionsExpired.Inc()
		return nil, fmt.Errorf("session %s: %w", store.NormalizeEmail(email), core.ErrSessionExpired)
	}
	return sess, nil
}

func (s *appService) save(ctx context.Context, sess *store.Session) error {
	sess.LastActivity = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		config.LogError(s.logger, moduleName, "save", "persist session", sess.Email, err)
		return err
	}
	return nil
}

// read runs fn against the account and refreshes its activity stamp.
func (s *appService) read(ctx context.Context, email string, fn func(*store.Session) error) error {
	unlock := s.lock(email)
	defer unlock()

	sess, err := s.load(ctx, email)
	if err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		return err
	}
	return s.save(ctx, sess)
}

// update is read for mutations: the snapshot is normalised and validated
// before it is written back.
func (s *appService) update(ctx context.Context, email string, fn func(*store.Session) error) error {
	return s.read(ctx, email, func(sess *store.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		sess.Snapshot.Normalize()
		return sess.Snapshot.Validate()
	})
}

func accountOf(sess *store.Session) *AccountResult {
	p := sess.Snapshot.Profile
	return &AccountResult{
		Email:        sess.Email,
		BusinessName: p.BusinessName,
		OwnerName:    p.OwnerName,
		Currency:     p.CurrencyCode,
		Language:     sess.Language,
	}
}

// ─── Accounts ───────────────────────────────────────────────────────────────

func (s *appService) SignUp(ctx context.Context, req SignUpRequest) (*AccountResult, error) {
	req.Email = store.NormalizeEmail(req.Email)
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	email := req.Email
	if req.Currency != "" && !locale.KnownCurrency(req.Currency) {
		return nil, fmt.Errorf("%w: unknown currency %q", core.ErrInvalidInput, req.Currency)
	}

	unlock := s.lock(email)
	defer unlock()

	_, err := s.load(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", email, core.ErrAccountExists)
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrSessionExpired):
	default:
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	sess := &store.Session{
		Email:        email,
		PasswordHash: string(hash),
		Snapshot: core.Snapshot{
			Profile: core.BusinessProfile{
				BusinessName: req.BusinessName,
				OwnerName:    req.OwnerName,
				Email:        email,
				City:         req.City,
				CurrencyCode: req.Currency,
			},
			Sales:     core.NewWeek(),
			Ledger:    []core.CashFlowEntry{},
			Inventory: []core.InventoryItem{},
		},
		Goals: []core.Goal{},
		Team: []core.TeamMember{{
			Name:     req.OwnerName,
			Email:    email,
			Role:     core.RoleOwner,
			Status:   core.MemberActive,
			JoinedAt: now,
		}},
		Alerts:   core.DefaultAlertSettings(),
		Language: string(locale.English),
	}
	sess.Snapshot.Normalize()
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"module": moduleName, "email": email}).Info("account created")
	return accountOf(sess), nil
}

func (s *appService) Login(ctx context.Context, email, password string) (*AccountResult, error) {
	var out *AccountResult
	err := s.read(ctx, email, func(sess *store.Session) error {
		if bcrypt.CompareHashAndPassword([]byte(sess.PasswordHash), []byte(password)) != nil {
			return core.ErrInvalidCredentials
		}
		out = accountOf(sess)
		return nil
	})
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) Logout(_ context.Context, email string) error {
	s.logger.WithFields(logrus.Fields{"module": moduleName, "email": store.NormalizeEmail(email)}).Info("session ended")
	return nil
}

func (s *appService) SetCurrency(ctx context.Context, email, code string) (*AccountResult, error) {
	if !locale.KnownCurrency(code) {
		return nil, fmt.Errorf("%w: unknown currency %q", core.ErrInvalidInput, code)
	}
	var out *AccountResult
	err := s.update(ctx, email, func(sess *store.Session) error {
		sess.Snapshot.Profile.CurrencyCode = strings.ToUpper(strings.TrimSpace(code))
		out = accountOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) SetLanguage(ctx context.Context, email, code string) (*AccountResult, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !locale.Supported(code) {
		return nil, fmt.Errorf("%w: unsupported language %q", core.ErrInvalidInput, code)
	}
	var out *AccountResult
	err := s.update(ctx, email, func(sess *store.Session) error {
		sess.Language = code
		out = accountOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
