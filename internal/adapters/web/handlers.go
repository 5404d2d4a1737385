package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bilantra/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
	JWTSecret      string
	BodyLimit      int64         // bytes; 0 means 1 MB
	LoginRate      int           // signup/login attempts per minute per client; 0 disables
	TokenTTL       time.Duration // 0 means 24h
}

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
	opts   Options
	logger logrus.FieldLogger
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, opts Options, logger logrus.FieldLogger) http.Handler {
	if opts.BodyLimit <= 0 {
		opts.BodyLimit = 1 << 20
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = app.DefaultSessionTTL
	}
	h := &Handler{svc: svc, opts: opts, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(CORS(opts.AllowedOrigins))

	// ── Operational (public) ──────────────────────────────────────────────────
	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(opts.BodyLimit))

		// ── Accounts (public, rate limited) ───────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(RateLimit(opts.LoginRate))
			r.Post("/api/signup", h.signup)
			r.Post("/api/login", h.login)
		})

		// ── Protected API routes (return 401 JSON if unauthenticated) ─────────
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)

			r.Post("/api/logout", h.logout)

			r.Get("/api/dashboard", h.dashboard)
			r.Get("/api/metrics/summary", h.summary)
			r.Get("/api/score", h.score)
			r.Get("/api/insights", h.insights)
			r.Get("/api/alerts", h.alerts)
			r.Put("/api/alerts/settings", h.updateAlertSettings)

			r.Post("/api/sales", h.recordSale)
			r.Get("/api/sales/{period}", h.salesByPeriod)

			r.Post("/api/transactions", h.addTransaction)
			r.Delete("/api/transactions/{id}", h.deleteTransaction)

			r.Post("/api/inventory", h.addInventoryItem)
			r.Patch("/api/inventory/{id}/stock", h.updateStock)
			r.Delete("/api/inventory/{id}", h.deleteInventoryItem)

			r.Get("/api/goals", h.listGoals)
			r.Post("/api/goals", h.createGoal)
			r.Patch("/api/goals/{id}", h.updateGoal)
			r.Delete("/api/goals/{id}", h.deleteGoal)

			r.Post("/api/invoices", h.createInvoice)
			r.Post("/api/invoices/pdf", h.invoicePDF)
			r.Post("/api/invoices/payment-link", h.paymentLink)

			r.Get("/api/reports/export.xlsx", h.exportWorkbook)
			r.Get("/api/reports/summary.txt", h.reportText)
			r.Get("/api/reports/{kind}", h.report)

			r.Post("/api/lenders/match", h.matchLenders)

			r.Get("/api/team", h.listTeam)
			r.Post("/api/team", h.addTeamMember)
			r.Patch("/api/team/{email}", h.changeRole)
			r.Delete("/api/team/{email}", h.removeTeamMember)

			r.Put("/api/settings/currency", h.setCurrency)
			r.Put("/api/settings/language", h.setLanguage)

			r.Post("/api/assistant", h.askAssistant)
		})
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// idParam parses a numeric {id} URL parameter, writing a 400 on failure.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
