package web

import (
	"bytes"
	"net/http"
	"strconv"

	"bilantra/internal/app"
	"bilantra/internal/core"

	"github.com/go-chi/chi/v5"
)

// ── Dashboard and metrics ─────────────────────────────────────────────────────

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Dashboard(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Summary(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Score(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Insights(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Alerts(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) updateAlertSettings(w http.ResponseWriter, r *http.Request) {
	var req core.AlertSettings
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.UpdateAlertSettings(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// ── Sales, ledger, inventory ──────────────────────────────────────────────────

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req app.SaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.RecordSale(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) salesByPeriod(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SalesByPeriod(r.Context(), accountEmail(r), core.Period(chi.URLParam(r, "period")))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	var req app.TransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.AddTransaction(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, res)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(r.Context(), accountEmail(r), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req app.InventoryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.AddInventoryItem(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, res)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Stock int `json:"stock"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.UpdateStock(r.Context(), accountEmail(r), id, req.Stock)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteInventoryItem(r.Context(), accountEmail(r), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Goals ─────────────────────────────────────────────────────────────────────

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListGoals(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var req app.GoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.CreateGoal(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, res)
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Current string `json:"current"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.UpdateGoalProgress(r.Context(), accountEmail(r), id, req.Current)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), accountEmail(r), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Invoices and reports ──────────────────────────────────────────────────────

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req app.InvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.CreateInvoice(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, res)
}

func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	var req app.InvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	data, err := h.svc.InvoicePDF(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice.pdf"`)
	_, _ = w.Write(data)
}

func (h *Handler) paymentLink(w http.ResponseWriter, r *http.Request) {
	var req app.InvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.PaymentLink(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	kind, err := core.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	res, err := h.svc.Report(r.Context(), accountEmail(r), kind)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// reportText handles GET /api/reports/summary.txt?days=N.
func (h *Handler) reportText(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	text, err := h.svc.ReportText(r.Context(), accountEmail(r), days)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bilantra-report.txt"`)
	_, _ = w.Write([]byte(text))
}

func (h *Handler) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	// Render into a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.svc.ExportWorkbook(r.Context(), accountEmail(r), &buf); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bilantra-report.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

// ── Lenders, team, settings, assistant ────────────────────────────────────────

func (h *Handler) matchLenders(w http.ResponseWriter, r *http.Request) {
	var req app.LenderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.MatchLenders(r.Context(), accountEmail(r), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) listTeam(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListTeam(r.Context(), accountEmail(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) addTeamMember(w http.ResponseWriter, r *http.Request) {
	var req app.TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	email := accountEmail(r)
	res, err := h.svc.AddTeamMember(r.Context(), email, email, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, res)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	email := accountEmail(r)
	res, err := h.svc.ChangeRole(r.Context(), email, email, chi.URLParam(r, "email"), core.Role(req.Role))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	email := accountEmail(r)
	if err := h.svc.RemoveTeamMember(r.Context(), email, email, chi.URLParam(r, "email")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCurrency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Currency string `json:"currency"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.SetCurrency(r.Context(), accountEmail(r), req.Currency)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.SetLanguage(r.Context(), accountEmail(r), req.Language)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) askAssistant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.AskAssistant(r.Context(), accountEmail(r), req.Question)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, res)
}
