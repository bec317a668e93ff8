package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/service"
)

// PaymentHandlers serves the two-step payment flow: quote an intent for a
// job's balance, then apply the settled charge by its handle.
type PaymentHandlers struct {
	Svc    *service.PaymentService
	Logger *slog.Logger
}

type quotePaymentRequest struct {
	// Amount is optional; zero or absent quotes the full outstanding balance.
	Amount decimal.Decimal `json:"amount"`
}

type applyPaymentRequest struct {
	IntentHandle string `json:"intent_handle"`
}

func (h *PaymentHandlers) Quote(w http.ResponseWriter, r *http.Request) {
	var body quotePaymentRequest
	if !DecodeJSON(w, r, &body) {
		return
	}
	quote, err := h.Svc.Quote(r.Context(), ActorID(r.Context()), r.PathValue("id"), body.Amount)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, quote)
}

func (h *PaymentHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	var body applyPaymentRequest
	if !DecodeJSON(w, r, &body) {
		return
	}
	result, err := h.Svc.Apply(r.Context(), ActorID(r.Context()), body.IntentHandle)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *PaymentHandlers) ListForJob(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Svc.ListForJob(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, payments)
}

func registerPaymentRoutes(mux *http.ServeMux, h *PaymentHandlers) {
	mux.HandleFunc("POST /api/jobs/{id}/payments/quote", h.Quote)
	mux.HandleFunc("GET /api/jobs/{id}/payments", h.ListForJob)
	mux.HandleFunc("POST /api/payments/apply", h.Apply)
}
