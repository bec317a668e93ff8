package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/service"
)

// UnitRequestHandlers serves the unit-quantity adjustment endpoints.
type UnitRequestHandlers struct {
	Svc    *service.UnitAdjustmentService
	Logger *slog.Logger
}

type proposeUnitRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

func (h *UnitRequestHandlers) Propose(w http.ResponseWriter, r *http.Request) {
	var body proposeUnitRequest
	if !DecodeJSON(w, r, &body) {
		return
	}
	req, err := h.Svc.Propose(r.Context(), ActorID(r.Context()), r.PathValue("id"), body.Delta)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, req)
}

func (h *UnitRequestHandlers) ListForJob(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Svc.ListForJob(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, reqs)
}

func (h *UnitRequestHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	req, err := h.Svc.Accept(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, req)
}

func (h *UnitRequestHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	req, err := h.Svc.Reject(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, req)
}

func (h *UnitRequestHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	req, err := h.Svc.Cancel(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, req)
}

func registerUnitRequestRoutes(mux *http.ServeMux, h *UnitRequestHandlers) {
	mux.HandleFunc("POST /api/jobs/{id}/unit-requests", h.Propose)
	mux.HandleFunc("GET /api/jobs/{id}/unit-requests", h.ListForJob)
	mux.HandleFunc("POST /api/unit-requests/{id}/accept", h.Accept)
	mux.HandleFunc("POST /api/unit-requests/{id}/reject", h.Reject)
	mux.HandleFunc("POST /api/unit-requests/{id}/cancel", h.Cancel)
}
