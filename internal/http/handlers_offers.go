package httpx

import (
	"log/slog"
	"net/http"

	apperrors "github.com/probook/probook-api/internal/errors"

	"github.com/probook/probook-api/internal/domain/model"
	"github.com/probook/probook-api/internal/service"
)

// OfferHandlers serves the professional-facing offer endpoints. The actor
// is always a user ID; the service resolves it to a professional.
type OfferHandlers struct {
	Svc    *service.OfferService
	Logger *slog.Logger
}

func (h *OfferHandlers) List(w http.ResponseWriter, r *http.Request) {
	var filter model.OfferListFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.OfferStatus(raw)
		if !status.Valid() {
			WriteServiceError(r.Context(), w, h.Logger,
				apperrors.ValidationField("status", "unknown offer status "+raw))
			return
		}
		filter.Status = status
	}
	filter.Limit, filter.Offset = parseListWindow(r)

	offers, err := h.Svc.List(r.Context(), ActorID(r.Context()), filter)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, offers)
}

func (h *OfferHandlers) View(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Svc.View(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

func (h *OfferHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Svc.Accept(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

func (h *OfferHandlers) Decline(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Svc.Decline(r.Context(), ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

func registerOfferRoutes(mux *http.ServeMux, h *OfferHandlers) {
	mux.HandleFunc("GET /api/offers", h.List)
	mux.HandleFunc("POST /api/offers/{id}/view", h.View)
	mux.HandleFunc("POST /api/offers/{id}/accept", h.Accept)
	mux.HandleFunc("POST /api/offers/{id}/decline", h.Decline)
}
