package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/probook/probook-api/internal/errors"

	"github.com/probook/probook-api/internal/domain/model"
	"github.com/probook/probook-api/internal/service"
)

// JobHandlers serves the job lifecycle endpoints.
type JobHandlers struct {
	Svc             *service.JobService
	UnitAdjustments *service.UnitAdjustmentService
	Payments        *service.PaymentService
	Logger          *slog.Logger
}

// parseListWindow reads the shared limit/offset pagination query params.
// Bad values fall back to zero and the repository applies its defaults.
func parseListWindow(r *http.Request) (limit, offset int) {
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(r.Context(), w, h.Logger, apperrors.Validation(err.Error()))
		return
	}
	job, err := h.Svc.Create(r.Context(), ActorID(r.Context()), &req)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.jobFilter(w, r)
	if !ok {
		return
	}
	jobs, err := h.Svc.ListForOwner(r.Context(), ActorID(r.Context()), filter)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

func (h *JobHandlers) ListAssigned(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.jobFilter(w, r)
	if !ok {
		return
	}
	jobs, err := h.Svc.ListAssigned(r.Context(), ActorID(r.Context()), filter)
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

func (h *JobHandlers) jobFilter(w http.ResponseWriter, r *http.Request) (model.JobListFilter, bool) {
	var filter model.JobListFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.JobStatus(raw)
		if !status.Valid() {
			WriteServiceError(r.Context(), w, h.Logger,
				apperrors.ValidationField("status", "unknown job status "+raw))
			return filter, false
		}
		filter.Status = status
	}
	filter.Limit, filter.Offset = parseListWindow(r)
	return filter, true
}

func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.GetForActor(r.Context(), r.PathValue("id"), ActorID(r.Context()))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// jobDetailResponse aggregates a job with its adjustment and payment
// history for a single detail-page fetch.
type jobDetailResponse struct {
	Job          *model.Job                    `json:"job"`
	UnitRequests []*model.JobUnitUpdateRequest `json:"unit_requests"`
	Payments     []*model.Payment              `json:"payments"`
}

func (h *JobHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := ActorID(ctx)
	jobID := r.PathValue("id")

	job, err := h.Svc.GetForActor(ctx, jobID, actor)
	if err != nil {
		WriteServiceError(ctx, w, h.Logger, err)
		return
	}

	detail := jobDetailResponse{
		Job:          job,
		UnitRequests: []*model.JobUnitUpdateRequest{},
		Payments:     []*model.Payment{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reqs, listErr := h.UnitAdjustments.ListForJob(gctx, actor, jobID)
		if listErr != nil {
			return listErr
		}
		detail.UnitRequests = reqs
		return nil
	})
	g.Go(func() error {
		// Payment history is owner-only; the assigned professional still
		// gets the rest of the detail.
		pays, listErr := h.Payments.ListForJob(gctx, actor, jobID)
		if listErr != nil {
			if apperrors.IsNotFound(listErr) {
				return nil
			}
			return listErr
		}
		detail.Payments = pays
		return nil
	})
	if err := g.Wait(); err != nil {
		WriteServiceError(ctx, w, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, detail)
}

func (h *JobHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.Complete(r.Context(), r.PathValue("id"), ActorID(r.Context()))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

func (h *JobHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.Cancel(r.Context(), r.PathValue("id"), ActorID(r.Context()))
	if err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id"), ActorID(r.Context())); err != nil {
		WriteServiceError(r.Context(), w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("POST /api/jobs", h.Create)
	mux.HandleFunc("GET /api/jobs", h.List)
	mux.HandleFunc("GET /api/jobs/assigned", h.ListAssigned)
	mux.HandleFunc("GET /api/jobs/{id}", h.Get)
	mux.HandleFunc("GET /api/jobs/{id}/detail", h.Detail)
	mux.HandleFunc("POST /api/jobs/{id}/complete", h.Complete)
	mux.HandleFunc("POST /api/jobs/{id}/cancel", h.Cancel)
	mux.HandleFunc("DELETE /api/jobs/{id}", h.Delete)
}
