package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/mocks"
	"github.com/probook/probook-api/internal/service"
)

type apiHarness struct {
	jobs         *mocks.MockJobRepository
	offers       *mocks.MockOfferRepository
	unitRequests *mocks.MockUnitRequestRepository
	payments     *mocks.MockPaymentRepository
	pros         *mocks.MockProfessionalRepository
	provider     *mocks.MockPaymentProvider
	intents      *mocks.MockIntentCache
	handler      http.Handler
}

func newAPIHarness(t *testing.T) *apiHarness {
	ctrl := gomock.NewController(t)
	h := &apiHarness{
		jobs:         mocks.NewMockJobRepository(ctrl),
		offers:       mocks.NewMockOfferRepository(ctrl),
		unitRequests: mocks.NewMockUnitRequestRepository(ctrl),
		payments:     mocks.NewMockPaymentRepository(ctrl),
		pros:         mocks.NewMockProfessionalRepository(ctrl),
		provider:     mocks.NewMockPaymentProvider(ctrl),
		intents:      mocks.NewMockIntentCache(ctrl),
	}
	h.handler = NewRouter(RouterServices{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:          h.jobs,
			Professionals: h.pros,
		}),
		Offers: service.NewOfferService(service.OfferServiceOptions{
			Offers:        h.offers,
			Professionals: h.pros,
		}),
		UnitAdjustments: service.NewUnitAdjustmentService(service.UnitAdjustmentServiceOptions{
			UnitRequests:  h.unitRequests,
			Jobs:          h.jobs,
			Professionals: h.pros,
		}),
		Payments: service.NewPaymentService(service.PaymentServiceOptions{
			Payments: h.payments,
			Jobs:     h.jobs,
			Provider: h.provider,
			Intents:  h.intents,
		}),
	})
	return h
}

func (h *apiHarness) do(t *testing.T, method, target, actor, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if actor != "" {
		req.Header.Set(ActorHeader, actor)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = h.do(t, http.MethodHead, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAPIRequiresActor(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/api/jobs", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", decodeErrorBody(t, rec).Error)
}

func TestCreateJob(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params core.CreateJobParams) (*model.Job, error) {
			assert.Equal(t, "owner-1", params.OwnerID)
			assert.Equal(t, "Paint the fence", params.Req.Title)
			assert.True(t, params.Req.Quantity.Equal(decimal.NewFromInt(1)),
				"quantity defaults to one unit")
			return &model.Job{ID: "job-1", OwnerID: "owner-1", Status: model.JobStatusPending}, nil
		})

	body := `{
		"title": "Paint the fence",
		"service_id": "svc-1",
		"location": {
			"street_number": "12",
			"street_name": "Main St",
			"city_name": "Halifax",
			"province_name": "Nova Scotia",
			"country_name": "Canada",
			"postal_code": "B3H 1A1"
		}
	}`
	rec := h.do(t, http.MethodPost, "/api/jobs", "owner-1", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var job model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "job-1", job.ID)
}

func TestCreateJobValidation(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/api/jobs", "owner-1",
		`{"title": "", "service_id": "svc-1", "location": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeErrorBody(t, rec).Error)
}

func TestCreateJobRejectsUnknownFields(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/api/jobs", "owner-1", `{"titel": "typo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeErrorBody(t, rec).Error)
}

func TestGetJobNotFound(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().GetByID(gomock.Any(), "job-9").
		Return(nil, apperrors.NotFoundf("job %s not found", "job-9"))

	rec := h.do(t, http.MethodGet, "/api/jobs/job-9", "owner-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, rec).Error)
}

func TestJobListRejectsUnknownStatus(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/api/jobs?status=running", "owner-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "validation", body.Error)
	assert.Equal(t, "status", body.Field)
}

func TestJobListPassesFilter(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().
		ListForOwner(gomock.Any(), "owner-1", model.JobListFilter{
			Status: model.JobStatusPending,
			Limit:  10,
			Offset: 20,
		}).
		Return([]*model.Job{{ID: "job-1"}}, nil)

	rec := h.do(t, http.MethodGet, "/api/jobs?status=pending&limit=10&offset=20", "owner-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobDetailAggregatesHistory(t *testing.T) {
	h := newAPIHarness(t)
	job := &model.Job{ID: "job-1", OwnerID: "owner-1", Status: model.JobStatusInProgress}

	h.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(3)
	h.unitRequests.EXPECT().ListForJob(gomock.Any(), "job-1").
		Return([]*model.JobUnitUpdateRequest{{ID: "req-1"}}, nil)
	h.payments.EXPECT().ListForJob(gomock.Any(), "job-1").
		Return([]*model.Payment{{ID: "pay-1", JobID: "job-1"}}, nil)

	rec := h.do(t, http.MethodGet, "/api/jobs/job-1/detail", "owner-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail struct {
		Job          *model.Job                    `json:"job"`
		UnitRequests []*model.JobUnitUpdateRequest `json:"unit_requests"`
		Payments     []*model.Payment              `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "job-1", detail.Job.ID)
	require.Len(t, detail.UnitRequests, 1)
	require.Len(t, detail.Payments, 1)
}

func TestCompleteJobOutstandingBalance(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().Complete(gomock.Any(), "job-1", "owner-1").
		Return(nil, apperrors.PaymentRequired("job has an outstanding balance"))

	rec := h.do(t, http.MethodPost, "/api/jobs/job-1/complete", "owner-1", "")
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "payment_required", decodeErrorBody(t, rec).Error)
}

func TestCancelJobPrecondition(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().Cancel(gomock.Any(), "job-1", "owner-1").
		Return(nil, apperrors.Precondition("only pending jobs can be cancelled", "in_progress"))

	rec := h.do(t, http.MethodPost, "/api/jobs/job-1/cancel", "owner-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "precondition", body.Error)
	assert.Equal(t, "in_progress", body.State)
}

func TestDeleteJob(t *testing.T) {
	h := newAPIHarness(t)

	h.jobs.EXPECT().Delete(gomock.Any(), "job-1", "owner-1").Return(nil)

	rec := h.do(t, http.MethodDelete, "/api/jobs/job-1", "owner-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOfferAccept(t *testing.T) {
	h := newAPIHarness(t)

	h.pros.EXPECT().GetByUserID(gomock.Any(), "pro-user").
		Return(&model.Professional{ID: "pro-1", UserID: "pro-user"}, nil)
	h.offers.EXPECT().Accept(gomock.Any(), "offer-1", "pro-1").
		Return(&model.JobOffer{ID: "offer-1", Status: model.OfferStatusAccepted}, nil)

	rec := h.do(t, http.MethodPost, "/api/offers/offer-1/accept", "pro-user", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var offer model.JobOffer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offer))
	assert.Equal(t, model.OfferStatusAccepted, offer.Status)
}

func TestOfferListForbiddenForNonProfessional(t *testing.T) {
	h := newAPIHarness(t)

	h.pros.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(nil, apperrors.NotFound("professional not found"))

	rec := h.do(t, http.MethodGet, "/api/offers", "user-1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", decodeErrorBody(t, rec).Error)
}

func TestProposeUnitAdjustment(t *testing.T) {
	h := newAPIHarness(t)

	h.pros.EXPECT().GetByUserID(gomock.Any(), "pro-user").
		Return(&model.Professional{ID: "pro-1", UserID: "pro-user"}, nil)
	h.unitRequests.EXPECT().
		Propose(gomock.Any(), core.ProposeUnitAdjustmentParams{
			JobID:          "job-1",
			ProfessionalID: "pro-1",
			Delta:          decimal.NewFromInt(2),
		}).
		Return(&model.JobUnitUpdateRequest{ID: "req-1"}, nil)

	rec := h.do(t, http.MethodPost, "/api/jobs/job-1/unit-requests", "pro-user", `{"delta": "2"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestPaymentQuote(t *testing.T) {
	h := newAPIHarness(t)
	job := &model.Job{
		ID:         "job-1",
		OwnerID:    "owner-1",
		Status:     model.JobStatusInProgress,
		TotalPrice: decimal.RequireFromString("80.00"),
		PaidAmount: decimal.RequireFromString("30.00"),
	}

	h.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	h.provider.EXPECT().CreateChargeIntent(gomock.Any(), gomock.Any()).
		Return(&core.ChargeIntent{IntentID: "pi_1", ClientSecret: "cs_1"}, nil)
	h.intents.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	rec := h.do(t, http.MethodPost, "/api/jobs/job-1/payments/quote", "owner-1", `{}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var quote model.PaymentQuote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.True(t, quote.Outstanding.Equal(decimal.RequireFromString("50.00")))
	assert.NotEmpty(t, quote.IntentHandle)
	assert.Equal(t, "cs_1", quote.ClientSecret)
}

func TestPaymentApplyExpiredHandle(t *testing.T) {
	h := newAPIHarness(t)

	h.intents.EXPECT().Get(gomock.Any(), "stale-handle").Return(nil, nil)

	rec := h.do(t, http.MethodPost, "/api/payments/apply", "owner-1",
		`{"intent_handle": "stale-handle"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, rec).Error)
}
