// Package httpx provides the JSON API surface: routing, request decoding,
// error rendering, and the middleware chain.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/probook/probook-api/internal/service"
)

// RouterServices groups the services the router exposes.
type RouterServices struct {
	Jobs            *service.JobService
	Offers          *service.OfferService
	UnitAdjustments *service.UnitAdjustmentService
	Payments        *service.PaymentService
	Logger          *slog.Logger
}

// NewRouter builds the route table. Everything under /api/ requires an
// actor header; health probes do not. Logging and recovery middleware are
// applied by the caller.
func NewRouter(s RouterServices) http.Handler {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	api := http.NewServeMux()
	registerJobRoutes(api, &JobHandlers{
		Svc:             s.Jobs,
		UnitAdjustments: s.UnitAdjustments,
		Payments:        s.Payments,
		Logger:          logger,
	})
	registerOfferRoutes(api, &OfferHandlers{Svc: s.Offers, Logger: logger})
	registerUnitRequestRoutes(api, &UnitRequestHandlers{Svc: s.UnitAdjustments, Logger: logger})
	registerPaymentRoutes(api, &PaymentHandlers{Svc: s.Payments, Logger: logger})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)
	mux.Handle("/api/", RequireActor(api))

	return mux
}
