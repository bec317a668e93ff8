// Package mocks provides mock implementations for testing the probook job
// marketplace.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the ports in internal/core. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	jobs := mocks.NewMockJobRepository(ctrl)
//	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/probook/probook-api/internal/core JobRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=offer_repository_mock.go github.com/probook/probook-api/internal/core OfferRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=unit_request_repository_mock.go github.com/probook/probook-api/internal/core UnitRequestRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=payment_repository_mock.go github.com/probook/probook-api/internal/core PaymentRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=professional_repository_mock.go github.com/probook/probook-api/internal/core ProfessionalRepository,LocationReader

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=outbox_repository_mock.go github.com/probook/probook-api/internal/core OutboxRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=providers_mock.go github.com/probook/probook-api/internal/core PaymentProvider,IntentCache,DispatchWaker
