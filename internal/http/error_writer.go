package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/probook/probook-api/internal/errors"
)

// statusForCode maps the application error taxonomy onto HTTP statuses.
var statusForCode = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeValidation:      http.StatusBadRequest,
	apperrors.ErrCodePrecondition:    http.StatusUnprocessableEntity,
	apperrors.ErrCodeConflict:        http.StatusConflict,
	apperrors.ErrCodePaymentRequired: http.StatusPaymentRequired,
	apperrors.ErrCodeForbidden:       http.StatusForbidden,
	apperrors.ErrCodeNotFound:        http.StatusNotFound,
	apperrors.ErrCodeForeignKey:      http.StatusUnprocessableEntity,
	apperrors.ErrCodeUpstream:        http.StatusBadGateway,
	apperrors.ErrCodeTimeout:         http.StatusGatewayTimeout,
	apperrors.ErrCodeCanceled:        http.StatusServiceUnavailable,
	apperrors.ErrCodeInternal:        http.StatusInternalServerError,
}

// WriteServiceError renders a service-layer error. Application errors keep
// their code and message on the wire; anything else becomes an opaque 500
// so internals never leak to callers.
func WriteServiceError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status, ok := statusForCode[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", "code", appErr.Code, "err", err)
		}
		WriteError(w, ErrorParams{
			Code:    status,
			ErrCode: string(appErr.Code),
			Message: appErr.Message,
			Field:   appErr.Field,
			State:   appErr.State,
		})
		return
	}
	logger.ErrorContext(ctx, "request failed", "err", err)
	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: string(apperrors.ErrCodeInternal),
		Message: "internal server error",
	})
}
