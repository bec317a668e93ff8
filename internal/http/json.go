package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

const maxRequestBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. Unknown fields and
// trailing garbage are rejected. On failure it writes the error response
// itself and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_json",
			Err:     err,
		})
		return false
	}
	if dec.More() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_json",
			Message: "request body must contain a single JSON object",
		})
		return false
	}
	return true
}

// WriteJSON encodes v into a buffer before touching the ResponseWriter so
// an encoding failure can still produce a 500 instead of a torn body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("response encoding failed", "err", err)
		http.Error(w, `{"error":"internal","message":"response encoding failed"}`,
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	State   string `json:"state,omitempty"`
}

// ErrorParams describes an error response. Message falls back to the
// Err's text when empty.
type ErrorParams struct {
	Code    int
	ErrCode string
	Message string
	Field   string
	State   string
	Err     error
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	msg := p.Message
	if msg == "" && p.Err != nil {
		msg = p.Err.Error()
	}
	WriteJSON(w, p.Code, errorBody{
		Error:   p.ErrCode,
		Message: msg,
		Field:   p.Field,
		State:   p.State,
	})
}
