// Package errors turns Go errors into low-cardinality labels for
// metrics tagging.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"

	apperrors "github.com/probook/probook-api/internal/errors"
)

// Classify names an error for a metric tag. Application errors map to
// their taxonomy code (conflict, precondition, ...); anything else falls
// back to the innermost concrete type, lowercased with the package
// separator flattened.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var appErr *apperrors.AppError
	if goerrors.As(err, &appErr) {
		return string(appErr.Code)
	}

	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
