package translate

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors shared by the provider adapters.
var (
	// ErrLocaleNotSupported signals that the selected backend cannot serve
	// a locale. The orchestrator treats it as a skip, not a failure.
	ErrLocaleNotSupported = errors.New("locale not supported by translation backend")

	// ErrEmptyResponse means the backend answered without any content.
	ErrEmptyResponse = errors.New("empty response from translation service")

	// ErrInvalidJSON means the backend content did not parse as JSON.
	ErrInvalidJSON = errors.New("invalid JSON response from translation service")

	// ErrInvalidResponseFormat means the backend content parsed but lacks
	// the required fields or contradicts the request it answers.
	ErrInvalidResponseFormat = errors.New("invalid response format from translation service")

	// ErrInvalidResponse means the backend returned a well-formed but
	// unusable payload, such as an empty translations array.
	ErrInvalidResponse = errors.New("invalid response from translation service")
)

// ConfigurationError reports missing or malformed backend configuration.
// It is raised before any network call is made.
type ConfigurationError struct {
	Missing []string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required configuration: " + strings.Join(e.Missing, ", ")
	}
	return "invalid configuration: " + e.Reason
}

// ValidationError reports a malformed inbound request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnsupportedBackendError reports an unrecognized backend identifier.
type UnsupportedBackendError struct {
	Service string
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("unsupported translation service: %q", e.Service)
}

// BackendCallError wraps a fatal adapter failure with the backend and
// locale it occurred on.
type BackendCallError struct {
	Provider string
	Locale   string
	Err      error
}

func (e *BackendCallError) Error() string {
	return fmt.Sprintf("translation backend %s failed for locale %s: %v", e.Provider, e.Locale, e.Err)
}

func (e *BackendCallError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error from this package to the HTTP status the
// caller-facing envelope should carry.
func HTTPStatus(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
