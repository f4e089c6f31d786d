package statuspage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrAPIKeyRequired         = errors.New("API key is required")
	ErrPageIDRequired         = errors.New("page ID is required")
	ErrOrganizationIDRequired = errors.New("organization ID is required for user endpoints")
)

// APIError carries the HTTP status, server-supplied message, and raw
// body common to every API error kind. It is embedded by the concrete
// kinds below and never returned on its own.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// HTTPStatus returns the HTTP status code of the failed response.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("statuspage: %s (status %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("statuspage: request failed with status %d", e.StatusCode)
}

// StatusError is implemented by every API error kind, allowing callers
// to read the status code without switching on concrete types.
type StatusError interface {
	error
	HTTPStatus() int
}

// BadRequestError is returned for HTTP 400 responses.
type BadRequestError struct {
	APIError
}

// UnauthorizedError is returned for HTTP 401 and 403 responses.
type UnauthorizedError struct {
	APIError
}

// NotFoundError is returned for HTTP 404 responses.
type NotFoundError struct {
	APIError
}

// ValidationError is returned for HTTP 422 responses. Errors carries
// the field-level detail from the body, keyed by field name.
type ValidationError struct {
	APIError

	Errors map[string][]string
}

// RateLimitedError is returned for HTTP 429 responses. The original
// API also used the legacy 420 code for rate limiting; both map here.
type RateLimitedError struct {
	APIError
}

// ServerError is returned for HTTP 5xx responses.
type ServerError struct {
	APIError
}

// UnexpectedStatusError is the catch-all for non-2xx codes that no
// other kind models.
type UnexpectedStatusError struct {
	APIError
}

// TransportError wraps a network-level failure where no HTTP response
// was obtained at all (connection refused, DNS failure, context
// deadline). It is never conflated with an API error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("statuspage: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err  error
	Body []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("statuspage: invalid JSON in response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorBody is the shape the API uses for error payloads. Both
// "message" and "error" appear in the wild depending on the endpoint.
type errorBody struct {
	Message string              `json:"message"`
	Err     string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func parseErrorBody(body []byte) errorBody {
	var parsed errorBody

	// Best effort: an unparseable error body still yields a typed error
	// carrying the raw bytes.
	_ = json.Unmarshal(body, &parsed)

	if parsed.Message == "" {
		parsed.Message = parsed.Err
	}

	return parsed
}

// CheckResponse classifies an HTTP response. It returns nil for any
// 2xx status (an empty 204 body included) and exactly one concrete
// error kind otherwise. The mapping is total: every non-2xx code lands
// on one kind, with UnexpectedStatusError as the catch-all.
func CheckResponse(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	parsed := parseErrorBody(body)
	base := APIError{
		StatusCode: statusCode,
		Message:    parsed.Message,
		Body:       body,
	}

	switch {
	case statusCode == http.StatusBadRequest:
		return &BadRequestError{APIError: base}
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &UnauthorizedError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusUnprocessableEntity:
		return &ValidationError{APIError: base, Errors: parsed.Errors}
	case statusCode == http.StatusTooManyRequests || statusCode == 420:
		return &RateLimitedError{APIError: base}
	case statusCode >= 500 && statusCode < 600:
		return &ServerError{APIError: base}
	default:
		return &UnexpectedStatusError{APIError: base}
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	target := &NotFoundError{}

	return errors.As(err, &target)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	target := &UnauthorizedError{}

	return errors.As(err, &target)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	target := &ValidationError{}

	return errors.As(err, &target)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	target := &RateLimitedError{}

	return errors.As(err, &target)
}

// IsTransport checks if the error is a transport-level failure.
func IsTransport(err error) bool {
	target := &TransportError{}

	return errors.As(err, &target)
}
