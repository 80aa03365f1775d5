package domain

import "fmt"

// Classification buckets every failed API call into one of a fixed set of
// client-side categories, derived from transport-level signals rather than
// passed through as a raw HTTP status.
type Classification string

const (
	ClassUnauthorized Classification = "unauthorized"
	ClassForbidden    Classification = "forbidden"
	ClassNotFound     Classification = "not_found"
	ClassServerError  Classification = "server_error"
	ClassNetworkError Classification = "network_error"
	ClassUnknown      Classification = "unknown"
)

// APIError is the classified failure branch of a Result.
type APIError struct {
	Class   Classification `json:"class"`
	Message string         `json:"message"`
	// Status is the HTTP status that produced the classification, or 0 when
	// no response was received at all.
	Status int `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

// Retryable reports whether a manual retry is worth offering to the operator.
// Only network failures qualify; everything else is deterministic.
func (e *APIError) Retryable() bool {
	return e.Class == ClassNetworkError
}

// Result is the uniform outcome of every domain API client call: either a
// success carrying Data (and an optional server message), or a failure
// carrying a classified error. Exactly one branch is ever populated; callers
// never see a raw transport error or response object.
type Result[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Err     *APIError `json:"error,omitempty"`
}

// Ok builds the success branch.
func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail builds the failure branch.
func Fail[T any](class Classification, message string, status int) Result[T] {
	return Result[T]{Err: &APIError{Class: class, Message: message, Status: status}}
}

// Pagination is the list metadata shape returned by the backend alongside
// every list result. Fields are passed through unmodified.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// BulkItemResult records the outcome of one item within a bulk operation.
// The backend may apply a bulk action partially, so outcomes are per-item.
type BulkItemResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// BulkResult is the aggregate outcome of a bulk operation.
type BulkResult struct {
	Results   []BulkItemResult `json:"results"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}
