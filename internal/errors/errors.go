package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Constructors for the failure classes the engine reports.
// InvalidArgument -> 400, NotFound -> 404, Conflict -> 409,
// RateLimited -> 429, StoreUnavailable -> 503.

func InvalidArgument(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

func RateLimited(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusTooManyRequests}
}

func StoreUnavailable(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusServiceUnavailable}
}

// StatusCode extracts the http status carried by err, defaulting to 500.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
