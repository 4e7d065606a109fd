package apierr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation         Kind = "validation"
	KindConfiguration      Kind = "configuration"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindForbidden          Kind = "forbidden"
	KindRateLimited        Kind = "rate_limited"
	KindUpstream           Kind = "upstream"
	KindTransport          Kind = "transport"
	KindWeather            Kind = "weather"
)

// Error is the single failure type crossing package boundaries. It carries an
// explicit kind and the HTTP status the handler should answer with, instead of
// duck-typed status fields on arbitrary errors.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: msg}
}

func Transport(msg string, cause error) *Error {
	return &Error{Kind: KindTransport, Status: http.StatusBadGateway, Message: msg, Err: cause}
}

func Weather(msg string, cause error) *Error {
	return &Error{Kind: KindWeather, Status: http.StatusInternalServerError, Message: msg, Err: cause}
}

// FromUpstreamStatus classifies a non-2xx chat-completions response. The
// provider message is kept for statuses without a fixed translation.
func FromUpstreamStatus(status int, providerMsg string) *Error {
	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: KindInvalidCredentials, Status: status, Message: "Invalid Groq API Key."}
	case http.StatusForbidden:
		return &Error{Kind: KindForbidden, Status: status, Message: "Groq API Forbidden. Check account credits or model restrictions."}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: status, Message: "Rate limit exceeded. Please wait a moment and try again."}
	default:
		msg := providerMsg
		if msg == "" {
			msg = "Upstream AI provider returned an error."
		}
		return &Error{Kind: KindUpstream, Status: status, Message: msg}
	}
}

// HTTPStatus extracts the response status for any error, defaulting to 500.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
