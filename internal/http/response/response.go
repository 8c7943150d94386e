// Package response defines the uniform JSON envelope returned by every
// endpoint, for both success and failure, so clients parse a single shape.
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "data": "Hello", "message": "Success", "error": null }
//
// Example error response:
//
//	HTTP/1.1 409 Conflict
//	{
//	  "success": false,
//	  "data": null,
//	  "message": null,
//	  "error": { "code": "CONFLICT", "msg": "이미 존재합니다.", "timeStamp": "2025-01-02T03:04:05.123Z" }
//	}
package response

import (
	"time"

	"github.com/yonsai/starter/internal/apperr"
)

// DefaultSuccessMessage is the message of Success envelopes.
const DefaultSuccessMessage = "Success"

// now is a test seam for timestamp generation.
var now = time.Now

// ErrorResponse is the error part of a failure envelope. A fresh value,
// with a fresh timestamp, is built for every translated failure.
type ErrorResponse struct {
	// Stable, machine-readable code (see apperr)
	Code string `json:"code" example:"CONFLICT"`
	// Human-readable message (safe to show to users)
	Msg string `json:"msg" example:"이미 존재합니다."`
	// Moment the failure was translated
	TimeStamp time.Time `json:"timeStamp"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(code, msg string) *ErrorResponse {
	return &ErrorResponse{Code: code, Msg: msg, TimeStamp: now()}
}

// APIResponse is the envelope for every HTTP response body.
//
// Invariant: Success == true implies Error == nil; Success == false implies
// Data is the zero value (serialized as null for failure envelopes, which
// are always APIResponse[any]).
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Message *string        `json:"message"`
	Error   *ErrorResponse `json:"error"`
}

// Body is implemented by every APIResponse instantiation. Handlers returning
// a Body are written as-is instead of being wrapped again.
type Body interface {
	envelope()
}

func (APIResponse[T]) envelope() {}

// Success wraps data with the default success message.
func Success[T any](data T) APIResponse[T] {
	return SuccessWithMessage(data, DefaultSuccessMessage)
}

// SuccessWithMessage wraps data with a caller-supplied message.
func SuccessWithMessage[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data, Message: &message}
}

// Fail builds a failure envelope for ec carrying msg. Data and Message are
// null; the error part gets a fresh timestamp.
func Fail(ec apperr.ErrorCode, msg string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Error:   NewErrorResponse(ec.Code(), msg),
	}
}
