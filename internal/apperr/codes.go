// Package apperr defines the public error contract of the API: a closed
// registry of error codes, and the BusinessError type that handlers and
// services return to request a specific error translation.
//
// Codes are part of the published API. Adding a new code is safe; changing
// the status, code string, or default message of an existing one is a
// breaking change for clients.
package apperr

import (
	"net/http"

	"golang.org/x/text/language"
)

// ErrorCode is one entry of the registry: an HTTP status, a stable
// machine-readable code, and a default human-readable message.
//
// The fields are unexported so registry entries cannot be altered after
// process start; copies handed out by Lookup are values.
type ErrorCode struct {
	status int
	code   string
	msg    string // default (Korean) message
	msgEN  string
}

// Status returns the HTTP status code the error translates to.
func (e ErrorCode) Status() int { return e.status }

// Code returns the stable machine-readable identifier (e.g. "BAD_REQUEST").
func (e ErrorCode) Code() string { return e.code }

// Message returns the default message.
func (e ErrorCode) Message() string { return e.msg }

// MessageFor returns the message best matching an Accept-Language header
// value. An empty or unsupported header yields the default message.
func (e ErrorCode) MessageFor(acceptLanguage string) string {
	if acceptLanguage == "" {
		return e.msg
	}
	_, idx := language.MatchStrings(messageLanguages, acceptLanguage)
	if idx == 1 && e.msgEN != "" {
		return e.msgEN
	}
	return e.msg
}

// IsZero reports whether e is the zero ErrorCode (not a registry entry).
func (e ErrorCode) IsZero() bool { return e.code == "" }

// messageLanguages lists the languages messages are available in. The first
// entry is the fallback.
var messageLanguages = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
})

// Registry entries.
var (
	BadRequest       = ErrorCode{http.StatusBadRequest, "BAD_REQUEST", "요청이 올바르지 않습니다.", "The request is invalid."}
	Unauthorized     = ErrorCode{http.StatusUnauthorized, "UNAUTHORIZED", "인증이 필요합니다.", "Authentication is required."}
	Forbidden        = ErrorCode{http.StatusForbidden, "FORBIDDEN", "권한이 없습니다.", "Permission denied."}
	NotFound         = ErrorCode{http.StatusNotFound, "NOT_FOUND", "페이지를 찾을 수 없습니다.", "The page could not be found."}
	MethodNotAllowed = ErrorCode{http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "허용되지 않은 요청 방식입니다.", "The request method is not allowed."}
	Conflict         = ErrorCode{http.StatusConflict, "CONFLICT", "이미 존재합니다.", "The resource already exists."}
	ValidationError  = ErrorCode{http.StatusUnprocessableEntity, "VALIDATION_ERROR", "입력값이 올바르지 않습니다.", "The input value is invalid."}
	TooManyRequests  = ErrorCode{http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "요청이 너무 많습니다.", "Too many requests."}
	InternalError    = ErrorCode{http.StatusInternalServerError, "INTERNAL_ERROR", "서버 내부 오류가 발생했습니다.", "An internal server error occurred."}
)

// registry is ordered by status; Codes returns it in this order.
var registry = []ErrorCode{
	BadRequest,
	Unauthorized,
	Forbidden,
	NotFound,
	MethodNotAllowed,
	Conflict,
	ValidationError,
	TooManyRequests,
	InternalError,
}

var byCode = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(registry))
	for _, ec := range registry {
		m[ec.code] = ec
	}
	return m
}()

// Lookup returns the registry entry for a machine code such as "CONFLICT".
func Lookup(code string) (ErrorCode, bool) {
	ec, ok := byCode[code]
	return ec, ok
}

// Codes returns a copy of every registered ErrorCode.
func Codes() []ErrorCode {
	out := make([]ErrorCode, len(registry))
	copy(out, registry)
	return out
}
