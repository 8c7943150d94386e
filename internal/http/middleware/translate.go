// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the terminal error boundary. Handlers report failures
// with c.Error(err) (see handlers.Handle) or by panicking; ErrorTranslator
// turns every such failure into a response.APIResponse failure envelope with
// the HTTP status of the resolved apperr.ErrorCode.
//
// Policy, in priority order:
//  1. *apperr.BusinessError: its ErrorCode; custom message if set, else the
//     code's default message.
//  2. Client input failures map to BAD_REQUEST:
//     - field validation (validator.ValidationErrors): the first field's
//     message when ReturnFirstFieldMessage is set, else the default message;
//     - malformed arguments (apperr.ErrInvalidArgument, JSON syntax and type
//     errors, empty body, numeric parse errors, oversized body): the
//     default message.
//  3. Anything else, including panics: INTERNAL_ERROR with the default
//     message. The underlying error is logged, never sent to the client.
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yonsai/starter/internal/apperr"
	"github.com/yonsai/starter/internal/http/response"
	"github.com/yonsai/starter/internal/validation"
)

// TranslatorOptions configures ErrorTranslator.
type TranslatorOptions struct {
	// ReturnFirstFieldMessage selects the message of field validation
	// failures: the first offending field's message when true, the generic
	// BAD_REQUEST message when false.
	ReturnFirstFieldMessage bool
}

// Translation is the outcome of classifying a failure.
type Translation struct {
	Code apperr.ErrorCode
	// Message overrides the localized default message of Code when non-empty.
	Message string
}

// apiErrors counts translated failures by machine code.
var apiErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of failures translated into error envelopes, by error code.",
	},
	[]string{"code"},
)

func init() {
	prometheus.MustRegister(apiErrors)
}

// panicError carries a recovered panic value. It deliberately does not
// unwrap, so a panic is always classified as an internal error.
type panicError struct{ value any }

func (p panicError) Error() string { return fmt.Sprintf("panic: %v", p.value) }

// Classify maps err onto the error-code registry. It is total: every error,
// including nil, yields a Translation.
func Classify(err error, opts TranslatorOptions) Translation {
	var be *apperr.BusinessError
	if errors.As(err, &be) {
		return Translation{Code: be.ErrorCode(), Message: be.CustomMessage()}
	}

	if msg, ok := validation.FirstFieldMessage(err); ok {
		if opts.ReturnFirstFieldMessage {
			return Translation{Code: apperr.BadRequest, Message: msg}
		}
		return Translation{Code: apperr.BadRequest}
	}

	if isInputError(err) {
		return Translation{Code: apperr.BadRequest}
	}
	return Translation{Code: apperr.InternalError}
}

// isInputError reports whether err is a malformed-argument failure.
func isInputError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, apperr.ErrInvalidArgument) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
		sizeErr   *http.MaxBytesError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &numErr) ||
		errors.As(err, &sizeErr)
}

// ErrorTranslator returns the terminal failure-translating middleware.
//
// It recovers panics raised further down the chain and, once the chain has
// unwound, translates the last error recorded on the Gin context. When a
// response body was already written, the failure is only logged.
func ErrorTranslator(opts TranslatorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(c).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				writeFailure(c, panicError{value: rec}, opts)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		writeFailure(c, c.Errors.Last().Err, opts)
	}
}

// AbortWithError records err for ErrorTranslator and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func writeFailure(c *gin.Context, err error, opts TranslatorOptions) {
	t := Classify(err, opts)
	status := t.Code.Status()
	msg := t.Message
	if msg == "" {
		msg = t.Code.MessageFor(c.GetHeader("Accept-Language"))
	}

	apiErrors.WithLabelValues(t.Code.Code()).Inc()

	span := trace.SpanFromContext(c.Request.Context())
	span.SetAttributes(attribute.String("app.error_code", t.Code.Code()))
	if status >= http.StatusInternalServerError {
		span.RecordError(err)
		span.SetStatus(codes.Error, t.Code.Code())
	}

	lg := LoggerFrom(c)
	if status >= http.StatusInternalServerError {
		lg.Error().Err(err).Int("status", status).Str("code", t.Code.Code()).Msg("api error")
	} else {
		lg.Debug().Err(err).Int("status", status).Str("code", t.Code.Code()).Msg("api error")
	}

	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, response.Fail(t.Code, msg))
}
