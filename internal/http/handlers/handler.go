// Package handlers contains the HTTP endpoints of the starter.
//
// Endpoints are transport-thin: they bind input, call services, and return a
// value or an error. They never write failure responses themselves; Handle
// records errors on the Gin context for middleware.ErrorTranslator, which owns
// the failure envelope.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yonsai/starter/internal/calllog"
	"github.com/yonsai/starter/internal/http/middleware"
	"github.com/yonsai/starter/internal/http/response"
	"github.com/yonsai/starter/internal/services"
)

//
// Service contracts (context-aware)
//

// HomeService defines the operations behind the demo endpoints.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type HomeService interface {
	// Greet returns the greeting of the root endpoint.
	Greet(ctx context.Context) (string, error)
	// Echo returns the normalized form of in.
	Echo(ctx context.Context, in services.EchoInput) (services.EchoResult, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints.
type Handlers struct {
	homeSvc HomeService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(homeSvc HomeService) *Handlers {
	return &Handlers{homeSvc: homeSvc}
}

// Endpoint is a controller operation. It returns the response data or an
// error. Data that is already a response.Body is written as-is; anything else
// is wrapped with response.Success.
type Endpoint func(c *gin.Context) (any, error)

// Handle adapts ep to a gin.HandlerFunc. Every call is logged through calllog
// with the Controller layer under the name op.
func Handle(op string, ep Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := calllog.Call(c.Request.Context(), calllog.Controller, op, func(context.Context) (any, error) {
			return ep(c)
		})
		if err != nil {
			middleware.AbortWithError(c, err)
			return
		}
		if body, ok := data.(response.Body); ok {
			c.JSON(http.StatusOK, body)
			return
		}
		c.JSON(http.StatusOK, response.Success(data))
	}
}
