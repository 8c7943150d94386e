package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yonsai/starter/internal/apperr"
	"github.com/yonsai/starter/internal/http/response"
	"github.com/yonsai/starter/internal/services"
)

// EchoMessage is the success message of the echo endpoint.
const EchoMessage = "echoed"

// EchoRequest is the JSON payload of the echo endpoint.
type EchoRequest struct {
	// Name is 2–50 characters.
	Name string `json:"name" binding:"required,min=2,max=50" example:"Kim"`
	// Email must be a valid address.
	Email string `json:"email" binding:"required,email" example:"kim@example.com"`
	// Age is optional, 0–150.
	Age int `json:"age" binding:"gte=0,lte=150" example:"27"`
}

// UnmarshalJSON trims surrounding spaces from the string fields, so the
// binding rules apply to the trimmed values.
func (r *EchoRequest) UnmarshalJSON(b []byte) error {
	type plain EchoRequest
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	v.Name = strings.TrimSpace(v.Name)
	v.Email = strings.TrimSpace(v.Email)
	*r = EchoRequest(v)
	return nil
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status string `json:"status" example:"ok"`
}

// Home godoc
// @ID          home
// @Summary     Greeting
// @Description Returns the starter greeting wrapped in a success envelope.
// @Tags        Demo
// @Produce     json
// @Success     200  {object}  response.APIResponse[string]
// @Failure     500  {object}  response.APIResponse[any]  "Internal error"
// @Router      / [get]
func (h *Handlers) Home(c *gin.Context) (any, error) {
	return h.homeSvc.Greet(c.Request.Context())
}

// ErrorTest godoc
// @ID          errorTest
// @Summary     Failure demo
// @Description Always fails with an invalid-argument error, which is translated to BAD_REQUEST.
// @Tags        Demo
// @Produce     json
// @Failure     400  {object}  response.APIResponse[any]  "Bad request"
// @Router      /error-test [get]
func (h *Handlers) ErrorTest(c *gin.Context) (any, error) {
	return nil, apperr.InvalidArgument("error-test endpoint")
}

// Echo godoc
// @ID          echo
// @Summary     Validation demo
// @Description Validates the payload and echoes it back normalized. The first invalid field is reported in error.msg.
// @Tags        Demo
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.EchoRequest  true  "Echo payload"
// @Success     200   {object}  response.APIResponse[services.EchoResult]
// @Failure     400   {object}  response.APIResponse[any]  "Bad request"
// @Router      /echo [post]
func (h *Handlers) Echo(c *gin.Context) (any, error) {
	var req EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	res, err := h.homeSvc.Echo(c.Request.Context(), services.EchoInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return nil, err
	}
	return response.SuccessWithMessage(res, EchoMessage), nil
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Health
// @Produce     json
// @Success     200  {object}  response.APIResponse[handlers.HealthStatus]
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) (any, error) {
	return HealthStatus{Status: "ok"}, nil
}
