// Package services holds the application's service layer. Every exported
// service method runs through calllog with the Service layer tag, so service
// calls appear in the logs nested inside their controller calls.
package services

import (
	"context"
	"strings"

	"github.com/yonsai/starter/internal/calllog"
)

// DefaultGreeting is returned by the home endpoint.
const DefaultGreeting = "Hello Final Project ,,,"

// EchoInput is the service-level form of an echo request.
type EchoInput struct {
	Name  string
	Email string
	Age   int
}

// EchoResult is what the echo endpoint returns.
type EchoResult struct {
	Name  string `json:"name" example:"Kim"`
	Email string `json:"email" example:"kim@example.com"`
	Age   int    `json:"age" example:"27"`
}

// HomeService backs the demo endpoints of the starter.
type HomeService struct {
	// Greeting is returned by Greet; DefaultGreeting when empty.
	Greeting string
}

// NewHomeService returns a HomeService with the default greeting.
func NewHomeService() *HomeService {
	return &HomeService{Greeting: DefaultGreeting}
}

// Greet returns the greeting of the home endpoint.
func (s *HomeService) Greet(ctx context.Context) (string, error) {
	return calllog.Call(ctx, calllog.Service, "Greet", func(context.Context) (string, error) {
		if s.Greeting == "" {
			return DefaultGreeting, nil
		}
		return s.Greeting, nil
	})
}

// Echo returns in, normalized: surrounding spaces trimmed and the email
// lower-cased.
func (s *HomeService) Echo(ctx context.Context, in EchoInput) (EchoResult, error) {
	return calllog.Call(ctx, calllog.Service, "Echo", func(context.Context) (EchoResult, error) {
		return EchoResult{
			Name:  strings.TrimSpace(in.Name),
			Email: strings.ToLower(strings.TrimSpace(in.Email)),
			Age:   in.Age,
		}, nil
	})
}
