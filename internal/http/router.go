// Package httpapi wires the HTTP transport (Gin) to services, middleware, and
// route handlers. It centralizes cross-cutting concerns such as tracing,
// correlation IDs, logging, metrics, compression, failure translation, CORS,
// security headers, and rate limiting.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yonsai/starter/docs"
	"github.com/yonsai/starter/internal/apperr"
	"github.com/yonsai/starter/internal/config"
	"github.com/yonsai/starter/internal/http/handlers"
	"github.com/yonsai/starter/internal/http/middleware"
	"github.com/yonsai/starter/internal/services"
	"github.com/yonsai/starter/internal/validation"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters. Everything that observes the final status or
// body sits outside ErrorTranslator, because the translator writes the
// failure envelope after the rest of the chain has returned:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: access log + request-scoped logger
//  4. Metrics
//  5. gzip
//  6. ErrorTranslator: panics and c.Errors to envelopes
//  7. Body size limiter
//  8. Rate limiter (per IP, when RateRPS > 0)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	validation.Setup()

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access log
	r.Use(middleware.Logger())

	// 4) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 5) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 6) Failure translation (also recovers panics)
	r.Use(middleware.ErrorTranslator(middleware.TranslatorOptions{
		ReturnFirstFieldMessage: cfg.ValidationFirstFieldMessage,
	}))

	// 7) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 8) Token-bucket rate limiter per IP; RATE_RPS=0 disables it
	if cfg.RateRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
		r.Use(rl.Handler())
	}

	// 9) CORS posture and security headers
	r.Use(cors.New(corsConfig(cfg.CORS)))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, apperr.New(apperr.NotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		middleware.AbortWithError(c, apperr.New(apperr.MethodNotAllowed))
	})

	h := handlers.New(services.NewHomeService())

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("/", handlers.Handle("Home", h.Home))
		api.GET("/error-test", handlers.Handle("ErrorTest", h.ErrorTest))
		api.POST("/echo", handlers.Handle("Echo", h.Echo))
		api.GET("/health", handlers.Handle("Health", h.Health))
	}
}

// corsConfig maps the configured policy onto gin-contrib/cors. Credentials
// are never combined with a wildcard origin.
func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  c.AllowedHeaders,
		ExposeHeaders: []string{middleware.HeaderRequestID, "Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(cc.AllowHeaders) == 0 {
		cc.AllowHeaders = config.DefaultCORSHeaders
	}
	if c.AllowAll() {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = c.AllowedOrigins
	cc.AllowCredentials = c.AllowCredentials
	return cc
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Reading past the cap fails
// with *http.MaxBytesError, which is translated to BAD_REQUEST.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
