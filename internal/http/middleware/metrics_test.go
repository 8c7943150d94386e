package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yonsai/starter/internal/apperr"
)

func TestMetrics_Counters_InflightAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/m/ok", func(c *gin.Context) { c.String(http.StatusOK, "hello") })
	r.GET("/m/statusonly", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/m/ok", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", noRouteLabel, "404"))

	for _, p := range []string{"/m/ok", "/m/does-not-exist", "/m/also-missing", "/m/statusonly"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/m/ok", "200")); got != baseOK+1 {
		t.Fatalf("counter /m/ok 200 = %v; want %v", got, baseOK+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", noRouteLabel, "404")); got != base404+2 {
		t.Fatalf("counter 404 fallback = %v; want %v", got, base404+2)
	}
	for _, p := range []string{"/m/does-not-exist", "/m/also-missing"} {
		if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", p, "404")); got != 0 {
			t.Fatalf("raw path %s became a label value", p)
		}
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}

func TestMetrics_SeesTranslatedStatus(t *testing.T) {
	_ = captureLogger(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.Use(ErrorTranslator(TranslatorOptions{}))
	r.GET("/m/conflict", func(c *gin.Context) { AbortWithError(c, apperr.New(apperr.Conflict)) })

	base := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/m/conflict", "409"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/m/conflict", nil))
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/m/conflict", "409")); got != base+1 {
		t.Fatalf("counter /m/conflict 409 = %v; want %v", got, base+1)
	}
}
