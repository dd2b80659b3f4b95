package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/news/:slug", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/news/:slug", "404"))

	req := httptest.NewRequest(http.MethodGet, "/api/news/first-post", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/news/:slug", "404"))
	if after-before != 1 {
		t.Fatalf("expected one request recorded under the route pattern, got %v", after-before)
	}
}

func TestRecordNotificationOutcome(t *testing.T) {
	failed := testutil.ToFloat64(notifications.WithLabelValues("contact", "failed"))
	RecordNotification("contact", errors.New("smtp down"))
	if got := testutil.ToFloat64(notifications.WithLabelValues("contact", "failed")); got != failed+1 {
		t.Fatalf("expected failed counter to increase, got %v", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordSubmission("subscribe", "accepted")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "studentorg_intake_submissions_total") {
		t.Fatalf("expected submissions counter in exposition")
	}
}
