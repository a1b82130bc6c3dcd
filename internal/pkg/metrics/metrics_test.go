package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_RecordApplicationTransition(t *testing.T) {
	before := testutil.ToFloat64(applicationTransitions.WithLabelValues("NONE", "PENDING"))

	NewRecorder().RecordApplicationTransition("", "PENDING")

	after := testutil.ToFloat64(applicationTransitions.WithLabelValues("NONE", "PENDING"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveHTTP("GET", "/api/v1/applications/:id", 200, 15*time.Millisecond)
	NewRecorder().RecordApplicationTransition("PENDING", "ACCEPTED")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"skillbridge_http_requests_total",
		"skillbridge_applications_transitions_total",
		`path="/api/v1/applications/:id"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
