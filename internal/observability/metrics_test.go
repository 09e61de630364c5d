package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAPICountsByLabels(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/missions/:id", "200", 5*time.Millisecond)
	m.ObserveAPI("GET", "/api/missions/:id", "200", 7*time.Millisecond)
	m.ObserveAPI("GET", "", "", time.Millisecond)

	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/missions/:id", "200")); got != 2 {
		t.Fatalf("requests: want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "unknown", "0")); got != 1 {
		t.Fatalf("defaulted labels: want=1 got=%v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Second)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.WSClientConnected()
	m.IncBroadcast("debris:update")
	m.IncDroppedFrame("debris:update")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: want=%d got=%d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.WSClientConnected()
	m.IncBroadcast("launch:status")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		"orbital_nexus_ws_clients 1",
		`orbital_nexus_ws_broadcasts_total{event="launch:status"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in exposition", want)
		}
	}
}
