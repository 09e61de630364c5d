package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(AttachTraceContext())
	r.Use(RequestLogger(log))
	r.GET("/api/missions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	cases := []struct {
		path  string
		level zapcore.Level
		route string
	}{
		{"/api/missions/4?verbose=1", zapcore.InfoLevel, "/api/missions/:id"},
		{"/missing", zapcore.WarnLevel, "/missing"},
		{"/boom", zapcore.ErrorLevel, "/boom"},
	}
	for _, tc := range cases {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))
	}

	entries := logs.All()
	if len(entries) != len(cases) {
		t.Fatalf("entries: want=%d got=%d", len(cases), len(entries))
	}
	for i, tc := range cases {
		e := entries[i]
		if e.Level != tc.level {
			t.Fatalf("%s level: want=%s got=%s", tc.path, tc.level, e.Level)
		}
		fields := e.ContextMap()
		if fields["path"] != tc.route {
			t.Fatalf("%s path: want=%s got=%v", tc.path, tc.route, fields["path"])
		}
		if fields["request_id"] == nil || fields["trace_id"] == nil {
			t.Fatalf("%s: missing ids in %v", tc.path, fields)
		}
	}
	if got := entries[0].ContextMap()["query"]; got != "verbose=1" {
		t.Fatalf("query: want=verbose=1 got=%v", got)
	}
	if got := entries[2].ContextMap()["error"]; got != "db down" {
		t.Fatalf("error field: want=db down got=%v", got)
	}
}
