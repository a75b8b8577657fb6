package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/pkg/token"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), OfficerContext(secret))
	r.GET("/whoami", func(c *gin.Context) {
		name, _ := common.GetOfficerFromContext(c)
		c.String(http.StatusOK, name)
	})
	return r
}

func TestOfficerContext(t *testing.T) {
	valid, err := token.GenerateJWT("Officer Lee", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	tests := []struct {
		name     string
		auth     string
		header   string
		wantCode int
		wantBody string
	}{
		{"no session", "", "", http.StatusOK, ""},
		{"header only", "", "  Officer Park ", http.StatusOK, "Officer Park"},
		{"bearer token", "Bearer " + valid, "", http.StatusOK, "Officer Lee"},
		{"token beats header", "Bearer " + valid, "Officer Park", http.StatusOK, "Officer Lee"},
		{"bad scheme", "Basic abc", "", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", "", http.StatusUnauthorized, ""},
	}

	r := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			if tt.header != "" {
				req.Header.Set(OfficerHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode == http.StatusOK && w.Body.String() != tt.wantBody {
				t.Errorf("officer = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}
