package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chat-bot/config"
	"ai-chat-bot/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func setupEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.SessionConfig{CookieName: "session_id"})

	var seen string
	r := gin.New()
	r.GET("/", mw.Session(), func(c *gin.Context) {
		sc, ok := middleware.GetScope(c)
		if ok {
			seen = sc.SessionID
		}
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestSession(t *testing.T) {
	t.Run("Issues Cookie", func(t *testing.T) {
		r, seen := setupEngine()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "session_id" {
			t.Fatalf("expected a session_id cookie, got %v", cookies)
		}
		if !cookies[0].HttpOnly {
			t.Errorf("session cookie should be HttpOnly")
		}
		if _, err := uuid.Parse(cookies[0].Value); err != nil {
			t.Errorf("cookie is not a uuid: %s", cookies[0].Value)
		}
		if *seen != cookies[0].Value {
			t.Errorf("scope %q does not match cookie %q", *seen, cookies[0].Value)
		}
	})

	t.Run("Reuses Valid Cookie", func(t *testing.T) {
		r, seen := setupEngine()
		id := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: id})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if len(w.Result().Cookies()) != 0 {
			t.Errorf("no new cookie expected")
		}
		if *seen != id {
			t.Errorf("expected scope %q, got %q", id, *seen)
		}
	})

	t.Run("Replaces Malformed Cookie", func(t *testing.T) {
		r, seen := setupEngine()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "not-a-uuid"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Value == "not-a-uuid" {
			t.Fatalf("expected a replacement cookie, got %v", cookies)
		}
		if *seen != cookies[0].Value {
			t.Errorf("scope should use the replacement id")
		}
	})
}

func TestGetScope_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := middleware.GetScope(c); ok {
		t.Error("expected no scope")
	}
}
