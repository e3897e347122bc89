package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chat-bot/config"
	"ai-chat-bot/internal/chat"
	"ai-chat-bot/internal/chat/mocks"
	"ai-chat-bot/internal/model"
	"ai-chat-bot/internal/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
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

func newTestServer(t *testing.T, env string) (*HTTPServer, *mocks.MockUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUseCase(ctrl)

	srv, err := New(&mockLogger{}, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: env,
		ChatUseCase: uc,
		Router:      router.New(),
		Model:       "test-model",
		UI:          config.UIConfig{Title: "AI Chat Bot"},
		Session:     config.SessionConfig{CookieName: "session_id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv, uc
}

func TestNew_Validate(t *testing.T) {
	_, err := New(&mockLogger{}, Config{Port: 8080, Mode: gin.TestMode})
	if err == nil {
		t.Error("expected error without a chat use case")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, string(model.EnvironmentDevelopment))

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Data["model"] != "test-model" {
		t.Errorf("expected model in readiness payload, got %v", resp.Data)
	}
}

func TestChatRoutes(t *testing.T) {
	srv, uc := newTestServer(t, string(model.EnvironmentDevelopment))
	uc.EXPECT().History(gomock.Any(), gomock.Any()).Return(chat.HistoryOutput{}, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestTestRoutes(t *testing.T) {
	classify := func(srv *HTTPServer) int {
		req := httptest.NewRequest(http.MethodPost, "/test/classify", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	dev, _ := newTestServer(t, string(model.EnvironmentDevelopment))
	if code := classify(dev); code != http.StatusOK {
		t.Errorf("development: expected 200, got %d", code)
	}

	prod, _ := newTestServer(t, string(model.EnvironmentProduction))
	if code := classify(prod); code != http.StatusNotFound {
		t.Errorf("production: expected 404, got %d", code)
	}
}
