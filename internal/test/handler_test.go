package test_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chat-bot/internal/router"
	"ai-chat-bot/internal/test"

	"github.com/gin-gonic/gin"
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

func TestHandleClassify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := test.New(&mockLogger{}, router.New(), "test-model")

	r := gin.New()
	r.POST("/test/classify", h.HandleClassify)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantIntent string
		wantModel  bool
	}{
		{"image", `{"text":"Picture of a sunset"}`, 200, "IMAGE_REQUEST", false},
		{"diagram", `{"text":"ER diagram please"}`, 200, "DIAGRAM_REQUEST", false},
		{"general", `{"text":"hello"}`, 200, "GENERAL_QUERY", true},
		{"missing text", `{}`, 400, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test/classify", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}

			var resp test.ClassifyResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.Intent != tt.wantIntent {
				t.Errorf("expected intent %q, got %q", tt.wantIntent, resp.Intent)
			}
			if resp.CallsModel != tt.wantModel {
				t.Errorf("expected calls_model=%v, got %v", tt.wantModel, resp.CallsModel)
			}
			if tt.wantModel && resp.Model != "test-model" {
				t.Errorf("expected model name, got %q", resp.Model)
			}
		})
	}
}
