package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"kidscode/internal/service"

	"go.uber.org/zap"
)

// fakeHealthChecker проверка готовности с настраиваемой ошибкой
type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Ping(ctx context.Context) error {
	return f.err
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(&service.Services{}, &fakeHealthChecker{}, zap.NewNop())

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestHandleReady(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{
			name:       "база данных доступна",
			pingErr:    nil,
			wantStatus: 200,
		},
		{
			name:       "база данных недоступна",
			pingErr:    errors.New("connection refused"),
			wantStatus: 503,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(&service.Services{}, &fakeHealthChecker{err: tt.pingErr}, zap.NewNop())

			resp, err := srv.app.Test(httptest.NewRequest("GET", "/ready", nil))
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}
