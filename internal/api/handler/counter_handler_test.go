package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/counterapp/counter-api/internal/core/domain"
)

type stubCounterService struct {
	getFn func(ctx context.Context, userID string) (int64, error)
	incFn func(ctx context.Context, userID string) (int64, error)
	decFn func(ctx context.Context, userID string) (int64, error)
}

func (s *stubCounterService) GetCount(ctx context.Context, userID string) (int64, error) {
	return s.getFn(ctx, userID)
}

func (s *stubCounterService) Increment(ctx context.Context, userID string) (int64, error) {
	return s.incFn(ctx, userID)
}

func (s *stubCounterService) Decrement(ctx context.Context, userID string) (int64, error) {
	return s.decFn(ctx, userID)
}

func counterRequest(e *echo.Echo, method, target, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func decodeCount(t *testing.T, rec *httptest.ResponseRecorder) int64 {
	t.Helper()
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp.Count
}

func TestCounterHandler_Get(t *testing.T) {
	e := newTestEcho()
	handler := NewCounterHandler(&stubCounterService{
		getFn: func(ctx context.Context, userID string) (int64, error) {
			if userID != "u1" {
				t.Fatalf("unexpected userID: %s", userID)
			}
			return 5, nil
		},
	})

	c, rec := counterRequest(e, http.MethodGet, "/api/counter", "u1")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeCount(t, rec); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestCounterHandler_Increase(t *testing.T) {
	e := newTestEcho()
	handler := NewCounterHandler(&stubCounterService{
		incFn: func(ctx context.Context, userID string) (int64, error) {
			return 1, nil
		},
	})

	c, rec := counterRequest(e, http.MethodPost, "/api/counter/increase", "u1")
	if err := handler.Increase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeCount(t, rec); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
}

func TestCounterHandler_Decrease_Negative(t *testing.T) {
	e := newTestEcho()
	handler := NewCounterHandler(&stubCounterService{
		decFn: func(ctx context.Context, userID string) (int64, error) {
			return -1, nil
		},
	})

	c, rec := counterRequest(e, http.MethodPost, "/api/counter/decrease", "u1")
	if err := handler.Decrease(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeCount(t, rec); got != -1 {
		t.Fatalf("expected count -1, got %d", got)
	}
}

func TestCounterHandler_UserGone(t *testing.T) {
	e := newTestEcho()
	handler := NewCounterHandler(&stubCounterService{
		incFn: func(ctx context.Context, userID string) (int64, error) {
			return 0, domain.ErrUserNotFound
		},
	})

	c, rec := counterRequest(e, http.MethodPost, "/api/counter/increase", "gone")
	_ = handler.Increase(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCounterHandler_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewCounterHandler(&stubCounterService{
		getFn: func(ctx context.Context, userID string) (int64, error) {
			t.Fatalf("should not be called")
			return 0, nil
		},
	})

	c, rec := counterRequest(e, http.MethodGet, "/api/counter", "")
	if err := handler.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
