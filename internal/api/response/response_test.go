package response_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fareboard/fareboard/internal/api/middleware"
	"github.com/fareboard/fareboard/internal/api/models"
	"github.com/fareboard/fareboard/internal/api/response"
)

// tracedRequest builds a request whose context carries a request ID, the way
// every request looks after the RequestID middleware has run.
func tracedRequest(t *testing.T, method, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, path, http.NoBody)
	var traced *http.Request
	middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traced = r
	})).ServeHTTP(httptest.NewRecorder(), req)

	return traced, httptest.NewRecorder()
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) models.Problem {
	t.Helper()

	var problem models.Problem
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("decoding problem body: %v", err)
	}
	return problem
}

func TestJSON_IncludesRequestID(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodGet, "/test")

	response.JSON(rec, req, http.StatusOK, map[string]string{"message": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	requestID := rec.Header().Get("X-Request-Id")
	if requestID == "" {
		t.Error("X-Request-Id header missing")
	}
	if len(requestID) < 10 {
		t.Errorf("X-Request-Id %q too short to be a real ID", requestID)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestJSON_WithoutRequestID(t *testing.T) {
	// Bypass the middleware so the context has no request ID.
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()

	response.JSON(rec, req, http.StatusOK, map[string]string{"message": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if id := rec.Header().Get("X-Request-Id"); id != "" {
		t.Errorf("X-Request-Id = %q, want none without a context ID", id)
	}
}

func TestJSON_NilData(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodGet, "/test")

	response.JSON(rec, req, http.StatusOK, nil)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty for nil data", rec.Body.String())
	}
}

func TestNoContent_IncludesRequestID(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodDelete, "/test")

	response.NoContent(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty for 204", rec.Body.String())
	}
}

func TestTooManyRequests_IncludesRateLimitHeaders(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodGet, "/test")

	info := &response.RateLimitInfo{
		Limit:      100,
		Remaining:  0,
		ResetAt:    1704067200,
		RetryAfter: 60,
	}
	response.TooManyRequestsWithInfo(rec, req, "rate limit exceeded", info)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}

	headers := map[string]string{
		"X-RateLimit-Limit":     "100",
		"X-RateLimit-Remaining": "0",
		"X-RateLimit-Reset":     "1704067200",
		"Retry-After":           "60",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	if problem := decodeProblem(t, rec); problem.Status != http.StatusTooManyRequests {
		t.Errorf("problem status = %d, want 429", problem.Status)
	}
}

func TestTooManyRequests_WithoutRateLimitInfo(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodGet, "/test")

	response.TooManyRequests(rec, req, "rate limit exceeded")

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if h := rec.Header().Get("X-RateLimit-Limit"); h != "" {
		t.Errorf("X-RateLimit-Limit = %q, want none without info", h)
	}
	if h := rec.Header().Get("Retry-After"); h != "" {
		t.Errorf("Retry-After = %q, want none without info", h)
	}
}

func TestBadRequest_IncludesTraceID(t *testing.T) {
	req, rec := tracedRequest(t, http.MethodPost, "/v1/test")

	response.BadRequest(rec, req, "validation failed", []models.FieldError{
		{Field: "route", Message: "is required"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	problem := decodeProblem(t, rec)
	if problem.TraceID == "" {
		t.Error("problem traceId missing")
	}
	if problem.Instance != "/v1/test" {
		t.Errorf("problem instance = %q, want /v1/test", problem.Instance)
	}
}

func TestErrorHelpers_StatusCodes(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter, r *http.Request)
		want  int
	}{
		{
			name: "unauthorized",
			write: func(w http.ResponseWriter, r *http.Request) {
				response.Unauthorized(w, r, "invalid token")
			},
			want: http.StatusUnauthorized,
		},
		{
			name: "not found",
			write: func(w http.ResponseWriter, r *http.Request) {
				response.NotFound(w, r, "item not found")
			},
			want: http.StatusNotFound,
		},
		{
			name: "conflict",
			write: func(w http.ResponseWriter, r *http.Request) {
				response.Conflict(w, r, "item already exists")
			},
			want: http.StatusConflict,
		},
		{
			name: "internal error",
			write: func(w http.ResponseWriter, r *http.Request) {
				response.InternalError(w, r, "something went wrong")
			},
			want: http.StatusInternalServerError,
		},
		{
			name: "service unavailable",
			write: func(w http.ResponseWriter, r *http.Request) {
				response.ServiceUnavailable(w, r, "dataset is still loading")
			},
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := tracedRequest(t, http.MethodGet, "/v1/test")

			tt.write(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}

			problem := decodeProblem(t, rec)
			if problem.Status != tt.want {
				t.Errorf("problem status = %d, want %d", problem.Status, tt.want)
			}
			if problem.TraceID == "" {
				t.Error("problem traceId missing")
			}
		})
	}
}

func TestRequestIDPropagation(t *testing.T) {
	// A client-supplied X-Request-Id must survive the middleware and come
	// back on the response.
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-Id", "client-request-123")

	var traced *http.Request
	middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traced = r
	})).ServeHTTP(httptest.NewRecorder(), req)

	if id := middleware.GetRequestID(traced.Context()); id != "client-request-123" {
		t.Errorf("context request ID = %q, want client-request-123", id)
	}

	rec := httptest.NewRecorder()
	response.JSON(rec, traced, http.StatusOK, map[string]string{"status": "ok"})

	if id := rec.Header().Get("X-Request-Id"); id != "client-request-123" {
		t.Errorf("response X-Request-Id = %q, want client-request-123", id)
	}
}

func TestGetRequestID_EmptyContext(t *testing.T) {
	if id := middleware.GetRequestID(context.Background()); id != "" {
		t.Errorf("request ID for background context = %q, want empty", id)
	}
}
