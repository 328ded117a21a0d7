package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodlog/internal/journal/memory"
	"moodlog/internal/services"
)

func newTestServer() *Server {
	return NewServer(":0", services.NewMoodService(memory.New(), nil))
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer()
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestCreateEntryValidationAndSuccess(t *testing.T) {
	srv := newTestServer()

	// Wrong method
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Missing emotion
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"emoji":"🙂"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 422 {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	// Bad explicit date
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"emotion":"Happy","emoji":"🙂","date":"15/07/2023"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 422 {
		t.Fatalf("expected 422 for bad date, got %d", rr.Code)
	}

	// Success (JSON body, explicit date)
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"emotion":"Happy","emoji":"🙂","date":"2023-07-01","notes":"sunny"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// Success (form body)
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader("emotion=Sad&emoji=x&date=2023-07-15"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("expected 200 for form submit, got %d", rr.Code)
	}
}

func TestMoodDataEndpoint(t *testing.T) {
	srv := newTestServer()

	submit := func(body string) {
		t.Helper()
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != 200 {
			t.Fatalf("submit failed: %d %s", rr.Code, rr.Body.String())
		}
	}
	submit(`{"emotion":"Happy","emoji":"a","date":"2023-07-01"}`)
	submit(`{"emotion":"Sad","emoji":"b","date":"2023-07-15"}`)
	submit(`{"emotion":"Happy","emoji":"a","date":"2023-07-20"}`)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mood-data?year=2023&month=7", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("mood-data status=%d", rr.Code)
	}

	var resp moodDataResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Labels) != 2 || resp.Labels[0] != "Happy" || resp.Labels[1] != "Sad" {
		t.Fatalf("labels = %v, want [Happy Sad]", resp.Labels)
	}
	if resp.Data[0] != 2 || resp.Data[1] != 1 {
		t.Fatalf("data = %v, want [2 1]", resp.Data)
	}
}

func TestMonthlyTrendEndpoint(t *testing.T) {
	srv := newTestServer()

	// Empty month
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/monthly-trend?year=2023&month=7", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("trend status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"data_available":false`) {
		t.Fatalf("expected data_available=false, got %s", rr.Body.String())
	}

	// Seed one entry; cache must be invalidated by the submit.
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"emotion":"Happy","emoji":"a","date":"2023-07-01"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("submit failed: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/monthly-trend?year=2023&month=7", nil)
	srv.Handler.ServeHTTP(rr, req)

	var resp struct {
		DataAvailable bool       `json:"data_available"`
		Labels        []string   `json:"labels"`
		Data          []*float64 `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.DataAvailable {
		t.Fatal("expected data_available=true after submit")
	}
	if len(resp.Data) != 31 {
		t.Fatalf("len(data) = %d, want 31", len(resp.Data))
	}
	if resp.Data[0] == nil || *resp.Data[0] != 2 {
		t.Fatalf("data[0] = %v, want 2", resp.Data[0])
	}
	if resp.Data[1] != nil {
		t.Fatal("data[1] should be null for a day with no entry")
	}
}

func TestInvalidMonthRejected(t *testing.T) {
	srv := newTestServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mood-data?year=2023&month=13", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for month=13, got %d", rr.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/summary?year=2023&month=7", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), `"most_common_mood":"none"`) {
		t.Fatalf("summary = %d %s", rr.Code, rr.Body.String())
	}
}

func TestChatbotEndpoint(t *testing.T) {
	srv := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"message":"show me the graph"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("chatbot status=%d", rr.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Action != "show_chart" || resp.ChartID != "monthlyTrendChart" {
		t.Fatalf("resp = %+v", resp)
	}

	// Unrecognized message yields the help reply, not an error.
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "I'm sorry") {
		t.Fatalf("chatbot help = %d %s", rr.Code, rr.Body.String())
	}
}

func TestNoCacheHeaders(t *testing.T) {
	srv := newTestServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mood-data", nil)
	srv.Handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
}
