package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"moodlog/internal/core"
	"moodlog/internal/report"
)

type moodDataResponse struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type trendResponse struct {
	DataAvailable bool       `json:"data_available"`
	Labels        []string   `json:"labels,omitempty"`
	Data          []*float64 `json:"data,omitempty"`
}

type summaryResponse struct {
	MostCommonMood string `json:"most_common_mood"`
}

type chatResponse struct {
	Reply   string `json:"reply"`
	Action  string `json:"action,omitempty"`
	ChartID string `json:"chart_id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleCreateEntry upserts the mood entry for a date (default: today).
// Accepts JSON or form-encoded bodies.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body := NewRequestBodyParser(r)
	if err := body.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse body error", "error", err, "method", r.Method, "url", r.URL.Path)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	entry := core.Entry{
		Date:    core.DateOf(time.Now()),
		Emotion: body.Get("emotion"),
		Emoji:   body.Get("emoji"),
		Tags:    body.Get("tags"),
		Notes:   body.Get("notes"),
	}
	if raw := body.Get("date"); raw != "" {
		date, err := core.ParseDate(raw)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid date: use YYYY-MM-DD"})
			return
		}
		entry.Date = date
	}

	if err := entry.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if err := s.svc.LogMood(r.Context(), entry); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save mood entry",
			"error", err,
			"date", entry.Date.String(),
			"emotion", entry.Emotion)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error saving mood entry"})
		return
	}

	slog.InfoContext(r.Context(), "Mood entry created",
		"date", entry.Date.String(),
		"emotion", entry.Emotion,
		"has_notes", entry.Notes != "")

	s.invalidateCharts(entry.Date.Year(), entry.Date.Month())
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "date": entry.Date.String()})
}

// handleMoodData returns the alphabetical frequency distribution for a month.
func (s *Server) handleMoodData(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	if !params.ValidMonth() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "month must be between 1 and 12"})
		return
	}

	key := s.cacheKey(params.Year, params.Month)
	if cached, found := s.moodDataCache.Get(key); found {
		slog.DebugContext(r.Context(), "Mood data cache hit", "year", params.Year, "month", params.Month)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	labels, data, err := s.svc.MoodData(r.Context(), params.Year, params.Month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Mood data error", "error", err, "year", params.Year, "month", params.Month)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error loading mood data"})
		return
	}

	resp := moodDataResponse{Labels: labels, Data: data}
	s.moodDataCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// handleMonthlyTrend returns the day-by-day sentiment series for a month,
// with null slots for days without an entry.
func (s *Server) handleMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	if !params.ValidMonth() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "month must be between 1 and 12"})
		return
	}

	key := s.cacheKey(params.Year, params.Month)
	if cached, found := s.trendCache.Get(key); found {
		slog.DebugContext(r.Context(), "Trend cache hit", "year", params.Year, "month", params.Month)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	trend, err := s.svc.MonthlyTrend(r.Context(), params.Year, params.Month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Monthly trend error", "error", err, "year", params.Year, "month", params.Month)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error loading monthly trend"})
		return
	}

	resp := trendResponse{
		DataAvailable: trend.Available,
		Labels:        trend.Labels,
		Data:          trend.Data,
	}
	s.trendCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// handleSummary returns the most common mood for a month, "none" when the
// month has no entries.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	if !params.ValidMonth() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "month must be between 1 and 12"})
		return
	}

	mood, ok, err := s.svc.MostCommonMood(r.Context(), params.Year, params.Month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary error", "error", err, "year", params.Year, "month", params.Month)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error loading summary"})
		return
	}
	if !ok {
		mood = "none"
	}

	writeJSON(w, http.StatusOK, summaryResponse{MostCommonMood: mood})
}

// handleChatbot answers a free-text message about the journal.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A missing or malformed body falls through to the help reply.
		slog.WarnContext(r.Context(), "Chat body decode error", "error", err)
	}

	reply, err := s.svc.Chat(r.Context(), req.Message, time.Now())
	if err != nil {
		slog.ErrorContext(r.Context(), "Chat error", "error", err, "message", req.Message)
		writeJSON(w, http.StatusOK, chatResponse{Reply: report.TroubleText})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:   reply.Reply,
		Action:  reply.Action,
		ChartID: reply.ChartID,
	})
}
