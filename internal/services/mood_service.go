package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moodlog/internal/amqp"
	"moodlog/internal/chat"
	"moodlog/internal/core"
	"moodlog/internal/journal"
	"moodlog/internal/report"
)

// MoodService orchestrates mood journal operations across the record store
// and the optional AMQP event publisher.
type MoodService struct {
	store  journal.Store
	events *amqp.Client
}

func NewMoodService(store journal.Store, events *amqp.Client) *MoodService {
	return &MoodService{
		store:  store,
		events: events,
	}
}

// TrendData is the chart-ready per-day sentiment series for a month.
type TrendData struct {
	Available bool
	Labels    []string
	Data      []*float64
}

// ChatReply is the outcome of a chat message: a text reply, plus an optional
// client action when a chart should be rendered instead of text.
type ChatReply struct {
	Reply   string
	Action  string
	ChartID string
}

// LogMood validates and upserts a single day's entry, then publishes an
// entry-logged event. Event publish failures never fail the submission.
func (s *MoodService) LogMood(ctx context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if err := s.store.UpsertForDate(ctx, e); err != nil {
		return fmt.Errorf("save mood entry: %w", err)
	}

	if s.events == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping entry event")
		return nil
	}
	if err := s.events.PublishEntryLogged(ctx, e.Date.String(), e.Emotion); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entry logged event",
			"date", e.Date.String(), "error", err)
		// Entry is saved locally; the event stream is best-effort.
	}

	return nil
}

// MonthEntries returns all entries for a calendar month.
func (s *MoodService) MonthEntries(ctx context.Context, year, month int) ([]core.Entry, error) {
	start, end := core.MonthBounds(year, month)
	entries, err := s.store.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list month entries (year=%d, month=%d): %w", year, month, err)
	}
	return entries, nil
}

// MoodData returns the alphabetically ordered frequency distribution for a
// month, shaped for chart consumption.
func (s *MoodService) MoodData(ctx context.Context, year, month int) ([]string, []int, error) {
	entries, err := s.MonthEntries(ctx, year, month)
	if err != nil {
		return nil, nil, err
	}

	counts := core.Frequency(entries)
	labels := counts.SortedLabels()
	data := make([]int, len(labels))
	for i, label := range labels {
		data[i] = counts.Count(label)
	}
	return labels, data, nil
}

// MonthlyTrend returns the full-month day-by-day sentiment series. Days
// without an entry carry a nil slot; a month without any entries reports
// Available=false.
func (s *MoodService) MonthlyTrend(ctx context.Context, year, month int) (TrendData, error) {
	entries, err := s.MonthEntries(ctx, year, month)
	if err != nil {
		return TrendData{}, err
	}
	if len(entries) == 0 {
		return TrendData{Available: false}, nil
	}

	numDays := core.DaysInMonth(year, month)
	labels := make([]string, numDays)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}

	return TrendData{
		Available: true,
		Labels:    labels,
		Data:      core.DailySentimentSeries(entries, year, month),
	}, nil
}

// MostCommonMood returns the most frequent mood for a month, or ok=false
// when the month has no entries.
func (s *MoodService) MostCommonMood(ctx context.Context, year, month int) (string, bool, error) {
	entries, err := s.MonthEntries(ctx, year, month)
	if err != nil {
		return "", false, err
	}
	mood, ok := core.Frequency(entries).MostCommon()
	return mood, ok, nil
}

// Chat classifies a free-text message and answers it from the journal.
// Parse failures become conversational replies; only store failures return
// an error.
func (s *MoodService) Chat(ctx context.Context, message string, now time.Time) (ChatReply, error) {
	intent := chat.Classify(message, now)

	switch intent.Kind {
	case chat.KindMonthlyReport:
		entries, err := s.MonthEntries(ctx, intent.Year, int(intent.Month))
		if err != nil {
			return ChatReply{}, err
		}
		return ChatReply{Reply: report.Monthly(intent.Month, intent.Year, entries)}, nil

	case chat.KindMissingMonth:
		return ChatReply{Reply: report.MissingMonthText}, nil

	case chat.KindMoodOnDate:
		entry, err := s.store.GetByDate(ctx, intent.Date)
		if err != nil {
			return ChatReply{}, fmt.Errorf("get mood entry: %w", err)
		}
		return ChatReply{Reply: report.OnDate(intent.Date.String(), entry)}, nil

	case chat.KindInvalidDate:
		return ChatReply{Reply: report.DateFormatText}, nil

	case chat.KindRecentMood:
		end := core.DateOf(now)
		start := end.AddDays(-chat.RecentLookbackDays)
		entries, err := s.store.ListRange(ctx, start, end)
		if err != nil {
			return ChatReply{}, fmt.Errorf("list recent entries: %w", err)
		}
		return ChatReply{Reply: report.Recent(entries)}, nil

	case chat.KindShowTrendChart:
		return ChatReply{
			Reply:   report.TrendText,
			Action:  "show_chart",
			ChartID: report.TrendChartID,
		}, nil
	}

	return ChatReply{Reply: report.HelpText}, nil
}

// Close releases the service's connections.
func (s *MoodService) Close() error {
	var errs []error

	if closer, ok := s.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if s.events != nil {
		if err := s.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close mood service: %v", errs)
	}
	return nil
}
