// Package chat classifies free-text messages into journal query intents.
//
// Matching is substring based and intentionally brittle: it lowercases the
// message and applies a fixed precedence, so a message containing several
// trigger phrases resolves to the highest-precedence one. The matcher is a
// pure function behind the Classify entry point so it can later be swapped
// for a stricter parser without touching aggregation code.
package chat

import (
	"strings"
	"time"

	"moodlog/internal/core"
)

type IntentKind int

const (
	// Precedence order, highest first.
	KindMonthlyReport IntentKind = iota
	KindMissingMonth
	KindMoodOnDate
	KindInvalidDate
	KindRecentMood
	KindShowTrendChart
	KindUnrecognized
)

// RecentLookbackDays is the "recent mood" window size. The window runs from
// now-7d through today inclusive on both ends, spanning 8 calendar days.
const RecentLookbackDays = 7

// Intent is the classified purpose of a chat message plus any parameters
// recovered from it.
type Intent struct {
	Kind  IntentKind
	Month time.Month // MonthlyReport
	Year  int        // MonthlyReport
	Date  core.Date  // MoodOnDate
	Raw   string     // InvalidDate: the text that failed to parse
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Classify resolves a message to an intent. now supplies the default report
// year and is injected for testability.
func Classify(message string, now time.Time) Intent {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "report for"):
		return classifyReport(msg, now)
	case strings.Contains(msg, "mood on"):
		return classifyMoodOn(msg)
	case strings.Contains(msg, "recent mood"):
		return Intent{Kind: KindRecentMood}
	case strings.Contains(msg, "trend") || strings.Contains(msg, "graph"):
		return Intent{Kind: KindShowTrendChart}
	}
	return Intent{Kind: KindUnrecognized}
}

func classifyReport(msg string, now time.Time) Intent {
	var month time.Month
	year := now.Year()

	// Scan whitespace tokens; the last month name and the last standalone
	// 4-digit number win when several appear.
	for _, tok := range strings.Fields(msg) {
		if len(tok) == 4 && isDigits(tok) {
			year = atoi4(tok)
			continue
		}
		for i, name := range monthNames {
			if tok == name {
				month = time.Month(i + 1)
				break
			}
		}
	}

	if month == 0 {
		return Intent{Kind: KindMissingMonth}
	}
	return Intent{Kind: KindMonthlyReport, Month: month, Year: year}
}

func classifyMoodOn(msg string) Intent {
	idx := strings.LastIndex(msg, "mood on")
	raw := strings.TrimSpace(msg[idx+len("mood on"):])
	date, err := core.ParseDate(raw)
	if err != nil {
		return Intent{Kind: KindInvalidDate, Raw: raw}
	}
	return Intent{Kind: KindMoodOnDate, Date: date}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func atoi4(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
