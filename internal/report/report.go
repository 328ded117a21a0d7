// Package report renders aggregation results into the chat reply texts.
package report

import (
	"fmt"
	"strings"
	"time"

	"moodlog/internal/core"
)

// TrendChartID identifies the chart the client should render when a chat
// reply carries the show_chart action.
const TrendChartID = "monthlyTrendChart"

const (
	HelpText = "I'm sorry, I couldn't process that. Please ask for a report like " +
		"'report for January 2023', 'mood on 2023-07-20', or 'recent mood'."
	MissingMonthText = "Please specify a month for the report (e.g., 'report for July 2023')."
	DateFormatText   = "Please use the format YYYY-MM-DD for the date (e.g., 'mood on 2023-07-25')."
	RecentEmptyText  = "You haven't logged any moods in the last 7 days."
	TrendText        = "Of course, here is the monthly trend graph."
	TroubleText      = "I seem to be having a little trouble. Please try again."
)

// Monthly renders the report for one month's entries. An empty month yields
// a fixed no-data message naming the month and year.
func Monthly(month time.Month, year int, entries []core.Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No mood data found for %s %d.", month, year)
	}
	counts := core.Frequency(entries)
	mostCommon, _ := counts.MostCommon()
	return fmt.Sprintf("Here's your report for %s %d:\n"+
		"- You logged your mood %d times.\n"+
		"- Your most frequent mood was: %s.\n"+
		"- Moods you felt: %s.",
		month, year, len(entries), mostCommon, strings.Join(counts.Labels(), ", "))
}

// OnDate renders the reply for a single-date lookup. A nil entry yields a
// not-found message echoing the text the user asked about.
func OnDate(raw string, entry *core.Entry) string {
	if entry == nil {
		return fmt.Sprintf("I couldn't find any mood log for %s.", raw)
	}
	reply := fmt.Sprintf("On %s, you felt %s.", entry.Date.Format("January 02, 2006"), entry.Emotion)
	if entry.Notes != "" {
		reply += fmt.Sprintf(" You also wrote: '%s'.", entry.Notes)
	}
	return reply
}

// Recent renders the most common mood over the recent window, or the fixed
// no-logs message for an empty window.
func Recent(entries []core.Entry) string {
	if len(entries) == 0 {
		return RecentEmptyText
	}
	mostCommon, _ := core.Frequency(entries).MostCommon()
	return fmt.Sprintf("Over the last 7 days, your most common mood has been %s.", mostCommon)
}
