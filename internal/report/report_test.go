package report

import (
	"strings"
	"testing"
	"time"

	"moodlog/internal/core"
)

func TestMonthly(t *testing.T) {
	entries := []core.Entry{
		{Date: core.NewDate(2023, 7, 1), Emotion: "Happy", Emoji: "😊"},
		{Date: core.NewDate(2023, 7, 15), Emotion: "Sad", Emoji: "😢"},
		{Date: core.NewDate(2023, 7, 20), Emotion: "Happy", Emoji: "😊"},
	}

	got := Monthly(time.July, 2023, entries)
	for _, want := range []string{
		"Here's your report for July 2023:",
		"You logged your mood 3 times.",
		"Your most frequent mood was: Happy.",
		"Moods you felt: Happy, Sad.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Monthly() missing %q in:\n%s", want, got)
		}
	}
}

func TestMonthlyNoData(t *testing.T) {
	got := Monthly(time.March, 2024, nil)
	if got != "No mood data found for March 2024." {
		t.Fatalf("Monthly() = %q", got)
	}
}

func TestOnDate(t *testing.T) {
	entry := &core.Entry{
		Date:    core.NewDate(2023, 7, 15),
		Emotion: "Sad",
		Emoji:   "😢",
	}
	got := OnDate("2023-07-15", entry)
	if got != "On July 15, 2023, you felt Sad." {
		t.Fatalf("OnDate() = %q", got)
	}
}

func TestOnDateWithNotes(t *testing.T) {
	entry := &core.Entry{
		Date:    core.NewDate(2023, 7, 15),
		Emotion: "Sad",
		Emoji:   "😢",
		Notes:   "rough day at work",
	}
	got := OnDate("2023-07-15", entry)
	if !strings.HasSuffix(got, "You also wrote: 'rough day at work'.") {
		t.Fatalf("OnDate() = %q", got)
	}
}

func TestOnDateNotFound(t *testing.T) {
	got := OnDate("2023-07-15", nil)
	if got != "I couldn't find any mood log for 2023-07-15." {
		t.Fatalf("OnDate() = %q", got)
	}
}

func TestRecent(t *testing.T) {
	entries := []core.Entry{
		{Date: core.NewDate(2023, 7, 1), Emotion: "Nice", Emoji: "🙂"},
		{Date: core.NewDate(2023, 7, 2), Emotion: "Nice", Emoji: "🙂"},
		{Date: core.NewDate(2023, 7, 3), Emotion: "Angry", Emoji: "😠"},
	}
	got := Recent(entries)
	if got != "Over the last 7 days, your most common mood has been Nice." {
		t.Fatalf("Recent() = %q", got)
	}
}

func TestRecentEmpty(t *testing.T) {
	if got := Recent(nil); got != RecentEmptyText {
		t.Fatalf("Recent(nil) = %q", got)
	}
}
