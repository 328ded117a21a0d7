package core

import (
	"math"
	"sort"
)

// MoodCounts is a frequency distribution of emotion labels over a set of
// entries. It remembers the order in which labels were first seen, so callers
// can choose between first-seen presentation (reports) and alphabetical
// presentation (charts).
type MoodCounts struct {
	counts map[string]int
	order  []string
}

// Frequency counts emotion occurrences across entries in input order.
func Frequency(entries []Entry) *MoodCounts {
	mc := &MoodCounts{counts: make(map[string]int)}
	for _, e := range entries {
		if _, seen := mc.counts[e.Emotion]; !seen {
			mc.order = append(mc.order, e.Emotion)
		}
		mc.counts[e.Emotion]++
	}
	return mc
}

// Total returns the number of counted entries.
func (mc *MoodCounts) Total() int {
	n := 0
	for _, c := range mc.counts {
		n += c
	}
	return n
}

// Count returns the occurrences of a single label.
func (mc *MoodCounts) Count(label string) int {
	return mc.counts[label]
}

// Labels returns distinct labels in first-seen order.
func (mc *MoodCounts) Labels() []string {
	return append([]string(nil), mc.order...)
}

// SortedLabels returns distinct labels alphabetically, the deterministic
// ordering used for chart output.
func (mc *MoodCounts) SortedLabels() []string {
	labels := mc.Labels()
	sort.Strings(labels)
	return labels
}

// MostCommon returns the label with the highest count, or false when no
// entries were counted. Ties resolve to the label seen first in the input.
func (mc *MoodCounts) MostCommon() (string, bool) {
	best := ""
	bestCount := 0
	for _, label := range mc.order {
		if mc.counts[label] > bestCount {
			best = label
			bestCount = mc.counts[label]
		}
	}
	return best, bestCount > 0
}

// DailySentimentSeries maps entries onto one slot per day of the given month.
// A nil slot means no entry exists for that day; it is distinct from a real
// average of 0. Days holding several entries average their scores (the store
// allows at most one entry per day, but the contract supports more), rounded
// to two decimals.
func DailySentimentSeries(entries []Entry, year, month int) []*float64 {
	numDays := DaysInMonth(year, month)
	sums := make([]int, numDays+1)
	counts := make([]int, numDays+1)
	for _, e := range entries {
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}
		day := e.Date.Day()
		sums[day] += SentimentScore(e.Emotion)
		counts[day]++
	}

	series := make([]*float64, numDays)
	for day := 1; day <= numDays; day++ {
		if counts[day] == 0 {
			continue
		}
		avg := math.Round(float64(sums[day])/float64(counts[day])*100) / 100
		series[day-1] = &avg
	}
	return series
}
