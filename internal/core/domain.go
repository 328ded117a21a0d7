package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date; the time-of-day portion is always midnight UTC.
	Date struct {
		time.Time
	}

	// Entry is one day's logged mood. At most one entry exists per calendar
	// date; writing to an occupied date replaces the previous values.
	Entry struct {
		Date    Date
		Emotion string
		Emoji   string
		Tags    string // optional, comma-separated by convention
		Notes   string // optional free text
	}
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrEmptyEmotion = errors.New("empty emotion")
	ErrEmptyEmoji   = errors.New("empty emoji")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (e Entry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Emotion) == "" {
		return ErrEmptyEmotion
	}
	if len(e.Emotion) > 50 {
		return errors.New("emotion too long (max 50 characters)")
	}
	if strings.TrimSpace(e.Emoji) == "" {
		return ErrEmptyEmoji
	}
	if len(e.Tags) > 200 {
		return errors.New("tags too long (max 200 characters)")
	}
	return nil
}

// MonthBounds returns the first and last calendar dates of a month.
func MonthBounds(year, month int) (Date, Date) {
	start := NewDate(year, month, 1)
	return start, NewDate(year, month, DaysInMonth(year, month))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
