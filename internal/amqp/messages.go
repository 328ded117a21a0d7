package amqp

import (
	"encoding/json"
	"time"
)

// EntryLoggedMessage notifies consumers that a mood entry was inserted or
// replaced. It carries only the date key and emotion; consumers needing the
// full entry fetch it from the journal.
type EntryLoggedMessage struct {
	Date      string    `json:"date"` // YYYY-MM-DD
	Emotion   string    `json:"emotion"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntryLoggedMessage(date, emotion string) *EntryLoggedMessage {
	return &EntryLoggedMessage{
		Date:      date,
		Emotion:   emotion,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *EntryLoggedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EntryLoggedMessageFromJSON creates a message from JSON bytes.
func EntryLoggedMessageFromJSON(data []byte) (*EntryLoggedMessage, error) {
	var msg EntryLoggedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
