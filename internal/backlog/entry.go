package backlog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Entry is one backlog record. Field order matches the persisted CSV row:
// title, difficulty, description, timestamp.
type Entry struct {
	Title       string `json:"title"`
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// Validate checks that every field is individually valid. An entry that
// fails validation must never be persisted.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Difficulty, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&e.Description, validation.Required),
		validation.Field(&e.Timestamp, validation.Required, validation.By(checkTimestamp)),
	)
}

// Time parses the entry timestamp. Call Validate first; a zero time is
// returned for unparseable values.
func (e Entry) Time() time.Time {
	ts, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func checkTimestamp(value any) error {
	s, _ := value.(string)
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return errTimestampFormat
	}
	return nil
}

var errTimestampFormat = validation.NewError("validation_timestamp", "must be an ISO-8601 timestamp")
