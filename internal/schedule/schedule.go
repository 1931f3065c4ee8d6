// Package schedule derives task activity flags from daily time windows.
//
// StartHour and EndHour are recurring time-of-day values, not absolute
// instants, so every comparison is made against the clock component of
// the current time only.
package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TimeOfDay is a clock position within a day, measured from midnight.
// It serializes as "HH:MM:SS" both in JSON and in BSON.
type TimeOfDay time.Duration

func Parse(s string) (TimeOfDay, error) {
	var h, m, sec int
	_, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second), nil
}

// At extracts the time-of-day component of t.
func At(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d",
		int(d.Hours()),
		int(d.Minutes())%60,
		int(d.Seconds())%60)
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.String())
}

func (t *TimeOfDay) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(bt, data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Flags is the derived activity state stored on a task.
type Flags struct {
	IsActive   bool
	HasExpired bool
}

// Evaluate computes the flags a task must carry after a create or an
// update at the given moment. Once the end hour has passed the task is
// expired and inactive regardless of what the caller submitted. A create
// inside the window starts active; an update inside the window preserves
// the stored flags, so an expired task is never resurrected.
func Evaluate(now time.Time, end *TimeOfDay, prev Flags, isCreate bool) Flags {
	if end != nil && At(now).After(*end) {
		return Flags{IsActive: false, HasExpired: true}
	}
	if isCreate {
		return Flags{IsActive: true, HasExpired: false}
	}
	return prev
}
