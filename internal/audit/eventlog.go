// Package audit keeps an append-only log of mutating operations in the
// same key/value medium as the record collections.
package audit

import (
	"encoding/json"
	"time"

	"github.com/quizbox/quizbox/internal/kvstore"
)

const EventsKey = "quiz_events"

const (
	EventUserRegistered   = "user_registered"
	EventAttemptSubmitted = "attempt_submitted"
	EventQuizSaved        = "quiz_saved"
	EventQuizDeleted      = "quiz_deleted"
)

type Event struct {
	Type      string `json:"type"`
	Key       string `json:"key"`  // natural key: record id
	DataJSON  string `json:"data"` // JSON payload, may be empty
	CreatedAt int64  `json:"createdAt"`
}

type Log struct {
	store kvstore.Store
	now   func() time.Time
}

func NewLog(s kvstore.Store) *Log {
	return &Log{store: s, now: time.Now}
}

// Append records one event. The log is read-modify-write like every
// other collection, so it shares the single-writer assumption.
func (l *Log) Append(typ, key string, payload any) error {
	var data string
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		data = string(buf)
	}
	events, err := kvstore.ReadJSON[Event](l.store, EventsKey)
	if err != nil {
		return err
	}
	events = append(events, Event{
		Type:      typ,
		Key:       key,
		DataJSON:  data,
		CreatedAt: l.now().UnixMilli(),
	})
	return kvstore.WriteJSON(l.store, EventsKey, events)
}

// Events returns the full log, oldest first.
func (l *Log) Events() ([]Event, error) {
	return kvstore.ReadJSON[Event](l.store, EventsKey)
}
