package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// ReminderState tracks the follow-up question asked a fixed delay after the
// last end survey delivery. One state per chat.
type ReminderState struct {
	ChatID  int64     `json:"chat_id"`
	DueAt   time.Time `json:"due_at"`
	ArmedAt time.Time `json:"armed_at"`
	// Answered is set when the participant reacted to the question.
	Answered bool `json:"answered"`
	// Completed is set when the participant confirmed completion. No
	// further reminder is armed for a completed chat.
	Completed bool `json:"completed"`
}

func (s *BoltDB) GetReminderState(chatID int64) (ReminderState, bool, error) {
	var res ReminderState
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(remindersBucket))
		if b == nil {
			return nil
		}

		data := b.Get(i64tob(chatID))
		if data == nil {
			return nil
		}

		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllReminderStates() ([]ReminderState, error) {
	var res []ReminderState

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(remindersBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var state ReminderState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("unmarshal reminder state for key %s: %w", k, err)
			}
			res = append(res, state)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutReminderState(state ReminderState) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(remindersBucket))
		if b == nil {
			return errors.New("reminders bucket not found")
		}

		data, err := json.Marshal(&state)
		if err != nil {
			return fmt.Errorf("marshal reminder state for chatID=%d: %w", state.ChatID, err)
		}
		if err := b.Put(i64tob(state.ChatID), data); err != nil {
			return fmt.Errorf("put reminder state for chatID=%d: %w", state.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteReminderState(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return deleteReminderState(tx, chatID)
	})
}

func deleteReminderState(tx *bbolt.Tx, chatID int64) error {
	b := tx.Bucket([]byte(remindersBucket))
	if b == nil {
		return nil
	}
	if err := b.Delete(i64tob(chatID)); err != nil {
		return fmt.Errorf("delete reminder state for chatID=%d: %w", chatID, err)
	}
	return nil
}
