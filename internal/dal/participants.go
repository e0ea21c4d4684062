package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type ParticipantState string

const (
	// ParticipantAwaitingWakeup waits for the participant to reply with a wake-up time.
	ParticipantAwaitingWakeup ParticipantState = "awaiting_wakeup"
	// ParticipantAwaitingCondition waits for the participant to reply with a group number.
	ParticipantAwaitingCondition ParticipantState = "awaiting_condition"
	ParticipantSubscribed        ParticipantState = "subscribed"
	ParticipantUnsubscribed      ParticipantState = "unsubscribed"
)

// ConditionUnassigned marks a participant without a study condition yet.
const ConditionUnassigned = -1

type Participant struct {
	ChatID int64            `json:"chat_id"`
	State  ParticipantState `json:"state"`
	// SubscribedAt is the moment the subscribe command was accepted. Day
	// offsets of the delivery schedule count from this moment.
	SubscribedAt time.Time `json:"subscribed_at"`
	// WakeupTime is the participant's usual wake-up time in "HH:MM" form,
	// empty when the study does not collect one.
	WakeupTime string `json:"wakeup_time,omitempty"`
	// Condition is the zero based study condition, ConditionUnassigned
	// until assigned or self-reported.
	Condition int       `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Participant) IsSubscribed() bool {
	return p.State == ParticipantSubscribed
}

func (s *BoltDB) CountParticipants() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(participantsBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetParticipant(chatID int64) (Participant, bool, error) {
	var res Participant
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(participantsBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllParticipants() ([]Participant, error) {
	var res []Participant

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(participantsBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var p Participant
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("unmarshal participant: %w", err)
			}
			res = append(res, p)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutParticipant(p Participant) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(participantsBucket))

		existing, exists, err := s.GetParticipant(p.ChatID)
		if err != nil {
			return fmt.Errorf("get existing participant: %w", err)
		}

		if !exists {
			p.CreatedAt = s.now()
		} else {
			// make sure we do not override created at
			p.CreatedAt = existing.CreatedAt
		}
		p.UpdatedAt = s.now()

		id := i64tob(p.ChatID)
		data, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("marshal participant for chatID=%d: %w", p.ChatID, err)
		}
		if err := b.Put(id, data); err != nil {
			return fmt.Errorf("put participant for chatID=%d: %w", p.ChatID, err)
		}

		return nil
	})

	return err
}

// PurgeParticipant removes every trace of a chat in a single transaction: the
// participant record, fired deliveries, sent links and the reminder state.
// Used when a chat becomes unreachable for good.
func (s *BoltDB) PurgeParticipant(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(participantsBucket))
		if err := b.Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete participant with chatID=%d: %w", chatID, err)
		}
		if err := s.deleteFiredDeliveries(tx, chatID); err != nil {
			return err
		}
		if err := s.deleteSentLinks(tx, chatID); err != nil {
			return err
		}
		if err := deleteReminderState(tx, chatID); err != nil {
			return err
		}
		return nil
	})
}
