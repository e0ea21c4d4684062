package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// FiredDelivery records that one scheduled delivery was handed to the
// transport. The record is written before the send, so a crash between the
// two leaves the delivery marked and it is never sent twice.
type FiredDelivery struct {
	Key        string    `json:"key"`
	ChatID     int64     `json:"chat_id"`
	Category   string    `json:"category"`
	Occurrence int       `json:"occurrence"`
	FiredAt    time.Time `json:"fired_at"`
}

// BuildDeliveryKey builds the stable identity of one scheduled delivery.
func BuildDeliveryKey(chatID int64, category string, occurrence int) string {
	return fmt.Sprintf("%d_%s_%d", chatID, category, occurrence)
}

// BuildChatPrefix builds the key prefix shared by all delivery keys of a chat.
func BuildChatPrefix(chatID int64) string {
	return fmt.Sprintf("%d_", chatID)
}

func (s *BoltDB) CountFiredDeliveries() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(firedDeliveriesBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

// MarkDeliveryFired records a delivery as handed to the transport.
func (s *BoltDB) MarkDeliveryFired(chatID int64, category string, occurrence int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(firedDeliveriesBucket))
		if b == nil {
			return errors.New("fired deliveries bucket not found")
		}

		fired := FiredDelivery{
			Key:        BuildDeliveryKey(chatID, category, occurrence),
			ChatID:     chatID,
			Category:   category,
			Occurrence: occurrence,
			FiredAt:    s.now(),
		}
		data, err := json.Marshal(&fired)
		if err != nil {
			return fmt.Errorf("marshal fired delivery %s: %w", fired.Key, err)
		}
		if err := b.Put([]byte(fired.Key), data); err != nil {
			return fmt.Errorf("put fired delivery %s: %w", fired.Key, err)
		}

		return nil
	})
}

// IsDeliveryFired reports whether a delivery was already handed to the transport.
func (s *BoltDB) IsDeliveryFired(chatID int64, category string, occurrence int) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(firedDeliveriesBucket))
		if b == nil {
			return nil
		}
		if b.Get([]byte(BuildDeliveryKey(chatID, category, occurrence))) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

// GetFiredDeliveryKeys returns the keys of every fired delivery of a chat.
func (s *BoltDB) GetFiredDeliveryKeys(chatID int64) (map[string]struct{}, error) {
	res := make(map[string]struct{})

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(firedDeliveriesBucket))
		if b == nil {
			return nil
		}

		prefix := BuildChatPrefix(chatID)
		c := b.Cursor()
		for k, _ := c.Seek([]byte(prefix)); k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == prefix; k, _ = c.Next() {
			res[string(k)] = struct{}{}
		}

		return nil
	})

	return res, err
}

// CleanupFiredDeliveries removes fired delivery records older than the passed TTL.
func (s *BoltDB) CleanupFiredDeliveries(olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(firedDeliveriesBucket))
		return b.ForEach(func(k, v []byte) error {
			var fired FiredDelivery
			if err := json.Unmarshal(v, &fired); err != nil {
				return fmt.Errorf("unmarshal fired delivery for key %s: %w", k, err)
			}
			if fired.FiredAt.IsZero() {
				return nil
			}
			if fired.FiredAt.After(s.now().Add(-olderThan)) {
				return nil
			}
			return b.Delete(k)
		})
	})
}

func (s *BoltDB) deleteFiredDeliveries(tx *bbolt.Tx, chatID int64) error {
	b := tx.Bucket([]byte(firedDeliveriesBucket))

	prefix := BuildChatPrefix(chatID)
	c := b.Cursor()

	for k, _ := c.Seek([]byte(prefix)); k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == prefix; k, _ = c.Next() {
		if err := b.Delete(k); err != nil {
			return fmt.Errorf("delete fired delivery for key %s: %w", k, err)
		}
	}

	return nil
}
