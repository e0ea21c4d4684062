package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// SentLink is a survey link message that is still present in a chat. It is
// kept so the message can be retracted later and so the latest link can be
// sent again on request.
type SentLink struct {
	Key        string    `json:"key"`
	ChatID     int64     `json:"chat_id"`
	Category   string    `json:"category"`
	Occurrence int       `json:"occurrence"`
	MessageID  int       `json:"message_id"`
	URL        string    `json:"url"`
	SentAt     time.Time `json:"sent_at"`
}

// PutSentLink stores a sent link. The key is derived from chat, category and
// occurrence, and SentAt is set to the current moment, so putting the same
// delivery again records a fresh copy of the message.
func (s *BoltDB) PutSentLink(l SentLink) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		if b == nil {
			return errors.New("sent links bucket not found")
		}

		l.Key = BuildDeliveryKey(l.ChatID, l.Category, l.Occurrence)
		l.SentAt = s.now()

		data, err := json.Marshal(&l)
		if err != nil {
			return fmt.Errorf("marshal sent link %s: %w", l.Key, err)
		}
		if err := b.Put([]byte(l.Key), data); err != nil {
			return fmt.Errorf("put sent link %s: %w", l.Key, err)
		}

		return nil
	})
}

func (s *BoltDB) GetSentLink(chatID int64, category string, occurrence int) (SentLink, bool, error) {
	var res SentLink
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		if b == nil {
			return nil
		}

		data := b.Get([]byte(BuildDeliveryKey(chatID, category, occurrence)))
		if data == nil {
			return nil
		}

		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// GetSentLinks returns every link still present in one chat.
func (s *BoltDB) GetSentLinks(chatID int64) ([]SentLink, error) {
	var res []SentLink

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		if b == nil {
			return nil
		}

		prefix := BuildChatPrefix(chatID)
		c := b.Cursor()
		for k, v := c.Seek([]byte(prefix)); k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == prefix; k, v = c.Next() {
			var l SentLink
			if err := json.Unmarshal(v, &l); err != nil {
				return fmt.Errorf("unmarshal sent link for key %s: %w", k, err)
			}
			res = append(res, l)
		}

		return nil
	})

	return res, err
}

// GetAllSentLinks returns every link still present in any chat.
func (s *BoltDB) GetAllSentLinks() ([]SentLink, error) {
	var res []SentLink

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var l SentLink
			if err := json.Unmarshal(v, &l); err != nil {
				return fmt.Errorf("unmarshal sent link for key %s: %w", k, err)
			}
			res = append(res, l)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) DeleteSentLink(chatID int64, category string, occurrence int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		if b == nil {
			return nil
		}
		key := BuildDeliveryKey(chatID, category, occurrence)
		if err := b.Delete([]byte(key)); err != nil {
			return fmt.Errorf("delete sent link %s: %w", key, err)
		}
		return nil
	})
}

// CleanupSentLinks removes sent link records older than the passed TTL.
func (s *BoltDB) CleanupSentLinks(olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sentLinksBucket))
		return b.ForEach(func(k, v []byte) error {
			var l SentLink
			if err := json.Unmarshal(v, &l); err != nil {
				return fmt.Errorf("unmarshal sent link for key %s: %w", k, err)
			}
			if l.SentAt.IsZero() {
				return nil
			}
			if l.SentAt.After(s.now().Add(-olderThan)) {
				return nil
			}
			return b.Delete(k)
		})
	})
}

func (s *BoltDB) deleteSentLinks(tx *bbolt.Tx, chatID int64) error {
	b := tx.Bucket([]byte(sentLinksBucket))

	prefix := BuildChatPrefix(chatID)
	c := b.Cursor()

	for k, _ := c.Seek([]byte(prefix)); k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == prefix; k, _ = c.Next() {
		if err := b.Delete(k); err != nil {
			return fmt.Errorf("delete sent link for key %s: %w", k, err)
		}
	}

	return nil
}
