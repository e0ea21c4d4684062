package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	participantsBucket    = "participants"
	firedDeliveriesBucket = "fired_deliveries"
	sentLinksBucket       = "sent_links"
	remindersBucket       = "reminders"
)

var appBuckets = []string{
	participantsBucket,
	firedDeliveriesBucket,
	sentLinksBucket,
	remindersBucket,
}

type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBoltDB wraps an opened bolt database. Migrations must have been applied
// first: the wrapper refuses a database that misses application buckets.
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range appBuckets {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %s not found, run migrations first", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltDB{db: db, now: time.Now}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
