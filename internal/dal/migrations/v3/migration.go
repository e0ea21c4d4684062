package v3

import (
	"go.etcd.io/bbolt"
)

// MigrationV3 creates the delivery tracking buckets
type MigrationV3 struct{}

// Version returns the migration version
func (m *MigrationV3) Version() int {
	return 3 //nolint:mnd // version 3
}

// Description returns a human-readable description of the migration
func (m *MigrationV3) Description() string {
	return "Create fired_deliveries, sent_links and reminders buckets"
}

// Up performs the migration
func (m *MigrationV3) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{"fired_deliveries", "sent_links", "reminders"} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// New creates a new instance of MigrationV3
func New() *MigrationV3 {
	return &MigrationV3{}
}
