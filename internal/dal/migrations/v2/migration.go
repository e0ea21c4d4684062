package v2

import (
	"go.etcd.io/bbolt"
)

// MigrationV2 creates the participants bucket
type MigrationV2 struct{}

// Version returns the migration version
func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

// Description returns a human-readable description of the migration
func (m *MigrationV2) Description() string {
	return "Create participants bucket"
}

// Up performs the migration
func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("participants"))
		return err
	})
}

// New creates a new instance of MigrationV2
func New() *MigrationV2 {
	return &MigrationV2{}
}
