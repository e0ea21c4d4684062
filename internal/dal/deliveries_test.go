package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBuildDeliveryKey() {
	s.Equal("123_daily_4", BuildDeliveryKey(123, "daily", 4))
	s.Equal("123_", BuildChatPrefix(123))
}

func (s *BoltDBTestSuite) TestBoltDB_MarkDeliveryFired() {
	ok, err := s.store.IsDeliveryFired(1, "daily", 0)
	s.Require().NoError(err, "error checking delivery")
	s.Require().False(ok)

	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 0))

	ok, err = s.store.IsDeliveryFired(1, "daily", 0)
	s.Require().NoError(err, "error checking delivery")
	s.Require().True(ok)

	// marking again is a no-op
	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 0))
	count, err := s.store.CountFiredDeliveries()
	s.Require().NoError(err)
	s.Equal(1, count)

	ok, err = s.store.IsDeliveryFired(1, "daily", 1)
	s.Require().NoError(err, "error checking delivery")
	s.False(ok, "other occurrence must not be fired")
	ok, err = s.store.IsDeliveryFired(1, "end", 0)
	s.Require().NoError(err, "error checking delivery")
	s.False(ok, "other category must not be fired")
}

func (s *BoltDBTestSuite) TestBoltDB_GetFiredDeliveryKeys() {
	keys, err := s.store.GetFiredDeliveryKeys(1)
	s.Require().NoError(err)
	s.Empty(keys)

	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 0))
	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 3))
	s.Require().NoError(s.store.MarkDeliveryFired(1, "end", 0))
	s.Require().NoError(s.store.MarkDeliveryFired(12, "daily", 0)) // shares a digit prefix with chat 1

	keys, err = s.store.GetFiredDeliveryKeys(1)
	s.Require().NoError(err)
	s.Equal(map[string]struct{}{
		"1_daily_0": {},
		"1_daily_3": {},
		"1_end_0":   {},
	}, keys)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupFiredDeliveries() {
	now := time.Date(2026, time.April, 20, 12, 0, 0, 0, time.UTC)

	s.now.Set(now.Add(-72 * time.Hour))
	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 0))
	s.now.Set(now.Add(-time.Hour))
	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 1))

	s.now.Set(now)
	s.Require().NoError(s.store.CleanupFiredDeliveries(48*time.Hour))

	ok, err := s.store.IsDeliveryFired(1, "daily", 0)
	s.Require().NoError(err)
	s.False(ok, "old record must be cleaned up")
	ok, err = s.store.IsDeliveryFired(1, "daily", 1)
	s.Require().NoError(err)
	s.True(ok, "fresh record must stay")

	// zero TTL disables cleanup
	s.Require().NoError(s.store.CleanupFiredDeliveries(0))
	ok, err = s.store.IsDeliveryFired(1, "daily", 1)
	s.Require().NoError(err)
	s.True(ok)
}
