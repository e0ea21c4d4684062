package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_PutSentLink() {
	sentAt := time.Date(2026, time.April, 14, 10, 0, 0, 0, time.UTC)
	s.now.Set(sentAt)

	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 2).WithMessageID(500).Build()))

	actual, ok, err := s.store.GetSentLink(1, "daily", 2)
	s.Require().NoError(err, "error getting sent link")
	if s.True(ok) {
		expected := NewSentLink(1, "daily", 2).
			WithMessageID(500).
			WithKey("1_daily_2").
			WithSentAt(sentAt).
			Build()
		s.Equal(expected, actual)
	}

	// putting the same delivery again replaces the message and refreshes SentAt
	resentAt := sentAt.Add(2 * time.Hour)
	s.now.Set(resentAt)
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 2).WithMessageID(501).Build()))

	actual, ok, err = s.store.GetSentLink(1, "daily", 2)
	s.Require().NoError(err, "error getting sent link")
	if s.True(ok) {
		s.Equal(501, actual.MessageID)
		s.Equal(resentAt, actual.SentAt)
	}
}

func (s *BoltDBTestSuite) TestBoltDB_GetSentLinks() {
	links, err := s.store.GetSentLinks(1)
	s.Require().NoError(err)
	s.Empty(links)

	s.now.Set(time.Date(2026, time.April, 14, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 0).Build()))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "end", 0).Build()))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(12, "daily", 0).Build()))

	links, err = s.store.GetSentLinks(1)
	s.Require().NoError(err)
	s.Len(links, 2)
	for _, l := range links {
		s.Equal(int64(1), l.ChatID)
	}

	all, err := s.store.GetAllSentLinks()
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteSentLink() {
	s.now.Set(time.Date(2026, time.April, 14, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 0).Build()))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 1).Build()))

	s.Require().NoError(s.store.DeleteSentLink(1, "daily", 0))

	_, ok, err := s.store.GetSentLink(1, "daily", 0)
	s.Require().NoError(err)
	s.False(ok)
	_, ok, err = s.store.GetSentLink(1, "daily", 1)
	s.Require().NoError(err)
	s.True(ok)

	// deleting a missing link is a no-op
	s.Require().NoError(s.store.DeleteSentLink(1, "daily", 7))
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupSentLinks() {
	now := time.Date(2026, time.April, 20, 12, 0, 0, 0, time.UTC)

	s.now.Set(now.Add(-72 * time.Hour))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 0).Build()))
	s.now.Set(now.Add(-time.Hour))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 1).Build()))

	s.now.Set(now)
	s.Require().NoError(s.store.CleanupSentLinks(48*time.Hour))

	_, ok, err := s.store.GetSentLink(1, "daily", 0)
	s.Require().NoError(err)
	s.False(ok, "old link must be cleaned up")
	_, ok, err = s.store.GetSentLink(1, "daily", 1)
	s.Require().NoError(err)
	s.True(ok, "fresh link must stay")
}
