package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountParticipants() {
	count, err := s.store.CountParticipants()
	s.Require().NoError(err, "error counting participants")
	s.Require().Equal(0, count)

	err = s.store.PutParticipant(NewParticipant(1).Build())
	s.Require().NoError(err, "error putting participant")
	count, err = s.store.CountParticipants()
	s.Require().NoError(err, "error counting participants")
	s.Require().Equal(1, count)

	err = s.store.PutParticipant(NewParticipant(2).Build())
	s.Require().NoError(err, "error putting participant")
	count, err = s.store.CountParticipants()
	s.Require().NoError(err, "error counting participants")
	s.Require().Equal(2, count)

	err = s.store.PutParticipant(NewParticipant(1).Build()) // same chat ID
	s.Require().NoError(err, "error putting participant")
	count, err = s.store.CountParticipants()
	s.Require().NoError(err, "error counting participants")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetParticipant() {
	now := time.Date(2026, time.April, 3, 14, 22, 0, 0, time.UTC)
	s.now.Set(now)
	s.Require().NoError(s.store.PutParticipant(NewParticipant(1).WithWakeupTime("07:30").WithCondition(1).Build()))

	actual, ok, err := s.store.GetParticipant(1)
	s.Require().NoError(err, "error getting participant")
	if s.True(ok) {
		expected := NewParticipant(1).
			WithWakeupTime("07:30").
			WithCondition(1).
			WithCreatedAt(now).
			WithUpdatedAt(now).
			Build()
		s.Equal(expected, actual)
	}

	_, ok, err = s.store.GetParticipant(2)
	s.Require().NoError(err, "error getting participant")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllParticipants() {
	now := time.Date(2026, time.April, 3, 14, 22, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutParticipant(NewParticipant(1).Build()))
	s.Require().NoError(s.store.PutParticipant(NewParticipant(2).Build()))
	s.Require().NoError(s.store.PutParticipant(NewParticipant(3).Build()))

	actual, err := s.store.GetAllParticipants()
	s.Require().NoError(err, "error getting all participants")

	if s.Len(actual, 3) {
		expected := []Participant{
			NewParticipant(1).WithCreatedAt(now).WithUpdatedAt(now).Build(),
			NewParticipant(2).WithCreatedAt(now).WithUpdatedAt(now).Build(),
			NewParticipant(3).WithCreatedAt(now).WithUpdatedAt(now).Build(),
		}
		s.Equal(expected, actual)
	}
}

func (s *BoltDBTestSuite) TestBoltDB_PutParticipant() {
	createdAt := time.Date(2026, time.April, 1, 18, 19, 20, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutParticipant(NewParticipant(1).WithState(ParticipantAwaitingWakeup).Build()))
	s.Equal(
		NewParticipant(1).WithState(ParticipantAwaitingWakeup).WithCreatedAt(createdAt).WithUpdatedAt(createdAt).Build(),
		s.mustGetParticipant(1),
	)

	// make sure created at is not overridden while updated at moves on
	updatedAt := createdAt.Add(24 * time.Hour)
	s.now.Set(updatedAt)
	s.Require().NoError(s.store.PutParticipant(NewParticipant(1).WithState(ParticipantSubscribed).WithWakeupTime("07:30").Build()))
	s.Equal(
		NewParticipant(1).WithWakeupTime("07:30").WithCreatedAt(createdAt).WithUpdatedAt(updatedAt).Build(),
		s.mustGetParticipant(1),
	)
}

func (s *BoltDBTestSuite) TestBoltDB_PurgeParticipant() {
	s.now.Set(time.Date(2026, time.April, 3, 14, 22, 0, 0, time.UTC))

	s.Require().NoError(s.store.PutParticipant(NewParticipant(1).Build()))
	s.Require().NoError(s.store.PutParticipant(NewParticipant(2).Build()))
	s.Require().NoError(s.store.MarkDeliveryFired(1, "daily", 0))
	s.Require().NoError(s.store.MarkDeliveryFired(2, "daily", 0))
	s.Require().NoError(s.store.PutSentLink(NewSentLink(1, "daily", 0).Build()))
	s.Require().NoError(s.store.PutReminderState(NewReminderState(1).Build()))

	s.Require().NoError(s.store.PurgeParticipant(1))

	_, ok, err := s.store.GetParticipant(1)
	s.Require().NoError(err)
	s.False(ok, "participant must be gone")

	fired, err := s.store.GetFiredDeliveryKeys(1)
	s.Require().NoError(err)
	s.Empty(fired, "fired deliveries must be gone")

	links, err := s.store.GetSentLinks(1)
	s.Require().NoError(err)
	s.Empty(links, "sent links must be gone")

	_, ok, err = s.store.GetReminderState(1)
	s.Require().NoError(err)
	s.False(ok, "reminder state must be gone")

	// the other chat is untouched
	_, ok, err = s.store.GetParticipant(2)
	s.Require().NoError(err)
	s.True(ok)
	fired, err = s.store.GetFiredDeliveryKeys(2)
	s.Require().NoError(err)
	s.Len(fired, 1)
}

func (s *BoltDBTestSuite) mustGetParticipant(chatID int64) Participant {
	res, ok, err := s.store.GetParticipant(chatID)
	s.Require().NoError(err, "error getting participant")
	s.Require().True(ok)
	return res
}
