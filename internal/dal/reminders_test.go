package dal

func (s *BoltDBTestSuite) TestBoltDB_PutReminderState() {
	_, ok, err := s.store.GetReminderState(1)
	s.Require().NoError(err, "error getting reminder state")
	s.Require().False(ok)

	s.Require().NoError(s.store.PutReminderState(NewReminderState(1).Build()))

	actual, ok, err := s.store.GetReminderState(1)
	s.Require().NoError(err, "error getting reminder state")
	if s.True(ok) {
		s.Equal(NewReminderState(1).Build(), actual)
	}

	// put replaces the whole state
	s.Require().NoError(s.store.PutReminderState(NewReminderState(1).WithAnswered(true).WithCompleted(true).Build()))
	actual, ok, err = s.store.GetReminderState(1)
	s.Require().NoError(err, "error getting reminder state")
	if s.True(ok) {
		s.True(actual.Answered)
		s.True(actual.Completed)
	}
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllReminderStates() {
	states, err := s.store.GetAllReminderStates()
	s.Require().NoError(err)
	s.Empty(states)

	s.Require().NoError(s.store.PutReminderState(NewReminderState(1).Build()))
	s.Require().NoError(s.store.PutReminderState(NewReminderState(2).WithAnswered(true).Build()))

	states, err = s.store.GetAllReminderStates()
	s.Require().NoError(err)
	s.Len(states, 2)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteReminderState() {
	s.Require().NoError(s.store.PutReminderState(NewReminderState(1).Build()))
	s.Require().NoError(s.store.DeleteReminderState(1))

	_, ok, err := s.store.GetReminderState(1)
	s.Require().NoError(err)
	s.False(ok)

	// deleting a missing state is a no-op
	s.Require().NoError(s.store.DeleteReminderState(7))
}
