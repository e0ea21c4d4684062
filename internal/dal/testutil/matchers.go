package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/survey-bot/internal/dal"
)

type ParticipantMatcher struct {
	t    *testing.T
	want dal.Participant
}

func NewParticipantMatcher(t *testing.T, want dal.Participant) *ParticipantMatcher {
	return &ParticipantMatcher{
		t:    t,
		want: want,
	}
}

func (m ParticipantMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Participant)
	if !ok {
		m.t.Fatalf("ParticipantMatcher.Matches: expected dal.Participant, got %T", x)
		return false
	}

	m.want.CreatedAt = actual.CreatedAt
	m.want.UpdatedAt = actual.UpdatedAt
	return assert.Equal(m.t, m.want, actual)
}

func (m ParticipantMatcher) String() string {
	return "ParticipantMatcher.Matches"
}

type SentLinkMatcher struct {
	t    *testing.T
	want dal.SentLink
}

func NewSentLinkMatcher(t *testing.T, want dal.SentLink) *SentLinkMatcher {
	return &SentLinkMatcher{
		t:    t,
		want: want,
	}
}

func (m SentLinkMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.SentLink)
	if !ok {
		m.t.Fatalf("SentLinkMatcher.Matches: expected dal.SentLink, got %T", x)
		return false
	}

	m.want.Key = actual.Key
	m.want.SentAt = actual.SentAt
	return assert.Equal(m.t, m.want, actual)
}

func (m SentLinkMatcher) String() string {
	return "SentLinkMatcher.Matches"
}
