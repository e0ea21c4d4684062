package testutil

import (
	"testing"
	"time"

	"github.com/Roma7-7-7/survey-bot/internal/dal"
)

// ParticipantBuilder provides fluent API for building test participants
type ParticipantBuilder struct {
	p dal.Participant
}

// NewParticipant creates a new participant builder with defaults
func NewParticipant(chatID int64) *ParticipantBuilder {
	return &ParticipantBuilder{
		p: dal.Participant{
			ChatID:       chatID,
			State:        dal.ParticipantSubscribed,
			SubscribedAt: time.Date(2026, time.April, 3, 14, 22, 0, 0, time.UTC),
			Condition:    dal.ConditionUnassigned,
		},
	}
}

// WithState sets the participant state
func (b *ParticipantBuilder) WithState(state dal.ParticipantState) *ParticipantBuilder {
	b.p.State = state
	return b
}

// WithSubscribedAt sets the subscription moment
func (b *ParticipantBuilder) WithSubscribedAt(t time.Time) *ParticipantBuilder {
	b.p.SubscribedAt = t
	return b
}

// WithWakeupTime sets the wake-up time
func (b *ParticipantBuilder) WithWakeupTime(t string) *ParticipantBuilder {
	b.p.WakeupTime = t
	return b
}

// WithCondition sets the study condition
func (b *ParticipantBuilder) WithCondition(c int) *ParticipantBuilder {
	b.p.Condition = c
	return b
}

// WithCreatedAt sets the creation time
func (b *ParticipantBuilder) WithCreatedAt(t time.Time) *ParticipantBuilder {
	b.p.CreatedAt = t
	return b
}

// WithUpdatedAt sets the update time
func (b *ParticipantBuilder) WithUpdatedAt(t time.Time) *ParticipantBuilder {
	b.p.UpdatedAt = t
	return b
}

// Build returns the constructed participant
func (b *ParticipantBuilder) Build() dal.Participant {
	return b.p
}

// BuildMatcher returns a gomock matcher for the constructed participant that
// ignores the storage managed timestamps
func (b *ParticipantBuilder) BuildMatcher(t *testing.T) *ParticipantMatcher {
	return NewParticipantMatcher(t, b.Build())
}

// SentLinkBuilder provides fluent API for building test sent links
type SentLinkBuilder struct {
	l dal.SentLink
}

// NewSentLink creates a new sent link builder with defaults
func NewSentLink(chatID int64, category string, occurrence int) *SentLinkBuilder {
	return &SentLinkBuilder{
		l: dal.SentLink{
			ChatID:     chatID,
			Category:   category,
			Occurrence: occurrence,
			MessageID:  100 + occurrence,
			URL:        "https://survey.test/s1",
		},
	}
}

// WithMessageID sets the message ID
func (b *SentLinkBuilder) WithMessageID(id int) *SentLinkBuilder {
	b.l.MessageID = id
	return b
}

// WithURL sets the survey URL
func (b *SentLinkBuilder) WithURL(url string) *SentLinkBuilder {
	b.l.URL = url
	return b
}

// WithSentAt sets the sent at time
func (b *SentLinkBuilder) WithSentAt(t time.Time) *SentLinkBuilder {
	b.l.SentAt = t
	return b
}

// Build returns the constructed sent link
func (b *SentLinkBuilder) Build() dal.SentLink {
	return b.l
}

// BuildMatcher returns a gomock matcher for the constructed sent link that
// ignores the storage managed key and timestamp
func (b *SentLinkBuilder) BuildMatcher(t *testing.T) *SentLinkMatcher {
	return NewSentLinkMatcher(t, b.Build())
}

// ReminderStateBuilder provides fluent API for building test reminder states
type ReminderStateBuilder struct {
	state dal.ReminderState
}

// NewReminderState creates a new reminder state builder with defaults
func NewReminderState(chatID int64) *ReminderStateBuilder {
	return &ReminderStateBuilder{
		state: dal.ReminderState{
			ChatID:  chatID,
			DueAt:   time.Date(2026, time.April, 15, 13, 0, 0, 0, time.UTC),
			ArmedAt: time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

// WithDueAt sets the due time
func (b *ReminderStateBuilder) WithDueAt(t time.Time) *ReminderStateBuilder {
	b.state.DueAt = t
	return b
}

// WithArmedAt sets the armed time
func (b *ReminderStateBuilder) WithArmedAt(t time.Time) *ReminderStateBuilder {
	b.state.ArmedAt = t
	return b
}

// WithAnswered marks the reminder as answered
func (b *ReminderStateBuilder) WithAnswered(v bool) *ReminderStateBuilder {
	b.state.Answered = v
	return b
}

// WithCompleted marks the reminder as completed
func (b *ReminderStateBuilder) WithCompleted(v bool) *ReminderStateBuilder {
	b.state.Completed = v
	return b
}

// Build returns the constructed reminder state
func (b *ReminderStateBuilder) Build() dal.ReminderState {
	return b.state
}
