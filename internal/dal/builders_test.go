package dal

import (
	"time"
)

// ParticipantBuilder provides fluent API for building test participants
type ParticipantBuilder struct {
	p Participant
}

// NewParticipant creates a new participant builder with defaults
func NewParticipant(chatID int64) *ParticipantBuilder {
	return &ParticipantBuilder{
		p: Participant{
			ChatID:       chatID,
			State:        ParticipantSubscribed,
			SubscribedAt: time.Date(2026, time.April, 3, 14, 22, 0, 0, time.UTC),
			Condition:    ConditionUnassigned,
		},
	}
}

// WithState sets the participant state
func (b *ParticipantBuilder) WithState(state ParticipantState) *ParticipantBuilder {
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
func (b *ParticipantBuilder) Build() Participant {
	return b.p
}

// SentLinkBuilder provides fluent API for building test sent links
type SentLinkBuilder struct {
	l SentLink
}

// NewSentLink creates a new sent link builder with defaults
func NewSentLink(chatID int64, category string, occurrence int) *SentLinkBuilder {
	return &SentLinkBuilder{
		l: SentLink{
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

// WithKey sets the delivery key
func (b *SentLinkBuilder) WithKey(key string) *SentLinkBuilder {
	b.l.Key = key
	return b
}

// WithSentAt sets the sent at time
func (b *SentLinkBuilder) WithSentAt(t time.Time) *SentLinkBuilder {
	b.l.SentAt = t
	return b
}

// Build returns the constructed sent link
func (b *SentLinkBuilder) Build() SentLink {
	return b.l
}

// ReminderStateBuilder provides fluent API for building test reminder states
type ReminderStateBuilder struct {
	state ReminderState
}

// NewReminderState creates a new reminder state builder with defaults
func NewReminderState(chatID int64) *ReminderStateBuilder {
	return &ReminderStateBuilder{
		state: ReminderState{
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
func (b *ReminderStateBuilder) Build() ReminderState {
	return b.state
}
