package study

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

type CategoryID string

const (
	CategoryStart CategoryID = "start"
	CategoryDaily CategoryID = "daily"
	CategoryEnd   CategoryID = "end"
)

// Categories returns all category IDs in delivery order.
func Categories() []CategoryID {
	return []CategoryID{CategoryStart, CategoryDaily, CategoryEnd}
}

type VisibilityRule string

const (
	// VisibilityNone leaves sent links in the chat permanently.
	VisibilityNone VisibilityRule = "none"
	// VisibilityFixedDelay retracts a link a fixed delay after it was sent.
	VisibilityFixedDelay VisibilityRule = "fixed_delay"
	// VisibilityOnNext retracts a link when the next link of the same category is sent.
	VisibilityOnNext VisibilityRule = "on_next"
	// VisibilityAtDeadline retracts a link at the subscription deadline.
	VisibilityAtDeadline VisibilityRule = "at_deadline"
)

type Distribution string

const (
	DistributionFirst   Distribution = ""
	DistributionDay     Distribution = "day"
	DistributionSlot    Distribution = "slot"
	DistributionRunning Distribution = "running"
	DistributionRandom  Distribution = "random"
)

// Config is the immutable study configuration, loaded once at startup.
type Config struct {
	StudyName            string
	Location             *time.Location
	SubscriptionStart    time.Time
	SubscriptionDeadline time.Time
	Conditions           int
	ConditionSelfReport  bool
	SurveyCommandEnabled bool
	EndReminderDelay     time.Duration

	Start Category
	Daily Category
	End   Category

	texts map[TextKey]string
}

// Category holds the resolved scheduling and lifecycle rules for one link category.
type Category struct {
	ID CategoryID

	// Day sources: fixed calendar dates (midnight in the study location)
	// or offsets in days from the subscription day. At most one is set.
	Dates      []time.Time
	DayOffsets []int

	// Time sources: per-day rows of times, or wake-up derived times.
	// At most one is set.
	TimeRows      [][]TimeOfDay
	SurveysPerDay int
	WakeupDelay   time.Duration
	BetweenDelay  time.Duration

	Jitter time.Duration

	Visibility  VisibilityRule
	DeleteAfter time.Duration

	URLs         [][]string
	Distribution Distribution
}

// Enabled reports whether the category delivers anything at all.
func (c Category) Enabled() bool {
	return len(c.URLs) > 0
}

// UsesWakeup reports whether delivery times derive from the participant's wake-up time.
func (c Category) UsesWakeup() bool {
	return c.SurveysPerDay > 0
}

// AtSubscribe reports whether the category has no day/time sources and delivers
// its single occurrence at the moment the participant completes subscription.
func (c Category) AtSubscribe() bool {
	return c.Enabled() && len(c.Dates) == 0 && len(c.DayOffsets) == 0 && len(c.TimeRows) == 0 && c.SurveysPerDay == 0
}

// Category returns the category with the given ID.
func (c *Config) Category(id CategoryID) Category {
	switch id {
	case CategoryStart:
		return c.Start
	case CategoryDaily:
		return c.Daily
	case CategoryEnd:
		return c.End
	default:
		return Category{}
	}
}

// WakeupTimeRequired reports whether any enabled category derives times from
// the participant's wake-up time.
func (c *Config) WakeupTimeRequired() bool {
	for _, id := range Categories() {
		if cat := c.Category(id); cat.Enabled() && cat.UsesWakeup() {
			return true
		}
	}
	return false
}

// ConfigurationError describes a single invalid or unrecognized configuration entry.
// It is fatal: the process must not start with a partially valid study configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("study configuration %s: %s", e.Field, e.Reason)
}

func confErrf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// fileConfig mirrors the JSON shape of the study configuration file.
type fileConfig struct {
	StudyName            string            `json:"study_name"`
	Timezone             string            `json:"timezone"`
	SubscriptionStart    string            `json:"subscription_start"`
	SubscriptionDeadline string            `json:"subscription_deadline"`
	Conditions           int               `json:"conditions"`
	ConditionSelfReport  bool              `json:"condition_self_report"`
	SurveyCommandEnabled bool              `json:"survey_command_enabled"`
	EndReminderHours     int               `json:"end_reminder_hours"`
	Categories           fileCategories    `json:"categories"`
	Texts                map[string]string `json:"texts"`
}

type fileCategories struct {
	Start fileCategory `json:"start"`
	Daily fileCategory `json:"daily"`
	End   fileCategory `json:"end"`
}

type fileCategory struct {
	Dates               []string   `json:"dates"`
	Times               [][]string `json:"times"`
	DayOffsets          []int      `json:"day_offsets"`
	SurveysPerDay       int        `json:"surveys_per_day"`
	WakeupDelayMinutes  int        `json:"wakeup_delay_minutes"`
	BetweenDelayMinutes int        `json:"between_delay_minutes"`
	JitterMinutes       int        `json:"jitter_minutes"`
	DeleteAfterMinutes  int        `json:"delete_after_minutes"`
	DeleteOnNext        bool       `json:"delete_on_next"`
	DeleteAtDeadline    bool       `json:"delete_at_deadline"`
	URLs                [][]string `json:"urls"`
	URLDistribution     string     `json:"url_distribution"`
}

// Load reads and validates the study configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read study configuration %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a study configuration. Unknown fields, malformed
// entries, and contradictory settings all fail with ConfigurationError.
func Parse(data []byte) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw fileConfig
	if err := dec.Decode(&raw); err != nil {
		return nil, confErrf("file", "decode: %v", err)
	}

	if raw.StudyName == "" {
		return nil, confErrf("study_name", "required")
	}
	if raw.Timezone == "" {
		return nil, confErrf("timezone", "required")
	}
	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return nil, confErrf("timezone", "unknown location %q", raw.Timezone)
	}

	start, err := parseDateTime(raw.SubscriptionStart, loc)
	if err != nil {
		return nil, confErrf("subscription_start", "expected %q: %v", dateTimeLayout, err)
	}
	deadline, err := parseDateTime(raw.SubscriptionDeadline, loc)
	if err != nil {
		return nil, confErrf("subscription_deadline", "expected %q: %v", dateTimeLayout, err)
	}
	if !deadline.After(start) {
		return nil, confErrf("subscription_deadline", "must be after subscription_start")
	}

	if raw.Conditions < 1 {
		return nil, confErrf("conditions", "must be at least 1, got %d", raw.Conditions)
	}
	if raw.ConditionSelfReport && raw.Conditions < 2 {
		return nil, confErrf("condition_self_report", "requires at least 2 conditions")
	}

	conf := &Config{
		StudyName:            raw.StudyName,
		Location:             loc,
		SubscriptionStart:    start,
		SubscriptionDeadline: deadline,
		Conditions:           raw.Conditions,
		ConditionSelfReport:  raw.ConditionSelfReport,
		SurveyCommandEnabled: raw.SurveyCommandEnabled,
		EndReminderDelay:     time.Duration(raw.EndReminderHours) * time.Hour,
	}

	if conf.Start, err = buildCategory(CategoryStart, raw.Categories.Start, raw.Conditions, loc); err != nil {
		return nil, err
	}
	if conf.Daily, err = buildCategory(CategoryDaily, raw.Categories.Daily, raw.Conditions, loc); err != nil {
		return nil, err
	}
	if conf.End, err = buildCategory(CategoryEnd, raw.Categories.End, raw.Conditions, loc); err != nil {
		return nil, err
	}

	if raw.EndReminderHours < 0 {
		return nil, confErrf("end_reminder_hours", "must not be negative, got %d", raw.EndReminderHours)
	}
	if raw.EndReminderHours > 0 && !conf.End.Enabled() {
		return nil, confErrf("end_reminder_hours", "requires an enabled end category")
	}

	if conf.texts, err = buildTexts(raw.Texts); err != nil {
		return nil, err
	}

	return conf, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("required")
	}
	return time.ParseInLocation(dateTimeLayout, s, loc)
}

//nolint:gocyclo // single linear pass over every validation rule
func buildCategory(id CategoryID, raw fileCategory, conditions int, loc *time.Location) (Category, error) {
	field := func(name string) string {
		return fmt.Sprintf("categories.%s.%s", id, name)
	}

	cat := Category{
		ID:            id,
		DayOffsets:    raw.DayOffsets,
		SurveysPerDay: raw.SurveysPerDay,
		WakeupDelay:   time.Duration(raw.WakeupDelayMinutes) * time.Minute,
		BetweenDelay:  time.Duration(raw.BetweenDelayMinutes) * time.Minute,
		Jitter:        time.Duration(raw.JitterMinutes) * time.Minute,
		URLs:          raw.URLs,
		Distribution:  Distribution(raw.URLDistribution),
	}

	for i, d := range raw.Dates {
		day, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return Category{}, confErrf(field("dates"), "entry %d: expected %q, got %q", i, dateLayout, d)
		}
		cat.Dates = append(cat.Dates, day)
	}
	for i, row := range raw.Times {
		if len(row) == 0 {
			return Category{}, confErrf(field("times"), "row %d is empty", i)
		}
		parsed := make([]TimeOfDay, 0, len(row))
		for j, t := range row {
			tod, err := ParseTimeOfDay(t)
			if err != nil {
				return Category{}, confErrf(field("times"), "row %d entry %d: %v", i, j, err)
			}
			parsed = append(parsed, tod)
		}
		cat.TimeRows = append(cat.TimeRows, parsed)
	}

	if len(cat.URLs) == 0 {
		if len(cat.Dates) > 0 || len(cat.DayOffsets) > 0 || len(cat.TimeRows) > 0 || cat.SurveysPerDay > 0 {
			return Category{}, confErrf(field("urls"), "required when schedule sources are configured")
		}
		return cat, nil
	}

	// Day sources are mutually exclusive. No precedence order is guessed:
	// configuring both fixed dates and day offsets is rejected outright.
	if len(cat.Dates) > 0 && len(cat.DayOffsets) > 0 {
		return Category{}, confErrf(field("dates"), "dates and day_offsets are mutually exclusive")
	}
	for i, off := range cat.DayOffsets {
		if off < 0 {
			return Category{}, confErrf(field("day_offsets"), "entry %d: must not be negative, got %d", i, off)
		}
	}

	// Time sources are mutually exclusive too.
	if len(cat.TimeRows) > 0 && cat.SurveysPerDay > 0 {
		return Category{}, confErrf(field("times"), "times and surveys_per_day are mutually exclusive")
	}
	if cat.SurveysPerDay < 0 {
		return Category{}, confErrf(field("surveys_per_day"), "must not be negative, got %d", cat.SurveysPerDay)
	}
	if raw.WakeupDelayMinutes < 0 {
		return Category{}, confErrf(field("wakeup_delay_minutes"), "must not be negative, got %d", raw.WakeupDelayMinutes)
	}
	if raw.BetweenDelayMinutes < 0 {
		return Category{}, confErrf(field("between_delay_minutes"), "must not be negative, got %d", raw.BetweenDelayMinutes)
	}
	if cat.SurveysPerDay > 1 && cat.BetweenDelay <= 0 {
		return Category{}, confErrf(field("between_delay_minutes"), "required when surveys_per_day > 1")
	}

	hasDays := len(cat.Dates) > 0 || len(cat.DayOffsets) > 0
	hasTimes := len(cat.TimeRows) > 0 || cat.SurveysPerDay > 0
	if hasDays != hasTimes {
		return Category{}, confErrf(field("times"), "day and time sources must be configured together")
	}

	// Fixed time rows pair with days by index, one row per day.
	if len(cat.TimeRows) > 0 {
		days := len(cat.Dates)
		if days == 0 {
			days = len(cat.DayOffsets)
		}
		if len(cat.TimeRows) != days {
			return Category{}, confErrf(field("times"), "expected %d rows (one per day), got %d", days, len(cat.TimeRows))
		}
	}

	if raw.JitterMinutes < 0 {
		return Category{}, confErrf(field("jitter_minutes"), "must not be negative, got %d", raw.JitterMinutes)
	}

	if err := buildVisibility(&cat, raw, field); err != nil {
		return Category{}, err
	}

	if err := validateURLs(&cat, conditions, field); err != nil {
		return Category{}, err
	}

	return cat, nil
}

func buildVisibility(cat *Category, raw fileCategory, field func(string) string) error {
	if raw.DeleteAfterMinutes < 0 {
		return confErrf(field("delete_after_minutes"), "must not be negative, got %d", raw.DeleteAfterMinutes)
	}

	set := 0
	if raw.DeleteAfterMinutes > 0 {
		set++
		cat.Visibility = VisibilityFixedDelay
		cat.DeleteAfter = time.Duration(raw.DeleteAfterMinutes) * time.Minute
	}
	if raw.DeleteOnNext {
		set++
		cat.Visibility = VisibilityOnNext
	}
	if raw.DeleteAtDeadline {
		set++
		cat.Visibility = VisibilityAtDeadline
	}

	switch set {
	case 0:
		cat.Visibility = VisibilityNone
	case 1:
	default:
		return confErrf(field("delete_after_minutes"), "delete_after_minutes, delete_on_next and delete_at_deadline are mutually exclusive")
	}
	return nil
}

func validateURLs(cat *Category, conditions int, field func(string) string) error {
	if len(cat.URLs) != conditions && len(cat.URLs) != 1 {
		return confErrf(field("urls"), "expected %d condition lists (or a single shared list), got %d", conditions, len(cat.URLs))
	}

	switch cat.Distribution {
	case DistributionFirst, DistributionDay, DistributionSlot, DistributionRunning, DistributionRandom:
	default:
		return confErrf(field("url_distribution"), "unknown strategy %q", cat.Distribution)
	}

	required := 1
	switch cat.Distribution {
	case DistributionDay:
		required = cat.dayCount()
	case DistributionSlot:
		required = cat.maxPerDay()
	case DistributionRunning:
		required = cat.TotalOccurrences()
	}

	for i, list := range cat.URLs {
		if len(list) == 0 {
			return confErrf(field("urls"), "condition %d has no URLs", i)
		}
		if len(list) < required {
			return confErrf(field("urls"), "condition %d needs at least %d URLs for %q distribution, got %d",
				i, required, cat.Distribution, len(list))
		}
	}
	return nil
}

func (c Category) dayCount() int {
	switch {
	case len(c.Dates) > 0:
		return len(c.Dates)
	case len(c.DayOffsets) > 0:
		return len(c.DayOffsets)
	case c.AtSubscribe():
		return 1
	default:
		return 0
	}
}

func (c Category) maxPerDay() int {
	if c.SurveysPerDay > 0 {
		return c.SurveysPerDay
	}
	res := 0
	for _, row := range c.TimeRows {
		if len(row) > res {
			res = len(row)
		}
	}
	if res == 0 && c.AtSubscribe() {
		return 1
	}
	return res
}

// TotalOccurrences returns the number of deliveries the category produces for
// a single participant.
func (c Category) TotalOccurrences() int {
	if !c.Enabled() {
		return 0
	}
	if c.AtSubscribe() {
		return 1
	}
	if c.SurveysPerDay > 0 {
		return c.dayCount() * c.SurveysPerDay
	}
	total := 0
	for _, row := range c.TimeRows {
		total += len(row)
	}
	return total
}
