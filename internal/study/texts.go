package study

import (
	"strings"
)

// TextKey identifies one participant-facing message template.
type TextKey string

const (
	TextWelcome           TextKey = "welcome"
	TextHelp              TextKey = "help"
	TextAskWakeup         TextKey = "ask_wakeup"
	TextInvalidWakeup     TextKey = "invalid_wakeup"
	TextAskCondition      TextKey = "ask_condition"
	TextInvalidCondition  TextKey = "invalid_condition"
	TextSubscribed        TextKey = "subscribed"
	TextAlreadySubscribed TextKey = "already_subscribed"
	TextWindowClosed      TextKey = "window_closed"
	TextWindowExpired     TextKey = "window_expired"
	TextUnsubscribed      TextKey = "unsubscribed"
	TextNotSubscribed     TextKey = "not_subscribed"
	TextSurveyLink        TextKey = "survey_link"
	TextSurveyUnavailable TextKey = "survey_unavailable"
	TextReminderQuestion  TextKey = "reminder_question"
	TextReminderYes       TextKey = "reminder_yes"
	TextReminderNo        TextKey = "reminder_no"
	TextGenericError      TextKey = "generic_error"
)

var defaultTexts = map[TextKey]string{
	TextWelcome:           "Welcome! Send /subscribe to join the study.",
	TextHelp:              "Commands:\n/subscribe - join the study\n/unsubscribe - leave the study\n/help - show this message",
	TextAskWakeup:         "At what time do you usually wake up? Please reply in HH:MM form, for example 07:30.",
	TextInvalidWakeup:     "Sorry, I could not read that as a time. Please reply in HH:MM form, for example 07:30.",
	TextAskCondition:      "Which group were you assigned to? Please reply with the group number.",
	TextInvalidCondition:  "Sorry, that is not a valid group number. Please reply with just the number.",
	TextSubscribed:        "You are subscribed. You will receive your survey links here.",
	TextAlreadySubscribed: "You are already subscribed.",
	TextWindowClosed:      "Subscription has not opened yet. Please try again later.",
	TextWindowExpired:     "Subscription is closed, the study has already started.",
	TextUnsubscribed:      "You are unsubscribed. You will not receive any further messages.",
	TextNotSubscribed:     "You are not subscribed. Send /subscribe to join the study.",
	TextSurveyLink:        "Please fill in this survey: {link}",
	TextSurveyUnavailable: "There is no survey available for you right now.",
	TextReminderQuestion:  "Did you manage to fill in the last survey?",
	TextReminderYes:       "Great, thank you!",
	TextReminderNo:        "No problem. Here it is again: {link}",
	TextGenericError:      "Something went wrong. Please try again later.",
}

func buildTexts(overrides map[string]string) (map[TextKey]string, error) {
	res := make(map[TextKey]string, len(defaultTexts))
	for k, v := range defaultTexts {
		res[k] = v
	}
	for k, v := range overrides {
		key := TextKey(k)
		if _, ok := defaultTexts[key]; !ok {
			return nil, confErrf("texts", "unknown key %q", k)
		}
		if strings.TrimSpace(v) == "" {
			return nil, confErrf("texts", "key %q is empty", k)
		}
		res[key] = v
	}
	return res, nil
}

// Text returns the message template for the given key, with study specific
// overrides applied on top of the built-in defaults.
func (c *Config) Text(key TextKey) string {
	return c.texts[key]
}

// TextWithLink renders a template that carries a survey link placeholder.
func (c *Config) TextWithLink(key TextKey, url string) string {
	return strings.ReplaceAll(c.Text(key), "{link}", url)
}
