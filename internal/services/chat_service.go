package services

import (
	"strings"

	"serenai/internal/models"
)

// Intent is the coarse emotional category assigned to a chat message.
type Intent string

// Intent labels.
const (
	IntentMistake     Intent = "mistake"
	IntentSadness     Intent = "sadness"
	IntentFatigue     Intent = "fatigue"
	IntentImprovement Intent = "improvement"
	IntentNeutral     Intent = "neutral"
)

// Event keys and types written by the orchestrator.
const (
	EventKeyGenericMistake  = "generic_mistake"
	EventKeyMealImprovement = "meal_improvement"
	EventTypeMistake        = "mistake"
	EventTypeEmotion        = "emotion"
	EventTypePositiveChange = "positive_change"

	eventSourceAI = "ai"
)

// Escalation thresholds: a mistake is scolded (gently) until the user
// has 3 or more recent repeats; praise intensifies after 2.
const (
	mistakeEscalationThreshold = 3
	improvementAfterMistakes   = 2
)

// intentKeywords is checked in order; the first label whose keyword
// appears in the message wins, so a message containing both a mistake
// and a sadness keyword classifies as a mistake.
var intentKeywords = []struct {
	label    Intent
	keywords []string
}{
	{IntentMistake, []string{"skip", "missed", "forgot", "didn't"}},
	{IntentSadness, []string{"sad", "lonely", "alone", "cry"}},
	{IntentFatigue, []string{"tired", "exhausted", "burnt"}},
	{IntentImprovement, []string{"ate", "had food", "did eat", "took care"}},
}

// defaultResponses maps each intent to its baseline reply and tone.
var defaultResponses = map[Intent]ChatResponse{
	IntentMistake:     {Reply: "Hmm… kanna, it's okay. But take care of yourself, no?", Tone: "gentle-care"},
	IntentSadness:     {Reply: "Come here… you don't have to feel alone. I'm with you.", Tone: "comforting"},
	IntentFatigue:     {Reply: "You sound very tired. Please rest a little, kanna.", Tone: "nurturing"},
	IntentImprovement: {Reply: "That makes me really happy, kanna. I knew you could do it.", Tone: "proud"},
	IntentNeutral:     {Reply: "I'm listening. Tell me slowly.", Tone: "gentle"},
}

// Escalated variants.
var (
	mistakeAngerResponse = ChatResponse{
		Reply: "Kanna… how many times now? I'm saying this because I care. Don't hurt yourself like this.",
		Tone:  "caring-anger",
	}
	improvementProudResponse = ChatResponse{
		Reply: "That makes me really happy, kanna. See? You're learning to take care of yourself.",
		Tone:  "proud",
	}
)

// eventTriple is the (type, key, severity) written for a loggable intent.
type eventTriple struct {
	eventType string
	eventKey  string
	severity  string
}

// loggableIntents maps intents to the event they produce. Neutral
// messages and non-escalated improvements log nothing.
var loggableIntents = map[Intent]eventTriple{
	IntentMistake: {EventTypeMistake, EventKeyGenericMistake, models.SeverityMedium},
	IntentSadness: {EventTypeEmotion, "sadness", models.SeverityMedium},
	IntentFatigue: {EventTypeEmotion, "fatigue", models.SeverityLow},
}

// DetectIntent classifies a message into exactly one intent label.
// Total on every input: an empty or unmatched message is neutral.
func DetectIntent(message string) Intent {
	msg := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(msg, keyword) {
				return entry.label
			}
		}
	}
	return IntentNeutral
}

// chatService composes the intent classifier, the event log, and the
// static response table into a reply.
type chatService struct {
	events EventServicer
	window int
}

// NewChatService creates a new ChatServicer. The window bounds how many
// of the user's most recent generic_mistake events count toward
// escalation.
func NewChatService(events EventServicer, window int) ChatServicer {
	return &chatService{events: events, window: window}
}

// Respond turns one inbound message plus the caller's event history
// into a reply and tone, appending to the event log as a side effect.
func (s *chatService) Respond(userID uint, message string) (*ChatResponse, error) {
	intent := DetectIntent(message)

	mistakes, err := s.events.CountRecentByKey(userID, EventKeyGenericMistake, s.window)
	if err != nil {
		return nil, err
	}

	// Improvement after repeated mistakes gets the proud, noting-growth
	// variant and logs a positive_change event instead of the generic one.
	if intent == IntentImprovement && mistakes >= improvementAfterMistakes {
		if _, err := s.events.Record(userID, EventTypePositiveChange, EventKeyMealImprovement,
			models.SeverityLow, eventSourceAI, map[string]interface{}{"message": message}); err != nil {
			return nil, err
		}
		resp := improvementProudResponse
		return &resp, nil
	}

	resp, ok := defaultResponses[intent]
	if !ok {
		resp = defaultResponses[IntentNeutral]
	}
	if intent == IntentMistake && mistakes >= mistakeEscalationThreshold {
		resp = mistakeAngerResponse
	}

	if triple, ok := loggableIntents[intent]; ok {
		if _, err := s.events.Record(userID, triple.eventType, triple.eventKey,
			triple.severity, eventSourceAI, map[string]interface{}{"message": message}); err != nil {
			return nil, err
		}
	}

	return &resp, nil
}
