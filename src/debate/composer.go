package debate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// paraphraseLimit caps the quoted slice of the user's wording inside a
// reply.
const paraphraseLimit = 80

// Composer renders replies from a tactic, the topic's stance, and the
// evidence bank. Composition is pure: identical inputs produce identical
// output, and the composer never mutates state.
type Composer struct {
	// MaxLength is the reply character cap. Exceeding it is an error,
	// never a silent truncation.
	MaxLength int
}

// Compose renders the reply for the chosen tactic and returns it together
// with the advanced evidence cursor. Every template keeps the topic's
// stance verbatim; the user's wording is acknowledged but never conceded
// to. Returns ErrMessageTooLong when the rendered reply exceeds MaxLength.
func (c Composer) Compose(s *State, tactic Tactic, userMessage string) (string, int, error) {
	statement, cursor := nextEvidence(s.Topic, s.EvidenceCursor)

	var text string
	switch tactic {
	case TacticCounterArgument:
		text = fmt.Sprintf(
			"I hear you when you say %q, but the evidence points the other way: %s. My position stands: %s.",
			paraphrase(userMessage), statement, s.Topic.Stance,
		)
	case TacticEvidenceCitation:
		text = fmt.Sprintf(
			"Let me share some compelling evidence: %s. This is exactly why %s.",
			statement, s.Topic.Stance,
		)
	case TacticEmotionalAppeal:
		text = fmt.Sprintf(
			"Think about what this means for real people: %s. That human cost is why %s.",
			statement, s.Topic.Stance,
		)
	case TacticLogicalProgression:
		text = fmt.Sprintf(
			"Follow the reasoning one step further: %s. Accept that, and it follows that %s.",
			statement, s.Topic.Stance,
		)
	default:
		text = fmt.Sprintf(
			"Let me emphasize a key point about %s: %s.",
			s.Topic.Label, s.Topic.Stance,
		)
	}

	if n := utf8.RuneCountInString(text); c.MaxLength > 0 && n > c.MaxLength {
		return "", s.EvidenceCursor, fmt.Errorf(
			"rendered reply is %d characters, cap is %d: %w", n, c.MaxLength, ErrMessageTooLong)
	}
	return text, cursor, nil
}

// nextEvidence returns the evidence statement at the cursor and the
// advanced cursor, cycling from the start when the bank is exhausted. An
// empty bank falls back to the stance itself and leaves the cursor alone.
func nextEvidence(topic Topic, cursor int) (string, int) {
	if len(topic.Evidence) == 0 {
		return topic.Stance, cursor
	}
	i := cursor % len(topic.Evidence)
	return topic.Evidence[i], (i + 1) % len(topic.Evidence)
}

// paraphrase condenses the user's wording for the acknowledgment slot.
func paraphrase(message string) string {
	condensed := strings.Join(strings.Fields(message), " ")
	if utf8.RuneCountInString(condensed) <= paraphraseLimit {
		return condensed
	}
	runes := []rune(condensed)
	return string(runes[:paraphraseLimit]) + "..."
}
