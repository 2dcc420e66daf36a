package debate

import (
	"fmt"
	"strings"
	"unicode"
)

// Classifier maps an opening message to a topic. It runs once per
// conversation; later messages never re-classify.
type Classifier struct {
	registry *Registry
}

// NewClassifier returns a classifier backed by the given registry.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify returns the first registered topic whose trigger keywords appear
// in the message, testing topics in registry order. When nothing matches it
// returns a general topic with a contrarian stance. Classify always returns
// a usable topic; there is no failure mode.
func (c *Classifier) Classify(message string) Topic {
	norm := normalize(message)
	for _, t := range c.registry.Topics() {
		for _, kw := range t.Keywords {
			if containsPhrase(norm, normalize(kw)) {
				return t
			}
		}
	}
	return c.contrarianTopic(norm)
}

// contrarianTopic builds the fallback topic for an unrecognized subject.
// The stance opposes whatever polarity the message shows; with no polarity
// signal it stays skeptical of the claim as stated.
func (c *Classifier) contrarianTopic(norm string) Topic {
	label := generalLabel(norm)

	words := make(map[string]struct{})
	for _, w := range strings.Fields(norm) {
		words[w] = struct{}{}
	}
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if _, ok := words[w]; ok {
			pos++
		}
	}
	for _, w := range negativeWords {
		if _, ok := words[w]; ok {
			neg++
		}
	}

	var stance string
	switch {
	case pos > neg:
		stance = fmt.Sprintf("the case for %s is much weaker than you suggest", label)
	case neg > pos:
		stance = fmt.Sprintf("there is far more merit in %s than you give it credit for", label)
	default:
		stance = fmt.Sprintf("the claim about %s deserves skepticism as stated", label)
	}
	return GenericTopic(label, stance)
}

// GenericTopic builds a topic that is not in the registry, with a generic
// evidence bank phrased around the label. Used for unrecognized subjects
// and for rebuilding stored conversations whose topic has no registry
// entry.
func GenericTopic(label, stance string) Topic {
	return Topic{
		ID:     GeneralTopicID,
		Label:  label,
		Stance: stance,
		Evidence: []string{
			fmt.Sprintf("there is substantial evidence bearing on %s that rarely comes up in casual discussion", label),
			fmt.Sprintf("expert opinion on %s is far less settled than it first appears", label),
			fmt.Sprintf("the practical implications of %s are significant and routinely overlooked", label),
		},
	}
}

// generalLabel extracts a short label from the normalized message: the
// first three words that are neither stop words nor trivially short.
func generalLabel(norm string) string {
	var keep []string
	for _, w := range strings.Fields(norm) {
		if len(w) <= 3 {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		keep = append(keep, w)
		if len(keep) == 3 {
			break
		}
	}
	if len(keep) == 0 {
		return "the subject at hand"
	}
	return strings.Join(keep, " ")
}

// normalize casefolds the text and strips punctuation, collapsing runs of
// separators to single spaces.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// containsPhrase reports whether phrase occurs in norm on word boundaries.
// Both arguments must already be normalized.
func containsPhrase(norm, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+norm+" ", " "+phrase+" ")
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "think": {}, "really": {},
}

var positiveWords = []string{
	"good", "great", "excellent", "love", "like", "support", "agree",
	"yes", "true", "best", "amazing",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "dislike", "oppose", "disagree",
	"no", "false", "worst", "wrong",
}
