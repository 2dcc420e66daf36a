package debate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeIsPure(t *testing.T) {
	c := Composer{MaxLength: 2000}
	s := &State{Topic: topicWithEvidence(), EvidenceCursor: 1}

	first, cursor1, err := c.Compose(s, TacticEvidenceCitation, "you are wrong")
	require.NoError(t, err)
	second, cursor2, err := c.Compose(s, TacticEvidenceCitation, "you are wrong")
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must render byte-identical output")
	assert.Equal(t, cursor1, cursor2)
	assert.Equal(t, 1, s.EvidenceCursor, "compose must not mutate state")
}

func TestComposeIncludesStanceForEveryTactic(t *testing.T) {
	c := Composer{MaxLength: 2000}
	s := &State{Topic: topicWithEvidence()}

	for _, tactic := range Tactics() {
		text, _, err := c.Compose(s, tactic, "I disagree with all of this")
		require.NoError(t, err, tactic)
		assert.Contains(t, text, s.Topic.Stance, "tactic %s must carry the stance", tactic)
	}
}

func TestComposeEvidenceRoundRobin(t *testing.T) {
	topic := Topic{
		ID:     "t",
		Label:  "t",
		Stance: "the position holds",
		Evidence: []string{
			"statement one", "statement two", "statement three", "statement four",
		},
	}
	c := Composer{MaxLength: 2000}

	cursor := 0
	var drawn []string
	for i := 0; i < 6; i++ {
		s := &State{Topic: topic, EvidenceCursor: cursor}
		text, next, err := c.Compose(s, TacticEvidenceCitation, "still not convinced")
		require.NoError(t, err)
		drawn = append(drawn, text)
		cursor = next
	}

	// Four statements, six draws: the bank cycles back to the start
	// instead of erroring out.
	assert.Contains(t, drawn[0], "statement one")
	assert.Contains(t, drawn[3], "statement four")
	assert.Contains(t, drawn[4], "statement one")
	assert.Equal(t, drawn[0], drawn[4])
	assert.Contains(t, drawn[5], "statement two")
}

func TestComposeRejectsOverlongReply(t *testing.T) {
	c := Composer{MaxLength: 40}
	s := &State{Topic: topicWithEvidence()}

	_, cursor, err := c.Compose(s, TacticCounterArgument, "a perfectly ordinary objection")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMessageTooLong))
	assert.Equal(t, s.EvidenceCursor, cursor, "cursor must not advance on failure")
}

func TestComposeParaphraseIsTruncated(t *testing.T) {
	c := Composer{MaxLength: 2000}
	s := &State{Topic: topicWithEvidence()}

	long := strings.Repeat("argument ", 40)
	text, _, err := c.Compose(s, TacticCounterArgument, long)
	require.NoError(t, err)
	assert.Contains(t, text, "...", "long user wording is condensed, not quoted whole")
	assert.Less(t, len(text), 400)
}

func TestComposeEmptyEvidenceBankFallsBackToStance(t *testing.T) {
	topic := topicWithEvidence()
	topic.Evidence = nil
	c := Composer{MaxLength: 2000}
	s := &State{Topic: topic}

	text, cursor, err := c.Compose(s, TacticEmotionalAppeal, "prove it")
	require.NoError(t, err)
	assert.Contains(t, text, topic.Stance)
	assert.Equal(t, 0, cursor)
}
