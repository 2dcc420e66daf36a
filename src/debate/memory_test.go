package debate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAppendEvictsOldestFirst(t *testing.T) {
	m := Memory{MaxTurns: 10}

	var window []Turn
	for i := 0; i < 25; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleBot
		}
		window = m.Append(window, Turn{Seq: i, Role: role, Content: "turn"})
		assert.LessOrEqual(t, len(window), 10)
	}

	require.Len(t, window, 10)
	assert.Equal(t, 15, window[0].Seq, "oldest retained turn after FIFO eviction")
	assert.Equal(t, 24, window[9].Seq)

	// Still chronological and gapless.
	for i := 1; i < len(window); i++ {
		assert.Equal(t, window[i-1].Seq+1, window[i].Seq)
	}
}

func TestMemoryAppendDoesNotMutateInput(t *testing.T) {
	m := Memory{MaxTurns: 4}
	orig := []Turn{{Seq: 0, Role: RoleUser, Content: "a"}}

	_ = m.Append(orig, Turn{Seq: 1, Role: RoleBot, Content: "b"})
	require.Len(t, orig, 1)
	assert.Equal(t, "a", orig[0].Content)
}

func TestMemoryWindowReturnsCopy(t *testing.T) {
	m := Memory{MaxTurns: 4}
	s := &State{Turns: []Turn{{Seq: 0, Role: RoleUser, Content: "a"}}}

	w := m.Window(s)
	w[0].Content = "mutated"
	assert.Equal(t, "a", s.Turns[0].Content)
}

func TestMemoryUnlimitedWhenMaxTurnsZero(t *testing.T) {
	m := Memory{}
	var window []Turn
	for i := 0; i < 30; i++ {
		window = m.Append(window, Turn{Seq: i})
	}
	assert.Len(t, window, 30)
}
