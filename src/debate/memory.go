package debate

// Memory bounds the retained turn window for a conversation. MaxTurns is
// the total number of turns kept (two per exchange); when an append would
// exceed it, the oldest turns are evicted first.
type Memory struct {
	MaxTurns int
}

// Append returns a new window with t added and the oldest turns evicted if
// the window would exceed MaxTurns. The input slice is never mutated.
func (m Memory) Append(window []Turn, t Turn) []Turn {
	out := make([]Turn, 0, len(window)+1)
	out = append(out, window...)
	out = append(out, t)
	if m.MaxTurns > 0 && len(out) > m.MaxTurns {
		out = out[len(out)-m.MaxTurns:]
	}
	return out
}

// Window returns the retained turns in chronological order. This is the
// only context tactic selection and composition may consult.
func (m Memory) Window(s *State) []Turn {
	out := make([]Turn, len(s.Turns))
	copy(out, s.Turns)
	return out
}
