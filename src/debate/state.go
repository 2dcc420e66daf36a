package debate

// Role tags a turn with its speaker.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message within a conversation. Immutable once created.
// Seq is the turn's position in the full conversation, starting at 0;
// sequence numbers are gapless even after older turns are evicted from
// the retained window.
type Turn struct {
	Seq     int    `json:"seq"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is the engine's view of one conversation. The topic is assigned on
// the first user turn and never changes afterward. Turns holds only the
// retained window; TurnCount counts every turn ever exchanged and drives
// sequence numbering.
type State struct {
	ID             string
	Topic          Topic
	Turns          []Turn
	LastTactic     Tactic
	EvidenceCursor int
	TurnCount      int
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := *s
	out.Turns = make([]Turn, len(s.Turns))
	copy(out.Turns, s.Turns)
	out.Topic.Evidence = append([]string(nil), s.Topic.Evidence...)
	out.Topic.Keywords = append([]string(nil), s.Topic.Keywords...)
	return &out
}
