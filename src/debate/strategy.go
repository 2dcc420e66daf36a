package debate

// Tactic is one of the four persuasion strategies a reply can use.
type Tactic string

const (
	TacticCounterArgument    Tactic = "counter-argument"
	TacticEvidenceCitation   Tactic = "evidence-citation"
	TacticEmotionalAppeal    Tactic = "emotional-appeal"
	TacticLogicalProgression Tactic = "logical-progression"
)

// tacticPriority is the fixed selection order. Selection walks it top to
// bottom, so behavior is reproducible for identical inputs.
var tacticPriority = [...]Tactic{
	TacticCounterArgument,
	TacticEvidenceCitation,
	TacticEmotionalAppeal,
	TacticLogicalProgression,
}

// Tactics returns every tactic in priority order.
func Tactics() []Tactic {
	return append([]Tactic(nil), tacticPriority[:]...)
}

// SelectTactic picks the reply tactic for the next turn: the highest
// priority tactic that is not the one used on the previous turn and whose
// supporting content exists for the conversation's topic. Selection is a
// pure function of state. If exclusion would leave nothing eligible, the
// previous tactic repeats rather than deadlocking.
func SelectTactic(s *State) Tactic {
	for _, t := range tacticPriority {
		if t == s.LastTactic {
			continue
		}
		if !tacticAvailable(t, s.Topic) {
			continue
		}
		return t
	}
	if s.LastTactic != "" && tacticAvailable(s.LastTactic, s.Topic) {
		return s.LastTactic
	}
	return TacticCounterArgument
}

// tacticAvailable reports whether the topic carries the content the tactic
// needs. Citing evidence requires a non-empty bank; statements cycle from
// the start once exhausted, so a non-empty bank never runs dry.
func tacticAvailable(t Tactic, topic Topic) bool {
	if t == TacticEvidenceCitation {
		return len(topic.Evidence) > 0
	}
	return true
}
