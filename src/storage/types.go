package storage

import "time"

// Conversation is the persisted snapshot of one debate. The topic columns
// are written once at creation and never updated afterward; only the
// tactic bookkeeping, the evidence cursor, and the counters change.
type Conversation struct {
	ID             string    `json:"id" db:"id"`
	TopicID        string    `json:"topic_id" db:"topic_id"`
	TopicLabel     string    `json:"topic_label" db:"topic_label"`
	Stance         string    `json:"stance" db:"stance"`
	LastTactic     string    `json:"last_tactic" db:"last_tactic"`
	EvidenceCursor int       `json:"evidence_cursor" db:"evidence_cursor"`
	TurnCount      int       `json:"turn_count" db:"turn_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TurnRecord is one persisted message. Seq is the gapless position within
// the conversation; the full history is kept even though the engine only
// ever reads back the retained window.
type TurnRecord struct {
	ConversationID string    `json:"conversation_id" db:"conversation_id"`
	Seq            int       `json:"seq" db:"seq"`
	Role           string    `json:"role" db:"role"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
