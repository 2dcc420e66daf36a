package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
)

// GetConversationByID retrieves a conversation snapshot. Returns nil, nil
// when the identifier is unknown.
func GetConversationByID(ctx context.Context, db sqlscan.Querier, conversationID string) (*Conversation, error) {
	query := `SELECT id, topic_id, topic_label, stance, last_tactic, evidence_cursor, turn_count, created_at, updated_at
		FROM conversations WHERE id = ?`
	var c Conversation
	err := sqlscan.Get(ctx, db, &c, query, conversationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpsertConversation inserts the snapshot or, when the row already exists,
// updates the mutable bookkeeping columns. The topic assignment is written
// once and left untouched on conflict.
func UpsertConversation(ctx context.Context, db Execer, c *Conversation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	query := `INSERT INTO conversations (id, topic_id, topic_label, stance, last_tactic, evidence_cursor, turn_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_tactic = excluded.last_tactic,
			evidence_cursor = excluded.evidence_cursor,
			turn_count = excluded.turn_count,
			updated_at = excluded.updated_at`
	_, err := db.ExecContext(ctx, query,
		c.ID, c.TopicID, c.TopicLabel, c.Stance,
		c.LastTactic, c.EvidenceCursor, c.TurnCount,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// InsertTurn appends one turn to a conversation.
func InsertTurn(ctx context.Context, db Execer, t *TurnRecord) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO turns (conversation_id, seq, role, content, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query, t.ConversationID, t.Seq, t.Role, t.Content, t.CreatedAt)
	return err
}

// GetRecentTurns returns the last limit turns of a conversation in
// chronological order. A limit of zero or less returns every turn.
func GetRecentTurns(ctx context.Context, db sqlscan.Querier, conversationID string, limit int) ([]TurnRecord, error) {
	var turns []TurnRecord
	var err error
	if limit > 0 {
		query := `SELECT conversation_id, seq, role, content, created_at FROM turns
			WHERE conversation_id = ? ORDER BY seq DESC LIMIT ?`
		err = sqlscan.Select(ctx, db, &turns, query, conversationID, limit)
	} else {
		query := `SELECT conversation_id, seq, role, content, created_at FROM turns
			WHERE conversation_id = ? ORDER BY seq DESC`
		err = sqlscan.Select(ctx, db, &turns, query, conversationID)
	}
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// CountConversations returns the number of stored conversations.
func CountConversations(ctx context.Context, db sqlscan.Querier) (int, error) {
	var n int
	err := sqlscan.Get(ctx, db, &n, `SELECT COUNT(*) FROM conversations`)
	return n, err
}
