package storage

import (
	"context"
	"fmt"

	"github.com/kopibot/kopi/src/debate"
)

// Store adapts the SQLite layer to the engine's load/save contract. Topics
// are rehydrated against the registry on load; conversations whose topic
// has no registry entry are rebuilt around the stored stance, so replies
// keep arguing the same position even if the catalog changed between runs.
type Store struct {
	db       *DB
	registry *debate.Registry
	maxTurns int
}

// NewStore returns a Store that retains maxTurns turns per conversation on
// load.
func NewStore(db *DB, registry *debate.Registry, maxTurns int) *Store {
	return &Store{db: db, registry: registry, maxTurns: maxTurns}
}

var _ debate.Store = (*Store)(nil)

// LoadState reads a conversation and its retained turn window.
func (s *Store) LoadState(ctx context.Context, conversationID string) (*debate.State, error) {
	conv, err := GetConversationByID(ctx, s.db.DB(), conversationID)
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", conversationID, err)
	}
	if conv == nil {
		return nil, debate.ErrConversationNotFound
	}

	records, err := GetRecentTurns(ctx, s.db.DB(), conversationID, s.maxTurns)
	if err != nil {
		return nil, fmt.Errorf("load turns for %s: %w", conversationID, err)
	}

	turns := make([]debate.Turn, len(records))
	for i, r := range records {
		turns[i] = debate.Turn{Seq: r.Seq, Role: debate.Role(r.Role), Content: r.Content}
	}

	return &debate.State{
		ID:             conv.ID,
		Topic:          s.rehydrateTopic(conv),
		Turns:          turns,
		LastTactic:     debate.Tactic(conv.LastTactic),
		EvidenceCursor: conv.EvidenceCursor,
		TurnCount:      conv.TurnCount,
	}, nil
}

// SaveState writes the conversation snapshot and the new turns in one
// transaction. Either everything lands or nothing does.
func (s *Store) SaveState(ctx context.Context, state *debate.State, newTurns []debate.Turn) error {
	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save for %s: %w", state.ID, err)
	}
	defer tx.Rollback()

	conv := &Conversation{
		ID:             state.ID,
		TopicID:        state.Topic.ID,
		TopicLabel:     state.Topic.Label,
		Stance:         state.Topic.Stance,
		LastTactic:     string(state.LastTactic),
		EvidenceCursor: state.EvidenceCursor,
		TurnCount:      state.TurnCount,
	}
	if err := UpsertConversation(ctx, tx, conv); err != nil {
		return fmt.Errorf("save conversation %s: %w", state.ID, err)
	}
	for _, t := range newTurns {
		record := &TurnRecord{
			ConversationID: state.ID,
			Seq:            t.Seq,
			Role:           string(t.Role),
			Content:        t.Content,
		}
		if err := InsertTurn(ctx, tx, record); err != nil {
			return fmt.Errorf("save turn %d of %s: %w", t.Seq, state.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save for %s: %w", state.ID, err)
	}
	return nil
}

// rehydrateTopic resolves the stored topic against the registry. The
// stored stance is always authoritative for the conversation.
func (s *Store) rehydrateTopic(conv *Conversation) debate.Topic {
	if topic, ok := s.registry.Lookup(conv.TopicID); ok && conv.TopicID != debate.GeneralTopicID {
		topic.Stance = conv.Stance
		return topic
	}
	return debate.GenericTopic(conv.TopicLabel, conv.Stance)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
