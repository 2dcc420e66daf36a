package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Store is the durability collaborator the engine talks to. LoadState
// returns ErrConversationNotFound for unknown identifiers. SaveState
// persists the conversation snapshot together with the turns added during
// the current request, atomically.
type Store interface {
	LoadState(ctx context.Context, conversationID string) (*State, error)
	SaveState(ctx context.Context, s *State, newTurns []Turn) error
}

// Options configures the engine. Zero values fall back to the defaults.
type Options struct {
	// WindowSize is the number of retained exchanges (a user turn plus
	// the bot reply each).
	WindowSize int
	// MaxMessageLength caps both inbound messages and rendered replies,
	// in characters.
	MaxMessageLength int
	// ResponseDeadline bounds one Handle call end to end.
	ResponseDeadline time.Duration
}

const (
	DefaultWindowSize       = 5
	DefaultMaxMessageLength = 2000
	DefaultResponseDeadline = 30 * time.Second
)

func (o Options) withDefaults() Options {
	if o.WindowSize <= 0 {
		o.WindowSize = DefaultWindowSize
	}
	if o.MaxMessageLength <= 0 {
		o.MaxMessageLength = DefaultMaxMessageLength
	}
	if o.ResponseDeadline == 0 {
		o.ResponseDeadline = DefaultResponseDeadline
	}
	return o
}

// Message is one entry of the reply transcript handed back to the caller.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"message"`
}

// Reply is the engine's answer to one inbound message: the conversation
// identifier and the retained window of turns, newest reply last.
type Reply struct {
	ConversationID string    `json:"conversation_id"`
	Messages       []Message `json:"messages"`
}

// Engine orchestrates classification, memory, tactic selection, and
// composition for each inbound message. Processing for a single
// conversation identifier is serialized; different conversations never
// contend.
type Engine struct {
	store      Store
	classifier *Classifier
	memory     Memory
	composer   Composer
	opts       Options
	logger     *slog.Logger

	mu       sync.Mutex
	inFlight map[string]*sync.Mutex
}

// NewEngine builds an engine over the given store and topic registry.
func NewEngine(store Store, registry *Registry, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	opts = opts.withDefaults()
	return &Engine{
		store:      store,
		classifier: NewClassifier(registry),
		memory:     Memory{MaxTurns: 2 * opts.WindowSize},
		composer:   Composer{MaxLength: opts.MaxMessageLength},
		opts:       opts,
		logger:     logger,
		inFlight:   make(map[string]*sync.Mutex),
	}
}

// Handle processes one inbound message. An empty conversationID starts a
// new conversation: the topic is classified from the message and fixed for
// the conversation's lifetime. A non-empty identifier continues an
// existing conversation or fails with ErrConversationNotFound, mutating
// nothing. On success the updated state has been persisted and the
// retained window is returned.
func (e *Engine) Handle(ctx context.Context, conversationID, message string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message must not be empty")
	}
	if n := utf8.RuneCountInString(message); n > e.opts.MaxMessageLength {
		return nil, fmt.Errorf("message is %d characters, cap is %d: %w",
			n, e.opts.MaxMessageLength, ErrMessageTooLong)
	}

	if e.opts.ResponseDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.ResponseDeadline)
		defer cancel()
	}

	isNew := conversationID == ""
	if isNew {
		conversationID = uuid.New().String()
	}

	unlock := e.lock(conversationID)
	defer unlock()

	var state *State
	if isNew {
		topic := e.classifier.Classify(message)
		state = &State{ID: conversationID, Topic: topic}
		e.logger.Info("conversation started",
			"conversation_id", conversationID,
			"topic", topic.ID,
			"stance", topic.Stance,
		)
	} else {
		loaded, err := e.store.LoadState(ctx, conversationID)
		if err != nil {
			return nil, e.translateStoreError(ctx, "load", err)
		}
		state = loaded
	}

	userTurn := Turn{Seq: state.TurnCount, Role: RoleUser, Content: message}
	state.Turns = e.memory.Append(state.Turns, userTurn)
	state.TurnCount++

	tactic := SelectTactic(state)
	text, cursor, err := e.composer.Compose(state, tactic, message)
	if err != nil {
		return nil, err
	}

	botTurn := Turn{Seq: state.TurnCount, Role: RoleBot, Content: text}
	state.Turns = e.memory.Append(state.Turns, botTurn)
	state.TurnCount++
	state.LastTactic = tactic
	state.EvidenceCursor = cursor

	// Nothing has been persisted yet; bail out before the write if the
	// deadline already passed so no partial state becomes visible.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if err := e.store.SaveState(ctx, state, []Turn{userTurn, botTurn}); err != nil {
		return nil, e.translateStoreError(ctx, "save", err)
	}

	e.logger.Debug("reply composed",
		"conversation_id", conversationID,
		"tactic", tactic,
		"turn_count", state.TurnCount,
	)

	return replyFromState(state), nil
}

// lock serializes processing per conversation identifier. Entries live for
// the process lifetime.
func (e *Engine) lock(conversationID string) func() {
	e.mu.Lock()
	m, ok := e.inFlight[conversationID]
	if !ok {
		m = &sync.Mutex{}
		e.inFlight[conversationID] = m
	}
	e.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// translateStoreError maps a storage failure onto the engine's error
// taxonomy. Unknown identifiers pass through untouched; a blown deadline
// surfaces as a timeout; anything else is a storage failure, propagated
// rather than papered over.
func (e *Engine) translateStoreError(ctx context.Context, op string, err error) error {
	if errors.Is(err, ErrConversationNotFound) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, ctxErr)
	}
	e.logger.Error("storage operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}

func replyFromState(s *State) *Reply {
	msgs := make([]Message, 0, len(s.Turns))
	for _, t := range s.Turns {
		msgs = append(msgs, Message{Role: t.Role, Text: t.Content})
	}
	return &Reply{ConversationID: s.ID, Messages: msgs}
}
