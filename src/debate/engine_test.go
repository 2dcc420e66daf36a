package debate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps state in a map and records calls so tests can assert on
// persistence behavior.
type fakeStore struct {
	mu        sync.Mutex
	states    map[string]*State
	loadCalls int
	saveCalls int
	saveErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: map[string]*State{}}
}

func (f *fakeStore) LoadState(ctx context.Context, id string) (*State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCalls++
	s, ok := f.states[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return s.Clone(), nil
}

func (f *fakeStore) SaveState(ctx context.Context, s *State, newTurns []Turn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.states[s.ID] = s.Clone()
	return nil
}

func newTestEngine(store Store, opts Options) *Engine {
	return NewEngine(store, DefaultRegistry(), opts, slog.New(slog.DiscardHandler))
}

func TestHandleNewConversationClimateSkeptic(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	reply, err := e.Handle(context.Background(), "", "I think climate change is fake")
	require.NoError(t, err)
	require.NotEmpty(t, reply.ConversationID)
	require.Len(t, reply.Messages, 2)

	assert.Equal(t, RoleUser, reply.Messages[0].Role)
	assert.Equal(t, "I think climate change is fake", reply.Messages[0].Text)
	assert.Equal(t, RoleBot, reply.Messages[1].Role)
	assert.Contains(t, reply.Messages[1].Text, "anthropogenic climate change is real")
	assert.Contains(t, reply.Messages[1].Text, "I hear you", "first reply counters the opener")
	assert.NotContains(t, strings.ToLower(reply.Messages[1].Text), "you are right")

	saved := store.states[reply.ConversationID]
	require.NotNil(t, saved)
	assert.Equal(t, "climate-change", saved.Topic.ID)
	assert.Equal(t, TacticCounterArgument, saved.LastTactic)
	assert.Equal(t, 2, saved.TurnCount)
}

func TestHandleUnrecognizedTopicStillReplies(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	reply, err := e.Handle(context.Background(), "", "I like cats")
	require.NoError(t, err)
	require.Len(t, reply.Messages, 2)
	assert.Equal(t, GeneralTopicID, store.states[reply.ConversationID].Topic.ID)
	assert.NotEmpty(t, reply.Messages[1].Text)
}

func TestHandleUnknownConversationFailsWithoutMutation(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	_, err := e.Handle(context.Background(), "conv_unknown", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConversationNotFound))
	assert.Equal(t, 0, store.saveCalls, "save must never run for unknown conversations")
}

func TestHandleOverlongMessageFailsBeforeAnyStateAccess(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{MaxMessageLength: 2000})

	_, err := e.Handle(context.Background(), "", strings.Repeat("a", 5000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMessageTooLong))
	assert.Equal(t, 0, store.loadCalls)
	assert.Equal(t, 0, store.saveCalls)
}

func TestHandleEmptyMessageRejected(t *testing.T) {
	e := newTestEngine(newFakeStore(), Options{})
	_, err := e.Handle(context.Background(), "", "   ")
	require.Error(t, err)
}

func TestHandleStanceNeverDrifts(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	reply, err := e.Handle(context.Background(), "", "vaccines are dangerous")
	require.NoError(t, err)
	id := reply.ConversationID
	stance := store.states[id].Topic.Stance

	for i := 0; i < 8; i++ {
		_, err := e.Handle(context.Background(), id, "I still completely disagree with you")
		require.NoError(t, err)
		assert.Equal(t, stance, store.states[id].Topic.Stance, "exchange %d", i)
		assert.Equal(t, "vaccines", store.states[id].Topic.ID)
	}
}

func TestHandleTacticNeverRepeatsConsecutively(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	reply, err := e.Handle(context.Background(), "", "the earth is flat")
	require.NoError(t, err)
	id := reply.ConversationID

	last := store.states[id].LastTactic
	for i := 0; i < 10; i++ {
		_, err := e.Handle(context.Background(), id, "none of that convinces me")
		require.NoError(t, err)
		current := store.states[id].LastTactic
		assert.NotEqual(t, last, current, "exchange %d", i)
		last = current
	}
}

func TestHandleWindowStaysBounded(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{WindowSize: 5})

	reply, err := e.Handle(context.Background(), "", "evolution is just a theory")
	require.NoError(t, err)
	id := reply.ConversationID

	var final *Reply
	for i := 0; i < 12; i++ {
		final, err = e.Handle(context.Background(), id, "I remain unconvinced by your arguments")
		require.NoError(t, err)
	}

	assert.Len(t, final.Messages, 10, "window caps at 2x window size")
	saved := store.states[id]
	assert.Len(t, saved.Turns, 10)
	assert.Equal(t, 26, saved.TurnCount)
	// Oldest turns were evicted first; retained sequence is gapless.
	assert.Equal(t, 16, saved.Turns[0].Seq)
	for i := 1; i < len(saved.Turns); i++ {
		assert.Equal(t, saved.Turns[i-1].Seq+1, saved.Turns[i].Seq)
	}
}

func TestHandleSaveFailureSurfacesStorageUnavailable(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk gone")
	e := newTestEngine(store, Options{})

	_, err := e.Handle(context.Background(), "", "climate change is a scam")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}

func TestHandleDeadlineSurfacesTimeoutWithoutPersisting(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{ResponseDeadline: time.Nanosecond})

	// The deadline is already gone by the pre-persist check.
	time.Sleep(time.Millisecond)
	_, err := e.Handle(context.Background(), "", "climate change is fake")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Equal(t, 0, store.saveCalls)
}

func TestHandleSerializesPerConversation(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, Options{})

	reply, err := e.Handle(context.Background(), "", "vaccines cause harm")
	require.NoError(t, err)
	id := reply.ConversationID

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Handle(context.Background(), id, "still not convinced at all")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// No lost updates: every exchange landed.
	assert.Equal(t, 2+16*2, store.states[id].TurnCount)
}

func TestHandleReplyIsIdempotentForIdenticalState(t *testing.T) {
	e1 := newTestEngine(newFakeStore(), Options{})
	e2 := newTestEngine(newFakeStore(), Options{})

	r1, err := e1.Handle(context.Background(), "", "climate change is fake")
	require.NoError(t, err)
	r2, err := e2.Handle(context.Background(), "", "climate change is fake")
	require.NoError(t, err)

	assert.Equal(t, r1.Messages[1].Text, r2.Messages[1].Text,
		"identical inputs produce byte-identical replies")
}
