package debate

import "errors"

// Error taxonomy for the engine. Every failure path surfaces exactly one of
// these sentinels; callers match with errors.Is and decide retry policy
// themselves. The engine never retries internally.
var (
	// ErrConversationNotFound means the referenced conversation identifier
	// does not exist in storage. Not retryable.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrMessageTooLong means the inbound message or the rendered reply
	// exceeds the configured character cap. Replies are never truncated.
	ErrMessageTooLong = errors.New("message too long")

	// ErrTimeout means the response deadline elapsed before the request
	// finished. No partial state is persisted.
	ErrTimeout = errors.New("response deadline exceeded")

	// ErrStorageUnavailable wraps load/save failures from the storage
	// collaborator. The engine never falls back to in-memory state.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
