package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kopibot/kopi/src/debate"
)

// Exit codes following standard conventions.
const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitUsage    = 2
	ExitConfig   = 3
	ExitNotFound = 4
	ExitTooLong  = 5
	ExitTimeout  = 7
	ExitStorage  = 8
)

// exitWithError logs the failure, prints a user-facing message, and exits
// with a code matched to the engine's error taxonomy.
func exitWithError(logger *slog.Logger, err error) {
	if err == nil {
		return
	}

	logger.Error("command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, debate.ErrConversationNotFound):
		return ExitNotFound
	case errors.Is(err, debate.ErrMessageTooLong):
		return ExitTooLong
	case errors.Is(err, debate.ErrTimeout):
		return ExitTimeout
	case errors.Is(err, debate.ErrStorageUnavailable):
		return ExitStorage
	default:
		return ExitError
	}
}
