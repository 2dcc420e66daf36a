package main

import (
	"context"
	"fmt"

	"github.com/kopibot/kopi/src/debate"
)

// HistoryCmd prints the retained window of a conversation.
type HistoryCmd struct {
	ID string `arg:"" help:"Conversation ID"`
}

func (h *HistoryCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	application, err := buildApp(context.Background(), cli, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	state, err := application.Store.LoadState(context.Background(), h.ID)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(state.Topic.Label))
	fmt.Println(stanceStyle.Render("stance: " + state.Topic.Stance))
	fmt.Println()

	messages := make([]debate.Message, 0, len(state.Turns))
	for _, t := range state.Turns {
		messages = append(messages, debate.Message{Role: t.Role, Text: t.Content})
	}
	fmt.Print(renderTranscript(messages))
	fmt.Printf("\n%d turns total, %d retained\n", state.TurnCount, len(state.Turns))
	return nil
}
