package main

import (
	"context"
	"fmt"
	"strings"
)

// AskCmd sends a single message and prints the retained window.
type AskCmd struct {
	Message      []string `arg:"" help:"The message to send"`
	Conversation string   `short:"c" help:"Continue an existing conversation by ID"`
}

func (a *AskCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	application, err := buildApp(context.Background(), cli, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	reply, err := application.Engine.Handle(context.Background(), a.Conversation, strings.Join(a.Message, " "))
	if err != nil {
		return err
	}

	fmt.Print(renderTranscript(reply.Messages))
	fmt.Println(renderConversationID(reply.ConversationID))
	return nil
}
