package main

import (
	"context"
	"fmt"
	"strings"
)

// TopicsCmd lists the registered debate topics.
type TopicsCmd struct{}

func (t *TopicsCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	// Topic listing never needs the database.
	cli.InMemory = true
	application, err := buildApp(context.Background(), cli, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	for _, topic := range application.Registry.Topics() {
		fmt.Println(headerStyle.Render(topic.Label))
		fmt.Println("  " + stanceStyle.Render(topic.Stance))
		fmt.Printf("  triggers: %s\n", strings.Join(topic.Keywords, ", "))
		fmt.Printf("  evidence: %d statements\n\n", len(topic.Evidence))
	}
	return nil
}
