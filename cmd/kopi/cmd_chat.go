package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kopibot/kopi/src/debate"
)

// ChatCmd runs an interactive debate session on stdin/stdout.
type ChatCmd struct {
	Conversation string `short:"c" help:"Resume an existing conversation by ID"`
}

func (c *ChatCmd) Run(cli *CLI) error {
	// Stderr belongs to the transcript in chat mode; logs go to a file.
	logger := createChatLogger(cli.LogLevel, "")

	application, err := buildApp(context.Background(), cli, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	fmt.Println(headerStyle.Render("kopi — pick a topic, I'll pick a side"))
	fmt.Println(idStyle.Render("type your opening statement; /quit to leave"))
	fmt.Println()

	conversationID := c.Conversation
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print(userLabelStyle.Render("you ") + "  ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		reply, err := application.Engine.Handle(context.Background(), conversationID, line)
		if err != nil {
			if errors.Is(err, debate.ErrMessageTooLong) {
				fmt.Println(idStyle.Render("that message is too long; try a shorter one"))
				continue
			}
			return err
		}
		conversationID = reply.ConversationID

		last := reply.Messages[len(reply.Messages)-1]
		fmt.Printf("%s  %s\n", botLabelStyle.Render("kopi"), last.Text)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if conversationID != "" {
		fmt.Println()
		fmt.Println(renderConversationID(conversationID))
	}
	return nil
}
