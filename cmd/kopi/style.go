package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kopibot/kopi/src/debate"
)

var (
	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true)

	stanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)
)

// renderTranscript formats a reply window for the terminal, one labeled
// line per message.
func renderTranscript(messages []debate.Message) string {
	var b strings.Builder
	for _, m := range messages {
		label := userLabelStyle.Render("you ")
		if m.Role == debate.RoleBot {
			label = botLabelStyle.Render("kopi")
		}
		fmt.Fprintf(&b, "%s  %s\n", label, m.Text)
	}
	return b.String()
}

// renderConversationID formats the identifier hint printed after replies.
func renderConversationID(id string) string {
	return idStyle.Render("conversation: " + id)
}
