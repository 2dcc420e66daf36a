package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the top-level command tree.
type CLI struct {
	Config   string `help:"Path to config file" type:"path"`
	Database string `help:"Override the conversation database path" type:"path"`
	InMemory bool   `help:"Keep conversations in memory only"`
	LogLevel string `default:"warn" help:"Log level (debug, info, warn, error)"`

	Chat    ChatCmd    `cmd:"" help:"Interactive debate session"`
	Ask     AskCmd     `cmd:"" help:"Send one message and print the reply"`
	History HistoryCmd `cmd:"" help:"Show the retained window of a conversation"`
	Topics  TopicsCmd  `cmd:"" help:"List the registered debate topics"`
	Migrate MigrateCmd `cmd:"" help:"Database migrations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kopi"),
		kong.Description("A debate bot that picks a side and never backs down"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if err := ctx.Run(&cli); err != nil {
		exitWithError(createCLILogger(cli.LogLevel), err)
	}
}
