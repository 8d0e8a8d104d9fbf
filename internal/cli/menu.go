package cli

import (
	"fmt"
	"log/slog"

	"github.com/blockguard-sf/rek/internal/branding"
	"github.com/blockguard-sf/rek/internal/config"
	"github.com/blockguard-sf/rek/internal/menu"
	"github.com/blockguard-sf/rek/internal/scaffold"
)

// topMenu builds the static menu tree for the interactive loop. Nodes are
// constructed once and read-only afterwards.
func topMenu(log *slog.Logger) *menu.Node {
	actions := &menu.Node{
		Prompt: "What do you want to do?",
		Entries: []menu.Entry{
			{Label: "Create", Action: menu.Execute(func() error {
				return scaffold.RunCreate(log, scaffoldDefaults())
			})},
		},
	}

	about := &menu.Node{
		Prompt: "About REK",
		Entries: []menu.Entry{
			{Label: "Version", Action: menu.Execute(func() error {
				fmt.Printf("%s %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
				return nil
			})},
			{Label: "Repository", Action: menu.Execute(func() error {
				fmt.Printf("https://github.com/%s\n", branding.GitHubRepo())
				return nil
			})},
			{Label: "License", Action: menu.Execute(func() error {
				fmt.Println(branding.LicenseName())
				return nil
			})},
		},
	}

	return &menu.Node{
		Prompt: "What do you want to do with REK?",
		Entries: []menu.Entry{
			{Label: "RoLib - Package Actions", Action: menu.Descend(actions)},
			{Label: "About", Action: menu.Descend(about)},
			{Label: "Exit", Action: menu.Exit()},
		},
	}
}

// scaffoldDefaults pulls prompt defaults from the persisted configuration.
func scaffoldDefaults() scaffold.Defaults {
	return scaffold.Defaults{
		Author:  config.Get(config.KeyDefaultAuthor),
		License: config.Get(config.KeyDefaultLicense),
	}
}
