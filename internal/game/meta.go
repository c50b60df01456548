package game

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

func (g *Game) metaCommands() []command.Definition {
	return []command.Definition{
		{
			Command:     CmdHelp,
			Aliases:     []string{"?", "commands"},
			Description: "List commands",
			Public:      true,
			Handler:     g.handleHelp,
		},
	}
}

func (g *Game) handleHelp(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	defs := g.registry.Definitions()
	payload := HelpPayload{Commands: make([]HelpEntry, 0, len(defs))}
	for _, def := range defs {
		payload.Commands = append(payload.Commands, HelpEntry{
			Command:     def.Command,
			Usage:       def.Usage(g.registry.Prefix()),
			Aliases:     def.Aliases,
			Description: def.Description,
		})
	}
	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, domain.Event{Type: domain.EventHelpList, Payload: payload}),
	}, nil
}
