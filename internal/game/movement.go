package game

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

func (g *Game) movementCommands() []command.Definition {
	return []command.Definition{
		{
			Command: CmdMove,
			Aliases: []string{"go"},
			Params: []command.Param{
				requiredParam(ParamMapID),
				requiredParam(ParamY, command.RuleInt),
				requiredParam(ParamX, command.RuleInt),
			},
			Description: "Walk to a location",
			Handler:     g.handleMove,
		},
	}
}

// handleMove relocates the actor. Any coordinates are accepted.
func (g *Game) handleMove(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	y, err := intParam(inv, ParamY)
	if err != nil {
		return nil, err
	}
	x, err := intParam(inv, ParamX)
	if err != nil {
		return nil, err
	}
	from := actor.LocationID()
	to := domain.LocationKey{MapID: inv.String(ParamMapID), Y: y, X: x}

	if to != from {
		actor.SetLocation(to)
		g.hub.Move(inv.Actor.SessionID, to)
	}
	moved := domain.NotifySocket(inv.Actor.SessionID, domain.Event{
		Type:    domain.EventWorldMoved,
		Payload: MovedPayload{From: from, To: to, Look: g.lookPayload(to)},
	})
	if to == from {
		return []domain.Notification{moved}, nil
	}

	return []domain.Notification{
		domain.NotifyRoom(from, infoEvent(MsgLeaves, actor.Name())),
		domain.NotifyRoom(to, infoEvent(MsgArrives, actor.Name()), inv.Actor.SessionID),
		moved,
	}, nil
}
