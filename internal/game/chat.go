package game

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

func (g *Game) chatCommands() []command.Definition {
	return []command.Definition{
		{
			Command:     CmdSay,
			Params:      []command.Param{messageParam()},
			Description: "Say something to everyone here",
			Handler:     g.handleSay,
		},
		{
			Command:     CmdWhisper,
			Aliases:     []string{"w", "tell"},
			Params:      []command.Param{requiredParam(ParamPlayer, command.RuleOnline), messageParam()},
			Description: "Send a private message",
			Handler:     g.handleWhisper,
		},
		{
			Command:     CmdGlobal,
			Aliases:     []string{"g"},
			Params:      []command.Param{messageParam()},
			Description: "Talk to the whole server",
			Handler:     g.handleGlobal,
		},
		{
			Command:     CmdIgnore,
			Params:      []command.Param{requiredParam(ParamPlayer, command.RuleOnline)},
			Description: "Toggle ignoring a player's messages",
			Handler:     g.handleIgnore,
		},
	}
}

// gate rejects the action while on cooldown and otherwise starts the default cooldown
func (g *Game) gate(actor domain.Character, action string) error {
	if err := g.cooldowns.Check(actor.ID(), action); err != nil {
		return err
	}
	g.cooldowns.Add(actor.ID(), action, nil, true)
	return nil
}

func (g *Game) handleSay(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	if err := g.gate(actor, domain.ActionChat); err != nil {
		return nil, err
	}
	ev := domain.Event{
		Type:    domain.EventChatSay,
		Payload: ChatPayload{From: actor.Name(), Message: inv.String(ParamMessage)},
	}
	return []domain.Notification{
		domain.NotifyRoom(actor.LocationID(), ev).WithSender(actor.ID()),
	}, nil
}

func (g *Game) handleWhisper(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	target, ok := inv.Value(ParamPlayer).(domain.Character)
	if !ok {
		return nil, fmt.Errorf(ErrFmtPlayerOffline, domain.ErrNotFound, ParamPlayer)
	}
	ev := domain.Event{
		Type:    domain.EventChatWhisper,
		Payload: ChatPayload{From: actor.Name(), To: target.Name(), Message: inv.String(ParamMessage)},
	}
	notes := []domain.Notification{domain.NotifyUser(target.ID(), ev).WithSender(actor.ID())}
	if target.ID() != actor.ID() {
		notes = append(notes, domain.NotifySocket(inv.Actor.SessionID, ev))
	}
	return notes, nil
}

func (g *Game) handleGlobal(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	if err := g.gate(actor, domain.ActionGlobal); err != nil {
		return nil, err
	}
	ev := domain.Event{
		Type:    domain.EventChatGlobal,
		Payload: ChatPayload{From: actor.Name(), Message: inv.String(ParamMessage)},
	}
	return []domain.Notification{domain.NotifyServer(ev).WithSender(actor.ID())}, nil
}

func (g *Game) handleIgnore(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	target, ok := inv.Value(ParamPlayer).(domain.Character)
	if !ok {
		return nil, fmt.Errorf(ErrFmtPlayerOffline, domain.ErrNotFound, ParamPlayer)
	}
	if target.ID() == actor.ID() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParam, ErrMsgSelfIgnore)
	}

	msg := MsgIgnoring
	if g.hub.Ignoring(actor.ID(), target.ID()) {
		g.hub.Unignore(actor.ID(), target.ID())
		msg = MsgUnignored
	} else {
		g.hub.Ignore(actor.ID(), target.ID())
	}
	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, infoEvent(msg, target.Name())),
	}, nil
}
