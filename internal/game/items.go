package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/item"
)

func (g *Game) itemCommands() []command.Definition {
	return []command.Definition{
		{
			Command:     CmdInventory,
			Aliases:     []string{"inv", "i"},
			Description: "Show what you carry",
			Handler:     g.handleInventory,
		},
		{
			Command:     CmdDrop,
			Params:      []command.Param{requiredParam(ParamFingerprint), optionalParam(ParamAmount, command.RuleInt)},
			Description: "Drop an item, or part of a stack, on the ground",
			Handler:     g.handleDrop,
		},
		{
			Command:     CmdTake,
			Aliases:     []string{"pickup", "get"},
			Params:      []command.Param{optionalParam(ParamName), optionalParam(ParamAmount)},
			Description: "Pick up an item from the ground",
			Handler:     g.handleTake,
		},
		{
			Command:     CmdLook,
			Aliases:     []string{"l"},
			Description: "Look around",
			Handler:     g.handleLook,
		},
	}
}

func (g *Game) handleInventory(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, inventoryEvent(inv.Actor.Character)),
	}, nil
}

func (g *Game) handleDrop(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	fingerprint := inv.String(ParamFingerprint)
	held, ok := actor.FindItem(fingerprint)
	if !ok {
		return nil, fmt.Errorf(ErrFmtNoItemHeld, domain.ErrNotFound, fingerprint)
	}
	amount, err := amountArg(inv)
	if err != nil {
		return nil, err
	}

	loc := actor.LocationID()
	dropped := held
	if held.Stackable() && amount > 0 && amount < held.Durability {
		part, ok := g.catalog.Instantiate(held.ID, held.Modifiers, nil)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, held.ID)
		}
		part.Durability = amount
		held.Durability -= amount
		g.catalog.DropAt(loc, part)
		g.persist(actor, held)
		dropped = part
	} else {
		actor.RemoveItem(fingerprint)
		g.release(actor, g.catalog.DropAt(loc, held))
	}

	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, infoEvent(MsgDropped, item.DisplayName(dropped))),
		domain.NotifySocket(inv.Actor.SessionID, inventoryEvent(actor)),
		domain.NotifyRoom(loc, g.worldItemsEvent(loc)),
	}, nil
}

func (g *Game) handleTake(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	if err := g.cooldowns.Check(actor.ID(), domain.ActionTake); err != nil {
		return nil, err
	}
	name, amount := splitTakeArgs(inv.String(ParamName), inv.String(ParamAmount))
	loc := actor.LocationID()

	// Capacity is checked against the ground entry before anything moves
	peek, err := g.catalog.FindAt(loc, name)
	if err != nil {
		return nil, err
	}
	if !actor.HasRoomForItem(peek) {
		return nil, domain.ErrNoInventorySpace
	}

	picked, err := g.catalog.PickupAt(loc, name, amount)
	if err != nil {
		return nil, err
	}
	held := actor.GiveItem(picked, nil)
	g.persist(actor, held)
	g.cooldowns.Add(actor.ID(), domain.ActionTake, nil, true)

	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, infoEvent(MsgPickedUp, item.DisplayName(picked))),
		domain.NotifySocket(inv.Actor.SessionID, inventoryEvent(actor)),
		domain.NotifyRoom(loc, g.worldItemsEvent(loc)),
	}, nil
}

func (g *Game) handleLook(_ context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	loc := inv.Actor.Character.LocationID()
	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, domain.Event{Type: domain.EventWorldLook, Payload: g.lookPayload(loc)}),
	}, nil
}

// amountArg reads the optional Amount param. Absent means 0, the whole item.
func amountArg(inv *command.Invocation) (int, error) {
	if !inv.Has(ParamAmount) {
		return 0, nil
	}
	n, ok := inv.Int(ParamAmount)
	if !ok || n <= 0 {
		return 0, &command.Error{
			Command: inv.Definition.Command,
			Param:   ParamAmount,
			Rule:    command.RuleInt,
			Value:   inv.String(ParamAmount),
			Err:     fmt.Errorf("%w: %s", domain.ErrInvalidParam, ErrMsgBadAmount),
		}
	}
	return n, nil
}

// splitTakeArgs treats a trailing positive number as the amount and the rest
// as the item name, so multi-word names need no quoting.
func splitTakeArgs(name, amount string) (string, int) {
	words := strings.Fields(name + " " + amount)
	if len(words) == 0 {
		return "", 0
	}
	last := words[len(words)-1]
	if n, err := strconv.Atoi(last); err == nil && n > 0 {
		return strings.Join(words[:len(words)-1], " "), n
	}
	return strings.Join(words, " "), 0
}
