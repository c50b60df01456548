package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/shop"
)

func (g *Game) tradeCommands() []command.Definition {
	return []command.Definition{
		{
			Command:     CmdShop,
			Aliases:     []string{"list"},
			Description: "Show what the shop here sells",
			Handler:     g.handleShop,
		},
		{
			Command: CmdBuy,
			Params: []command.Param{
				requiredParam(ParamIndex, command.RuleInt),
				requiredParam(ParamItemID),
				optionalParam(ParamFingerprint),
			},
			Description: "Buy one unit of a listed item",
			Handler:     g.handleBuy,
		},
		{
			Command:     CmdSell,
			Params:      []command.Param{requiredParam(ParamFingerprint)},
			Description: "Sell one unit of an item to the shop here",
			Handler:     g.handleSell,
		},
	}
}

func (g *Game) shopHere(actor domain.Character) (*shop.Shop, error) {
	s, ok := g.shops.At(actor.LocationID())
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, ErrMsgNoShopHere)
	}
	return s, nil
}

func (g *Game) handleShop(ctx context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	s, err := g.shopHere(inv.Actor.Character)
	if err != nil {
		return nil, err
	}
	return []domain.Notification{
		domain.NotifySocket(inv.Actor.SessionID, domain.Event{
			Type:    domain.EventShopList,
			Payload: shop.SellListPayload(ctx, s, g.catalog),
		}),
	}, nil
}

func (g *Game) handleBuy(ctx context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	s, err := g.shopHere(actor)
	if err != nil {
		return nil, err
	}
	index, err := intParam(inv, ParamIndex)
	if err != nil {
		return nil, err
	}
	ref := shop.EntryRef{
		Index:       index,
		ItemID:      strings.ToLower(inv.String(ParamItemID)),
		Fingerprint: inv.String(ParamFingerprint),
	}

	receipt, err := g.engine.Buy(ctx, actor, s, ref)
	if err != nil {
		return nil, err
	}
	g.persist(actor, receipt.Item)
	g.saveProfile(actor)
	return append(receipt.Notifications, domain.NotifySocket(inv.Actor.SessionID, inventoryEvent(actor))), nil
}

func (g *Game) handleSell(ctx context.Context, inv *command.Invocation) ([]domain.Notification, error) {
	actor := inv.Actor.Character
	s, err := g.shopHere(actor)
	if err != nil {
		return nil, err
	}

	receipt, err := g.engine.Sell(ctx, actor, s, inv.String(ParamFingerprint))
	if err != nil {
		return nil, err
	}
	g.persist(actor, receipt.Item)
	g.release(actor, receipt.Released)
	g.saveProfile(actor)
	return append(receipt.Notifications, domain.NotifySocket(inv.Actor.SessionID, inventoryEvent(actor))), nil
}
