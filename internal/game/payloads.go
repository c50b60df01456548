package game

import (
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/item"
)

// WelcomePayload greets a fresh connection
type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	Prefix    string `json:"prefix"`
	Message   string `json:"message"`
}

// InfoPayload is a plain chat:info line
type InfoPayload struct {
	Message string `json:"message"`
}

// ChatPayload carries say, whisper and global messages
type ChatPayload struct {
	From    string `json:"from"`
	To      string `json:"to,omitempty"`
	Message string `json:"message"`
}

// InventoryPayload is the full inventory:update snapshot
type InventoryPayload struct {
	Cash     int         `json:"cash"`
	Exp      int         `json:"exp"`
	Capacity int         `json:"capacity,omitempty"`
	Items    []item.View `json:"items"`
}

// WorldItemsPayload lists what lies on the ground at a location
type WorldItemsPayload struct {
	Location domain.LocationKey `json:"location"`
	Items    []item.View        `json:"items"`
}

// LookPayload describes a location
type LookPayload struct {
	Location domain.LocationKey `json:"location"`
	Items    []item.View        `json:"items"`
	Players  []string           `json:"players"`
	Shop     *ShopSummary       `json:"shop,omitempty"`
}

// ShopSummary names the shop standing at a location
type ShopSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Selling bool   `json:"selling"`
	Buying  bool   `json:"buying"`
}

// MovedPayload confirms a move and describes the destination
type MovedPayload struct {
	From domain.LocationKey `json:"from"`
	To   domain.LocationKey `json:"to"`
	Look LookPayload        `json:"look"`
}

// HelpPayload lists the registered commands
type HelpPayload struct {
	Commands []HelpEntry `json:"commands"`
}

// HelpEntry is one command in the help list
type HelpEntry struct {
	Command     string   `json:"command"`
	Usage       string   `json:"usage"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
}

type capacityReporter interface {
	Capacity() int
}

func infoEvent(format string, args ...any) domain.Event {
	return domain.Event{Type: domain.EventChatInfo, Payload: InfoPayload{Message: fmt.Sprintf(format, args...)}}
}

func inventoryEvent(c domain.Character) domain.Event {
	payload := InventoryPayload{
		Cash:  c.Cash(),
		Exp:   c.Exp(),
		Items: item.Views(c.Inventory()),
	}
	if cr, ok := c.(capacityReporter); ok {
		payload.Capacity = cr.Capacity()
	}
	return domain.Event{Type: domain.EventInventoryUpdate, Payload: payload}
}

func (g *Game) worldItemsEvent(loc domain.LocationKey) domain.Event {
	return domain.Event{
		Type:    domain.EventWorldItems,
		Payload: WorldItemsPayload{Location: loc, Items: item.Views(g.catalog.ItemsAt(loc))},
	}
}

func (g *Game) lookPayload(loc domain.LocationKey) LookPayload {
	look := LookPayload{
		Location: loc,
		Items:    item.Views(g.catalog.ItemsAt(loc)),
		Players:  []string{},
	}
	for _, p := range g.characters.OnlinePlayers() {
		if p.LocationID() == loc {
			look.Players = append(look.Players, p.Name())
		}
	}
	if s, ok := g.shops.At(loc); ok {
		look.Shop = &ShopSummary{ID: s.ID, Name: s.Name, Selling: s.Sell.Enabled, Buying: s.Buy.Enabled}
	}
	return look
}
