package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Actor is whoever issued a command. Character is nil before login.
type Actor struct {
	SessionID string
	UserID    string
	Character domain.Character
}

// Authenticated reports whether the actor is logged in
func (a Actor) Authenticated() bool {
	return a.Character != nil
}

// Handler runs a parsed command and returns the notifications to deliver in order
type Handler func(ctx context.Context, inv *Invocation) ([]domain.Notification, error)

// Param is a positional parameter. A param without the required rule is
// optional and skips its remaining rules when empty.
type Param struct {
	Name  string
	Rules []string
}

// Optional reports whether the param may be omitted
func (p Param) Optional() bool {
	for _, r := range p.Rules {
		if r == RuleRequired {
			return false
		}
	}
	return true
}

// Definition describes one command
type Definition struct {
	Command     string
	Aliases     []string
	Params      []Param
	Description string
	// Public commands may run before login
	Public  bool
	Handler Handler
}

// Usage renders the command signature, e.g. "/whisper <Player> <Message>"
func (d *Definition) Usage(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(d.Command)
	for _, p := range d.Params {
		if p.Optional() {
			b.WriteString(" [" + p.Name + "]")
		} else {
			b.WriteString(" <" + p.Name + ">")
		}
	}
	return b.String()
}

// Invocation is a parsed, validated and resolved command
type Invocation struct {
	Actor      Actor
	Definition *Definition
	Raw        string
	Args       map[string]any
}

// Has reports whether the param was supplied
func (inv *Invocation) Has(name string) bool {
	v, ok := inv.Args[name]
	if !ok {
		return false
	}
	s, isString := v.(string)
	return !isString || s != ""
}

// String returns a raw string argument, empty when absent or resolved
func (inv *Invocation) String(name string) string {
	s, _ := inv.Args[name].(string)
	return s
}

// Int parses an integer argument
func (inv *Invocation) Int(name string) (int, bool) {
	s := inv.String(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Value returns the argument as stored, which is the resolved object for resolver rules
func (inv *Invocation) Value(name string) any {
	return inv.Args[name]
}
