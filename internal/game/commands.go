package game

import (
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

// commands lists every feature module's definitions
func (g *Game) commands() []command.Definition {
	var defs []command.Definition
	defs = append(defs, g.chatCommands()...)
	defs = append(defs, g.itemCommands()...)
	defs = append(defs, g.tradeCommands()...)
	defs = append(defs, g.movementCommands()...)
	defs = append(defs, g.metaCommands()...)
	return defs
}

func requiredParam(name string, rules ...string) command.Param {
	return command.Param{Name: name, Rules: append([]string{command.RuleRequired}, rules...)}
}

func optionalParam(name string, rules ...string) command.Param {
	return command.Param{Name: name, Rules: rules}
}

// intParam reads an integer argument that the registry has already checked
func intParam(inv *command.Invocation, name string) (int, error) {
	n, ok := inv.Int(name)
	if !ok {
		return 0, &command.Error{
			Command: inv.Definition.Command,
			Param:   name,
			Rule:    command.RuleInt,
			Value:   inv.String(name),
			Err:     domain.ErrInvalidParam,
		}
	}
	return n, nil
}

func messageParam() command.Param {
	return requiredParam(ParamMessage, fmt.Sprintf("%s:%d", command.RuleMaxLen, MaxMessageLength))
}
