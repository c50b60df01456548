package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sahilm/fuzzy"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Resolver turns a raw argument into a domain object. A failed lookup should
// return an error wrapping domain.ErrNotFound.
type Resolver func(ctx context.Context, actor Actor, raw string) (any, error)

// Registry maps command names and aliases to definitions. Registration
// happens at boot; lookups afterwards are read-only.
type Registry struct {
	prefix    string
	validate  *validator.Validate
	defs      []*Definition
	byName    map[string]*Definition
	resolvers map[string]Resolver
}

// NewRegistry creates a registry whose commands start with prefix
func NewRegistry(prefix string) *Registry {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	v := validator.New()
	_ = v.RegisterValidation(TagInteger, validateInteger)
	return &Registry{
		prefix:    prefix,
		validate:  v,
		byName:    make(map[string]*Definition),
		resolvers: make(map[string]Resolver),
	}
}

// Prefix returns the command prefix
func (r *Registry) Prefix() string { return r.prefix }

// RegisterResolver installs a phase-two rule
func (r *Registry) RegisterResolver(rule string, fn Resolver) {
	r.resolvers[rule] = fn
}

// Register adds definitions. Names, aliases and rules are checked up front so
// a failing batch registers nothing.
func (r *Registry) Register(defs ...Definition) error {
	pending := make(map[string]bool)
	for i := range defs {
		def := &defs[i]
		if def.Command == "" {
			return errors.New(ErrMsgEmptyCommand)
		}
		if def.Handler == nil {
			return fmt.Errorf("%s: %s", ErrMsgNilHandler, def.Command)
		}
		for _, key := range append([]string{def.Command}, def.Aliases...) {
			if _, exists := r.byName[key]; exists || pending[key] {
				return fmt.Errorf("%s: %s", ErrMsgDuplicateCommand, key)
			}
			pending[key] = true
		}
		for _, p := range def.Params {
			for _, rule := range p.Rules {
				if err := r.checkRule(rule); err != nil {
					return fmt.Errorf("%s %s: %w", def.Command, p.Name, err)
				}
			}
		}
	}

	for i := range defs {
		def := defs[i]
		r.defs = append(r.defs, &def)
		r.byName[def.Command] = &def
		for _, alias := range def.Aliases {
			r.byName[alias] = &def
		}
	}
	return nil
}

// MustRegister is Register for boot code
func (r *Registry) MustRegister(defs ...Definition) {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
}

// Lookup finds a definition by name or alias, without the prefix
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Definitions returns the registered commands in registration order
func (r *Registry) Definitions() []*Definition {
	out := make([]*Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Parse tokenizes raw, looks up the command and runs its param rules:
// syntactic rules for every param first, then resolvers.
func (r *Registry) Parse(ctx context.Context, raw string, actor Actor) (*Invocation, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, &UnknownCommandError{}
	}

	head := tokens[0]
	if !strings.HasPrefix(head, r.prefix) {
		return nil, &UnknownCommandError{Name: head}
	}
	name := strings.TrimPrefix(head, r.prefix)
	def, ok := r.byName[name]
	if !ok {
		return nil, &UnknownCommandError{Name: head, Suggestion: r.suggest(name)}
	}

	rest := tokens[1:]
	values := make([]string, len(def.Params))
	for i := range def.Params {
		switch {
		case i >= len(rest):
		case i == len(def.Params)-1:
			values[i] = strings.Join(rest[i:], " ")
		default:
			values[i] = rest[i]
		}
	}

	inv := &Invocation{
		Actor:      actor,
		Definition: def,
		Raw:        raw,
		Args:       make(map[string]any, len(def.Params)),
	}

	// Phase 1: pure syntactic predicates
	for i, p := range def.Params {
		inv.Args[p.Name] = values[i]
		if values[i] == "" && p.Optional() {
			continue
		}
		for _, rule := range p.Rules {
			if _, isResolver := r.resolvers[ruleName(rule)]; isResolver {
				continue
			}
			if err := r.checkSyntax(rule, values[i]); err != nil {
				return nil, &Error{Command: def.Command, Param: p.Name, Rule: rule, Value: values[i], Err: err}
			}
		}
	}

	// Phase 2: resolvers may replace the raw value
	for i, p := range def.Params {
		if values[i] == "" && p.Optional() {
			continue
		}
		for _, rule := range p.Rules {
			resolve, isResolver := r.resolvers[ruleName(rule)]
			if !isResolver {
				continue
			}
			resolved, err := resolve(ctx, actor, values[i])
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					err = fmt.Errorf("%w: %w", domain.ErrNotFound, err)
				}
				return nil, &Error{Command: def.Command, Param: p.Name, Rule: rule, Value: values[i], Err: err}
			}
			inv.Args[p.Name] = resolved
		}
	}

	return inv, nil
}

// checkSyntax maps a rule onto a validator tag
func (r *Registry) checkSyntax(rule, value string) error {
	name, arg := splitRule(rule)
	var tag string
	var kind error
	switch name {
	case RuleRequired:
		tag, kind = "required", domain.ErrMissingParam
	case RuleMinLen:
		tag, kind = "min="+arg, domain.ErrInvalidLength
	case RuleMaxLen:
		tag, kind = "max="+arg, domain.ErrInvalidLength
	case RuleInt:
		tag, kind = TagInteger, domain.ErrInvalidParam
	default:
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidParam, ErrMsgUnknownRule, rule)
	}
	if err := r.validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %s", kind, rule)
	}
	return nil
}

// validateInteger accepts what Invocation.Int can parse
func validateInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

func (r *Registry) checkRule(rule string) error {
	name, arg := splitRule(rule)
	if _, ok := r.resolvers[name]; ok {
		return nil
	}
	switch name {
	case RuleRequired, RuleInt:
		return nil
	case RuleMinLen, RuleMaxLen:
		if n, err := strconv.Atoi(arg); err != nil || n < 0 {
			return fmt.Errorf("%s: %s", ErrMsgBadRuleArg, rule)
		}
		return nil
	}
	return fmt.Errorf("%s: %s", ErrMsgUnknownRule, rule)
}

// suggest returns the closest registered name for a "did you mean" hint
func (r *Registry) suggest(name string) string {
	if name == "" {
		return ""
	}
	names := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		names = append(names, def.Command)
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func ruleName(rule string) string {
	name, _ := splitRule(rule)
	return name
}

func splitRule(rule string) (string, string) {
	name, arg, _ := strings.Cut(rule, ":")
	return name, arg
}
