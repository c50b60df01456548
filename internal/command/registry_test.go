package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func noop(context.Context, *Invocation) ([]domain.Notification, error) { return nil, nil }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry("/")
	r.RegisterResolver(RuleOnline, func(_ context.Context, _ Actor, raw string) (any, error) {
		if raw == "bob" {
			return "resolved:bob", nil
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, raw)
	})
	require.NoError(t, r.Register(
		Definition{
			Command: "say",
			Params:  []Param{{Name: "Message", Rules: []string{RuleRequired, "maxlen:20"}}},
			Handler: noop,
		},
		Definition{
			Command: "whisper",
			Aliases: []string{"w", "tell"},
			Params: []Param{
				{Name: "Player", Rules: []string{RuleRequired, RuleOnline}},
				{Name: "Message", Rules: []string{RuleRequired, "minlen:2"}},
			},
			Handler: noop,
		},
		Definition{
			Command: "take",
			Params: []Param{
				{Name: "Name"},
				{Name: "Amount", Rules: []string{RuleInt}},
			},
			Handler: noop,
		},
	))
	return r
}

func TestRegistry_Register(t *testing.T) {
	t.Run("duplicate alias", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.Register(Definition{Command: "msg", Aliases: []string{"w"}, Handler: noop})
		assert.ErrorContains(t, err, ErrMsgDuplicateCommand)
		_, ok := r.Lookup("msg")
		assert.False(t, ok, "a failing batch registers nothing")
	})

	t.Run("duplicate within batch", func(t *testing.T) {
		r := NewRegistry("")
		err := r.Register(
			Definition{Command: "look", Handler: noop},
			Definition{Command: "l", Aliases: []string{"look"}, Handler: noop},
		)
		assert.Error(t, err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		r := NewRegistry("/")
		err := r.Register(Definition{Command: "x", Params: []Param{{Name: "A", Rules: []string{"telepathic"}}}, Handler: noop})
		assert.ErrorContains(t, err, ErrMsgUnknownRule)
	})

	t.Run("bad rule argument", func(t *testing.T) {
		r := NewRegistry("/")
		err := r.Register(Definition{Command: "x", Params: []Param{{Name: "A", Rules: []string{"minlen:abc"}}}, Handler: noop})
		assert.ErrorContains(t, err, ErrMsgBadRuleArg)
	})

	t.Run("must register panics", func(t *testing.T) {
		r := NewRegistry("/")
		assert.Panics(t, func() { r.MustRegister(Definition{Command: "nohandler"}) })
	})

	t.Run("aliases share the definition", func(t *testing.T) {
		r := newTestRegistry(t)
		a, ok := r.Lookup("whisper")
		require.True(t, ok)
		b, ok := r.Lookup("tell")
		require.True(t, ok)
		assert.Same(t, a, b)
		assert.Len(t, r.Definitions(), 3)
		assert.Equal(t, "say", r.Definitions()[0].Command)
	})
}

func TestRegistry_Parse(t *testing.T) {
	ctx := context.Background()
	actor := Actor{SessionID: "s1", UserID: "alice"}

	tests := []struct {
		name    string
		raw     string
		wantErr error
		param   string
	}{
		{"no prefix", "say hi", domain.ErrUnknownCommand, ""},
		{"unknown command", "/dance", domain.ErrUnknownCommand, ""},
		{"case sensitive", "/SAY hi", domain.ErrUnknownCommand, ""},
		{"empty input", "   ", domain.ErrUnknownCommand, ""},
		{"missing message", "/say", domain.ErrMissingParam, "Message"},
		{"too long", "/say this message is far too long", domain.ErrInvalidLength, "Message"},
		{"whisper missing message", "/whisper bob", domain.ErrMissingParam, "Message"},
		{"whisper unknown player", "/whisper carol hello", domain.ErrNotFound, "Player"},
		{"whisper short message", "/w bob a", domain.ErrInvalidLength, "Message"},
		{"take non numeric amount", "/take bread lots", domain.ErrInvalidParam, "Amount"},
		{"take decimal amount", "/take bread 1.5", domain.ErrInvalidParam, "Amount"},
		{"take exponent amount", "/take bread 1e3", domain.ErrInvalidParam, "Amount"},
	}
	r := newTestRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := r.Parse(ctx, tt.raw, actor)
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.param != "" {
				var perr *Error
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, tt.param, perr.Param)
			}
		})
	}
}

func TestRegistry_Parse_Success(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	actor := Actor{SessionID: "s1", UserID: "alice"}

	t.Run("last param absorbs the rest", func(t *testing.T) {
		inv, err := r.Parse(ctx, "/say  hello   there", actor)
		require.NoError(t, err)
		assert.Equal(t, "hello there", inv.String("Message"))
		assert.Equal(t, "say", inv.Definition.Command)
	})

	t.Run("resolver replaces raw value", func(t *testing.T) {
		inv, err := r.Parse(ctx, "/tell bob meet me at the bakery", actor)
		require.NoError(t, err)
		assert.Equal(t, "resolved:bob", inv.Value("Player"))
		assert.Equal(t, "meet me at the bakery", inv.String("Message"))
		assert.Equal(t, actor, inv.Actor)
	})

	t.Run("optional params skip rules", func(t *testing.T) {
		inv, err := r.Parse(ctx, "/take", actor)
		require.NoError(t, err)
		assert.False(t, inv.Has("Name"))
		_, ok := inv.Int("Amount")
		assert.False(t, ok)
	})

	t.Run("int helper", func(t *testing.T) {
		inv, err := r.Parse(ctx, "/take bread 3", actor)
		require.NoError(t, err)
		assert.Equal(t, "bread", inv.String("Name"))
		n, ok := inv.Int("Amount")
		require.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("signed int", func(t *testing.T) {
		inv, err := r.Parse(ctx, "/take bread -2", actor)
		require.NoError(t, err)
		n, ok := inv.Int("Amount")
		require.True(t, ok)
		assert.Equal(t, -2, n)
	})
}

func TestRegistry_Suggestion(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Parse(context.Background(), "/whsp bob hi", Actor{})
	var unknown *UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "whisper", unknown.Suggestion)
	assert.Equal(t, "Unknown command /whsp. Did you mean /whisper?", r.UserMessage(err))
}

func TestRegistry_UserMessage(t *testing.T) {
	r := newTestRegistry(t)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing param shows usage", &Error{Command: "whisper", Param: "Message", Err: domain.ErrMissingParam}, "Missing Message. Usage: /whisper <Player> <Message>"},
		{"resolver miss", &Error{Command: "whisper", Param: "Player", Value: "carol", Err: domain.ErrNotFound}, "Player not found: carol"},
		{"precondition", fmt.Errorf("%w: costs 5", domain.ErrInsufficientFunds), "insufficient funds: costs 5"},
		{"not found", fmt.Errorf("%w: entry gone", domain.ErrNotFound), MsgNotAvailable},
		{"persistence", domain.ErrPersistence, MsgPersistenceFailure},
		{"internal", errors.New("boom"), MsgInternalError},
		{"logged out", domain.ErrNotLoggedIn, MsgNotLoggedIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.UserMessage(tt.err))
		})
	}
}

func TestDefinition_Usage(t *testing.T) {
	def := Definition{Command: "take", Params: []Param{{Name: "Name"}, {Name: "Amount", Rules: []string{RuleInt}}}}
	assert.Equal(t, "/take [Name] [Amount]", def.Usage("/"))
}
