package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

type fakeNotifier struct {
	mu    sync.Mutex
	notes []domain.Notification
}

func (f *fakeNotifier) Notify(n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, n)
}

func (f *fakeNotifier) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.notes))
	for i, n := range f.notes {
		out[i] = n.Event.Type
	}
	return out
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordCommand(command, result string) {
	m.Called(command, result)
}

type stubCharacter struct{ domain.Character }

func chatRegistry(t *testing.T, handlerCalls *int) *Registry {
	t.Helper()
	r := NewRegistry("/")
	r.RegisterResolver(RuleOnline, func(_ context.Context, _ Actor, raw string) (any, error) {
		if raw == "bob" {
			return raw, nil
		}
		return nil, domain.ErrNotFound
	})
	r.MustRegister(
		Definition{
			Command: "whisper",
			Params: []Param{
				{Name: "Player", Rules: []string{RuleRequired, RuleOnline}},
				{Name: "Message", Rules: []string{RuleRequired}},
			},
			Handler: func(_ context.Context, inv *Invocation) ([]domain.Notification, error) {
				*handlerCalls++
				ev := domain.Event{Type: domain.EventChatWhisper, Payload: inv.String("Message")}
				return []domain.Notification{
					domain.NotifyUser("bob", ev),
					domain.NotifySocket(inv.Actor.SessionID, ev),
				}, nil
			},
		},
		Definition{
			Command: "help",
			Public:  true,
			Handler: func(context.Context, *Invocation) ([]domain.Notification, error) {
				return []domain.Notification{domain.NotifySocket("s1", domain.Event{Type: domain.EventHelpList})}, nil
			},
		},
		Definition{
			Command: "explode",
			Handler: func(context.Context, *Invocation) ([]domain.Notification, error) {
				panic("kaboom")
			},
		},
		Definition{
			Command: "save",
			Handler: func(context.Context, *Invocation) ([]domain.Notification, error) {
				return nil, errors.Join(domain.ErrPersistence, errors.New("disk full"))
			},
		},
	)
	return r
}

func TestDispatcher_WhisperMissingMessage(t *testing.T) {
	calls := 0
	notifier := &fakeNotifier{}
	recorder := &MockRecorder{}
	recorder.On("RecordCommand", "unknown", domain.KindValidation.String()).Once()

	d := NewDispatcher(chatRegistry(t, &calls), notifier, recorder)
	actor := Actor{SessionID: "s1", UserID: "alice", Character: stubCharacter{}}

	err := d.Dispatch(context.Background(), actor, "/whisper bob")

	assert.ErrorIs(t, err, domain.ErrMissingParam)
	assert.Zero(t, calls)
	assert.Equal(t, []string{domain.EventChatError}, notifier.types(), "no chat event to either party")
	assert.Equal(t, "s1", notifier.notes[0].SocketID)
	recorder.AssertExpectations(t)
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	calls := 0
	notifier := &fakeNotifier{}
	recorder := &MockRecorder{}
	recorder.On("RecordCommand", "whisper", ResultOK).Once()

	d := NewDispatcher(chatRegistry(t, &calls), notifier, recorder)
	actor := Actor{SessionID: "s1", UserID: "alice", Character: stubCharacter{}}

	require.NoError(t, d.Dispatch(context.Background(), actor, "/whisper bob hi there"))
	assert.Equal(t, 1, calls)
	require.Len(t, notifier.notes, 2)
	assert.Equal(t, domain.AudienceUser, notifier.notes[0].Audience)
	assert.Equal(t, "hi there", notifier.notes[0].Event.Payload)
	assert.Equal(t, domain.AudienceSocket, notifier.notes[1].Audience)
	recorder.AssertExpectations(t)
}

func TestDispatcher_Failures(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		actor     Actor
		wantMsg   string
		wantEvent string
	}{
		{"logged out", "/whisper bob hi", Actor{SessionID: "s1"}, MsgNotLoggedIn, domain.EventChatError},
		{"public without login", "/help", Actor{SessionID: "s1"}, "", domain.EventHelpList},
		{"panic is recovered", "/explode", Actor{SessionID: "s1", Character: stubCharacter{}}, MsgInternalError, domain.EventChatError},
		{"persistence", "/save", Actor{SessionID: "s1", Character: stubCharacter{}}, MsgPersistenceFailure, domain.EventChatError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			notifier := &fakeNotifier{}
			d := NewDispatcher(chatRegistry(t, &calls), notifier, nil)

			assert.NotPanics(t, func() {
				_ = d.Dispatch(context.Background(), tt.actor, tt.raw)
			})

			require.Len(t, notifier.notes, 1)
			assert.Equal(t, tt.wantEvent, notifier.notes[0].Event.Type)
			if tt.wantMsg != "" {
				payload, ok := notifier.notes[0].Event.Payload.(ErrorPayload)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, payload.Message)
			}
		})
	}
}
