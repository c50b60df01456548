package command

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// Notifier delivers notifications to sessions
type Notifier interface {
	Notify(n domain.Notification)
}

// Recorder counts dispatch outcomes
type Recorder interface {
	RecordCommand(command, result string)
}

// Dispatcher parses, runs and delivers commands
type Dispatcher struct {
	registry *Registry
	notifier Notifier
	recorder Recorder
}

// NewDispatcher creates a dispatcher. recorder may be nil.
func NewDispatcher(registry *Registry, notifier Notifier, recorder Recorder) *Dispatcher {
	return &Dispatcher{registry: registry, notifier: notifier, recorder: recorder}
}

// Dispatch runs raw for actor. Any failure is delivered to the actor as a
// single chat:error; the returned error is informational only.
func (d *Dispatcher) Dispatch(ctx context.Context, actor Actor, raw string) (err error) {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With("session_id", actor.SessionID, "user_id", actor.UserID)

	name := "unknown"
	defer func() {
		if rec := recover(); rec != nil {
			log.Error(LogMsgHandlerPanic, "command", name, "panic", rec)
			err = fmt.Errorf("panic in %s: %v", name, rec)
			d.deliverError(actor, MsgInternalError)
			d.record(name, ResultPanic)
		}
	}()

	inv, err := d.registry.Parse(ctx, raw, actor)
	if err != nil {
		d.fail(ctx, actor, name, err)
		return err
	}
	name = inv.Definition.Command
	log.Debug(LogMsgDispatch, "command", name)

	if !inv.Definition.Public && !actor.Authenticated() {
		err = domain.ErrNotLoggedIn
		d.fail(ctx, actor, name, err)
		return err
	}

	notes, err := inv.Definition.Handler(ctx, inv)
	if err != nil {
		d.fail(ctx, actor, name, err)
		return err
	}

	for _, n := range notes {
		d.notifier.Notify(n)
	}
	d.record(name, ResultOK)
	return nil
}

func (d *Dispatcher) fail(ctx context.Context, actor Actor, name string, err error) {
	kind := domain.KindOf(err)
	log := logger.FromContext(ctx)
	if kind.UserCorrectable() {
		log.Debug(LogMsgCommandRejected, "command", name, "kind", kind.String(), "error", err)
	} else {
		log.Error(LogMsgCommandFailed, "command", name, "kind", kind.String(), "error", err)
	}
	d.deliverError(actor, d.registry.UserMessage(err))
	d.record(name, kind.String())
}

func (d *Dispatcher) deliverError(actor Actor, msg string) {
	d.notifier.Notify(domain.NotifySocket(actor.SessionID, domain.Event{
		Type:    domain.EventChatError,
		Payload: ErrorPayload{Message: msg},
	}))
}

func (d *Dispatcher) record(name, result string) {
	if d.recorder != nil {
		d.recorder.RecordCommand(name, result)
	}
}

// ErrorPayload is the chat:error body
type ErrorPayload struct {
	Message string `json:"message"`
}
