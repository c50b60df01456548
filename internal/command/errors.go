package command

import (
	"errors"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Error is a parameter rule failure
type Error struct {
	Command string
	Param   string
	Rule    string
	Value   string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf(ErrFmtParam, e.Command, e.Param, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UnknownCommandError carries the closest registered command, if any
type UnknownCommandError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf(ErrFmtUnknownCommand, domain.ErrMsgUnknownCommand, e.Name)
}

func (e *UnknownCommandError) Unwrap() error {
	return domain.ErrUnknownCommand
}

// UserMessage renders err for the actor who caused it
func (r *Registry) UserMessage(err error) string {
	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		msg := fmt.Sprintf(MsgUnknownCommand, unknown.Name)
		if unknown.Suggestion != "" {
			msg += fmt.Sprintf(MsgDidYouMean, r.prefix+unknown.Suggestion)
		}
		return msg
	}

	var paramErr *Error
	if errors.As(err, &paramErr) {
		switch {
		case errors.Is(err, domain.ErrMissingParam):
			usage := paramErr.Param
			if def, ok := r.Lookup(paramErr.Command); ok {
				usage = def.Usage(r.prefix)
			}
			return fmt.Sprintf(MsgMissingParam, paramErr.Param, usage)
		case errors.Is(err, domain.ErrInvalidLength):
			return fmt.Sprintf(MsgInvalidLength, paramErr.Param)
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Sprintf(MsgParamNotFound, paramErr.Param, paramErr.Value)
		default:
			return fmt.Sprintf(MsgInvalidParam, paramErr.Param)
		}
	}

	if errors.Is(err, domain.ErrNotLoggedIn) {
		return MsgNotLoggedIn
	}

	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindPrecondition:
		return err.Error()
	case domain.KindNotFound:
		return MsgNotAvailable
	case domain.KindPersistence:
		return MsgPersistenceFailure
	default:
		return MsgInternalError
	}
}
