package results

import (
	"fmt"

	"github.com/abevier/expected/payload"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// ErrBadAccess is matched by every panic raised when the payload that is not live is accessed.
	ErrBadAccess = errors.New("bad result access")
	// ErrEmpty is the panic raised when a result that holds no payload is accessed.
	ErrEmpty = errors.New("result holds no payload")
	// ErrRollback is matched by the panic raised when a transition can neither complete nor be undone.
	ErrRollback = errors.New("result rollback failed")
	// ErrBrokenGuarantee reports a payload hook or source that was declared infallible but failed.
	ErrBrokenGuarantee = errors.New("infallible payload operation failed")
)

// BadAccessError is the panic raised when the success payload is read while a failure is live.
// It carries the live failure.
type BadAccessError[E any] struct {
	Err E
}

func (e *BadAccessError[E]) Error() string {
	return fmt.Sprintf("bad result access: result holds failure %v", e.Err)
}

func (e *BadAccessError[E]) Is(target error) bool {
	return target == ErrBadAccess
}

// RollbackError is the panic raised when a failed transition could not restore the original payload. The
// results involved hold no payload afterwards; there is no state to return to, so it is not returned as an
// error.
type RollbackError struct {
	// Op is the operation that failed: assign, emplace or swap.
	Op string
	// From and To are the payload types of the transition.
	From, To string

	errs *multierror.Error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("result %s from %s to %s could not be rolled back: %v", e.Op, e.From, e.To, e.errs.ErrorOrNil())
}

// Unwrap returns the primary failure and the rollback failure.
func (e *RollbackError) Unwrap() error {
	return e.errs.ErrorOrNil()
}

func (e *RollbackError) Is(target error) bool {
	return target == ErrRollback
}

// rollbackFailed logs and panics. Payload state is lost at this point.
func rollbackFailed(op, from, to string, errs ...error) {
	err := &RollbackError{Op: op, From: from, To: to}
	for _, e := range errs {
		if e != nil {
			err.errs = multierror.Append(err.errs, e)
		}
	}

	log.Error().
		Err(err.errs.ErrorOrNil()).
		Str("op", op).
		Str("from", from).
		Str("to", to).
		Msg("result transition could not be rolled back")

	panic(err)
}

// settle turns a *payload.RestoreError from a same-state payload operation into the fatal rollback panic,
// once lose has dropped the payloads left behind. Any other error is returned as is.
func settle(op, typ string, err error, lose func()) error {
	var re *payload.RestoreError
	if !errors.As(err, &re) {
		return err
	}

	lose()
	if re.Restore == nil {
		rollbackFailed(op, typ, typ, re.Err, ErrBrokenGuarantee)
	}
	rollbackFailed(op, typ, typ, re.Err, re.Restore)
	return nil
}

func valueHeld() error {
	return errors.Wrap(ErrBadAccess, "result holds a value")
}

func emptyHeld() error {
	return errors.WithStack(ErrEmpty)
}
