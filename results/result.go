// Package results provides Result, a value that holds either a success payload or a failure payload, and
// never both or neither.
//
// Every mutation of a Result goes through a transition engine chosen for the pair of payload types. When a
// mutation fails partway, because a payload hook returned an error, the Result is left holding exactly what
// it held before and the hook's error is returned as is. Payload types without lifecycle hooks (see package
// payload) skip that machinery entirely and are copied as plain values.
//
// A Result is not safe for concurrent mutation. Assigning one Result variable to another with = is a plain
// copy that bypasses payload hooks; use Clone, CopyFrom or MoveFrom when the payloads have hooks.
package results

import (
	"fmt"

	"github.com/abevier/expected/internal/union"
	"github.com/abevier/expected/payload"
)

// Result holds either a T (success) or an E (failure).
//
// The zero Result holds the zero T.
type Result[T, E any] struct {
	u   union.Union[T, E]
	eng *engine[T, E]
}

// Void is the success payload of a result that carries no data.
type Void = struct{}

// Status is a result whose success carries no data.
type Status[E any] = Result[Void, E]

// Success returns a result holding v.
func Success[T, E any](v T) Result[T, E] {
	r := Result[T, E]{eng: engineFor[T, E]()}
	r.u.Vacate()
	r.u.PlaceValue(v)
	return r
}

// Failure returns a result holding err.
func Failure[T, E any](err E) Result[T, E] {
	r := Result[T, E]{eng: engineFor[T, E]()}
	r.u.Vacate()
	r.u.PlaceErr(err)
	return r
}

// FromUnexpected returns a result holding the error wrapped by u.
func FromUnexpected[T, E any](u Unexpected[E]) Result[T, E] {
	return Failure[T](u.Value())
}

// Done returns a successful status.
func Done[E any]() Status[E] {
	return Success[Void, E](Void{})
}

// Failed returns a failed status.
func Failed[E any](err E) Status[E] {
	return Failure[Void](err)
}

// New returns a failure holding err when err is non-nil, and a success holding val otherwise.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](val)
}

// Unwrap returns the success payload and a nil error, or T's zero value and the failure.
func Unwrap[T any](r *Result[T, error]) (T, error) {
	v, err, ok := r.Get()
	switch {
	case ok:
		return v, nil
	case r.IsEmpty():
		return v, emptyHeld()
	}
	return v, err
}

// InPlace returns a result whose success payload is built by src. If src fails its error is returned.
func InPlace[T, E any](src payload.Source[T]) (Result[T, E], error) {
	r := Result[T, E]{eng: engineFor[T, E]()}
	r.u.Vacate()
	if err := r.u.BuildValue(src.Build); err != nil {
		return Result[T, E]{}, err
	}
	return r, nil
}

// InPlaceErr returns a result whose failure payload is built by src. If src fails its error is returned.
func InPlaceErr[T, E any](src payload.Source[E]) (Result[T, E], error) {
	r := Result[T, E]{eng: engineFor[T, E]()}
	r.u.Vacate()
	if err := r.u.BuildErr(src.Build); err != nil {
		return Result[T, E]{}, err
	}
	return r, nil
}

// Convert returns a Result[T, E] built from src, converting whichever payload is live.
func Convert[T, E, U, G any](src *Result[U, G], cv payload.Conversion[U, T], ce payload.Conversion[G, E]) (Result[T, E], error) {
	switch src.u.State() {
	case union.Value:
		return InPlace[T, E](cv.From(src.u.Value()))
	case union.Failure:
		return InPlaceErr[T, E](ce.From(src.u.Err()))
	}

	r := Result[T, E]{eng: engineFor[T, E]()}
	r.u.Vacate()
	return r, nil
}

// AssignConverted replaces dst's payload with the conversion of src's live payload. If the conversion fails
// dst keeps its original payload.
func AssignConverted[T, E, U, G any](dst *Result[T, E], src *Result[U, G], cv payload.Conversion[U, T], ce payload.Conversion[G, E]) error {
	e := dst.engine()
	switch src.u.State() {
	case union.Value:
		return e.emplaceValue(&dst.u, cv.From(src.u.Value()))
	case union.Failure:
		return e.emplaceErr(&dst.u, ce.From(src.u.Err()))
	}

	e.destroyLive(&dst.u)
	return nil
}

func (r *Result[T, E]) engine() *engine[T, E] {
	if r.eng == nil {
		r.eng = engineFor[T, E]()
	}
	return r.eng
}

// HasValue reports whether the success payload is live.
func (r *Result[T, E]) HasValue() bool {
	return r.u.State() == union.Value
}

// IsFailure reports whether the failure payload is live.
func (r *Result[T, E]) IsFailure() bool {
	return r.u.State() == union.Failure
}

// IsEmpty reports whether no payload is live, which only happens after Destroy or a failed rollback.
func (r *Result[T, E]) IsEmpty() bool {
	return r.u.State() == union.Empty
}

// Value returns the success payload. It panics with a *BadAccessError[E] if the failure is live.
func (r *Result[T, E]) Value() T {
	return *r.ValuePtr()
}

// ValuePtr returns the live success payload for in-place modification. It panics like Value.
func (r *Result[T, E]) ValuePtr() *T {
	switch r.u.State() {
	case union.Failure:
		panic(&BadAccessError[E]{Err: *r.u.Err()})
	case union.Empty:
		panic(emptyHeld())
	}
	return r.u.Value()
}

// Err returns the failure payload. It panics if the success is live.
func (r *Result[T, E]) Err() E {
	return *r.ErrPtr()
}

// ErrPtr returns the live failure payload for in-place modification. It panics like Err.
func (r *Result[T, E]) ErrPtr() *E {
	switch r.u.State() {
	case union.Value:
		panic(valueHeld())
	case union.Empty:
		panic(emptyHeld())
	}
	return r.u.Err()
}

// Get returns the success payload and true, or the failure payload and false.
func (r *Result[T, E]) Get() (T, E, bool) {
	var (
		v T
		e E
	)

	switch r.u.State() {
	case union.Value:
		return *r.u.Value(), e, true
	case union.Failure:
		return v, *r.u.Err(), false
	}
	return v, e, false
}

// ValueOr returns the success payload, or fallback when it is not live.
func (r *Result[T, E]) ValueOr(fallback T) T {
	if r.HasValue() {
		return *r.u.Value()
	}
	return fallback
}

// ValueOrElse returns the success payload, or the result of fn applied to the failure.
func (r *Result[T, E]) ValueOrElse(fn func(E) T) T {
	switch r.u.State() {
	case union.Value:
		return *r.u.Value()
	case union.Failure:
		return fn(*r.u.Err())
	}

	var zero E
	return fn(zero)
}

// Clone returns a copy of r made with the payload's copy hook.
func (r *Result[T, E]) Clone() (Result[T, E], error) {
	e := r.engine()
	out := Result[T, E]{eng: e}
	if err := e.copyConstruct(&out.u, &r.u); err != nil {
		return Result[T, E]{}, err
	}
	return out, nil
}

// Move returns a result holding r's payload, moved with the payload's move hook. r keeps its state with a
// moved-from payload.
func (r *Result[T, E]) Move() (Result[T, E], error) {
	e := r.engine()
	out := Result[T, E]{eng: e}
	if err := e.moveConstruct(&out.u, &r.u); err != nil {
		return Result[T, E]{}, err
	}
	return out, nil
}

// Destroy ends the life of the live payload, running its destroy hook, and leaves r empty. When neither
// payload type has a destroy hook Destroy does nothing.
func (r *Result[T, E]) Destroy() {
	r.engine().destroy(&r.u)
}

// CopyFrom makes r hold a copy of src's payload. On error r is unchanged.
func (r *Result[T, E]) CopyFrom(src *Result[T, E]) error {
	return r.engine().copyAssign(&r.u, &src.u)
}

// MoveFrom makes r hold src's payload, leaving src with a moved-from payload. On error r is unchanged.
func (r *Result[T, E]) MoveFrom(src *Result[T, E]) error {
	return r.engine().moveAssign(&r.u, &src.u)
}

// AssignValue makes r hold v, taking ownership of it. On error r is unchanged.
func (r *Result[T, E]) AssignValue(v T) error {
	e := r.engine()
	if r.HasValue() {
		return e.settleValue("assign", &r.u, e.vt.MoveAssign(r.u.Value(), &v))
	}
	return e.toValue(&r.u, e.vt.MoveSource(&v), "assign")
}

// AssignErr makes r hold err, taking ownership of it. On error r is unchanged.
func (r *Result[T, E]) AssignErr(err E) error {
	e := r.engine()
	if r.IsFailure() {
		return e.settleErr("assign", &r.u, e.et.MoveAssign(r.u.Err(), &err))
	}
	return e.toErr(&r.u, e.et.MoveSource(&err), "assign")
}

// AssignUnexpected makes r hold the error wrapped by u.
func (r *Result[T, E]) AssignUnexpected(u Unexpected[E]) error {
	return r.AssignErr(u.Value())
}

// Emplace makes r hold a success built by src and returns it. If src fails r is unchanged.
func (r *Result[T, E]) Emplace(src payload.Source[T]) (*T, error) {
	if err := r.engine().emplaceValue(&r.u, src); err != nil {
		return nil, err
	}
	return r.u.Value(), nil
}

// EmplaceErr makes r hold a failure built by src and returns it. If src fails r is unchanged.
func (r *Result[T, E]) EmplaceErr(src payload.Source[E]) (*E, error) {
	if err := r.engine().emplaceErr(&r.u, src); err != nil {
		return nil, err
	}
	return r.u.Err(), nil
}

// SwapWith exchanges the payloads of r and other. On error both are unchanged.
func (r *Result[T, E]) SwapWith(other *Result[T, E]) error {
	return r.engine().swap(&r.u, &other.u)
}

// Swap exchanges the payloads of a and b.
func Swap[T, E any](a, b *Result[T, E]) error {
	return a.SwapWith(b)
}

func (r *Result[T, E]) String() string {
	switch r.u.State() {
	case union.Value:
		return fmt.Sprintf("Success(%v)", *r.u.Value())
	case union.Failure:
		return fmt.Sprintf("Failure(%v)", *r.u.Err())
	}
	return "Empty"
}
