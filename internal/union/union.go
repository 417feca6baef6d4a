// Package union is the raw two-slot storage behind a result: a success slot, a failure slot and a
// discriminant naming the live one. It places and removes payloads and checks nothing beyond the
// discriminant; ordering transitions safely is the caller's job.
package union

import "fmt"

// State names the live slot.
type State uint8

const (
	// Empty means no payload is live. It is only visible mid-transition, after Destroy, or after a failed
	// rollback.
	Empty State = iota
	// Value means the success slot is live.
	Value
	// Failure means the failure slot is live.
	Failure
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Value:
		return "value"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Union holds at most one live payload. The slot that is not live always holds its zero value, so
// nothing it referenced is kept reachable.
//
// The zero Union has a live zero T.
type Union[T, E any] struct {
	value T
	err   E
	state State
	// init is false only for the zero Union, which reads as Value.
	init bool
}

// State returns the live slot.
func (u *Union[T, E]) State() State {
	if !u.init {
		return Value
	}
	return u.state
}

// Value returns the success slot. It is only meaningful while State is Value.
func (u *Union[T, E]) Value() *T { return &u.value }

// Err returns the failure slot. It is only meaningful while State is Failure.
func (u *Union[T, E]) Err() *E { return &u.err }

// Vacate marks a union that owns nothing, such as a fresh one, as Empty without running any hook.
func (u *Union[T, E]) Vacate() {
	*u = Union[T, E]{init: true}
}

// PlaceValue stores v in the empty success slot and marks it live.
func (u *Union[T, E]) PlaceValue(v T) {
	u.mustBe(Empty)
	u.value = v
	u.set(Value)
}

// PlaceErr stores err in the empty failure slot and marks it live.
func (u *Union[T, E]) PlaceErr(err E) {
	u.mustBe(Empty)
	u.err = err
	u.set(Failure)
}

// BuildValue runs build on the empty success slot and marks it live when build succeeds. On failure the slot
// is reset and the union stays Empty.
func (u *Union[T, E]) BuildValue(build func(*T) error) error {
	u.mustBe(Empty)

	if err := build(&u.value); err != nil {
		var zero T
		u.value = zero
		return err
	}

	u.set(Value)
	return nil
}

// BuildErr runs build on the empty failure slot and marks it live when build succeeds. On failure the slot
// is reset and the union stays Empty.
func (u *Union[T, E]) BuildErr(build func(*E) error) error {
	u.mustBe(Empty)

	if err := build(&u.err); err != nil {
		var zero E
		u.err = zero
		return err
	}

	u.set(Failure)
	return nil
}

// DestroyValue runs destroy on the live success slot and leaves the union Empty.
func (u *Union[T, E]) DestroyValue(destroy func(*T)) {
	u.mustBe(Value)
	destroy(&u.value)
	u.set(Empty)
}

// DestroyErr runs destroy on the live failure slot and leaves the union Empty.
func (u *Union[T, E]) DestroyErr(destroy func(*E)) {
	u.mustBe(Failure)
	destroy(&u.err)
	u.set(Empty)
}

// Overwrite copies src over u as plain bytes, discriminant included. Only valid when neither payload type
// has a lifecycle.
func (u *Union[T, E]) Overwrite(src *Union[T, E]) {
	*u = *src
}

// Exchange swaps u and other as plain bytes. Only valid when neither payload type has a lifecycle.
func (u *Union[T, E]) Exchange(other *Union[T, E]) {
	*u, *other = *other, *u
}

func (u *Union[T, E]) set(s State) {
	u.state = s
	u.init = true
}

func (u *Union[T, E]) mustBe(s State) {
	if got := u.State(); got != s {
		panic(fmt.Sprintf("union: expected %s slot, found %s", s, got))
	}
}
