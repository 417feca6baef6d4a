package results

import (
	"reflect"
	"sync"

	"github.com/abevier/expected/internal/union"
	"github.com/abevier/expected/payload"
)

var engines sync.Map // reflect.Type -> *engine[T, E]

// engine carries the strategies for one Result[T, E] instantiation. The strategies are picked once, from
// the payload traits, when the engine is first resolved: pairs of trivial payloads get flat copies, and a
// pair of trivially destructible payloads gets a no-op destroy.
type engine[T, E any] struct {
	vt *payload.Traits[T]
	et *payload.Traits[E]

	copyConstruct func(dst, src *union.Union[T, E]) error
	moveConstruct func(dst, src *union.Union[T, E]) error
	copyAssign    func(dst, src *union.Union[T, E]) error
	moveAssign    func(dst, src *union.Union[T, E]) error
	swap          func(a, b *union.Union[T, E]) error
	destroy       func(u *union.Union[T, E])
}

func engineFor[T, E any]() *engine[T, E] {
	key := reflect.TypeOf((*engine[T, E])(nil))
	if e, ok := engines.Load(key); ok {
		return e.(*engine[T, E])
	}

	e, _ := engines.LoadOrStore(key, newEngine[T, E]())
	return e.(*engine[T, E])
}

func newEngine[T, E any]() *engine[T, E] {
	e := &engine[T, E]{
		vt: payload.Of[T](),
		et: payload.Of[E](),
	}

	if e.vt.Trivial() && e.et.Trivial() {
		e.copyConstruct = flatCopy[T, E]
		e.moveConstruct = flatCopy[T, E]
		e.copyAssign = flatCopy[T, E]
		e.moveAssign = flatCopy[T, E]
		e.swap = flatSwap[T, E]
	} else {
		e.copyConstruct = func(dst, src *union.Union[T, E]) error { return e.construct(dst, src, false) }
		e.moveConstruct = func(dst, src *union.Union[T, E]) error { return e.construct(dst, src, true) }
		e.copyAssign = func(dst, src *union.Union[T, E]) error { return e.assign(dst, src, false) }
		e.moveAssign = func(dst, src *union.Union[T, E]) error { return e.assign(dst, src, true) }
		e.swap = e.swapLive
	}

	if e.vt.TriviallyDestructible() && e.et.TriviallyDestructible() {
		e.destroy = func(*union.Union[T, E]) {}
	} else {
		e.destroy = e.destroyLive
	}

	return e
}

func flatCopy[T, E any](dst, src *union.Union[T, E]) error {
	dst.Overwrite(src)
	return nil
}

func flatSwap[T, E any](a, b *union.Union[T, E]) error {
	a.Exchange(b)
	return nil
}

// construct fills dst, which owns nothing, from src.
func (e *engine[T, E]) construct(dst, src *union.Union[T, E], move bool) error {
	dst.Vacate()

	switch src.State() {
	case union.Value:
		return dst.BuildValue(e.valueSource(src, move).Build)
	case union.Failure:
		return dst.BuildErr(e.errSource(src, move).Build)
	}
	return nil
}

func (e *engine[T, E]) assign(dst, src *union.Union[T, E], move bool) error {
	if dst == src {
		return nil
	}

	s, d := src.State(), dst.State()
	switch {
	case s == union.Empty:
		e.destroyLive(dst)
		return nil
	case s == d && s == union.Value:
		if move {
			return e.settleValue("assign", dst, e.vt.MoveAssign(dst.Value(), src.Value()))
		}
		return e.settleValue("assign", dst, e.vt.Assign(dst.Value(), src.Value()))
	case s == d:
		if move {
			return e.settleErr("assign", dst, e.et.MoveAssign(dst.Err(), src.Err()))
		}
		return e.settleErr("assign", dst, e.et.Assign(dst.Err(), src.Err()))
	case s == union.Value:
		return e.toValue(dst, e.valueSource(src, move), "assign")
	default:
		return e.toErr(dst, e.errSource(src, move), "assign")
	}
}

// toValue replaces a live failure, or nothing, with a success built from src.
func (e *engine[T, E]) toValue(u *union.Union[T, E], src payload.Source[T], op string) error {
	if u.State() == union.Empty {
		return u.BuildValue(src.Build)
	}
	return transition(op, e.errSide(u), e.valueSide(u), src)
}

// toErr replaces a live success, or nothing, with a failure built from src.
func (e *engine[T, E]) toErr(u *union.Union[T, E], src payload.Source[E], op string) error {
	if u.State() == union.Empty {
		return u.BuildErr(src.Build)
	}
	return transition(op, e.valueSide(u), e.errSide(u), src)
}

// emplaceValue makes u hold a success built from src. When a success is already live the new value is
// built aside and move-assigned, so a failing src leaves u as it was.
func (e *engine[T, E]) emplaceValue(u *union.Union[T, E], src payload.Source[T]) error {
	if u.State() != union.Value {
		return e.toValue(u, src, "emplace")
	}

	var tmp T
	if err := src.Build(&tmp); err != nil {
		return err
	}

	err := e.vt.MoveAssign(u.Value(), &tmp)
	e.vt.Destroy(&tmp)
	return e.settleValue("emplace", u, err)
}

func (e *engine[T, E]) emplaceErr(u *union.Union[T, E], src payload.Source[E]) error {
	if u.State() != union.Failure {
		return e.toErr(u, src, "emplace")
	}

	var tmp E
	if err := src.Build(&tmp); err != nil {
		return err
	}

	err := e.et.MoveAssign(u.Err(), &tmp)
	e.et.Destroy(&tmp)
	return e.settleErr("emplace", u, err)
}

func (e *engine[T, E]) swapLive(a, b *union.Union[T, E]) error {
	if a == b {
		return nil
	}

	sa, sb := a.State(), b.State()
	switch {
	case sa == union.Empty && sb == union.Empty:
		return nil
	case sa == union.Empty:
		if err := e.construct(a, b, true); err != nil {
			return err
		}
		e.destroyLive(b)
		return nil
	case sb == union.Empty:
		return e.swapLive(b, a)
	case sa == sb && sa == union.Value:
		return settle("swap", e.vt.Name(), e.vt.Swap(a.Value(), b.Value()), func() {
			a.DestroyValue(e.vt.Destroy)
			b.DestroyValue(e.vt.Destroy)
		})
	case sa == sb:
		return settle("swap", e.et.Name(), e.et.Swap(a.Err(), b.Err()), func() {
			a.DestroyErr(e.et.Destroy)
			b.DestroyErr(e.et.Destroy)
		})
	case sa == union.Failure:
		return e.swapLive(b, a)
	}

	// a holds a success, b a failure. Buffer whichever payload moves without failing, preferring the
	// failure; when neither does, buffer the failure and roll back on error.
	if e.et.MoveNeverFails() || !e.vt.MoveNeverFails() {
		return swapCross(e.valueSide(a), e.errSide(a), e.errSide(b), e.valueSide(b))
	}
	return swapCross(e.errSide(b), e.valueSide(b), e.valueSide(a), e.errSide(a))
}

// settleValue reports err from a same-state operation on u's success payload. A failed restore leaves u
// empty and panics.
func (e *engine[T, E]) settleValue(op string, u *union.Union[T, E], err error) error {
	return settle(op, e.vt.Name(), err, func() { u.DestroyValue(e.vt.Destroy) })
}

func (e *engine[T, E]) settleErr(op string, u *union.Union[T, E], err error) error {
	return settle(op, e.et.Name(), err, func() { u.DestroyErr(e.et.Destroy) })
}

func (e *engine[T, E]) destroyLive(u *union.Union[T, E]) {
	switch u.State() {
	case union.Value:
		u.DestroyValue(e.vt.Destroy)
	case union.Failure:
		u.DestroyErr(e.et.Destroy)
	}
}

func (e *engine[T, E]) valueSource(u *union.Union[T, E], move bool) payload.Source[T] {
	if move {
		return e.vt.MoveSource(u.Value())
	}
	return e.vt.CopySource(u.Value())
}

func (e *engine[T, E]) errSource(u *union.Union[T, E], move bool) payload.Source[E] {
	if move {
		return e.et.MoveSource(u.Err())
	}
	return e.et.CopySource(u.Err())
}

func (e *engine[T, E]) valueSide(u *union.Union[T, E]) side[T] {
	return side[T]{traits: e.vt, ptr: u.Value(), build: u.BuildValue, destroy: u.DestroyValue}
}

func (e *engine[T, E]) errSide(u *union.Union[T, E]) side[E] {
	return side[E]{traits: e.et, ptr: u.Err(), build: u.BuildErr, destroy: u.DestroyErr}
}
