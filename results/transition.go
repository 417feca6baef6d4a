package results

import "github.com/abevier/expected/payload"

// side is one slot of a union, seen through its payload traits.
type side[X any] struct {
	traits  *payload.Traits[X]
	ptr     *X
	build   func(func(*X) error) error
	destroy func(func(*X))
}

func (s side[X]) destroyLive() {
	s.destroy(s.traits.Destroy)
}

// moveIn makes the slot live by moving *src into it.
func (s side[X]) moveIn(src *X) error {
	return s.build(func(dst *X) error { return s.traits.Move(dst, src) })
}

// setAside keeps a copy of the live payload in dst so it can be restored later. A move is used when it
// cannot fail; otherwise a copy, which leaves the live payload untouched if it fails.
func (s side[X]) setAside(dst *X) error {
	if s.traits.MoveNeverFails() {
		return s.traits.Move(dst, s.ptr)
	}
	return s.traits.Copy(dst, s.ptr)
}

// transition replaces the live payload of from with a payload built from src into to. Both sides belong to
// the same union. On error the union holds its original payload again.
//
// The old payload can be destroyed up front when src cannot fail (A). Otherwise, when the new payload moves
// without failing, it is built in a temporary before anything is destroyed (B); a move source gains
// nothing from that. Otherwise the old payload is set aside, and restored if building fails (C).
func transition[X, Y any](op string, from side[X], to side[Y], src payload.Source[Y]) error {
	switch {
	case src.NeverFails():
		from.destroyLive()
		if err := to.build(src.Build); err != nil {
			rollbackFailed(op, from.traits.Name(), to.traits.Name(), err, ErrBrokenGuarantee)
		}
		return nil

	case !src.IsMove() && to.traits.MoveNeverFails():
		var tmp Y
		if err := src.Build(&tmp); err != nil {
			return err
		}

		from.destroyLive()
		if err := to.moveIn(&tmp); err != nil {
			rollbackFailed(op, from.traits.Name(), to.traits.Name(), err, ErrBrokenGuarantee)
		}
		to.traits.Destroy(&tmp)
		return nil
	}

	var saved X
	if err := from.setAside(&saved); err != nil {
		return err
	}

	from.destroyLive()
	if err := to.build(src.Build); err != nil {
		if rerr := from.moveIn(&saved); rerr != nil {
			rollbackFailed(op, from.traits.Name(), to.traits.Name(), err, rerr)
		}
		from.traits.Destroy(&saved)
		return err
	}

	from.traits.Destroy(&saved)
	return nil
}

// swapCross exchanges payloads between two unions in different states: x holds an O and will hold a B, y
// holds a B and will hold an O. Only y's payload is buffered. When moving a B cannot fail no step after the
// first can need undoing; otherwise a failure is undone, and a failure while undoing is fatal.
func swapCross[O, B any](x side[O], xb side[B], y side[B], yo side[O]) error {
	var tmp B
	if err := y.traits.Move(&tmp, y.ptr); err != nil {
		return err
	}

	y.destroyLive()
	if err := yo.moveIn(x.ptr); err != nil {
		if rerr := y.moveIn(&tmp); rerr != nil {
			rollbackFailed("swap", x.traits.Name(), y.traits.Name(), err, rerr)
		}
		y.traits.Destroy(&tmp)
		return err
	}

	x.destroyLive()
	if err := xb.moveIn(&tmp); err != nil {
		if rerr := x.moveIn(yo.ptr); rerr != nil {
			rollbackFailed("swap", x.traits.Name(), y.traits.Name(), err, rerr)
		}
		yo.destroyLive()
		if rerr := y.moveIn(&tmp); rerr != nil {
			rollbackFailed("swap", x.traits.Name(), y.traits.Name(), err, rerr)
		}
		y.traits.Destroy(&tmp)
		return err
	}

	y.traits.Destroy(&tmp)
	return nil
}
