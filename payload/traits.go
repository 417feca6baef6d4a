package payload

import (
	"reflect"
	"sync"
)

var resolved sync.Map // reflect.Type -> *Traits[T]

// Traits is the resolved lifecycle of T: its hooks plus the capability flags the transition engine uses to
// pick a strategy. Traits are computed once per type and shared.
type Traits[T any] struct {
	name string

	copy       func(dst, src *T) error
	move       func(dst, src *T) error
	destroy    func(v *T)
	assign     func(dst, src *T) error
	moveAssign func(dst, src *T) error
	swap       func(a, b *T) error

	copyNoFail bool
	moveNoFail bool
	owns       bool
	trivial    bool
}

// Of returns the traits of T, resolving them on first use from a registration or from T's hook methods.
func Of[T any]() *Traits[T] {
	key := typeKey[T]()
	if t, ok := resolved.Load(key); ok {
		return t.(*Traits[T])
	}

	mu.Lock()
	defer mu.Unlock()

	if t, ok := resolved.Load(key); ok {
		return t.(*Traits[T])
	}

	t := resolve[T](key)
	resolved.Store(key, t)
	return t
}

func resolve[T any](key reflect.Type) *Traits[T] {
	t := &Traits[T]{name: key.String()}

	if ops, ok := lookup[T](key); ok {
		t.copy = ops.Copy
		t.move = ops.Move
		t.destroy = ops.Destroy
		t.assign = ops.Assign
		t.moveAssign = ops.MoveAssign
		t.swap = ops.Swap
		t.copyNoFail = ops.Copy == nil || ops.CopyNeverFails
		t.moveNoFail = ops.Move == nil || ops.MoveNeverFails
	} else {
		fromMethods(t)
	}

	t.owns = t.copy != nil || t.destroy != nil
	t.trivial = t.copy == nil && t.move == nil && t.destroy == nil &&
		t.assign == nil && t.moveAssign == nil && t.swap == nil

	return t
}

func fromMethods[T any](t *Traits[T]) {
	var p any = new(T)

	if _, ok := p.(Copier[T]); ok {
		t.copy = func(dst, src *T) error { return any(dst).(Copier[T]).CopyFrom(src) }
		_, t.copyNoFail = p.(InfallibleCopier)
	} else {
		t.copyNoFail = true
	}

	if _, ok := p.(Mover[T]); ok {
		t.move = func(dst, src *T) error { return any(dst).(Mover[T]).MoveFrom(src) }
		_, t.moveNoFail = p.(InfallibleMover)
	} else {
		t.moveNoFail = true
	}

	if _, ok := p.(Destroyer); ok {
		t.destroy = func(v *T) { any(v).(Destroyer).Destroy() }
	}

	if _, ok := p.(CopyAssigner[T]); ok {
		t.assign = func(dst, src *T) error { return any(dst).(CopyAssigner[T]).AssignFrom(src) }
	}

	if _, ok := p.(MoveAssigner[T]); ok {
		t.moveAssign = func(dst, src *T) error { return any(dst).(MoveAssigner[T]).MoveAssignFrom(src) }
	}

	if _, ok := p.(Swapper[T]); ok {
		t.swap = func(a, b *T) error { return any(a).(Swapper[T]).SwapWith(b) }
	}
}

// Name is the Go type name of T, used in diagnostics.
func (t *Traits[T]) Name() string { return t.name }

// CopyNeverFails reports whether copying a T cannot return an error.
func (t *Traits[T]) CopyNeverFails() bool { return t.copyNoFail }

// MoveNeverFails reports whether moving a T cannot return an error.
func (t *Traits[T]) MoveNeverFails() bool { return t.moveNoFail }

// TriviallyDestructible reports whether destroying a T runs no hook.
func (t *Traits[T]) TriviallyDestructible() bool { return t.destroy == nil }

// Trivial reports whether T has no lifecycle hooks at all, so every operation on it is a plain assignment.
func (t *Traits[T]) Trivial() bool { return t.trivial }

// Copy initializes dst, which must hold T's zero value, as a copy of src.
func (t *Traits[T]) Copy(dst, src *T) error {
	if t.copy == nil {
		*dst = *src
		return nil
	}
	return t.copy(dst, src)
}

// Move initializes dst, which must hold T's zero value, from src. Without a move hook the value is
// relocated by assignment and, when T owns resources, src is reset to the zero value so that ownership is
// not duplicated.
func (t *Traits[T]) Move(dst, src *T) error {
	if t.move != nil {
		return t.move(dst, src)
	}

	*dst = *src
	if t.owns {
		var zero T
		*src = zero
	}
	return nil
}

// Destroy runs T's destroy hook, if any, and resets v to the zero value.
func (t *Traits[T]) Destroy(v *T) {
	if t.destroy != nil {
		t.destroy(v)
	}

	var zero T
	*v = zero
}

// Assign replaces the live value dst with a copy of src. Without an assign hook dst is left as it was when
// the copy fails; when putting dst back fails too, a *RestoreError is returned and dst holds nothing usable.
func (t *Traits[T]) Assign(dst, src *T) error {
	if dst == src {
		return nil
	}

	switch {
	case t.assign != nil:
		return t.assign(dst, src)
	case t.trivial:
		*dst = *src
		return nil
	}

	return t.replace(dst, func(d *T) error { return t.Copy(d, src) })
}

// MoveAssign replaces the live value dst with the contents of src. Failures are reported like Assign.
func (t *Traits[T]) MoveAssign(dst, src *T) error {
	if dst == src {
		return nil
	}

	switch {
	case t.moveAssign != nil:
		return t.moveAssign(dst, src)
	case t.trivial:
		*dst = *src
		return nil
	case t.moveNoFail:
		t.Destroy(dst)
		if err := t.Move(dst, src); err != nil {
			return &RestoreError{Err: err}
		}
		return nil
	}

	return t.replace(dst, func(d *T) error { return t.Move(d, src) })
}

// replace destroys the live value dst and rebuilds it with build. When moving cannot fail the new value is
// built in a temporary first. Otherwise dst is copied aside and moved back if build fails.
func (t *Traits[T]) replace(dst *T, build func(*T) error) error {
	if t.moveNoFail {
		var tmp T
		if err := build(&tmp); err != nil {
			return err
		}

		t.Destroy(dst)
		err := t.Move(dst, &tmp)
		t.Destroy(&tmp)
		if err != nil {
			return &RestoreError{Err: err}
		}
		return nil
	}

	var saved T
	if err := t.Copy(&saved, dst); err != nil {
		return err
	}

	t.Destroy(dst)
	if err := build(dst); err != nil {
		if rerr := t.restore(dst, &saved); rerr != nil {
			t.Destroy(&saved)
			return &RestoreError{Err: err, Restore: rerr}
		}
		t.Destroy(&saved)
		return err
	}

	t.Destroy(&saved)
	return nil
}

// restore moves src into dst, which a failed hook may have left dirty.
func (t *Traits[T]) restore(dst, src *T) error {
	var zero T
	*dst = zero
	return t.Move(dst, src)
}

// Swap exchanges two live values. Without a swap hook a failed step is undone and both values are left as
// they were; when undoing fails too, a *RestoreError is returned and neither value is usable.
func (t *Traits[T]) Swap(a, b *T) error {
	if a == b {
		return nil
	}

	if t.swap != nil {
		return t.swap(a, b)
	}

	if t.move == nil {
		*a, *b = *b, *a
		return nil
	}

	var tmp T
	if err := t.Move(&tmp, a); err != nil {
		return err
	}

	t.Destroy(a)
	if err := t.Move(a, b); err != nil {
		if rerr := t.restore(a, &tmp); rerr != nil {
			t.Destroy(&tmp)
			return &RestoreError{Err: err, Restore: rerr}
		}
		t.Destroy(&tmp)
		return err
	}

	t.Destroy(b)
	if err := t.Move(b, &tmp); err != nil {
		rerr := t.restore(b, a)
		if rerr == nil {
			t.Destroy(a)
			rerr = t.restore(a, &tmp)
		}
		t.Destroy(&tmp)
		if rerr != nil {
			return &RestoreError{Err: err, Restore: rerr}
		}
		return err
	}

	t.Destroy(&tmp)
	return nil
}
