package payload

// Source describes how an incoming payload is built in place. The transition engine inspects NeverFails and
// IsMove to decide whether the old payload can be discarded before building the new one.
type Source[T any] struct {
	build  func(dst *T) error
	noFail bool
	move   bool
}

// Build initializes dst, which holds T's zero value.
func (s Source[T]) Build(dst *T) error {
	if s.build == nil {
		return nil
	}
	return s.build(dst)
}

// NeverFails reports whether Build cannot return an error.
func (s Source[T]) NeverFails() bool { return s.noFail || s.build == nil }

// IsMove reports whether Build consumes an existing value rather than producing a fresh one.
func (s Source[T]) IsMove() bool { return s.move }

// Zero builds T's zero value.
func Zero[T any]() Source[T] {
	return Source[T]{noFail: true}
}

// CopyOf builds a copy of *src.
func CopyOf[T any](src *T) Source[T] {
	return Of[T]().CopySource(src)
}

// MoveOf builds a value by moving out of *src.
func MoveOf[T any](src *T) Source[T] {
	return Of[T]().MoveSource(src)
}

// CopySource builds a copy of *src with t's copy hook.
func (t *Traits[T]) CopySource(src *T) Source[T] {
	return Source[T]{
		build:  func(dst *T) error { return t.Copy(dst, src) },
		noFail: t.copyNoFail,
	}
}

// MoveSource builds a value by moving out of *src with t's move hook.
func (t *Traits[T]) MoveSource(src *T) Source[T] {
	return Source[T]{
		build:  func(dst *T) error { return t.Move(dst, src) },
		noFail: t.moveNoFail,
		move:   true,
	}
}

// Value takes ownership of v, which the caller must no longer use.
func Value[T any](v T) Source[T] {
	return MoveOf(&v)
}

// Func builds a value with fn, which may fail.
func Func[T any](fn func(dst *T) error) Source[T] {
	return Source[T]{build: fn}
}

// Infallible builds a value with fn, which cannot fail.
func Infallible[T any](fn func(dst *T)) Source[T] {
	return Source[T]{
		build: func(dst *T) error {
			fn(dst)
			return nil
		},
		noFail: true,
	}
}

// Conversion builds a T out of a U, the way a converting constructor would.
type Conversion[U, T any] struct {
	fn     func(dst *T, src *U) error
	noFail bool
}

// Convert wraps a conversion that may fail.
func Convert[U, T any](fn func(dst *T, src *U) error) Conversion[U, T] {
	return Conversion[U, T]{fn: fn}
}

// ConvertInfallible wraps a conversion that cannot fail.
func ConvertInfallible[U, T any](fn func(dst *T, src *U)) Conversion[U, T] {
	return Conversion[U, T]{
		fn: func(dst *T, src *U) error {
			fn(dst, src)
			return nil
		},
		noFail: true,
	}
}

// Identity converts a T into a T by copying it.
func Identity[T any]() Conversion[T, T] {
	t := Of[T]()
	return Conversion[T, T]{fn: t.Copy, noFail: t.CopyNeverFails()}
}

// From returns a source that converts *src.
func (c Conversion[U, T]) From(src *U) Source[T] {
	return Source[T]{
		build:  func(dst *T) error { return c.fn(dst, src) },
		noFail: c.noFail,
	}
}
