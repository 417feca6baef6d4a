package results

import "github.com/abevier/expected/internal/union"

// Equal reports whether a and b hold the same state with equal payloads. Two empty results are equal.
func Equal[T, E comparable](a, b *Result[T, E]) bool {
	return EqualFunc(a, b, eq[T], eq[E])
}

// EqualFunc is like Equal for results of possibly different types, comparing payloads with eqv and eqe.
func EqualFunc[T, E, U, G any](a *Result[T, E], b *Result[U, G], eqv func(T, U) bool, eqe func(E, G) bool) bool {
	sa, sb := a.u.State(), b.u.State()
	if sa != sb {
		return false
	}

	switch sa {
	case union.Value:
		return eqv(*a.u.Value(), *b.u.Value())
	case union.Failure:
		return eqe(*a.u.Err(), *b.u.Err())
	}
	return true
}

// EqualValue reports whether r holds a success equal to v.
func EqualValue[T comparable, E any](r *Result[T, E], v T) bool {
	return r.HasValue() && *r.u.Value() == v
}

// EqualUnexpected reports whether r holds a failure equal to the error wrapped by u.
func EqualUnexpected[T any, E comparable](r *Result[T, E], u Unexpected[E]) bool {
	return r.IsFailure() && *r.u.Err() == u.Value()
}

// UnexpectedEqual reports whether a and b wrap equal errors.
func UnexpectedEqual[E comparable](a, b Unexpected[E]) bool {
	return a.err == b.err
}

func eq[T comparable](a, b T) bool {
	return a == b
}
