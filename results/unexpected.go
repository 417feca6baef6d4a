package results

// Unexpected wraps an E so that it reads as a failure where a bare E would be ambiguous, such as when T and E
// are the same type.
type Unexpected[E any] struct {
	err E
}

// NewUnexpected wraps err.
func NewUnexpected[E any](err E) Unexpected[E] {
	return Unexpected[E]{err: err}
}

// Value returns the wrapped error.
func (u Unexpected[E]) Value() E {
	return u.err
}
