package results

import (
	"testing"

	pt "github.com/abevier/expected/internal/payloadtest"
	"github.com/abevier/expected/payload"
	"github.com/stretchr/testify/require"
)

func TestCopyFromRollsBack(t *testing.T) {
	t.Run("set aside", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Failure[pt.Pinned](l.Pinned(1))
		src := Success[pt.Pinned, pt.Pinned](l.Pinned(2))

		l.FailCopy(2)
		req.ErrorIs(r.CopyFrom(&src), pt.ErrInjected)
		req.True(r.IsFailure())
		req.Equal(1, r.Err().ID)
		req.Equal(1, l.Count(1))
		req.Equal(1, l.Count(2))

		l.Heal()
		req.NoError(r.CopyFrom(&src))
		req.True(r.HasValue())
		req.Equal(2, r.Value().ID)
		req.Equal(0, l.Count(1))
		req.Equal(2, l.Count(2))
	})

	t.Run("built aside", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Success[int, pt.Item](1)
		src := Failure[int](l.Item(2))

		l.FailCopy(2)
		req.ErrorIs(r.CopyFrom(&src), pt.ErrInjected)
		req.True(r.HasValue())
		req.Equal(1, r.Value())
		req.Equal(1, l.Count(2))

		l.Heal()
		req.NoError(r.CopyFrom(&src))
		req.Equal(2, r.Err().ID)
		req.Equal(2, l.Count(2))
	})
}

func TestRollbackFailureIsFatal(t *testing.T) {
	req := require.New(t)
	l := pt.NewLedger()

	r := Failure[pt.Pinned](l.Pinned(1))
	src := Success[pt.Pinned, pt.Pinned](l.Pinned(2))

	l.FailCopy(2)
	l.FailMove(1)

	err := panicErr(func() { _ = r.CopyFrom(&src) })
	req.ErrorIs(err, ErrRollback)
	req.ErrorIs(err, pt.ErrInjected)

	var rb *RollbackError
	req.ErrorAs(err, &rb)
	req.Equal("assign", rb.Op)

	req.True(r.IsEmpty())
	req.ErrorIs(panicErr(func() { r.Value() }), ErrEmpty)
	req.ErrorIs(panicErr(func() { r.Err() }), ErrEmpty)
}

func TestEmplace(t *testing.T) {
	req := require.New(t)
	l := pt.NewLedger()

	failing := payload.Func(func(*pt.Pinned) error { return pt.ErrInjected })

	r := Success[pt.Pinned, int](l.Pinned(1))
	_, err := r.Emplace(failing)
	req.ErrorIs(err, pt.ErrInjected)
	req.Equal(1, r.Value().ID)
	req.Equal(1, l.Count(1))

	r = Failure[pt.Pinned](3)
	_, err = r.Emplace(failing)
	req.ErrorIs(err, pt.ErrInjected)
	req.Equal(3, r.Err())

	x := l.Pinned(5)
	p, err := r.Emplace(payload.CopyOf(&x))
	req.NoError(err)
	req.Same(r.ValuePtr(), p)
	req.Equal(5, p.ID)
	req.Equal(2, l.Count(5))

	y := l.Pinned(6)
	p, err = r.Emplace(payload.MoveOf(&y))
	req.NoError(err)
	req.Equal(6, p.ID)
	req.Equal(1, l.Count(5))
	req.Equal(1, l.Count(6))

	e, err := r.EmplaceErr(payload.Value(9))
	req.NoError(err)
	req.Same(r.ErrPtr(), e)
	req.Equal(0, l.Count(6))
}

func TestMove(t *testing.T) {
	t.Run("without move hook", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Success[pt.Item, int](l.Item(1))
		m, err := r.Move()
		req.NoError(err)
		req.Equal(1, m.Value().ID)
		req.True(r.HasValue())
		req.Equal(pt.Item{}, r.Value())

		r.Destroy()
		req.Equal(1, l.Count(1))
		m.Destroy()
		req.Equal(0, l.Count(1))
	})

	t.Run("with move hook", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Failure[int](l.Pinned(1))
		m, err := r.Move()
		req.NoError(err)
		req.Equal(1, m.Err().ID)
		req.True(r.IsFailure())

		r.Destroy()
		req.Equal(1, l.Count(1))
		m.Destroy()
		req.Equal(0, l.Count(1))

		l.FailMove(2)
		r = Failure[int](l.Pinned(2))
		_, err = r.Move()
		req.ErrorIs(err, pt.ErrInjected)
		req.Equal(2, r.Err().ID)
	})

	t.Run("trivial", func(t *testing.T) {
		req := require.New(t)

		r := Success[int, string](3)
		m, err := r.Move()
		req.NoError(err)
		req.Equal(3, m.Value())
		req.Equal(3, r.Value())
	})

	t.Run("move from", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Success[pt.Pinned, pt.Pinned](l.Pinned(1))
		src := Failure[pt.Pinned](l.Pinned(2))
		req.NoError(r.MoveFrom(&src))
		req.Equal(2, r.Err().ID)
		req.Equal(0, l.Count(1))
		req.Equal(1, l.Count(2))
	})
}

func TestClone(t *testing.T) {
	req := require.New(t)
	l := pt.NewLedger()

	r := Success[pt.Item, pt.Item](l.Item(1))
	c, err := r.Clone()
	req.NoError(err)
	req.Equal(1, c.Value().ID)
	req.Equal(2, l.Count(1))

	l.FailCopy(1)
	_, err = r.Clone()
	req.ErrorIs(err, pt.ErrInjected)
	req.Equal(2, l.Count(1))
}

func TestSwap(t *testing.T) {
	t.Run("item item", func(t *testing.T) {
		testSwap(t, func(l *pt.Ledger) (Result[pt.Item, pt.Item], Result[pt.Item, pt.Item]) {
			return Success[pt.Item, pt.Item](l.Item(1)), Failure[pt.Item](l.Item(2))
		}, func(r *Result[pt.Item, pt.Item]) int { return r.Value().ID }, func(r *Result[pt.Item, pt.Item]) int { return r.Err().ID })
	})

	t.Run("pinned item", func(t *testing.T) {
		testSwap(t, func(l *pt.Ledger) (Result[pt.Pinned, pt.Item], Result[pt.Pinned, pt.Item]) {
			return Success[pt.Pinned, pt.Item](l.Pinned(1)), Failure[pt.Pinned](l.Item(2))
		}, func(r *Result[pt.Pinned, pt.Item]) int { return r.Value().ID }, func(r *Result[pt.Pinned, pt.Item]) int { return r.Err().ID })
	})

	t.Run("item pinned", func(t *testing.T) {
		testSwap(t, func(l *pt.Ledger) (Result[pt.Item, pt.Pinned], Result[pt.Item, pt.Pinned]) {
			return Success[pt.Item, pt.Pinned](l.Item(1)), Failure[pt.Item](l.Pinned(2))
		}, func(r *Result[pt.Item, pt.Pinned]) int { return r.Value().ID }, func(r *Result[pt.Item, pt.Pinned]) int { return r.Err().ID })
	})

	t.Run("pinned pinned", func(t *testing.T) {
		testSwap(t, func(l *pt.Ledger) (Result[pt.Pinned, pt.Pinned], Result[pt.Pinned, pt.Pinned]) {
			return Success[pt.Pinned, pt.Pinned](l.Pinned(1)), Failure[pt.Pinned](l.Pinned(2))
		}, func(r *Result[pt.Pinned, pt.Pinned]) int { return r.Value().ID }, func(r *Result[pt.Pinned, pt.Pinned]) int { return r.Err().ID })
	})
}

// testSwap swaps a success holding ID 1 with a failure holding ID 2 in both directions.
func testSwap[T, E any](t *testing.T, mk func(*pt.Ledger) (Result[T, E], Result[T, E]), vid func(*Result[T, E]) int, eid func(*Result[T, E]) int) {
	req := require.New(t)

	for _, flip := range []bool{false, true} {
		l := pt.NewLedger()
		a, b := mk(l)

		if flip {
			req.NoError(b.SwapWith(&a))
		} else {
			req.NoError(a.SwapWith(&b))
		}

		req.True(a.IsFailure())
		req.Equal(2, eid(&a))
		req.True(b.HasValue())
		req.Equal(1, vid(&b))
		req.Equal(1, l.Count(1))
		req.Equal(1, l.Count(2))

		req.NoError(Swap(&a, &b))
		req.Equal(1, vid(&a))
		req.Equal(2, eid(&b))
		req.Equal(2, l.Live())
	}
}

func TestSwapRollsBack(t *testing.T) {
	for _, id := range []int{1, 2} {
		req := require.New(t)
		l := pt.NewLedger()

		a := Success[pt.Pinned, pt.Pinned](l.Pinned(1))
		b := Failure[pt.Pinned](l.Pinned(2))

		l.FailMove(id)
		req.ErrorIs(a.SwapWith(&b), pt.ErrInjected)
		req.Equal(1, a.Value().ID)
		req.Equal(2, b.Err().ID)
		req.Equal(2, l.Live())
	}

	req := require.New(t)
	l := pt.NewLedger()

	a := Success[pt.Item, pt.Pinned](l.Item(1))
	b := Failure[pt.Item](l.Pinned(2))

	l.FailMove(2)
	req.ErrorIs(b.SwapWith(&a), pt.ErrInjected)
	req.Equal(1, a.Value().ID)
	req.Equal(2, b.Err().ID)
	req.Equal(2, l.Live())
}

func TestDestroy(t *testing.T) {
	req := require.New(t)
	l := pt.NewLedger()

	r := Failure[int](l.Item(1))
	r.Destroy()
	req.True(r.IsEmpty())
	req.Equal(0, l.Count(1))
	req.ErrorIs(panicErr(func() { r.Value() }), ErrEmpty)
	req.Equal("Empty", r.String())

	_, err := Unwrap(&Result[int, error]{})
	req.NoError(err)

	// an empty result can be refilled
	req.NoError(r.AssignErr(l.Item(2)))
	req.Equal(2, r.Err().ID)
	r.Destroy()
	r.Destroy()
	req.Equal(0, l.Live())
}

// Every instance a result takes in is destroyed exactly once, whatever mix of operations ran in between.
func TestNoPayloadLeaks(t *testing.T) {
	req := require.New(t)
	l := pt.NewLedger()

	a := Success[pt.Pinned, pt.Item](l.Pinned(1))
	b := Failure[pt.Pinned](l.Item(2))

	req.NoError(a.CopyFrom(&b))
	req.NoError(a.AssignValue(l.Pinned(3)))
	req.NoError(Swap(&a, &b))

	c, err := a.Clone()
	req.NoError(err)

	l.FailCopy(3)
	req.Error(a.CopyFrom(&b))
	req.Error(c.CopyFrom(&b))
	l.Heal()

	l.FailMove(3)
	req.Error(b.SwapWith(&c))
	l.Heal()

	req.NoError(b.MoveFrom(&c))
	_, err = c.EmplaceErr(payload.Value(l.Item(4)))
	req.NoError(err)
	req.NoError(c.AssignErr(l.Item(5)))

	a.Destroy()
	b.Destroy()
	c.Destroy()
	req.Equal(0, l.Live())
}

func TestSameStateRollsBack(t *testing.T) {
	t.Run("copy from", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Success[pt.Pinned, pt.Pinned](l.Pinned(1))
		b := Success[pt.Pinned, pt.Pinned](l.Pinned(2))

		l.FailCopy(2)
		req.ErrorIs(a.CopyFrom(&b), pt.ErrInjected)
		req.True(a.HasValue())
		req.Equal(1, a.Value().ID)
		req.Equal(1, l.Count(1))
		req.Equal(1, l.Count(2))

		// a copy never moves the incoming payload
		l.Heal()
		l.FailMove(2)
		req.NoError(a.CopyFrom(&b))
		req.Equal(2, a.Value().ID)
		req.Equal(0, l.Count(1))
		req.Equal(2, l.Count(2))
	})

	t.Run("move from", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Failure[int](l.Pinned(1))
		b := Failure[int](l.Pinned(2))

		l.FailMove(2)
		req.ErrorIs(a.MoveFrom(&b), pt.ErrInjected)
		req.Equal(1, a.Err().ID)
		req.Equal(2, b.Err().ID)
		req.Equal(1, l.Count(1))
		req.Equal(1, l.Count(2))

		l.Heal()
		req.NoError(a.MoveFrom(&b))
		req.Equal(2, a.Err().ID)
		req.Equal(0, l.Count(1))
		req.Equal(1, l.Count(2))
	})

	t.Run("emplace", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		r := Success[pt.Pinned, int](l.Pinned(1))
		x := l.Pinned(7)

		l.FailMove(7)
		_, err := r.Emplace(payload.CopyOf(&x))
		req.ErrorIs(err, pt.ErrInjected)
		req.Equal(1, r.Value().ID)
		req.Equal(1, l.Count(1))
		req.Equal(1, l.Count(7))
	})

	t.Run("swap second move", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Success[pt.Pinned, int](l.Pinned(1))
		b := Success[pt.Pinned, int](l.Pinned(2))

		l.FailMove(2)
		req.ErrorIs(a.SwapWith(&b), pt.ErrInjected)
		req.Equal(1, a.Value().ID)
		req.Equal(2, b.Value().ID)
		req.Equal(2, l.Live())
	})

	t.Run("swap third move", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Success[pt.Pinned, int](l.Pinned(1))
		b := Success[pt.Pinned, int](l.Pinned(2))

		l.FailNthMove(1, 2)
		req.ErrorIs(a.SwapWith(&b), pt.ErrInjected)
		req.Equal(1, a.Value().ID)
		req.Equal(2, b.Value().ID)
		req.Equal(2, l.Live())

		req.NoError(a.SwapWith(&b))
		req.Equal(2, a.Value().ID)
		req.Equal(1, b.Value().ID)
		req.Equal(2, l.Live())
	})
}

func TestSameStateRollbackFailureIsFatal(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Success[pt.Pinned, int](l.Pinned(1))
		b := Success[pt.Pinned, int](l.Pinned(2))

		l.FailCopy(2)
		l.FailMove(1)

		err := panicErr(func() { _ = a.CopyFrom(&b) })
		req.ErrorIs(err, ErrRollback)
		req.ErrorIs(err, pt.ErrInjected)

		var rb *RollbackError
		req.ErrorAs(err, &rb)
		req.Equal("assign", rb.Op)
		req.True(a.IsEmpty())
		req.Equal(2, b.Value().ID)
	})

	t.Run("swap", func(t *testing.T) {
		req := require.New(t)
		l := pt.NewLedger()

		a := Failure[int](l.Pinned(1))
		b := Failure[int](l.Pinned(2))

		l.FailNthMove(1, 2)
		l.FailNthMove(2, 2)

		err := panicErr(func() { _ = Swap(&a, &b) })
		req.ErrorIs(err, ErrRollback)

		var rb *RollbackError
		req.ErrorAs(err, &rb)
		req.Equal("swap", rb.Op)
		req.True(a.IsEmpty())
		req.True(b.IsEmpty())
		req.Equal(0, l.Live())
	})
}
