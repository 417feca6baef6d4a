package payloadtest

import "github.com/pkg/errors"

// ErrInjected is returned by hooks primed to fail.
var ErrInjected = errors.New("injected payload failure")

// Ledger counts live Item and Pinned instances per ID and fails hooks on request.
type Ledger struct {
	live     map[int]int
	failCopy map[int]bool
	failMove map[int]bool

	// failMoveAt fails a single move of an ID, counted down in moves.
	failMoveAt map[int]int
}

func NewLedger() *Ledger {
	return &Ledger{
		live:       make(map[int]int),
		failCopy:   make(map[int]bool),
		failMove:   make(map[int]bool),
		failMoveAt: make(map[int]int),
	}
}

// FailCopy makes copying the instances with the given ID fail.
func (l *Ledger) FailCopy(id int) { l.failCopy[id] = true }

// FailMove makes moving the instances with the given ID fail.
func (l *Ledger) FailMove(id int) { l.failMove[id] = true }

// FailNthMove makes only the n-th move from now of the instances with the given ID fail.
func (l *Ledger) FailNthMove(id, n int) { l.failMoveAt[id] = n }

// Heal clears every primed failure.
func (l *Ledger) Heal() {
	l.failCopy = make(map[int]bool)
	l.failMove = make(map[int]bool)
	l.failMoveAt = make(map[int]int)
}

func (l *Ledger) moveFails(id int) bool {
	if l.failMove[id] {
		return true
	}

	n, ok := l.failMoveAt[id]
	if !ok {
		return false
	}
	if n > 1 {
		l.failMoveAt[id] = n - 1
		return false
	}
	delete(l.failMoveAt, id)
	return true
}

// Count returns the number of live instances with the given ID.
func (l *Ledger) Count(id int) int { return l.live[id] }

// Live returns the number of live instances.
func (l *Ledger) Live() int {
	n := 0
	for _, c := range l.live {
		n += c
	}
	return n
}

// Item returns a new live Item.
func (l *Ledger) Item(id int) Item {
	l.live[id]++
	return Item{ID: id, l: l}
}

// Pinned returns a new live Pinned.
func (l *Ledger) Pinned(id int) Pinned {
	l.live[id]++
	return Pinned{ID: id, l: l}
}

// Item can fail to copy and relocates without a hook.
type Item struct {
	ID int
	l  *Ledger
}

func (i *Item) CopyFrom(src *Item) error {
	if src.l == nil {
		*i = *src
		return nil
	}
	if src.l.failCopy[src.ID] {
		return ErrInjected
	}
	*i = *src
	i.l.live[i.ID]++
	return nil
}

func (i *Item) Destroy() {
	if i.l != nil {
		i.l.live[i.ID]--
	}
}

// Pinned can fail both to copy and to move.
type Pinned struct {
	ID int
	l  *Ledger
}

func (p *Pinned) CopyFrom(src *Pinned) error {
	if src.l == nil {
		*p = *src
		return nil
	}
	if src.l.failCopy[src.ID] {
		return ErrInjected
	}
	*p = *src
	p.l.live[p.ID]++
	return nil
}

func (p *Pinned) MoveFrom(src *Pinned) error {
	if src.l != nil && src.l.moveFails(src.ID) {
		return ErrInjected
	}
	*p = *src
	src.l = nil
	return nil
}

func (p *Pinned) Destroy() {
	if p.l != nil {
		p.l.live[p.ID]--
	}
}
