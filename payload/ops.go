package payload

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	registry sync.Map // reflect.Type -> Ops[T]
	// mu orders registration against first resolution of the same type.
	mu sync.Mutex
)

// Ops supplies lifecycle hooks for a type that cannot carry methods, such as a slice or a type from another
// package. Unset funcs fall back to the same defaults used for types without hook methods.
type Ops[T any] struct {
	// Copy initializes dst, which holds T's zero value, as a copy of src.
	Copy func(dst, src *T) error
	// Move initializes dst from src, possibly leaving src moved-from.
	Move func(dst, src *T) error
	// Destroy releases whatever v owns.
	Destroy func(v *T)
	// Assign replaces the live value dst with a copy of src.
	Assign func(dst, src *T) error
	// MoveAssign replaces the live value dst with the contents of src.
	MoveAssign func(dst, src *T) error
	// Swap exchanges two live values.
	Swap func(a, b *T) error

	// CopyNeverFails declares that Copy never returns an error.
	CopyNeverFails bool
	// MoveNeverFails declares that Move never returns an error.
	MoveNeverFails bool
}

func (o Ops[T]) validate() {
	if o.CopyNeverFails && o.Copy == nil {
		panic("payload ops: CopyNeverFails requires a Copy func")
	}

	if o.MoveNeverFails && o.Move == nil {
		panic("payload ops: MoveNeverFails requires a Move func")
	}
}

// Register installs ops as the lifecycle of T, taking precedence over any hook methods T has.
// It must run before the first result holding a T is built, usually from an init func, and panics
// when called twice for the same type or after T's traits were already resolved.
func Register[T any](ops Ops[T]) {
	ops.validate()

	key := typeKey[T]()

	mu.Lock()
	defer mu.Unlock()

	if _, ok := resolved.Load(key); ok {
		panic(fmt.Sprintf("payload ops: %s registered after first use", key))
	}

	if _, loaded := registry.LoadOrStore(key, ops); loaded {
		panic(fmt.Sprintf("payload ops: %s already registered", key))
	}
}

func lookup[T any](key reflect.Type) (Ops[T], bool) {
	v, ok := registry.Load(key)
	if !ok {
		return Ops[T]{}, false
	}
	return v.(Ops[T]), true
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
