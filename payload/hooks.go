// Package payload describes how values stored inside a result are built, torn down and exchanged.
//
// Go values are normally copied by assignment and reclaimed by the garbage collector. Types that own
// something the collector does not manage (a descriptor, a slot in a registry, a reference count) can opt
// into an explicit lifecycle by implementing the hook interfaces below on their pointer type. Every hook is
// optional; a type that implements none of them is trivial and is moved around as plain bytes.
//
// Hooks that return an error must leave their receiver holding nothing that needs Destroy, and must leave
// their source unchanged.
package payload

// Copier is implemented by *T when copying a T is more than an assignment.
// CopyFrom is called on a receiver holding T's zero value.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by *T when relocating a T is more than an assignment, for instance when the value is
// registered somewhere by address. MoveFrom is called on a receiver holding T's zero value and may leave src
// in a moved-from state that Destroy accepts.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Destroyer is implemented by types that release resources when they stop being live.
// Destroy must accept the zero value and any moved-from value.
type Destroyer interface {
	Destroy()
}

// CopyAssigner replaces a live value with a copy of src.
type CopyAssigner[T any] interface {
	AssignFrom(src *T) error
}

// MoveAssigner replaces a live value with the contents of src.
type MoveAssigner[T any] interface {
	MoveAssignFrom(src *T) error
}

// Swapper exchanges two live values.
type Swapper[T any] interface {
	SwapWith(other *T) error
}

// InfallibleCopier marks a Copier whose CopyFrom never returns an error.
type InfallibleCopier interface {
	CopyNeverFails()
}

// InfallibleMover marks a Mover whose MoveFrom never returns an error.
type InfallibleMover interface {
	MoveNeverFails()
}
