package payload

import "fmt"

// RestoreError is returned by Traits when a replacement or swap failed and putting the original values back
// failed as well. The values involved hold nothing usable afterwards.
type RestoreError struct {
	// Err is the failure of the operation.
	Err error
	// Restore is the failure of undoing it. It is nil when a hook declared infallible failed, leaving
	// nothing to undo with.
	Restore error
}

func (e *RestoreError) Error() string {
	if e.Restore == nil {
		return fmt.Sprintf("infallible payload hook failed: %v", e.Err)
	}
	return fmt.Sprintf("%v; restoring the original payload failed: %v", e.Err, e.Restore)
}

func (e *RestoreError) Unwrap() []error {
	if e.Restore == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Restore}
}
