package registry

import "fmt"

// DuplicateError reports an attempt to register a second example under a name
// that is already taken. It indicates a configuration bug: two examples claim
// the same identity, so startup must abort.
type DuplicateError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("example %q is already registered", e.Name)
}

// NotFoundError reports a lookup for a name with no matching example.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no example registered under %q", e.Name)
}

// InvalidExampleError reports an example descriptor that cannot be
// registered as built.
type InvalidExampleError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidExampleError) Error() string {
	return fmt.Sprintf("example %q is invalid: %s", e.Name, e.Reason)
}
