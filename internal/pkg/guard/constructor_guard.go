// Package guard implements the constructor-guard pattern used by domain
// objects, commands, and queries to reject zero-value instances that were not
// created through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed it in a struct and set it with NewConstructorGuard inside the
// constructor; Validate then fails for any instance created by direct struct
// initialization.
//
// Example:
//
//	type RequestCashoutCommand struct {
//	    riderEmail string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewRequestCashoutCommand(riderEmail string) (RequestCashoutCommand, error) {
//	    // validate inputs...
//	    return RequestCashoutCommand{riderEmail: riderEmail, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RequestCashoutCommand) Validate() error {
//	    return c.guard.Validate(ErrRequestCashoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
