// Package guard detects structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the error returned by ConstructorGuard.Validate()
// when nil is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures commands, queries and value objects are only
// created through their designated constructor functions. A struct literal
// such as AcceptMatchCommand{} carries a zero guard and fails validation
// before it reaches a handler.
//
// The guard holds a single flag that only NewConstructorGuard sets. Embedding
// it costs one bool and keeps the rest of the struct unexported.
//
// Example usage:
//
//	var ErrTransitionMatchCommandIsNotConstructed = errors.New(
//	    "TransitionMatchCommand must be created via NewTransitionMatchCommand")
//
//	type TransitionMatchCommand struct {
//	    matchID kernel.UUID
//	    actorID kernel.UUID
//	    action  match.Action
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewTransitionMatchCommand(matchID, actorID kernel.UUID, action match.Action) (TransitionMatchCommand, error) {
//	    if err := errors.Join(matchID.Validate(), actorID.Validate()); err != nil {
//	        return TransitionMatchCommand{}, err
//	    }
//	    return TransitionMatchCommand{
//	        matchID: matchID,
//	        actorID: actorID,
//	        action:  action,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c TransitionMatchCommand) Validate() error {
//	    return c.guard.Validate(ErrTransitionMatchCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it as the last step of a constructor, after
// every argument has been validated.
//
// Returns:
//   - A ConstructorGuard with isConstructed set to true
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor.
//
// Parameters:
//   - validationError: The error to return if the object was not properly constructed
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object is a zero value
//   - ErrDefaultConstructorGuard if validationError is nil and the object is a zero value
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
