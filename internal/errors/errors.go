// Package errors defines the closed error taxonomy surfaced by the
// service layer. The handler boundary owns the translation to HTTP
// status codes; anything outside this set is an internal fault.
package errors

import "fmt"

// Entity names used in NotFoundError, kept as constants so every layer
// reports the same wording.
const (
	EntityThread  = "thread"
	EntityComment = "comment"
	EntityReply   = "reply"
	EntityUser    = "user"
)

// NotFoundError means the target entity is absent or not nested under
// the parent named in the request path.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ForbiddenError means the acting user is not the owner of the entity
// being mutated.
type ForbiddenError struct{}

func (e *ForbiddenError) Error() string {
	return "you are not allowed to access this resource"
}

// InvalidInputError carries a field-specific validation failure.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnauthorizedError means the request carries no usable identity.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}

// Is checks if err is an instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}
