package service

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound signals a missing customer to callers; the HTTP layer
// maps it to a 404.
var ErrCustomerNotFound = errors.New("customer not found")

// EmailConflictError is returned when an email address already belongs to
// another customer. It names the existing owner so admins can resolve the
// collision.
type EmailConflictError struct {
	Email          string
	OwnerFirstName string
	OwnerLastName  string
}

func (e *EmailConflictError) Error() string {
	return fmt.Sprintf("email %s already belongs to %s %s", e.Email, e.OwnerFirstName, e.OwnerLastName)
}
