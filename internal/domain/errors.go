package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports a referenced record the store could not resolve.
// The message is shown to API clients, so it names the resource only.
type NotFoundError struct {
	Resource string
	ID       ID
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return e.Resource + " not found"
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError rejects input before any storage call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Field != "":
		return "invalid " + e.Field
	case e.Msg != "":
		return e.Msg
	default:
		return "validation error"
	}
}

// InternalError hides storage details from callers while keeping the cause for logs.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg == "" {
		return "internal error"
	}
	return e.Msg
}

func (e InternalError) Unwrap() error { return e.Err }

func HotelNotFound(id ID) error {
	return NotFoundError{Resource: "Hotel", ID: id}
}

func ItineraryNotFound(id ID) error {
	return NotFoundError{Resource: "Itinerary", ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsInternal(err error) bool {
	var ie InternalError
	return errors.As(err, &ie)
}
