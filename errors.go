package ics

import (
	"errors"
)

var (
	// ErrBadParameters is returned when an argument has the wrong kind, an
	// out of range code or otherwise cannot be used.
	ErrBadParameters = errors.New("BADARG: Bad argument to function")
	// ErrNotInitialized is returned when a method is called on a node that
	// was never initialized.
	ErrNotInitialized = errors.New("object not initialized")
	// ErrNewFailed is returned when a node of the requested kind cannot be
	// created.
	ErrNewFailed = errors.New("NEWFAILED: Failed to create a new object via a *_new() routine")
	// ErrMalformedData is returned when input was not correctly formed or a
	// component has missing or extra properties.
	ErrMalformedData = errors.New("MALFORMEDDATA: An input string was not correctly formed or a component has missing or extra properties")
	// ErrParse is returned when part of a component cannot be parsed.
	ErrParse = errors.New("PARSE: Failed to parse a part of an iCal component")
	// ErrFile is returned when an operation on a file failed.
	ErrFile = errors.New("FILE: An operation on a file failed")
	// ErrExpansion is returned when a recurrence cannot be expanded.
	ErrExpansion = errors.New("unable to determine dates")
	// ErrorPropertyNotFound is the error returned if the requested valid
	// property is not set.
	ErrorPropertyNotFound = errors.New("property not found")
)

const noErrorString = "NO: No error"

var errorStrings = []error{
	ErrBadParameters,
	ErrNotInitialized,
	ErrNewFailed,
	ErrMalformedData,
	ErrParse,
	ErrFile,
	ErrExpansion,
	ErrorPropertyNotFound,
}

// StrError returns the descriptive string of the library error that err
// wraps. Errors from outside the library report as UNKNOWN.
func StrError(err error) string {
	if err == nil {
		return noErrorString
	}
	for _, e := range errorStrings {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return "UNKNOWN: Unknown error type"
}
