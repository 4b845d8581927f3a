// Package errs defines the sentinel errors returned by pathpack.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to add context such as the
// offending command letter, number literal or byte offset. Use errors.Is to
// test for a specific failure kind.
package errs

import "errors"

// Path data errors.
var (
	// ErrMissingCommand is returned when a number appears before any command letter.
	ErrMissingCommand = errors.New("missing first command")
	// ErrNumberSyntax is returned when a number literal does not parse to a finite value.
	ErrNumberSyntax = errors.New("invalid number")
	// ErrArityMismatch is returned when a command's argument count does not fit its arity.
	ErrArityMismatch = errors.New("argument count does not match command arity")
	// ErrInvalidFlag is returned when an arc's large-arc or sweep flag is not 0 or 1.
	ErrInvalidFlag = errors.New("invalid arc flag")
)

// Wire format errors.
var (
	// ErrUnknownCommand is returned for a header command field that maps to a reserved code,
	// or when encoding a command letter outside the path grammar.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrTruncated is returned when the buffer ends inside a record payload.
	ErrTruncated = errors.New("truncated record")
)

// Configuration errors.
var (
	ErrInvalidFactor           = errors.New("factor must be a finite positive number")
	ErrInvalidPermissibleError = errors.New("permissible error must be a finite non-negative number")
	ErrInvalidRange            = errors.New("byte range is outside the input buffer")
)
