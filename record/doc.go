// Package record implements the fixed layout of a single pathpack wire record.
//
// A record is one header byte followed by the command's payload:
//
//	bit  7 6 5 4 | 3        | 2 1 0
//	     command | relative | width
//
// The payload holds Arity() values of the selected width, little-endian, with
// no padding. A stream is a plain concatenation of records.
package record
