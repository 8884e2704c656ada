// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"errors"
	"fmt"
)

// Sentinel errors reported while decoding string values. Errors returned by
// a Reader wrap one of these in a [*SyntaxError] carrying the position where
// the problem was detected; match them with errors.Is.
var (
	// ErrUnterminatedString: the input ended before the closing quote.
	ErrUnterminatedString = errors.New("end of input while parsing string")

	// ErrControlCharacter: an unescaped control byte in a validated string.
	ErrControlCharacter = errors.New("control character while parsing string")

	// ErrInvalidEscape: a backslash followed by an unrecognized escape
	// introducer, or a non-hex digit inside a \u escape.
	ErrInvalidEscape = errors.New("invalid escape")

	// ErrInvalidCodePoint: decoded or captured text is not valid UTF-8.
	ErrInvalidCodePoint = errors.New("invalid unicode code point")

	// ErrLoneSurrogate: an unpaired surrogate code unit in a \u escape.
	ErrLoneSurrogate = errors.New("lone leading surrogate in hex escape")

	// ErrIncompleteEscape: a leading surrogate not immediately followed by
	// a second \uHHHH escape.
	ErrIncompleteEscape = errors.New("unexpected end of hex escape")
)

// A SyntaxError reports a string decoding error together with the position
// in the input where it was detected.
type SyntaxError struct {
	Pos Position // the position where the problem was detected
	Err error    // the underlying cause
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("%v at %v", e.Err, e.Pos) }

// Unwrap returns the underlying cause of e.
func (e *SyntaxError) Unwrap() error { return e.Err }

// syntaxError wraps err with the current position of r.
func syntaxError(r Reader, err error) error {
	return &SyntaxError{Pos: r.Position(), Err: err}
}
