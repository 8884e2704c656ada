// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"io"

	"go4.org/mem"
)

// A Reader delivers bytes from a single JSON input and decodes quoted string
// values in place. The caller drives Next, Peek, and Discard directly for
// structural tokens, and calls one of the string methods after consuming an
// opening quotation mark.
//
// The interface is sealed: the concrete implementations are [StreamReader],
// [SliceReader], and [StringReader]. A Reader is not safe for concurrent
// use; each parse session owns exactly one Reader and one scratch buffer.
type Reader interface {
	// Next consumes and returns the next byte of the input. It returns
	// io.EOF when the input is exhausted.
	Next() (byte, error)

	// Peek returns the next byte of the input without consuming it. Peek
	// is idempotent: repeated calls without an intervening Next or Discard
	// return the same byte without advancing ByteOffset. It returns io.EOF
	// when the input is exhausted.
	Peek() (byte, error)

	// Discard consumes a byte previously returned by Peek without
	// re-reading it.
	Discard()

	// Position reports the line and column of the most recently consumed
	// byte. It is meant for error messages only; slice-backed readers
	// compute it by rescanning the input consumed so far.
	Position() Position

	// PeekPosition reports the position of the most recently peeked byte,
	// with the same caveats as Position.
	PeekPosition() Position

	// ByteOffset reports the exact number of bytes consumed so far, which
	// is the 0-based offset of the next byte Next or Peek would deliver.
	ByteOffset() int

	// ParseString decodes a quoted string whose opening quotation mark has
	// already been consumed, leaving the reader positioned after the
	// closing quotation mark. The decoded text is validated as UTF-8.
	//
	// The scratch buffer is truncated on entry and written only when the
	// result cannot borrow from the reader's own buffer. The returned Text
	// is valid until the next use of the reader or of scratch.
	ParseString(scratch *[]byte) (Text, error)

	// ParseStringRaw is ParseString without UTF-8 validation: unescaped
	// control bytes pass through, and unpaired surrogate escapes are
	// preserved rather than rejected. See the package documentation for
	// the exact lenient encoding.
	ParseStringRaw(scratch *[]byte) (Text, error)

	// SkipString scans a quoted string exactly like ParseString but
	// discards its contents.
	SkipString() error

	// DecodeHexEscape reads exactly four hexadecimal digit bytes and
	// returns the 16-bit code unit they denote.
	DecodeHexEscape() (uint16, error)

	// MarkFailed marks the reader permanently exhausted: subsequent Next
	// and Peek calls report io.EOF. A streaming driver calls this once
	// after a fatal error so that further iteration terminates cheaply.
	MarkFailed()

	sealed() // only the built-in readers may implement Reader
}

// A Capturer records the exact bytes consumed between a paired BeginCapture
// and EndCapture call. It is an optional capability, separate from the
// Reader interface; a caller holding a Reader must assert for it:
//
//	if c, ok := r.(jread.Capturer); ok {
//		c.BeginCapture()
//		// ...
//	}
//
// All the built-in readers implement Capturer. Captures must be strictly
// paired and must not nest; at most one capture is active per reader, and
// violating either rule panics.
type Capturer interface {
	// BeginCapture starts recording consumed bytes.
	BeginCapture()

	// EndCapture stops recording and returns the bytes consumed since the
	// matching BeginCapture. The capture is validated as UTF-8 unless the
	// reader's input is already known to be valid UTF-8.
	EndCapture() (Text, error)
}

// A Text is the result of decoding a string: a read-only view of bytes that
// are either borrowed directly from the reader's input or copied into the
// caller's scratch buffer. Either way the view is valid only until the next
// mutating use of the reader or scratch buffer it was decoded from; callers
// that retain the contents must copy them.
type Text struct {
	bs       []byte
	borrowed bool
}

func borrowedText(bs []byte) Text { return Text{bs: bs, borrowed: true} }
func copiedText(bs []byte) Text   { return Text{bs: bs} }

// Bytes returns the decoded bytes. The caller must not modify the returned
// slice.
func (t Text) Bytes() []byte { return t.bs }

// String returns a copy of the decoded bytes as a string.
func (t Text) String() string { return string(t.bs) }

// RO returns a read-only view of the decoded bytes.
func (t Text) RO() mem.RO { return mem.B(t.bs) }

// Len reports the length of the decoded text in bytes.
func (t Text) Len() int { return len(t.bs) }

// IsBorrowed reports whether t points into the reader's own input rather
// than the scratch buffer. Only slice- and string-backed readers borrow,
// and only when the string contained no escape sequences.
func (t Text) IsBorrowed() bool { return t.borrowed }

// nextOrEOF consumes the next byte of r, converting end-of-input into an
// unterminated string error at the current position.
func nextOrEOF(r Reader) (byte, error) {
	ch, err := r.Next()
	if err == io.EOF {
		return 0, syntaxError(r, ErrUnterminatedString)
	}
	return ch, err
}

// peekOrEOF peeks at the next byte of r, converting end-of-input into an
// unterminated string error at the current position.
func peekOrEOF(r Reader) (byte, error) {
	ch, err := r.Peek()
	if err == io.EOF {
		return 0, syntaxError(r, ErrUnterminatedString)
	}
	return ch, err
}

var (
	_ Reader   = (*StreamReader)(nil)
	_ Reader   = (*SliceReader)(nil)
	_ Reader   = (*StringReader)(nil)
	_ Capturer = (*StreamReader)(nil)
	_ Capturer = (*SliceReader)(nil)
	_ Capturer = (*StringReader)(nil)
)
