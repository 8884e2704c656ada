// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"errors"
	"io"

	"go4.org/mem"
)

// Unquote decodes src as a complete JSON string literal, including its
// enclosing quotation marks, and returns the decoded contents. The literal
// must span the entire input. The input must be valid UTF-8.
func Unquote(src string) (string, error) {
	r, err := openLiteral(src)
	if err != nil {
		return "", err
	}
	var scratch []byte
	text, err := r.ParseString(&scratch)
	if err != nil {
		return "", err
	}
	if err := atEOF(r); err != nil {
		return "", err
	}
	return text.String(), nil
}

// UnquoteRaw is Unquote without UTF-8 validation of the contents, using the
// lenient surrogate handling of ParseStringRaw. It returns the decoded
// bytes, which are not guaranteed to be valid UTF-8.
func UnquoteRaw(src string) ([]byte, error) {
	r, err := openLiteral(src)
	if err != nil {
		return nil, err
	}
	var scratch []byte
	text, err := r.ParseStringRaw(&scratch)
	if err != nil {
		return nil, err
	}
	if err := atEOF(r); err != nil {
		return nil, err
	}
	// The result may alias the reader's internal buffer; copy it out so the
	// caller owns it.
	return mem.Append(nil, text.RO()), nil
}

// openLiteral checks that src begins a string literal and returns a reader
// positioned after the opening quotation mark.
func openLiteral(src string) (*StringReader, error) {
	if len(src) < 2 || src[0] != '"' {
		return nil, errors.New("not a string literal")
	}
	r := NewStringReader(src)
	r.Discard() // the opening quotation mark
	return r, nil
}

// atEOF reports an error unless r is exhausted.
func atEOF(r Reader) error {
	if _, err := r.Peek(); err != io.EOF {
		return errors.New("extra data after string literal")
	}
	return nil
}
