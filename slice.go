// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"io"
	"unicode/utf8"
)

// A SliceReader reads from a byte slice borrowed from the caller. When a
// string contains no escape sequences, its decoded value is returned as a
// view into that slice with no copying.
type SliceReader struct {
	data  []byte
	index int // offset of the next byte Next or Peek will deliver

	capturing    bool
	captureStart int
}

// NewSliceReader constructs a reader over data. The reader borrows data; the
// caller must not modify it for the duration of the parse.
func NewSliceReader(data []byte) *SliceReader { return &SliceReader{data: data} }

func (r *SliceReader) sealed() {}

// Next implements part of the Reader interface.
func (r *SliceReader) Next() (byte, error) {
	if r.index < len(r.data) {
		ch := r.data[r.index]
		r.index++
		return ch, nil
	}
	return 0, io.EOF
}

// Peek implements part of the Reader interface.
func (r *SliceReader) Peek() (byte, error) {
	if r.index < len(r.data) {
		return r.data[r.index], nil
	}
	return 0, io.EOF
}

// Discard implements part of the Reader interface.
func (r *SliceReader) Discard() { r.index++ }

// Position implements part of the Reader interface by rescanning the input
// up to the current offset.
func (r *SliceReader) Position() Position {
	return positionOfIndex(r.data, min(r.index, len(r.data)))
}

// PeekPosition implements part of the Reader interface.
func (r *SliceReader) PeekPosition() Position {
	return positionOfIndex(r.data, min(r.index+1, len(r.data)))
}

// ByteOffset implements part of the Reader interface in constant time.
func (r *SliceReader) ByteOffset() int { return r.index }

// parseText is the scan loop shared by ParseString, ParseStringRaw, and the
// StringReader decode path. If the closing quotation mark is reached with
// scratch still empty, the result borrows from r.data; otherwise the pending
// run of plain bytes is flushed into scratch around each escape and the
// result is a copy.
func (r *SliceReader) parseText(scratch *[]byte, validate bool) (Text, error) {
	*scratch = (*scratch)[:0]
	start := r.index
	for {
		for r.index < len(r.data) && !isSpecial[r.data[r.index]] {
			r.index++
		}
		if r.index == len(r.data) {
			return Text{}, syntaxError(r, ErrUnterminatedString)
		}
		switch r.data[r.index] {
		case '"':
			if len(*scratch) == 0 {
				borrowed := r.data[start:r.index]
				r.index++
				return borrowedText(borrowed), nil
			}
			*scratch = append(*scratch, r.data[start:r.index]...)
			r.index++
			return copiedText(*scratch), nil
		case '\\':
			*scratch = append(*scratch, r.data[start:r.index]...)
			r.index++
			if err := parseEscape(r, validate, scratch); err != nil {
				return Text{}, err
			}
			start = r.index
		default:
			// A control byte. In lenient mode it stays in the pending run.
			r.index++
			if validate {
				return Text{}, syntaxError(r, ErrControlCharacter)
			}
		}
	}
}

// ParseString implements part of the Reader interface.
func (r *SliceReader) ParseString(scratch *[]byte) (Text, error) {
	text, err := r.parseText(scratch, true)
	if err != nil {
		return Text{}, err
	}
	if !utf8.Valid(text.bs) {
		return Text{}, syntaxError(r, ErrInvalidCodePoint)
	}
	return text, nil
}

// ParseStringRaw implements part of the Reader interface.
func (r *SliceReader) ParseStringRaw(scratch *[]byte) (Text, error) {
	return r.parseText(scratch, false)
}

// SkipString implements part of the Reader interface.
func (r *SliceReader) SkipString() error {
	for {
		for r.index < len(r.data) && !isSpecial[r.data[r.index]] {
			r.index++
		}
		if r.index == len(r.data) {
			return syntaxError(r, ErrUnterminatedString)
		}
		switch r.data[r.index] {
		case '"':
			r.index++
			return nil
		case '\\':
			r.index++
			if err := ignoreEscape(r); err != nil {
				return err
			}
		default:
			return syntaxError(r, ErrControlCharacter)
		}
	}
}

// DecodeHexEscape implements part of the Reader interface.
func (r *SliceReader) DecodeHexEscape() (uint16, error) {
	if r.index+4 > len(r.data) {
		r.index = len(r.data)
		return 0, syntaxError(r, ErrUnterminatedString)
	}
	var n uint16
	for i := 0; i < 4; i++ {
		v := hexValue[r.data[r.index]]
		r.index++
		if v == 0xFF {
			return 0, syntaxError(r, ErrInvalidEscape)
		}
		n = n<<4 | uint16(v)
	}
	return n, nil
}

// MarkFailed implements part of the Reader interface by truncating the
// unread input, so that Next and Peek report io.EOF without any further
// bookkeeping.
func (r *SliceReader) MarkFailed() { r.data = r.data[:r.index] }

// BeginCapture implements part of the Capturer interface.
func (r *SliceReader) BeginCapture() {
	if r.capturing {
		panic("jread: BeginCapture while a capture is active")
	}
	r.capturing = true
	r.captureStart = r.index
}

// EndCapture implements part of the Capturer interface. The returned Text
// borrows from the reader's input.
func (r *SliceReader) EndCapture() (Text, error) { return r.endCapture(true) }

func (r *SliceReader) endCapture(validate bool) (Text, error) {
	if !r.capturing {
		panic("jread: EndCapture without BeginCapture")
	}
	r.capturing = false
	raw := r.data[r.captureStart:r.index]
	if validate && !utf8.Valid(raw) {
		return Text{}, syntaxError(r, ErrInvalidCodePoint)
	}
	return borrowedText(raw), nil
}

// A StringReader reads from a string, delegating to an internal SliceReader
// over the string's bytes. The input must be valid UTF-8; because the whole
// buffer is known valid up front, the validating decode path can skip its
// final UTF-8 check.
type StringReader struct {
	slice SliceReader
}

// NewStringReader constructs a reader over s, which must be valid UTF-8.
func NewStringReader(s string) *StringReader {
	return &StringReader{slice: SliceReader{data: []byte(s)}}
}

func (r *StringReader) sealed() {}

// Next implements part of the Reader interface.
func (r *StringReader) Next() (byte, error) { return r.slice.Next() }

// Peek implements part of the Reader interface.
func (r *StringReader) Peek() (byte, error) { return r.slice.Peek() }

// Discard implements part of the Reader interface.
func (r *StringReader) Discard() { r.slice.Discard() }

// Position implements part of the Reader interface.
func (r *StringReader) Position() Position { return r.slice.Position() }

// PeekPosition implements part of the Reader interface.
func (r *StringReader) PeekPosition() Position { return r.slice.PeekPosition() }

// ByteOffset implements part of the Reader interface.
func (r *StringReader) ByteOffset() int { return r.slice.ByteOffset() }

// ParseString implements part of the Reader interface. The input is already
// valid UTF-8 and validated escape expansion only produces valid UTF-8, so
// no final validation pass is needed.
func (r *StringReader) ParseString(scratch *[]byte) (Text, error) {
	return r.slice.parseText(scratch, true)
}

// ParseStringRaw implements part of the Reader interface.
func (r *StringReader) ParseStringRaw(scratch *[]byte) (Text, error) {
	return r.slice.ParseStringRaw(scratch)
}

// SkipString implements part of the Reader interface.
func (r *StringReader) SkipString() error { return r.slice.SkipString() }

// DecodeHexEscape implements part of the Reader interface.
func (r *StringReader) DecodeHexEscape() (uint16, error) { return r.slice.DecodeHexEscape() }

// MarkFailed implements part of the Reader interface.
func (r *StringReader) MarkFailed() { r.slice.MarkFailed() }

// BeginCapture implements part of the Capturer interface.
func (r *StringReader) BeginCapture() { r.slice.BeginCapture() }

// EndCapture implements part of the Capturer interface. The capture is a
// subrange of the original string, so no UTF-8 check is performed.
func (r *StringReader) EndCapture() (Text, error) { return r.slice.endCapture(false) }
