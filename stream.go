// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// A StreamReader reads from an io.Reader one byte at a time, keeping at most
// one byte of look-ahead. It has no retained input to borrow from, so
// decoded strings are always copied into the caller's scratch buffer.
type StreamReader struct {
	r       io.ByteReader
	peeked  byte
	hasPeek bool
	failed  bool

	// Position of the byte most recently fetched from r, tracked
	// incrementally. The slice readers rescan on demand instead.
	line, col int
	offset    int

	capture []byte // active raw capture; nil when no capture is active
}

// NewStreamReader constructs a reader that consumes input from r. If r is
// not already a *bufio.Reader, it is wrapped in one.
func NewStreamReader(r io.Reader) *StreamReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &StreamReader{r: br, line: 1}
}

func (r *StreamReader) sealed() {}

// fetch pulls one byte from the underlying reader and advances the position
// counters.
func (r *StreamReader) fetch() (byte, error) {
	ch, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.offset++
	if ch == '\n' {
		r.line++
		r.col = 0
	} else {
		r.col++
	}
	return ch, nil
}

// record mirrors a consumed byte into the active raw capture, if any.
func (r *StreamReader) record(ch byte) {
	if r.capture != nil {
		r.capture = append(r.capture, ch)
	}
}

// Next implements part of the Reader interface.
func (r *StreamReader) Next() (byte, error) {
	if r.failed {
		return 0, io.EOF
	}
	if r.hasPeek {
		r.hasPeek = false
		r.record(r.peeked)
		return r.peeked, nil
	}
	ch, err := r.fetch()
	if err != nil {
		return 0, err
	}
	r.record(ch)
	return ch, nil
}

// Peek implements part of the Reader interface.
func (r *StreamReader) Peek() (byte, error) {
	if r.failed {
		return 0, io.EOF
	}
	if r.hasPeek {
		return r.peeked, nil
	}
	ch, err := r.fetch()
	if err != nil {
		return 0, err
	}
	r.peeked, r.hasPeek = ch, true
	return ch, nil
}

// Discard implements part of the Reader interface.
func (r *StreamReader) Discard() {
	if r.hasPeek {
		r.hasPeek = false
		r.record(r.peeked)
	}
}

// Position implements part of the Reader interface in constant time.
func (r *StreamReader) Position() Position {
	return Position{Line: r.line, Column: r.col}
}

// PeekPosition implements part of the Reader interface. The position
// counters already include a byte held in the look-ahead cell, so this is
// the same as Position.
func (r *StreamReader) PeekPosition() Position { return r.Position() }

// ByteOffset implements part of the Reader interface. A byte held in the
// look-ahead cell has not been consumed and is not counted.
func (r *StreamReader) ByteOffset() int {
	if r.hasPeek {
		return r.offset - 1
	}
	return r.offset
}

// parseText is the scan loop shared by ParseString and ParseStringRaw,
// accumulating the decoded contents in scratch.
func (r *StreamReader) parseText(scratch *[]byte, validate bool) ([]byte, error) {
	*scratch = (*scratch)[:0]
	for {
		ch, err := nextOrEOF(r)
		if err != nil {
			return nil, err
		}
		if !isSpecial[ch] {
			*scratch = append(*scratch, ch)
			continue
		}
		switch ch {
		case '"':
			return *scratch, nil
		case '\\':
			if err := parseEscape(r, validate, scratch); err != nil {
				return nil, err
			}
		default:
			if validate {
				return nil, syntaxError(r, ErrControlCharacter)
			}
			*scratch = append(*scratch, ch)
		}
	}
}

// ParseString implements part of the Reader interface. The result is always
// a copy in scratch.
func (r *StreamReader) ParseString(scratch *[]byte) (Text, error) {
	bs, err := r.parseText(scratch, true)
	if err != nil {
		return Text{}, err
	}
	if !utf8.Valid(bs) {
		return Text{}, syntaxError(r, ErrInvalidCodePoint)
	}
	return copiedText(bs), nil
}

// ParseStringRaw implements part of the Reader interface.
func (r *StreamReader) ParseStringRaw(scratch *[]byte) (Text, error) {
	bs, err := r.parseText(scratch, false)
	if err != nil {
		return Text{}, err
	}
	return copiedText(bs), nil
}

// SkipString implements part of the Reader interface.
func (r *StreamReader) SkipString() error {
	for {
		ch, err := nextOrEOF(r)
		if err != nil {
			return err
		}
		if !isSpecial[ch] {
			continue
		}
		switch ch {
		case '"':
			return nil
		case '\\':
			if err := ignoreEscape(r); err != nil {
				return err
			}
		default:
			return syntaxError(r, ErrControlCharacter)
		}
	}
}

// DecodeHexEscape implements part of the Reader interface.
func (r *StreamReader) DecodeHexEscape() (uint16, error) {
	var n uint16
	for i := 0; i < 4; i++ {
		ch, err := nextOrEOF(r)
		if err != nil {
			return 0, err
		}
		v := hexValue[ch]
		if v == 0xFF {
			return 0, syntaxError(r, ErrInvalidEscape)
		}
		n = n<<4 | uint16(v)
	}
	return n, nil
}

// MarkFailed implements part of the Reader interface by setting a flag that
// Next and Peek check.
func (r *StreamReader) MarkFailed() { r.failed = true }

// BeginCapture implements part of the Capturer interface.
func (r *StreamReader) BeginCapture() {
	if r.capture != nil {
		panic("jread: BeginCapture while a capture is active")
	}
	r.capture = []byte{}
}

// EndCapture implements part of the Capturer interface. The returned Text
// is a copy of the bytes accumulated while the capture was active.
func (r *StreamReader) EndCapture() (Text, error) {
	if r.capture == nil {
		panic("jread: EndCapture without BeginCapture")
	}
	raw := r.capture
	r.capture = nil
	if !utf8.Valid(raw) {
		return Text{}, syntaxError(r, ErrInvalidCodePoint)
	}
	return copiedText(raw), nil
}
