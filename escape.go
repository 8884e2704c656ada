// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import "unicode/utf8"

// isSpecial flags the bytes that interrupt the plain-byte scan of a quoted
// string: the closing quotation mark, a backslash, and the control bytes
// 0x00 through 0x1F.
var isSpecial [256]bool

// hexValue maps an ASCII hexadecimal digit to its value; all other bytes
// map to 0xFF.
var hexValue [256]byte

func init() {
	for i := 0; i < 0x20; i++ {
		isSpecial[i] = true
	}
	isSpecial['"'] = true
	isSpecial['\\'] = true

	for i := range hexValue {
		hexValue[i] = 0xFF
	}
	for c := byte('0'); c <= '9'; c++ {
		hexValue[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexValue[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexValue[c] = c - 'A' + 10
	}
}

// parseEscape decodes one escape sequence and appends its expansion to
// scratch. The caller has already consumed the backslash. When validate is
// false, unpaired surrogates are preserved with an overlong encoding instead
// of being rejected.
func parseEscape(r Reader, validate bool, scratch *[]byte) error {
	ch, err := nextOrEOF(r)
	if err != nil {
		return err
	}
	switch ch {
	case '"', '\\', '/':
		*scratch = append(*scratch, ch)
	case 'b':
		*scratch = append(*scratch, '\b')
	case 'f':
		*scratch = append(*scratch, '\f')
	case 'n':
		*scratch = append(*scratch, '\n')
	case 'r':
		*scratch = append(*scratch, '\r')
	case 't':
		*scratch = append(*scratch, '\t')
	case 'u':
		return parseUnicodeEscape(r, validate, scratch)
	default:
		return syntaxError(r, ErrInvalidEscape)
	}
	return nil
}

// parseUnicodeEscape decodes the code unit of a \u escape whose "\u" prefix
// has already been consumed, reconstructing a surrogate pair when the unit
// is a leading surrogate.
func parseUnicodeEscape(r Reader, validate bool, scratch *[]byte) error {
	n1, err := r.DecodeHexEscape()
	if err != nil {
		return err
	}
	switch {
	case n1 >= 0xDC00 && n1 <= 0xDFFF:
		// An unpaired trailing surrogate.
		if validate {
			return syntaxError(r, ErrLoneSurrogate)
		}
		appendSurrogate(scratch, n1)
		return nil

	case n1 >= 0xD800 && n1 <= 0xDBFF:
		// A leading surrogate. The only valid continuation is a second
		// \uHHHH escape carrying its trailing partner.
		if ch, err := peekOrEOF(r); err != nil {
			return err
		} else if ch != '\\' {
			if validate {
				r.Discard()
				return syntaxError(r, ErrIncompleteEscape)
			}
			appendSurrogate(scratch, n1)
			return nil
		}
		r.Discard()
		if ch, err := peekOrEOF(r); err != nil {
			return err
		} else if ch != 'u' {
			if validate {
				r.Discard()
				return syntaxError(r, ErrIncompleteEscape)
			}
			appendSurrogate(scratch, n1)
			// The backslash is already consumed, so whatever followed it
			// must now be decoded as an escape in its own right.
			return parseEscape(r, validate, scratch)
		}
		r.Discard()
		n2, err := r.DecodeHexEscape()
		if err != nil {
			return err
		}
		if n2 < 0xDC00 || n2 > 0xDFFF {
			return syntaxError(r, ErrLoneSurrogate)
		}
		n := (rune(n1-0xD800)<<10 | rune(n2-0xDC00)) + 0x10000
		*scratch = utf8.AppendRune(*scratch, n)
		return nil

	default:
		// Any other 16-bit unit is a valid scalar value.
		*scratch = utf8.AppendRune(*scratch, rune(n1))
		return nil
	}
}

// appendSurrogate appends the overlong three-byte encoding of an unpaired
// surrogate code unit. The result is not valid UTF-8; it exists so that the
// non-validating decode path can hand back malformed input byte for byte.
func appendSurrogate(scratch *[]byte, n uint16) {
	*scratch = append(*scratch,
		0xE0|byte(n>>12&0x0F),
		0x80|byte(n>>6&0x3F),
		0x80|byte(n&0x3F),
	)
}

// ignoreEscape consumes one escape sequence without recording its expansion.
// The caller has already consumed the backslash. Surrogate pairing is not
// checked; this scan is used only when the string's contents are discarded.
func ignoreEscape(r Reader) error {
	ch, err := nextOrEOF(r)
	if err != nil {
		return err
	}
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		// single-byte escape
	case 'u':
		if _, err := r.DecodeHexEscape(); err != nil {
			return err
		}
	default:
		return syntaxError(r, ErrInvalidEscape)
	}
	return nil
}
