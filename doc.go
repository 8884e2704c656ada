// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jread implements the byte-level input layer underneath a JSON
// parser: it delivers bytes from a stream, slice, or string source, tracks
// input positions for diagnostics, and decodes quoted JSON strings including
// escape sequences and UTF-16 surrogate pairs.
//
// The package recognizes only the lexical grammar of quoted strings. Full
// grammar validation (number syntax, structural nesting) belongs to the
// token-level parser driving the reader.
//
// # Readers
//
// The sealed Reader interface is implemented by three source types with
// different ownership trade-offs:
//
//   - StreamReader pulls single bytes from an io.Reader with one byte of
//     look-ahead, tracking line and column incrementally.
//   - SliceReader indexes a borrowed byte slice and can return decoded
//     strings as zero-copy views into it.
//   - StringReader is a specialization of SliceReader for string input that
//     skips redundant UTF-8 validation.
//
// The caller drives the byte primitives directly and calls ParseString once
// it has consumed an opening quotation mark:
//
//	r := jread.NewSliceReader(data)
//	var scratch []byte
//	for {
//		ch, err := r.Next()
//		if err == io.EOF {
//			break
//		}
//		if ch == '"' {
//			text, err := r.ParseString(&scratch)
//			if err != nil {
//				log.Fatalf("Decode failed: %v", err)
//			}
//			process(text.Bytes())
//		}
//	}
//
// # Borrowed and copied results
//
// ParseString and ParseStringRaw return a Text, which is either a view
// borrowed from the reader's own buffer (slice and string readers, when the
// string contains no escapes) or a copy accumulated in the caller-supplied
// scratch buffer. Both forms are read-only and valid only until the next use
// of the reader or the scratch buffer; IsBorrowed distinguishes them.
//
// # Validating and raw decoding
//
// ParseString enforces the JSON string rules: unescaped control bytes and
// unpaired surrogate escapes are errors, and the decoded text must be valid
// UTF-8. ParseStringRaw is the lenient variant: control bytes pass through
// unchanged, and an unpaired surrogate \uHHHH escape is preserved as the
// overlong three-byte sequence
//
//	0xE0|hi(n), 0x80|mid(n), 0x80|lo(n)
//
// which is not valid UTF-8 but lets a later writer reproduce the original
// input byte for byte.
//
// Errors from either path wrap one of the package's sentinel errors in a
// *SyntaxError reporting the line and column where the problem was found.
//
// # Raw capture
//
// A reader can record the exact bytes consumed while a larger value is
// parsed, for callers who want original text rather than decoded content.
// The capability is expressed by the separate Capturer interface, which all
// built-in readers implement:
//
//	c := r.(jread.Capturer)
//	c.BeginCapture()
//	// ... drive the reader ...
//	raw, err := c.EndCapture()
//
// Captures must be strictly paired and do not nest.
package jread
