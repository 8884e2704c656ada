// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread

import "fmt"

// A Position describes a location in the input. Lines are 1-based and
// columns are 0-based byte offsets within the line, so the first byte of the
// input is at 1:0. Positions are intended for diagnostics; the exact byte
// count consumed is reported by the ByteOffset method of a Reader.
type Position struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// positionOfIndex reports the position of the byte at offset i of buf by
// rescanning buf[:i]. Slice-backed readers use this on their error paths,
// where linear cost does not matter.
func positionOfIndex(buf []byte, i int) Position {
	pos := Position{Line: 1, Column: 0}
	for _, ch := range buf[:i] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 0
		} else {
			pos.Column++
		}
	}
	return pos
}
