// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/creachadair/jread"
	"github.com/google/go-cmp/cmp"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a b\tc"`, "a b\tc"},
		{`"\"\\\/"`, `"\/`},
		{`"a\u0041b"`, "aAb"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"¡ü日本語"`, "¡ü日本語"},
		{`"  "`, "  "},
	}
	for _, test := range tests {
		got, err := jread.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}

		// The decoding must agree with the standard library's.
		var std string
		if err := json.Unmarshal([]byte(test.input), &std); err != nil {
			t.Fatalf("json.Unmarshal %#q failed: %v", test.input, err)
		}
		if diff := cmp.Diff(std, got); diff != "" {
			t.Errorf("Unquote %#q disagrees with encoding/json (-std, +got):\n%s", test.input, diff)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error // nil means any error is acceptable
	}{
		{``, nil},
		{`"`, nil},
		{`x`, nil},
		{`hello`, nil},
		{`"abc`, jread.ErrUnterminatedString},
		{`"abc" x`, nil},
		{`"abc""`, nil},
		{`"a\qb"`, jread.ErrInvalidEscape},
		{`"\ud800"`, jread.ErrIncompleteEscape},
	}
	for _, test := range tests {
		got, err := jread.Unquote(test.input)
		if err == nil {
			t.Errorf("Unquote %#q: got %q, want error", test.input, got)
			continue
		}
		if test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("Unquote %#q: got error %v, want %v", test.input, err, test.want)
		}
	}
}

func TestUnquoteRaw(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{`"plain"`, []byte("plain")},
		{`"\ud800"`, []byte{0xED, 0xA0, 0x80}},
		{"\"a\x01b\"", []byte{'a', 0x01, 'b'}},
	}
	for _, test := range tests {
		got, err := jread.UnquoteRaw(test.input)
		if err != nil {
			t.Errorf("UnquoteRaw %#q failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("UnquoteRaw %#q (-want, +got):\n%s", test.input, diff)
		}
	}
}
