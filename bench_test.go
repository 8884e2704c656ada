// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jread_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/creachadair/jread"
)

func BenchmarkParseString(b *testing.B) {
	inputs := []struct {
		name string
		lit  string // a complete string literal including quotation marks
	}{
		{"Short", `"hello, world"`},
		{"Long", `"` + strings.Repeat("abcdefghij", 100) + `"`},
		{"Escaped", `"` + strings.Repeat(`a\tb\u0041`, 50) + `"`},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.Logf("Benchmark input: %d bytes", len(in.lit))

			// The standard library decoder, for a baseline.
			b.Run("JSON", func(b *testing.B) {
				data := []byte(in.lit)
				for i := 0; i < b.N; i++ {
					var s string
					if err := json.Unmarshal(data, &s); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
				}
			})

			b.Run("Slice", func(b *testing.B) {
				data := []byte(in.lit)
				var scratch []byte
				for i := 0; i < b.N; i++ {
					r := jread.NewSliceReader(data)
					if _, err := r.Next(); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
					if _, err := r.ParseString(&scratch); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
				}
			})

			b.Run("String", func(b *testing.B) {
				var scratch []byte
				for i := 0; i < b.N; i++ {
					r := jread.NewStringReader(in.lit)
					if _, err := r.Next(); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
					if _, err := r.ParseString(&scratch); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
				}
			})

			b.Run("Stream", func(b *testing.B) {
				var scratch []byte
				for i := 0; i < b.N; i++ {
					r := jread.NewStreamReader(strings.NewReader(in.lit))
					if _, err := r.Next(); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
					if _, err := r.ParseString(&scratch); err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
				}
			})
		})
	}
}
