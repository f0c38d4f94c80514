package transform

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty string", input: "", expected: nil},
		{name: "single line", input: "a", expected: []string{"a"}},
		{name: "trailing newline dropped once", input: "a\n", expected: []string{"a"}},
		{name: "two trailing newlines keep one blank", input: "a\n\n", expected: []string{"a", ""}},
		{name: "lone newline", input: "\n", expected: []string{""}},
		{name: "CRLF", input: "a\r\nb", expected: []string{"a", "b"}},
		{name: "CR", input: "a\rb", expected: []string{"a", "b"}},
		{name: "mixed", input: "a\r\nb\rc\nd", expected: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "a\nb", expected: "a\nb"},
		{input: "a\r\nb\r\n", expected: "a\nb\n"},
		{input: "a\rb", expected: "a\nb"},
		{input: "a\r\n\r\nb", expected: "a\n\nb"},
	}

	for _, tt := range tests {
		if got := NormalizeLineEndings(tt.input); got != tt.expected {
			t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsMarkerLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"a", true},
		{"Z", true},
		{"  b\t", true},
		{"", false},
		{"   ", false},
		{"ab", false},
		{"a.", false},
		{"1", false},
		{"é", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := isMarkerLine(tt.line); got != tt.want {
				t.Errorf("isMarkerLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsOptionStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"a Atribut", true},
		{"a. Atribut", true},
		{"b) Keadaan", true},
		{"  c\tEntitas", true},
		{"Q...", true},
		{"A computer is", true},
		{"Apa itu", false},
		{"b", false},
		{"1. Soal", false},
		{"(a) Soal", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := isOptionStart(tt.line); got != tt.want {
				t.Errorf("isOptionStart(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsCompactMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"a", true},
		{"a.", true},
		{"(b)", true},
		{"iv)", true},
		{"Satu", true},
		{"  ab  ", true},
		{"a\tb", true},
		{"αβγδ", true},
		{"Kedua", false},
		{"a b", false},
		{"", false},
		{"    ", false},
		{"αβγδε", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := isCompactMarker(tt.line); got != tt.want {
				t.Errorf("isCompactMarker(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestHasEllipsis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		want bool
	}{
		{"adalah...", true},
		{"... di awal", true},
		{"tengah ... kalimat", true},
		{"dua titik..", false},
		{"elipsis unicode …", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			t.Parallel()

			if got := hasEllipsis(tt.s); got != tt.want {
				t.Errorf("hasEllipsis(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
