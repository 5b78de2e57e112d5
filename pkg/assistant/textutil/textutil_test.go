package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation and extra spaces",
			input: "Hello, World!  123",
			want:  "hello world 123",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "?!...---",
			want:  "",
		},
		{
			name:  "mixed case with apostrophe",
			input: "What's my PIN?",
			want:  "what s my pin",
		},
		{
			name:  "tabs and newlines collapse",
			input: "one\ttwo\nthree",
			want:  "one two three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!  123", "already normal", "MiXeD CaSe 42!"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "stop words and short tokens dropped",
			input: "The AI and the Vault",
			want:  []string{"vault"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only stop words",
			input: "the and for with",
			want:  nil,
		},
		{
			name:  "duplicates preserved",
			input: "memory memory vault",
			want:  []string{"memory", "memory", "vault"},
		},
		{
			name:  "length boundary: three chars survive",
			input: "pin to win",
			want:  []string{"pin", "win"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
