package gate

import "testing"

func TestInScope(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"product phrase", "what is memory vault", true},
		{"product phrase with punctuation", "What is Memory-Vault?", true},
		{"allow-list keyword", "how do I set a pin", true},
		{"weather is unrelated", "what's the weather today", false},
		{"empty", "", false},
		{"only punctuation", "?!?", false},
		{"short keyword survives raw split", "pin", true},
		{"keyword inside longer word does not match", "pinpoint this location", false},
		{"plural keyword", "show my memories", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InScope(tt.message); got != tt.want {
				t.Errorf("InScope(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}
