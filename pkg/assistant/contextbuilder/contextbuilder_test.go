package contextbuilder

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/knowledge"
)

func TestCountByVault(t *testing.T) {
	memories := []*entity.Memory{
		{VaultType: entity.VaultTypeLearning, IsImportant: true},
		{VaultType: entity.VaultTypeLearning},
		{VaultType: entity.VaultTypeCultural},
		{VaultType: entity.VaultTypePersonal, IsImportant: true},
		{VaultType: "unknown-bucket"},
	}

	counts := CountByVault(memories)
	if counts.Total != 5 {
		t.Errorf("Total = %d, want 5", counts.Total)
	}
	if counts.Learning != 2 || counts.Cultural != 1 || counts.Personal != 1 || counts.Future != 0 {
		t.Errorf("vault counts wrong: %+v", counts)
	}
	if counts.Important != 2 {
		t.Errorf("Important = %d, want 2", counts.Important)
	}
}

func TestBuildMemoryContextEmptySnapshot(t *testing.T) {
	got := BuildMemoryContext("anything about vaults", nil, time.Now())

	if len(got.Relevant) != 0 {
		t.Errorf("expected no relevant memories, got %d", len(got.Relevant))
	}
	if !strings.Contains(got.Text, "No strongly relevant memory found for this question.") {
		t.Error("missing relevant-section placeholder")
	}
	if !strings.Contains(got.Text, "No memories yet.") {
		t.Error("missing recent-section placeholder")
	}
	if !strings.Contains(got.Text, "- Total memories: 0") {
		t.Error("missing zero total count")
	}
}

func TestBuildMemoryContextTruncatesContent(t *testing.T) {
	now := time.Now()
	longContent := strings.Repeat("x", 900)
	memories := []*entity.Memory{
		{
			Title:     "Math notes",
			Content:   longContent,
			VaultType: entity.VaultTypeLearning,
			Timestamp: now,
		},
	}

	got := BuildMemoryContext("math", memories, now)
	if strings.Contains(got.Text, longContent) {
		t.Error("content should be truncated to 500 characters")
	}
	if !strings.Contains(got.Text, strings.Repeat("x", 500)) {
		t.Error("truncated content missing from context")
	}
	if !strings.Contains(got.Text, "1. [learning] Math notes") {
		t.Error("numbered relevant entry missing")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// 2-byte runes straddling the limit must not be split mid-sequence.
	text := strings.Repeat("é", 300)

	got := truncate(text, 501)
	if !utf8.ValidString(got) {
		t.Fatal("truncation produced invalid UTF-8")
	}
	if len(got) != 500 {
		t.Errorf("truncated length = %d bytes, want 500", len(got))
	}

	if ascii := truncate("abcdef", 3); ascii != "abc" {
		t.Errorf("ascii truncation = %q, want %q", ascii, "abc")
	}
	if short := truncate("abc", 10); short != "abc" {
		t.Errorf("short input changed: %q", short)
	}
}

func TestBuildKnowledgeContext(t *testing.T) {
	base := &knowledge.Base{
		Entries: []knowledge.Entry{
			{Topic: "PIN", Answer: "Set a 4-6 digit PIN", Keywords: []string{"pin"}},
		},
	}

	got := BuildKnowledgeContext("how do I set my pin", base)
	if len(got.Relevant) != 1 {
		t.Fatalf("expected 1 relevant entry, got %d", len(got.Relevant))
	}
	if !strings.Contains(got.Text, "Verified Memory Vault knowledge:") {
		t.Error("missing knowledge header")
	}
	if !strings.Contains(got.Text, "1. PIN\nSet a 4-6 digit PIN") {
		t.Error("missing numbered knowledge entry")
	}
}

func TestBuildKnowledgeContextEmptyBase(t *testing.T) {
	base := &knowledge.Base{Entries: []knowledge.Entry{}}

	got := BuildKnowledgeContext("pin", base)
	if !strings.Contains(got.Text, "No Memory Vault knowledge entry matched this question.") {
		t.Error("missing knowledge placeholder")
	}
}
