package knowledge

import (
	"path/filepath"
	"testing"
)

func testBase() *Base {
	return &Base{
		Version:   "1.0.0",
		UpdatedAt: "2026-01-01",
		Entries: []Entry{
			{
				Topic:    "PIN",
				Answer:   "Set a 4-6 digit PIN",
				Keywords: []string{"pin", "security"},
			},
			{
				Topic:    "Export",
				Answer:   "Export your memories as CSV or TXT from the toolbar.",
				Keywords: []string{"export", "csv", "txt"},
			},
			{
				Topic:    "Favorites",
				Answer:   "Tap the star icon to mark a memory as favorite.",
				Keywords: []string{"favorite", "star"},
			},
		},
	}
}

func TestRankKeywordMatch(t *testing.T) {
	base := testBase()

	got := base.Rank("How do I set my pin", DefaultLimit, true)
	if len(got) == 0 {
		t.Fatal("expected at least one entry for a pin question")
	}
	if got[0].Topic != "PIN" {
		t.Errorf("top entry = %q, want PIN", got[0].Topic)
	}
}

func TestRankNoMatchWithoutDefaults(t *testing.T) {
	base := testBase()

	got := base.Rank("completely unrelated weather question", DefaultLimit, false)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}

func TestRankNoMatchWithDefaults(t *testing.T) {
	base := testBase()

	got := base.Rank("completely unrelated weather question", DefaultLimit, true)
	if len(got) != 2 {
		t.Fatalf("expected min(limit,2)=2 default entries, got %d", len(got))
	}
	if got[0].Topic != "PIN" || got[1].Topic != "Export" {
		t.Errorf("defaults should preserve base order, got %q, %q", got[0].Topic, got[1].Topic)
	}
}

func TestRankDefaultsRespectSmallLimit(t *testing.T) {
	base := testBase()

	got := base.Rank("unrelated", 1, true)
	if len(got) != 1 {
		t.Errorf("limit 1 should cap defaults to 1 entry, got %d", len(got))
	}
}

func TestRankEmptyBase(t *testing.T) {
	base := &Base{Entries: []Entry{}}

	if got := base.Rank("pin", DefaultLimit, true); len(got) != 0 {
		t.Errorf("empty base must always return empty, got %d entries", len(got))
	}
}

func TestRankRepeatedTokensStack(t *testing.T) {
	base := &Base{
		Entries: []Entry{
			{Topic: "Export", Answer: "Use the export toolbar.", Keywords: []string{}},
			{Topic: "Favorites and export", Answer: "Star plus export combo.", Keywords: []string{}},
		},
	}

	// "export export" scores each entry twice on the same token; both match,
	// tie keeps base order.
	got := base.Rank("export export", DefaultLimit, false)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Topic != "Export" {
		t.Errorf("tie should preserve base order, got %q first", got[0].Topic)
	}
}

func TestLoadMissingFileSeedsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")

	base := Load(path)
	if base == nil {
		t.Fatal("Load returned nil")
	}
	if len(base.Entries) != 0 {
		t.Errorf("default base should be empty, got %d entries", len(base.Entries))
	}

	// The file should now exist and load cleanly.
	reloaded := Load(path)
	if reloaded.Version != base.Version {
		t.Errorf("reload version = %q, want %q", reloaded.Version, base.Version)
	}
}
