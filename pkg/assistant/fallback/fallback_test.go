package fallback

import (
	"strings"
	"testing"
	"time"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/knowledge"
)

func sampleMemories(now time.Time) []*entity.Memory {
	return []*entity.Memory{
		{Title: "Algebra basics", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "Calculus intro", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "Set theory", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "Rome trip", VaultType: entity.VaultTypeCultural, Timestamp: now},
	}
}

func TestOnboardingScript(t *testing.T) {
	got := Generate("how do i get started", nil, "Ana", nil, nil)

	if !strings.HasPrefix(got, "Welcome to Memory Vault. Quick start:") {
		t.Errorf("unexpected onboarding response: %q", got)
	}
	for _, step := range []string{"1)", "2)", "3)", "4)"} {
		if !strings.Contains(got, step) {
			t.Errorf("onboarding script missing step %s", step)
		}
	}
}

func TestOnboardingRequiresZeroMemories(t *testing.T) {
	memories := sampleMemories(time.Now())

	got := Generate("how do i get started", memories, "Ana", nil, nil)
	if strings.HasPrefix(got, "Welcome to Memory Vault.") {
		t.Error("onboarding script must only fire for users with zero memories")
	}
}

func TestKnowledgeShortCircuit(t *testing.T) {
	entries := []knowledge.Entry{{Topic: "PIN", Answer: "Set a 4-6 digit PIN"}}

	got := Generate("where can the pin be configured", nil, "Ana", nil, entries)
	if got != "Set a 4-6 digit PIN" {
		t.Errorf("expected verbatim knowledge answer, got %q", got)
	}
}

func TestUserDataIntentSuppressesKnowledge(t *testing.T) {
	// "my " marks the question as personal, so the canned knowledge answer
	// must be skipped even though an entry matched.
	entries := []knowledge.Entry{{Topic: "PIN", Answer: "Set a 4-6 digit PIN"}}
	memories := sampleMemories(time.Now())

	got := Generate("how many memories do I have in my vault", memories, "Ana", nil, entries)
	if got == "Set a 4-6 digit PIN" {
		t.Error("user-data intent should suppress the knowledge short-circuit")
	}
}

func TestCountsResponse(t *testing.T) {
	now := time.Now()
	memories := []*entity.Memory{
		{Title: "a", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "b", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "c", VaultType: entity.VaultTypeLearning, Timestamp: now},
		{Title: "d", VaultType: entity.VaultTypeCultural, Timestamp: now},
	}

	got := Generate("how many memories do I have", memories, "Ana", nil, nil)
	want := "You have 4 memories: 3 learning, 1 cultural, 0 personal, and 0 future."
	if got != want {
		t.Errorf("counts response = %q, want %q", got, want)
	}
}

func TestIdentityResponse(t *testing.T) {
	memories := sampleMemories(time.Now())

	got := Generate("who are you", memories, "Ana", nil, nil)
	if !strings.Contains(got, "Ana") {
		t.Errorf("identity response should include display name: %q", got)
	}
	if !strings.Contains(got, "4 stored memories") {
		t.Errorf("identity response should include total count: %q", got)
	}
}

func TestRecentTitles(t *testing.T) {
	memories := sampleMemories(time.Now())

	got := Generate("what did I save recently", memories, "Ana", nil, nil)
	want := "Your recent memories are: Algebra basics, Calculus intro, Set theory."
	if got != want {
		t.Errorf("recent response = %q, want %q", got, want)
	}
}

func TestRecentTitlesEmpty(t *testing.T) {
	got := Generate("anything saved?", nil, "Ana", nil, nil)
	if got != "Your recent memories are: none yet." {
		t.Errorf("empty recent response = %q", got)
	}
}

func TestRelevantTitles(t *testing.T) {
	now := time.Now()
	relevant := []*entity.Memory{
		{Title: "Algebra basics", Timestamp: now},
		{Title: "Calculus intro", Timestamp: now},
	}

	got := Generate("tell me about algebra", sampleMemories(now), "Ana", relevant, nil)
	if !strings.Contains(got, "Algebra basics, Calculus intro") {
		t.Errorf("relevant response missing titles: %q", got)
	}
	if !strings.Contains(got, "Ask a follow-up") {
		t.Errorf("relevant response missing follow-up invitation: %q", got)
	}
}

func TestGenericFallback(t *testing.T) {
	got := Generate("vault", sampleMemories(time.Now()), "Ana", nil, nil)
	if got != genericResponse {
		t.Errorf("expected generic capability statement, got %q", got)
	}
}

func TestRulePrecedenceOnboardingBeatsKnowledge(t *testing.T) {
	entries := []knowledge.Entry{{Topic: "Usage", Answer: "Canned usage answer"}}

	got := Generate("first time here, how to use this", nil, "Ana", nil, entries)
	if !strings.HasPrefix(got, "Welcome to Memory Vault.") {
		t.Errorf("onboarding must outrank knowledge short-circuit, got %q", got)
	}
}
