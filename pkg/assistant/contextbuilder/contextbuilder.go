// Package contextbuilder renders the memory and knowledge summaries handed
// to the external responder. Both builds are pure derivations over the
// snapshot inputs and are recomputed on every call.
package contextbuilder

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/knowledge"
	"memory-vault-be/pkg/assistant/ranking"
)

const (
	recentTitleCount  = 5
	contentTruncation = 500
)

type MemoryContext struct {
	Relevant []*entity.Memory
	Text     string
}

type KnowledgeContext struct {
	Relevant []knowledge.Entry
	Text     string
}

// VaultCounts tallies a memory snapshot by vault type.
type VaultCounts struct {
	Total     int
	Learning  int
	Cultural  int
	Future    int
	Personal  int
	Important int
}

func CountByVault(memories []*entity.Memory) VaultCounts {
	counts := VaultCounts{Total: len(memories)}
	for _, m := range memories {
		switch m.VaultType {
		case entity.VaultTypeLearning:
			counts.Learning++
		case entity.VaultTypeCultural:
			counts.Cultural++
		case entity.VaultTypeFuture:
			counts.Future++
		case entity.VaultTypePersonal:
			counts.Personal++
		}
		if m.IsImportant {
			counts.Important++
		}
	}
	return counts
}

// truncate cuts text to at most max bytes without splitting a rune.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// BuildMemoryContext assembles the per-user summary block: vault counts,
// the top relevant memories with truncated content, and the most recent
// titles. Placeholder lines keep the block shape stable when lists are empty.
func BuildMemoryContext(message string, memories []*entity.Memory, now time.Time) MemoryContext {
	recent := ranking.MostRecent(memories, recentTitleCount)
	relevant := ranking.RankMemories(message, memories, ranking.DefaultLimit, now)
	counts := CountByVault(memories)

	relevantSection := "No strongly relevant memory found for this question."
	if len(relevant) > 0 {
		lines := make([]string, len(relevant))
		for i, m := range relevant {
			lines[i] = fmt.Sprintf("%d. [%s] %s\n%s", i+1, m.VaultType, m.Title, truncate(m.Content, contentTruncation))
		}
		relevantSection = strings.Join(lines, "\n\n")
	}

	recentSection := "No memories yet."
	if len(recent) > 0 {
		lines := make([]string, len(recent))
		for i, m := range recent {
			lines[i] = fmt.Sprintf("%d. [%s] %s", i+1, m.VaultType, m.Title)
		}
		recentSection = strings.Join(lines, "\n")
	}

	text := strings.Join([]string{
		"Memory Vault summary",
		fmt.Sprintf("- Total memories: %d", counts.Total),
		fmt.Sprintf("- Learning: %d", counts.Learning),
		fmt.Sprintf("- Cultural: %d", counts.Cultural),
		fmt.Sprintf("- Future: %d", counts.Future),
		fmt.Sprintf("- Personal: %d", counts.Personal),
		fmt.Sprintf("- Important: %d", counts.Important),
		"",
		"Most relevant memories for this question:",
		relevantSection,
		"",
		"Most recent memory titles:",
		recentSection,
	}, "\n")

	return MemoryContext{Relevant: relevant, Text: text}
}

// BuildKnowledgeContext assembles the verified-knowledge block from the top
// ranked entries.
func BuildKnowledgeContext(message string, base *knowledge.Base) KnowledgeContext {
	relevant := base.Rank(message, knowledge.DefaultLimit, true)

	section := "No Memory Vault knowledge entry matched this question."
	if len(relevant) > 0 {
		lines := make([]string, len(relevant))
		for i, entry := range relevant {
			lines[i] = fmt.Sprintf("%d. %s\n%s", i+1, entry.Topic, entry.Answer)
		}
		section = strings.Join(lines, "\n\n")
	}

	text := "Verified Memory Vault knowledge:\n" + section

	return KnowledgeContext{Relevant: relevant, Text: text}
}
