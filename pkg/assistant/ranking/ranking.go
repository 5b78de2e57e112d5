// Package ranking scores a user's memory snapshot against a query. Scoring
// is field-weighted token overlap with an importance bonus and a linear
// 30-day recency decay.
package ranking

import (
	"sort"
	"strings"
	"time"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/textutil"
)

// DefaultLimit is the number of memories handed to the responder.
const DefaultLimit = 8

const (
	titleWeight      = 8.0
	vaultWeight      = 6.0
	contentWeight    = 3.0
	importanceBonus  = 2.0
	recencyCeiling   = 2.0
	recencyHalfWidth = 30.0 // days until the recency bonus loses one point
)

// Score computes the relevance of a single memory. Query tokens count once
// per occurrence: a term repeated in the query stacks its contribution.
// A zero timestamp contributes nothing to the recency term.
func Score(m *entity.Memory, queryTokens []string, now time.Time) float64 {
	title := textutil.Normalize(m.Title)
	content := textutil.Normalize(m.Content)
	vault := textutil.Normalize(m.VaultType)

	total := 0.0
	for _, token := range queryTokens {
		if strings.Contains(title, token) {
			total += titleWeight
		}
		if strings.Contains(vault, token) {
			total += vaultWeight
		}
		if strings.Contains(content, token) {
			total += contentWeight
		}
	}

	if m.IsImportant {
		total += importanceBonus
	}

	if !m.Timestamp.IsZero() {
		daysOld := now.Sub(m.Timestamp).Hours() / 24
		if daysOld < 0 {
			daysOld = 0
		}
		if bonus := recencyCeiling - daysOld/recencyHalfWidth; bonus > 0 {
			total += bonus
		}
	}

	return total
}

// RankMemories returns the top memories for the message, highest score
// first with ties keeping snapshot order. A query that tokenizes to nothing
// (blank or all stop words) short-circuits to the most recent memories.
func RankMemories(message string, memories []*entity.Memory, limit int, now time.Time) []*entity.Memory {
	queryTokens := textutil.Tokenize(message)
	if len(queryTokens) == 0 {
		return MostRecent(memories, limit)
	}

	type scored struct {
		memory *entity.Memory
		score  float64
	}
	ranked := make([]scored, 0, len(memories))
	for _, memory := range memories {
		if s := Score(memory, queryTokens, now); s > 0 {
			ranked = append(ranked, scored{memory: memory, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]*entity.Memory, len(ranked))
	for i, item := range ranked {
		result[i] = item.memory
	}
	return result
}

// MostRecent returns up to limit memories sorted by timestamp descending.
// The input slice is not mutated.
func MostRecent(memories []*entity.Memory, limit int) []*entity.Memory {
	sorted := append([]*entity.Memory{}, memories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
