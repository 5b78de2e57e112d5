// Package knowledge loads and ranks the curated Memory Vault knowledge
// base: a static set of topic/answer/keywords entries used to ground
// product questions. The base is read once at startup and is immutable
// afterwards, so ranking is safe to call concurrently.
package knowledge

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"memory-vault-be/pkg/assistant/textutil"
)

// DefaultLimit is the number of entries handed to the responder.
const DefaultLimit = 4

type Entry struct {
	Topic    string   `json:"topic"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

type Base struct {
	Version   string  `json:"version"`
	UpdatedAt string  `json:"updatedAt"`
	Entries   []Entry `json:"entries"`
}

func defaultBase() *Base {
	return &Base{
		Version:   "1.0.0",
		UpdatedAt: time.Now().Format("2006-01-02"),
		Entries:   []Entry{},
	}
}

// Load reads the knowledge base from path. A missing file is seeded with an
// empty base; a corrupt file degrades to an empty base rather than failing
// startup.
func Load(path string) *Base {
	raw, err := os.ReadFile(path)
	if err != nil {
		base := defaultBase()
		if encoded, marshalErr := json.MarshalIndent(base, "", "  "); marshalErr == nil {
			_ = os.WriteFile(path, encoded, 0644)
		}
		return base
	}

	var base Base
	if err := json.Unmarshal(raw, &base); err != nil || base.Entries == nil {
		return defaultBase()
	}
	return &base
}

// score awards 2 points per query token found as a substring of the entry's
// combined normalized text, and 4 points per entry keyword found as a
// substring of the normalized full message. Tokens are counted once per
// occurrence, so repeated query terms stack.
func score(entry Entry, queryTokens []string, lowerMessage string) int {
	combined := textutil.Normalize(
		entry.Topic + " " + entry.Answer + " " + strings.Join(entry.Keywords, " "),
	)

	total := 0
	for _, token := range queryTokens {
		if strings.Contains(combined, token) {
			total += 2
		}
	}
	for _, keyword := range entry.Keywords {
		normalized := textutil.Normalize(keyword)
		if normalized != "" && strings.Contains(lowerMessage, normalized) {
			total += 4
		}
	}
	return total
}

// Rank returns the top entries for the message, highest score first with
// ties keeping base order. When nothing matches and includeDefaults is set,
// the first min(limit, 2) entries are returned so the responder always has
// some grounding text. An empty base always yields an empty result.
func (b *Base) Rank(message string, limit int, includeDefaults bool) []Entry {
	if len(b.Entries) == 0 {
		return []Entry{}
	}

	queryTokens := textutil.Tokenize(message)
	lowerMessage := textutil.Normalize(message)

	type scored struct {
		entry Entry
		score int
	}
	ranked := make([]scored, 0, len(b.Entries))
	for _, entry := range b.Entries {
		if s := score(entry, queryTokens, lowerMessage); s > 0 {
			ranked = append(ranked, scored{entry: entry, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if len(ranked) > 0 {
		entries := make([]Entry, len(ranked))
		for i, item := range ranked {
			entries[i] = item.entry
		}
		return entries
	}

	if includeDefaults {
		fallbackCount := limit
		if fallbackCount > 2 {
			fallbackCount = 2
		}
		if fallbackCount > len(b.Entries) {
			fallbackCount = len(b.Entries)
		}
		return append([]Entry{}, b.Entries[:fallbackCount]...)
	}
	return []Entry{}
}
