package ranking

import (
	"testing"
	"time"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/textutil"
)

func TestRankMemoriesFieldWeights(t *testing.T) {
	now := time.Now()
	memories := []*entity.Memory{
		{
			Id:          "1",
			Title:       "Math class",
			VaultType:   entity.VaultTypeLearning,
			Timestamp:   now.Add(-24 * time.Hour),
			IsImportant: true,
		},
		{
			Id:        "2",
			Title:     "Trip to Rome",
			VaultType: entity.VaultTypeCultural,
			Timestamp: now.Add(-40 * 24 * time.Hour),
		},
	}

	// The Rome note earns no token score but is young enough for a
	// recency bonus, so it stays in the results below the title match.
	got := RankMemories("math", memories, DefaultLimit, now)
	if len(got) != 2 {
		t.Fatalf("expected both notes ranked, got %d", len(got))
	}
	if got[0].Id != "1" || got[1].Id != "2" {
		t.Errorf("order = [%s %s], want [1 2]", got[0].Id, got[1].Id)
	}
}

func TestRankMemoriesDropsStaleNonMatches(t *testing.T) {
	now := time.Now()
	memories := []*entity.Memory{
		{
			Id:        "fresh",
			Title:     "Math class",
			VaultType: entity.VaultTypeLearning,
			Timestamp: now.Add(-24 * time.Hour),
		},
		{
			// Past 60 days the recency bonus hits zero, so a note with no
			// token match scores nothing and is dropped.
			Id:        "stale",
			Title:     "Trip to Rome",
			VaultType: entity.VaultTypeCultural,
			Timestamp: now.Add(-90 * 24 * time.Hour),
		},
	}

	got := RankMemories("math", memories, DefaultLimit, now)
	if len(got) != 1 {
		t.Fatalf("expected only the matching note, got %d", len(got))
	}
	if got[0].Id != "fresh" {
		t.Errorf("top memory = %s, want fresh", got[0].Id)
	}
}

func TestRankMemoriesEmptyQueryFallsBackToRecency(t *testing.T) {
	now := time.Now()
	memories := []*entity.Memory{
		{Id: "old", Timestamp: now.Add(-72 * time.Hour)},
		{Id: "new", Timestamp: now.Add(-1 * time.Hour)},
		{Id: "mid", Timestamp: now.Add(-24 * time.Hour)},
	}

	got := RankMemories("the and my", memories, 2, now)
	if len(got) != 2 {
		t.Fatalf("expected limit 2, got %d", len(got))
	}
	if got[0].Id != "new" || got[1].Id != "mid" {
		t.Errorf("recency order wrong: got [%s %s]", got[0].Id, got[1].Id)
	}
}

func TestScoreComponents(t *testing.T) {
	now := time.Now()
	tokens := textutil.Tokenize("math")

	tests := []struct {
		name   string
		memory *entity.Memory
		want   float64
	}{
		{
			name: "title hit plus importance plus full recency",
			memory: &entity.Memory{
				Title:       "Math homework",
				IsImportant: true,
				Timestamp:   now,
			},
			want: 8 + 2 + 2,
		},
		{
			name: "content hit only, 30 days old",
			memory: &entity.Memory{
				Content:   "studied math all day",
				Timestamp: now.Add(-30 * 24 * time.Hour),
			},
			want: 3 + 1,
		},
		{
			name: "no match, recency alone still scores",
			memory: &entity.Memory{
				Title:     "Grocery list",
				Timestamp: now,
			},
			want: 2,
		},
		{
			name: "zero timestamp contributes nothing",
			memory: &entity.Memory{
				Title: "Math",
			},
			want: 8,
		},
		{
			name: "future timestamp clamps to age zero",
			memory: &entity.Memory{
				Title:     "Math",
				Timestamp: now.Add(48 * time.Hour),
			},
			want: 8 + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.memory, tokens, now)
			if diff := got - tt.want; diff > 0.01 || diff < -0.01 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreRepeatedTokensStack(t *testing.T) {
	now := time.Now()
	memory := &entity.Memory{Title: "Math class"}

	single := Score(memory, textutil.Tokenize("math"), now)
	double := Score(memory, textutil.Tokenize("math math"), now)
	if double != 2*single {
		t.Errorf("repeated token should double the score: %v vs %v", double, single)
	}
}

func TestRankMemoriesDropsZeroScores(t *testing.T) {
	// A memory with no token match, not important, and no usable timestamp
	// scores zero and must be dropped.
	memories := []*entity.Memory{{Id: "zero", Title: "Unrelated"}}

	got := RankMemories("math", memories, DefaultLimit, time.Now())
	if len(got) != 0 {
		t.Errorf("zero-score memory should be dropped, got %d results", len(got))
	}
}

func TestMostRecentDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	memories := []*entity.Memory{
		{Id: "a", Timestamp: now.Add(-2 * time.Hour)},
		{Id: "b", Timestamp: now},
	}

	MostRecent(memories, 2)
	if memories[0].Id != "a" {
		t.Error("MostRecent mutated its input slice")
	}
}
