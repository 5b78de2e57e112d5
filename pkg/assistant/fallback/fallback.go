// Package fallback produces a deterministic local answer when the external
// responder is unreachable. It is an ordered rule chain: predicates are
// evaluated in a fixed sequence and the first match wins, which keeps the
// precedence independently testable.
package fallback

import (
	"fmt"
	"strings"

	"memory-vault-be/internal/entity"
	"memory-vault-be/pkg/assistant/contextbuilder"
	"memory-vault-be/pkg/assistant/knowledge"
)

// input carries everything a rule may inspect. Intent heuristics match
// against the raw lowercased message, not the normalized form, so phrase
// checks like "my " keep their spacing.
type input struct {
	lowerMessage   string
	userName       string
	counts         contextbuilder.VaultCounts
	recentTitles   []string
	relevantTitles []string
	topKnowledge   *knowledge.Entry
}

type rule struct {
	matches func(*input) bool
	respond func(*input) string
}

func containsAny(message string, phrases ...string) bool {
	for _, phrase := range phrases {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	return false
}

// userDataIntent guesses that the question is about the user's own data, in
// which case a canned knowledge answer would be wrong even when one matched.
func userDataIntent(message string) bool {
	return containsAny(message, "my ", " i ", "how many", "recent", "saved", "find", "show") ||
		strings.HasPrefix(message, "i ")
}

func onboardingIntent(message string) bool {
	return containsAny(message,
		"new user", "first time", "getting started", "get started",
		"how to start", "how do i start", "how to use", "how do i use",
		"use memory vault",
	)
}

// rules in evaluation order. Do not reorder: the knowledge short-circuit
// deliberately sits above the product-description rules, and user-data
// intent suppresses it.
var rules = []rule{
	{
		matches: func(in *input) bool {
			return in.counts.Total == 0 && onboardingIntent(in.lowerMessage)
		},
		respond: func(in *input) string {
			return strings.Join([]string{
				"Welcome to Memory Vault. Quick start:",
				"1) Sign in and pick a vault (personal, learning, cultural, or future).",
				"2) Add your first memory with a clear title and meaningful content.",
				"3) Mark important memories so they are easier to revisit.",
				`4) Open AI Assistant and ask: "summarize my memories" or "help me organize entries".`,
			}, " ")
		},
	},
	{
		matches: func(in *input) bool {
			return in.topKnowledge != nil && in.topKnowledge.Answer != "" && !userDataIntent(in.lowerMessage)
		},
		respond: func(in *input) string {
			return in.topKnowledge.Answer
		},
	},
	{
		matches: func(in *input) bool {
			return strings.Contains(in.lowerMessage, "what is memory vault") ||
				(strings.Contains(in.lowerMessage, "what is") && strings.Contains(in.lowerMessage, "memory vault"))
		},
		respond: func(in *input) string {
			return "Memory Vault is your personal knowledge and reflection app. It helps you save life notes, learning insights, cultural stories, and future goals in one place, then lets AI help you explore them."
		},
	},
	{
		matches: func(in *input) bool {
			return containsAny(in.lowerMessage, "how to use", "how do i use", "use memory vault")
		},
		respond: func(in *input) string {
			return "Use Memory Vault in 3 steps: sign in, choose a vault type (personal, learning, cultural, or future), and add entries with title and content. Then open AI Assistant to ask for summaries, trends, or specific memory lookups."
		},
	},
	{
		matches: func(in *input) bool {
			return containsAny(in.lowerMessage, "how to write memories", "how do i write memories") ||
				(strings.Contains(in.lowerMessage, "write") && strings.Contains(in.lowerMessage, "memory"))
		},
		respond: func(in *input) string {
			return "To write a strong memory: give it a clear title, describe what happened, include what you learned or felt, and mark it important if needed. Keep one memory per entry so AI can find and summarize it accurately."
		},
	},
	{
		matches: func(in *input) bool {
			return containsAny(in.lowerMessage, "name", "who are you")
		},
		respond: func(in *input) string {
			return fmt.Sprintf("I am your Memory Vault assistant. Your profile name is %s. I can help with your %d stored memories across all vaults.", in.userName, in.counts.Total)
		},
	},
	{
		matches: func(in *input) bool {
			return strings.Contains(in.lowerMessage, "how many") &&
				containsAny(in.lowerMessage, "memory", "memories")
		},
		respond: func(in *input) string {
			return fmt.Sprintf("You have %d memories: %d learning, %d cultural, %d personal, and %d future.",
				in.counts.Total, in.counts.Learning, in.counts.Cultural, in.counts.Personal, in.counts.Future)
		},
	},
	{
		matches: func(in *input) bool {
			return containsAny(in.lowerMessage, "recent", "saved")
		},
		respond: func(in *input) string {
			recentList := "none yet"
			if len(in.recentTitles) > 0 {
				recentList = strings.Join(in.recentTitles, ", ")
			}
			return fmt.Sprintf("Your recent memories are: %s.", recentList)
		},
	},
	{
		matches: func(in *input) bool {
			return containsAny(in.lowerMessage, "about", "find", "show") && len(in.relevantTitles) > 0
		},
		respond: func(in *input) string {
			return fmt.Sprintf("I found related memories: %s. Ask a follow-up and I can summarize them.", strings.Join(in.relevantTitles, ", "))
		},
	},
}

const genericResponse = "I can answer general Memory Vault questions, help you write better entries, and assist with memory search and summaries. Ask me what you want to do next."

func firstTitles(memories []*entity.Memory, limit int) []string {
	if len(memories) > limit {
		memories = memories[:limit]
	}
	titles := make([]string, len(memories))
	for i, m := range memories {
		titles[i] = m.Title
	}
	return titles
}

// Generate produces the local answer. It never fails and never blocks:
// everything it needs is already in memory. The memories slice is the full
// snapshot in storage order; relevant and relevantKnowledge are the ranker
// outputs already computed upstream.
func Generate(message string, memories []*entity.Memory, userName string, relevant []*entity.Memory, relevantKnowledge []knowledge.Entry) string {
	in := &input{
		lowerMessage:   strings.ToLower(message),
		userName:       userName,
		counts:         contextbuilder.CountByVault(memories),
		recentTitles:   firstTitles(memories, 3),
		relevantTitles: firstTitles(relevant, 3),
	}
	if len(relevantKnowledge) > 0 {
		in.topKnowledge = &relevantKnowledge[0]
	}

	for _, r := range rules {
		if r.matches(in) {
			return r.respond(in)
		}
	}
	return genericResponse
}
