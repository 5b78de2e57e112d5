// Package textutil holds the text normalization primitives shared by the
// assistant's rankers, domain gate and fallback engine.
package textutil

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stopWords are function words stripped during tokenization. The set is
// fixed at process start and never mutated.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "who": {}, "why": {}, "with": {},
	"you": {},
}

// Normalize lowercases the text, replaces every character outside
// [a-z0-9\s] with a space, collapses whitespace runs and trims. It is total:
// any input yields a (possibly empty) normalized string.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnumPattern.ReplaceAllString(lowered, " ")
	collapsed := whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(collapsed)
}

// Tokenize normalizes the text, splits on spaces, and drops tokens of
// length <= 2 as well as stop words. Duplicate tokens are preserved on
// purpose: the rankers sum evidence once per token occurrence.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, token := range strings.Split(normalized, " ") {
		if len(token) <= 2 {
			continue
		}
		if _, isStop := stopWords[token]; isStop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
