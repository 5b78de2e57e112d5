// Package gate decides whether an incoming question is in scope for the
// Memory Vault assistant before any ranking work is spent on it.
package gate

import (
	"strings"

	"memory-vault-be/pkg/assistant/textutil"
)

// OutOfScopeResponse is the fixed refusal returned for unrelated questions.
const OutOfScopeResponse = "I can only answer Memory Vault-related questions. Ask about your memories, vaults, account, AI assistant, or Memory Vault features."

// PolicyTag marks refusal responses so clients can distinguish them from
// AI-sourced or fallback-sourced answers.
const PolicyTag = "memory-vault-only"

// domainKeywords is the fixed allow-list of in-scope terms, matched against
// raw whitespace-split tokens of the normalized query.
var domainKeywords = map[string]struct{}{
	"memory": {}, "memories": {}, "vault": {}, "vaults": {}, "entry": {},
	"entries": {}, "diary": {}, "pin": {}, "personal": {}, "learning": {},
	"cultural": {}, "future": {}, "wisdom": {}, "knowledge": {},
	"favorite": {}, "favorites": {}, "search": {}, "filter": {},
	"export": {}, "csv": {}, "txt": {}, "signin": {}, "signup": {},
	"login": {}, "logout": {}, "auth": {}, "token": {}, "jwt": {},
	"openai": {}, "assistant": {}, "chat": {}, "backend": {},
	"frontend": {}, "api": {}, "users": {}, "account": {}, "health": {},
	"sync": {}, "offline": {}, "retry": {}, "connection": {},
}

// InScope classifies the message. An empty query is out of scope, the exact
// phrase "memory vault" is in scope immediately, otherwise any raw token
// present in the allow-list admits the question. No stop-word filtering
// happens here: short tokens like "pin" must stay matchable.
func InScope(message string) bool {
	normalized := textutil.Normalize(message)
	if normalized == "" {
		return false
	}

	if strings.Contains(normalized, "memory vault") {
		return true
	}

	for _, token := range strings.Split(normalized, " ") {
		if _, ok := domainKeywords[token]; ok {
			return true
		}
	}
	return false
}
