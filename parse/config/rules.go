package config

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Rule sub-parsers decode the mini-languages embedded as text inside a few
// well-known configuration values. All of them are best-effort: an entry
// that fails to decode is dropped and the rest is kept.

// =========================
// Rule Model
// =========================

// LearningRule is one row of an expression learning list. ScopeLabel is
// "global" when the row's scope is empty.
type LearningRule struct {
	Scope       string `json:"scope"`
	ScopeLabel  string `json:"scopeLabel"`
	UseExpr     string `json:"useExpr"`
	LearnExpr   string `json:"learnExpr"`
	LearnJargon string `json:"learnJargon"`
}

// KeywordRule pairs trigger keywords with a reaction.
type KeywordRule struct {
	Keywords []string `json:"keywords"`
	Reaction string   `json:"reaction"`
}

// RegexRule pairs trigger patterns with a reaction.
type RegexRule struct {
	Patterns []string `json:"patterns"`
	Reaction string   `json:"reaction"`
}

// ChatPrompt is one scoped prompt line.
type ChatPrompt struct {
	Scope   string `json:"scope"`
	Content string `json:"content"`
}

var (
	// Single-level matching only: a nested `{` inside a rule body is not
	// supported and the match truncates at the first `}`.
	braceRe    = regexp.MustCompile(`\{[^}]*\}`)
	keywordsRe = regexp.MustCompile(`keywords\s*=\s*(\[[^\]]*\])`)
	regexesRe  = regexp.MustCompile(`regex\s*=\s*(\[[^\]]*\])`)
	reactionRe = regexp.MustCompile(`reaction\s*=\s*"([^"]*)"`)
)

// =========================
// Learning Rules
// =========================

// ParseLearningRules decodes a learning list value. Each list entry must be
// a JSON array of at least four strings: scope, use expression, learn
// expression, learn jargon. Shorter or unparsable rows are dropped.
func ParseLearningRules(raw string) []LearningRule {
	var out []LearningRule
	for _, entry := range ListEntries(raw) {
		var row []any
		if err := json.Unmarshal([]byte(entry), &row); err != nil {
			continue
		}
		if len(row) < 4 {
			continue
		}
		fields := make([]string, 4)
		ok := true
		for i := 0; i < 4; i++ {
			s, isStr := row[i].(string)
			if !isStr {
				ok = false
				break
			}
			fields[i] = s
		}
		if !ok {
			continue
		}
		rule := LearningRule{
			Scope:       fields[0],
			ScopeLabel:  fields[0],
			UseExpr:     fields[1],
			LearnExpr:   fields[2],
			LearnJargon: fields[3],
		}
		if rule.Scope == "" {
			rule.ScopeLabel = "global"
		}
		out = append(out, rule)
	}
	return out
}

// =========================
// Keyword / Regex Rules
// =========================

// ParseKeywordRules scans formatted rule text for `{...}` bodies and pulls
// a keyword list and reaction out of each. A body with no parsable keyword
// list yields an empty list, not an error.
func ParseKeywordRules(formatted string) []KeywordRule {
	var out []KeywordRule
	for _, body := range braceRe.FindAllString(formatted, -1) {
		out = append(out, KeywordRule{
			Keywords: extractStringList(body, keywordsRe),
			Reaction: extractReaction(body),
		})
	}
	return out
}

// ParseRegexRules is the regex-list counterpart of ParseKeywordRules.
func ParseRegexRules(formatted string) []RegexRule {
	var out []RegexRule
	for _, body := range braceRe.FindAllString(formatted, -1) {
		out = append(out, RegexRule{
			Patterns: extractStringList(body, regexesRe),
			Reaction: extractReaction(body),
		})
	}
	return out
}

func extractStringList(body string, re *regexp.Regexp) []string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(m[1]), &list); err != nil {
		return []string{}
	}
	return list
}

func extractReaction(body string) string {
	m := reactionRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// =========================
// Chat Prompts
// =========================

// ParseChatPrompts splits prompt text into scoped lines. The scope is
// everything before the third colon; a line with fewer than three colons
// is an unscoped prompt.
func ParseChatPrompts(formatted string) []ChatPrompt {
	var out []ChatPrompt
	for _, line := range strings.Split(formatted, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i := nthIndex(line, ':', 3); i >= 0 {
			out = append(out, ChatPrompt{
				Scope:   line[:i],
				Content: strings.TrimSpace(line[i+1:]),
			})
			continue
		}
		out = append(out, ChatPrompt{Content: line})
	}
	return out
}

// nthIndex returns the byte index of the n-th occurrence of ch, or -1.
func nthIndex(s string, ch byte, n int) int {
	seen := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			seen++
			if seen == n {
				return i
			}
		}
	}
	return -1
}
