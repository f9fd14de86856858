package config

// Package config implements a lenient scanner for TOML-like configuration
// text, partitioning it into titled blocks of key/value pairs for display.
//
// Scope:
// - [header] sections with preceding-comment descriptions
// - key = value pairs with inline comments
// - multi-line array and triple-quoted string continuations
// - best-effort recovery on malformed input
//
// Non-goals (by design):
// - Conformant TOML grammar
// - Nested brackets inside multi-line arrays
// - Dotted/nested table keys
// - Round-tripping or rewriting files
//
// Every function here is a pure function of its input; nothing is ever
// mutated after it is returned.

import (
	"fmt"
	"regexp"
	"strings"
)

// =========================
// Display Model
// =========================

// Block is one titled section of the input, in source order.
// KeyCount always equals len(KeyValues), and successive blocks cover
// contiguous, non-overlapping line ranges.
type Block struct {
	Index       int        `json:"index"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	KeyCount    int        `json:"keyCount"`
	StartLine   int        `json:"startLine"`
	EndLine     int        `json:"endLine"`
	LineRange   string     `json:"lineRange"`
	KeyValues   []KeyValue `json:"keyValues"`
}

// KeyValue is one extracted pair. RawValue may span multiple lines when a
// continuation was consumed; LineNumber is the 1-based line the key sits on.
type KeyValue struct {
	Key           string `json:"key"`
	RawValue      string `json:"rawValue"`
	InlineComment string `json:"inlineComment"`
	LineNumber    int    `json:"lineNumber"`
}

var (
	headerRe = regexp.MustCompile(`^\[([A-Za-z0-9_.-]+)]$`)
	keyRe    = regexp.MustCompile(`^([A-Za-z0-9_.-]+)\s*=\s*(.*)$`)
)

// =========================
// Block Partitioner
// =========================

// ParseBlocks partitions text into titled blocks. Lines before the first
// header are discarded, comment lines immediately preceding a header become
// that block's description, and a blank line resets the comment buffer.
// Malformed lines are skipped; ParseBlocks never fails.
func ParseBlocks(text string) []Block {
	cur := newCursor(text)

	var (
		blocks  []Block
		open    *Block
		pending []string
	)

	closeOpen := func(endLine int) {
		if open == nil {
			return
		}
		if endLine < open.StartLine {
			endLine = open.StartLine
		}
		open.EndLine = endLine
		open.KeyCount = len(open.KeyValues)
		open.LineRange = fmt.Sprintf("%d-%d", open.StartLine, open.EndLine)
		blocks = append(blocks, *open)
		open = nil
	}

	for !cur.done() {
		line := cur.next()
		lineNo := cur.lineNo()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			pending = pending[:0]
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			if c := strings.TrimSpace(trimmed[1:]); c != "" {
				pending = append(pending, c)
			}
			continue
		}

		headerText, _ := splitInlineComment(trimmed)
		headerText = strings.TrimSpace(headerText)
		if m := headerRe.FindStringSubmatch(headerText); m != nil {
			closeOpen(lineNo - 1)
			open = &Block{
				Index:       len(blocks),
				Title:       m[1],
				Description: strings.Join(pending, " "),
				StartLine:   lineNo,
				EndLine:     lineNo,
			}
			pending = pending[:0]
			continue
		}

		if open == nil {
			// No section yet: the line and any buffered comments are dropped.
			pending = pending[:0]
			continue
		}

		extractKeyValue(cur, open, trimmed, lineNo)
	}

	closeOpen(cur.lastLine())
	return blocks
}

// =========================
// Key-Value Extractor
// =========================

// scanState drives the continuation state machine for one value.
type scanState uint8

const (
	stateNormal scanState = iota
	stateInArray
	stateInTripleString
)

// continuationState decides whether the first value line opens a
// continuation. A `[` with no closing `]` on the same line opens an array;
// a triple-quote marker not also terminated on the same line opens a
// multi-line string.
func continuationState(value string) scanState {
	if strings.HasPrefix(value, "[") && !strings.Contains(value, "]") {
		return stateInArray
	}
	for _, marker := range []string{`"""`, `'''`} {
		if strings.HasPrefix(value, marker) && !strings.Contains(value[3:], marker) {
			return stateInTripleString
		}
	}
	return stateNormal
}

// extractKeyValue matches `key = value` on trimmed, splits off the inline
// comment, resolves any continuation through the cursor, and appends the
// pair to b. Lines that do not match are ignored.
func extractKeyValue(cur *cursor, b *Block, trimmed string, lineNo int) {
	m := keyRe.FindStringSubmatch(trimmed)
	if m == nil {
		return
	}

	value, comment := splitInlineComment(m[2])
	value = strings.TrimSpace(value)
	raw := value

	switch continuationState(value) {
	case stateInArray:
		// Nested `[`/`]` pairs are not tracked: the first line containing
		// `]` terminates the array.
		rest := cur.consumeUntil(func(l string) bool {
			return strings.Contains(l, "]")
		})
		raw = joinContinuation(value, rest)
	case stateInTripleString:
		marker := value[:3]
		rest := cur.consumeUntil(func(l string) bool {
			return strings.HasSuffix(strings.TrimSpace(l), marker)
		})
		raw = joinContinuation(value, rest)
	}

	b.KeyValues = append(b.KeyValues, KeyValue{
		Key:           m[1],
		RawValue:      raw,
		InlineComment: comment,
		LineNumber:    lineNo,
	})
}

func joinContinuation(first string, rest []string) string {
	parts := make([]string, 0, len(rest)+1)
	parts = append(parts, first)
	parts = append(parts, rest...)
	return strings.Join(parts, "\n")
}

// =========================
// Utilities
// =========================

// splitInlineComment splits s at the first `#` that sits outside quotes,
// returning the text before it and the trimmed comment after it. Quotes
// inside double-quoted strings may be backslash-escaped.
func splitInlineComment(s string) (string, string) {
	inSingle := false
	inDouble := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inDouble {
			if ch == '\\' {
				i++
				continue
			}
			if ch == '"' {
				inDouble = false
			}
			continue
		}
		if inSingle {
			if ch == '\'' {
				inSingle = false
			}
			continue
		}
		switch ch {
		case '"':
			inDouble = true
		case '\'':
			inSingle = true
		case '#':
			return s[:i], strings.TrimSpace(s[i+1:])
		}
	}
	return s, ""
}
