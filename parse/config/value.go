package config

import "strings"

// =========================
// Value Formatter
// =========================

var tripleMarkers = []string{`"""`, `'''`}

// Format normalizes a raw extracted value into display text: surrounding
// blank lines go, a multi-line `[`...`]` or triple-quote wrapper is
// unwrapped, and one layer of quoting is stripped from the joined result.
// Format(v) == strings.TrimSpace(v) for a plain single-line value.
func Format(raw string) string {
	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if len(lines) >= 2 && first == "[" && last == "]" {
		lines = lines[1 : len(lines)-1]
	} else if len(lines) >= 3 && first == last && isTripleMarker(first) {
		lines = lines[1 : len(lines)-1]
	}

	out := strings.TrimSpace(strings.Join(lines, "\n"))
	out = unwrapTriple(out)
	out = unwrapQuote(out)
	return out
}

// IsList reports whether raw looks like an array value. Values containing
// `{` are treated as rule text, not lists.
func IsList(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "[") && !strings.Contains(raw, "{")
}

// IsBoolean reports whether formatted text is exactly true or false,
// ignoring case. Prefixes like "truely" do not count.
func IsBoolean(formatted string) bool {
	s := strings.ToLower(strings.TrimSpace(formatted))
	return s == "true" || s == "false"
}

// ListEntries splits a raw array value into its display entries, in order.
// Bracket-only and blank lines are dropped, inline comments and one
// trailing comma are stripped, and a matching quote pair is unwrapped.
func ListEntries(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || entry == "[" || entry == "]" {
			continue
		}
		if i := strings.Index(entry, "#"); i >= 0 {
			entry = entry[:i]
		}
		entry = strings.TrimSpace(entry)
		entry = strings.TrimSuffix(entry, ",")
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		out = append(out, unwrapQuote(entry))
	}
	return out
}

func isTripleMarker(s string) bool {
	return s == `"""` || s == `'''`
}

func unwrapTriple(s string) string {
	if len(s) < 6 {
		return s
	}
	for _, marker := range tripleMarkers {
		if strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) {
			return s[3 : len(s)-3]
		}
	}
	return s
}

func unwrapQuote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
