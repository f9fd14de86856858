package config

import "strings"

// =========================
// Folding Ranges
// =========================

// FoldingRange delimits a collapsible region of the code view. Lines are
// 1-based and End is always strictly greater than Start.
type FoldingRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FoldingRanges matches `{`/`}` and `[`/`]` pairs across lines with a
// single scan and emits a range for every pair that closes on a later line
// than it opened. Ranges come out in close order, so nested regions emit
// before their enclosing ones. Unmatched opens at end of input produce
// nothing and stray closes are ignored.
func FoldingRanges(text string) []FoldingRange {
	var ranges []FoldingRange
	var stack []int

	for lineIdx, line := range strings.Split(text, "\n") {
		lineNo := lineIdx + 1
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '{', '[':
				stack = append(stack, lineNo)
			case '}', ']':
				if len(stack) == 0 {
					continue
				}
				start := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if lineNo > start {
					ranges = append(ranges, FoldingRange{Start: start, End: lineNo})
				}
			}
		}
	}
	return ranges
}
