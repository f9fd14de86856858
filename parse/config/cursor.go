package config

import "strings"

// =========================
// Line Cursor
// =========================

// cursor is an indexed, peekable view over the input split into lines.
// Line numbers are 1-based. Every continuation consumes lines through the
// cursor, so a line can never be processed twice.
type cursor struct {
	lines []string
	pos   int // index of the next line to read
}

func newCursor(text string) *cursor {
	return &cursor{lines: strings.Split(text, "\n")}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// lineNo reports the 1-based number of the line most recently returned by
// next. Zero before the first read.
func (c *cursor) lineNo() int {
	return c.pos
}

// lastLine reports the 1-based number of the final input line.
func (c *cursor) lastLine() int {
	return len(c.lines)
}

func (c *cursor) next() string {
	line := c.lines[c.pos]
	c.pos++
	return line
}

// consumeUntil advances the cursor, collecting lines verbatim, until stop
// returns true for a consumed line or input ends. The stopping line itself
// is consumed and included. An unterminated continuation simply collects
// to end of input.
func (c *cursor) consumeUntil(stop func(line string) bool) []string {
	var out []string
	for !c.done() {
		line := c.next()
		out = append(out, line)
		if stop(line) {
			return out
		}
	}
	return out
}
