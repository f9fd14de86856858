package config

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestBlockPartitioning(t *testing.T) {
	convey.Convey("headers, descriptions and line ranges", t, func() {
		src := `# top comment
# dropped by the blank line

# bot section
[bot]
name = "mai" # inline
alias = [
  "a",
  "b",
]

[chat]
enabled = true
`
		blocks := ParseBlocks(src)
		convey.So(len(blocks), convey.ShouldEqual, 2)

		bot := blocks[0]
		convey.So(bot.Index, convey.ShouldEqual, 0)
		convey.So(bot.Title, convey.ShouldEqual, "bot")
		convey.So(bot.Description, convey.ShouldEqual, "bot section")
		convey.So(bot.StartLine, convey.ShouldEqual, 5)
		convey.So(bot.EndLine, convey.ShouldEqual, 11)
		convey.So(bot.LineRange, convey.ShouldEqual, "5-11")
		convey.So(bot.KeyCount, convey.ShouldEqual, len(bot.KeyValues))
		convey.So(bot.KeyCount, convey.ShouldEqual, 2)

		name := bot.KeyValues[0]
		convey.So(name.Key, convey.ShouldEqual, "name")
		convey.So(name.RawValue, convey.ShouldEqual, `"mai"`)
		convey.So(name.InlineComment, convey.ShouldEqual, "inline")
		convey.So(name.LineNumber, convey.ShouldEqual, 6)

		chat := blocks[1]
		convey.So(chat.Index, convey.ShouldEqual, 1)
		convey.So(chat.StartLine, convey.ShouldEqual, bot.EndLine+1)
		convey.So(chat.EndLine, convey.ShouldEqual, 14)
		convey.So(chat.KeyCount, convey.ShouldEqual, 1)
	})

	convey.Convey("content before the first header is discarded", t, func() {
		src := `orphan = 1
[real]
key = 2`
		blocks := ParseBlocks(src)
		convey.So(len(blocks), convey.ShouldEqual, 1)
		convey.So(blocks[0].Title, convey.ShouldEqual, "real")
		convey.So(blocks[0].Description, convey.ShouldBeEmpty)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 1)
	})

	convey.Convey("successive ranges stay contiguous", t, func() {
		src := `[a]
x = 1
[b]
y = 2
[c]
z = 3`
		blocks := ParseBlocks(src)
		convey.So(len(blocks), convey.ShouldEqual, 3)
		for i := 1; i < len(blocks); i++ {
			convey.So(blocks[i].StartLine, convey.ShouldEqual, blocks[i-1].EndLine+1)
		}
		convey.So(blocks[2].EndLine, convey.ShouldEqual, 6)
	})

	convey.Convey("no blocks for plain prose", t, func() {
		blocks := ParseBlocks("just some text\nwith two lines")
		convey.So(blocks, convey.ShouldBeEmpty)
	})
}

func TestMultilineContinuations(t *testing.T) {
	convey.Convey("multi-line array consumes through the closing bracket", t, func() {
		src := `[sec]
list = [
  "one",
  "two",
]
after = 3`
		blocks := ParseBlocks(src)
		convey.So(len(blocks), convey.ShouldEqual, 1)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 2)

		list := blocks[0].KeyValues[0]
		convey.So(list.RawValue, convey.ShouldEqual, "[\n  \"one\",\n  \"two\",\n]")
		convey.So(list.LineNumber, convey.ShouldEqual, 2)

		// The cursor moved past the whole array: `after` is not re-read
		// from inside it.
		convey.So(blocks[0].KeyValues[1].Key, convey.ShouldEqual, "after")
		convey.So(blocks[0].KeyValues[1].LineNumber, convey.ShouldEqual, 6)
	})

	convey.Convey("a nested close bracket terminates the array early", t, func() {
		src := `[sec]
rules = [
  ["x"],
  trailing
]`
		blocks := ParseBlocks(src)
		rules := blocks[0].KeyValues[0]
		convey.So(rules.RawValue, convey.ShouldEqual, "[\n  [\"x\"],")
	})

	convey.Convey("triple-quoted string consumes to the closing marker", t, func() {
		src := `[sec]
prompt = """
line one
line two
"""
next = 1`
		blocks := ParseBlocks(src)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 2)
		prompt := blocks[0].KeyValues[0]
		convey.So(prompt.RawValue, convey.ShouldEqual, "\"\"\"\nline one\nline two\n\"\"\"")
		convey.So(blocks[0].KeyValues[1].Key, convey.ShouldEqual, "next")
	})

	convey.Convey("triple marker closed on the same line is single-line", t, func() {
		src := `[sec]
word = """inline"""
next = 1`
		blocks := ParseBlocks(src)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 2)
		convey.So(blocks[0].KeyValues[0].RawValue, convey.ShouldEqual, `"""inline"""`)
	})

	convey.Convey("unterminated array collects to end of input", t, func() {
		src := `[sec]
broken = [
  "a",
  "b"`
		blocks := ParseBlocks(src)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 1)
		broken := blocks[0].KeyValues[0]
		convey.So(strings.Contains(broken.RawValue, `"b"`), convey.ShouldBeTrue)
		convey.So(blocks[0].EndLine, convey.ShouldEqual, 4)
	})

	convey.Convey("unterminated triple-quoted string collects to end of input", t, func() {
		src := `[sec]
prompt = """
never closed
still going`
		blocks := ParseBlocks(src)
		convey.So(blocks[0].KeyCount, convey.ShouldEqual, 1)
		prompt := blocks[0].KeyValues[0]
		convey.So(prompt.RawValue, convey.ShouldEqual, "\"\"\"\nnever closed\nstill going")
		convey.So(blocks[0].EndLine, convey.ShouldEqual, 4)
	})
}

func TestInlineCommentSplitting(t *testing.T) {
	convey.Convey("hash inside quotes is not a comment", t, func() {
		value, comment := splitInlineComment(`"a # b" # real`)
		convey.So(strings.TrimSpace(value), convey.ShouldEqual, `"a # b"`)
		convey.So(comment, convey.ShouldEqual, "real")
	})

	convey.Convey("no comment at all", t, func() {
		value, comment := splitInlineComment("plain")
		convey.So(value, convey.ShouldEqual, "plain")
		convey.So(comment, convey.ShouldBeEmpty)
	})
}
