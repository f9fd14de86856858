package config

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestLearningRules(t *testing.T) {
	convey.Convey("rows decode positionally", t, func() {
		raw := "[\n" +
			"  [\"\", \"enable\", \"disable\", \"enable\"],\n" +
			"  [\"qq:123\", \"use\", \"learn\", \"jargon\"],\n" +
			"]"
		rules := ParseLearningRules(raw)
		convey.So(len(rules), convey.ShouldEqual, 2)

		convey.So(rules[0].Scope, convey.ShouldBeEmpty)
		convey.So(rules[0].ScopeLabel, convey.ShouldEqual, "global")
		convey.So(rules[0].UseExpr, convey.ShouldEqual, "enable")
		convey.So(rules[0].LearnExpr, convey.ShouldEqual, "disable")
		convey.So(rules[0].LearnJargon, convey.ShouldEqual, "enable")

		convey.So(rules[1].Scope, convey.ShouldEqual, "qq:123")
		convey.So(rules[1].ScopeLabel, convey.ShouldEqual, "qq:123")
	})

	convey.Convey("short, unparsable and non-string rows are dropped", t, func() {
		raw := "[\n" +
			"  [\"only\", \"three\", \"items\"],\n" +
			"  not json at all,\n" +
			"  [1, 2, 3, 4],\n" +
			"  [\"ok\", \"a\", \"b\", \"c\"],\n" +
			"]"
		rules := ParseLearningRules(raw)
		convey.So(len(rules), convey.ShouldEqual, 1)
		convey.So(rules[0].Scope, convey.ShouldEqual, "ok")
	})
}

func TestKeywordRules(t *testing.T) {
	convey.Convey("one rule body yields keywords and reaction", t, func() {
		formatted := "{\n  keywords = [\"hi\"]\n  reaction = \"yo\"\n}"
		rules := ParseKeywordRules(formatted)
		convey.So(len(rules), convey.ShouldEqual, 1)
		convey.So(rules[0].Keywords, convey.ShouldResemble, []string{"hi"})
		convey.So(rules[0].Reaction, convey.ShouldEqual, "yo")
	})

	convey.Convey("multiple bodies and missing fields", t, func() {
		formatted := "{keywords = [\"a\", \"b\"] reaction = \"r1\"}, {reaction = \"r2\"}, {keywords = [broken}"
		rules := ParseKeywordRules(formatted)
		convey.So(len(rules), convey.ShouldEqual, 3)
		convey.So(rules[0].Keywords, convey.ShouldResemble, []string{"a", "b"})
		convey.So(rules[0].Reaction, convey.ShouldEqual, "r1")
		convey.So(rules[1].Keywords, convey.ShouldBeEmpty)
		convey.So(rules[1].Reaction, convey.ShouldEqual, "r2")
		convey.So(rules[2].Keywords, convey.ShouldBeEmpty)
		convey.So(rules[2].Reaction, convey.ShouldBeEmpty)
	})

	convey.Convey("no braces means no rules", t, func() {
		convey.So(ParseKeywordRules("keywords = [\"hi\"]"), convey.ShouldBeEmpty)
	})
}

func TestRegexRules(t *testing.T) {
	convey.Convey("regex list and reaction", t, func() {
		formatted := "{regex = [\"^ping$\"] reaction = \"pong\"}"
		rules := ParseRegexRules(formatted)
		convey.So(len(rules), convey.ShouldEqual, 1)
		convey.So(rules[0].Patterns, convey.ShouldResemble, []string{"^ping$"})
		convey.So(rules[0].Reaction, convey.ShouldEqual, "pong")
	})
}

func TestChatPrompts(t *testing.T) {
	convey.Convey("scope is everything before the third colon", t, func() {
		prompts := ParseChatPrompts("qq:group:123: be nice \n\nhello there\na:b: two colons only")
		convey.So(len(prompts), convey.ShouldEqual, 3)

		convey.So(prompts[0].Scope, convey.ShouldEqual, "qq:group:123")
		convey.So(prompts[0].Content, convey.ShouldEqual, "be nice")

		convey.So(prompts[1].Scope, convey.ShouldBeEmpty)
		convey.So(prompts[1].Content, convey.ShouldEqual, "hello there")

		convey.So(prompts[2].Scope, convey.ShouldBeEmpty)
		convey.So(prompts[2].Content, convey.ShouldEqual, "a:b: two colons only")
	})
}
