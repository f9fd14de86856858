package parse

// Package parse turns raw uploaded text into a display-ready preview
// model. Mode selection cascades: a strict knowledge-document check first,
// then the lenient block scanner, then plain text. Folding ranges are
// computed in every mode so the code view can collapse regions regardless
// of how the content rendered.

import (
	"github.com/samber/lo"

	"github.com/cuckoo711/notepreview/parse/config"
	"github.com/cuckoo711/notepreview/parse/knowledge"
	"github.com/cuckoo711/notepreview/parse/title"
)

// =========================
// Preview Model
// =========================

type Mode string

const (
	ModeKnowledge Mode = "knowledge"
	ModeBlocks    Mode = "blocks"
	ModeText      Mode = "text"
)

// Preview is the full output for one file: exactly one of Knowledge,
// Blocks or Text is populated, selected by Mode, and Folding is always
// present. The model is recomputed whole on every input change and is
// never mutated afterwards.
type Preview struct {
	Mode      Mode                  `json:"mode"`
	Knowledge *knowledge.Payload    `json:"knowledge,omitempty"`
	Blocks    []BlockView           `json:"blocks,omitempty"`
	Text      string                `json:"text,omitempty"`
	Folding   []config.FoldingRange `json:"folding"`
}

// BlockView decorates a scanned block with its translated label and the
// per-key display values.
type BlockView struct {
	config.Block
	Label  string      `json:"label"`
	Values []ValueView `json:"values"`
}

// ValueView is one key's display form: formatted text, list/boolean hints,
// and whichever rule decoding applies to this (block, key) pair.
type ValueView struct {
	Key           string                `json:"key"`
	Text          string                `json:"text"`
	Comment       string                `json:"comment,omitempty"`
	Line          int                   `json:"line"`
	IsList        bool                  `json:"isList"`
	IsBoolean     bool                  `json:"isBoolean"`
	Entries       []string              `json:"entries,omitempty"`
	LearningRules []config.LearningRule `json:"learningRules,omitempty"`
	KeywordRules  []config.KeywordRule  `json:"keywordRules,omitempty"`
	RegexRules    []config.RegexRule    `json:"regexRules,omitempty"`
	ChatPrompts   []config.ChatPrompt   `json:"chatPrompts,omitempty"`
}

// =========================
// Mode Selection
// =========================

// BuildPreview derives the preview model from raw text. translator may be
// nil, in which case block labels stay empty.
func BuildPreview(text string, translator *title.Translator) Preview {
	p := Preview{Folding: config.FoldingRanges(text)}

	if payload, ok := knowledge.Detect(text); ok {
		p.Mode = ModeKnowledge
		p.Knowledge = payload
		return p
	}

	if blocks := config.ParseBlocks(text); len(blocks) > 0 {
		p.Mode = ModeBlocks
		p.Blocks = lo.Map(blocks, func(b config.Block, _ int) BlockView {
			return buildBlockView(b, translator)
		})
		return p
	}

	p.Mode = ModeText
	p.Text = text
	return p
}

func buildBlockView(b config.Block, translator *title.Translator) BlockView {
	view := BlockView{Block: b}
	if translator != nil {
		view.Label = translator.Translate(b.Title)
	}
	view.Values = lo.Map(b.KeyValues, func(kv config.KeyValue, _ int) ValueView {
		return buildValueView(b.Title, kv)
	})
	return view
}

func buildValueView(blockTitle string, kv config.KeyValue) ValueView {
	formatted := config.Format(kv.RawValue)
	view := ValueView{
		Key:       kv.Key,
		Text:      formatted,
		Comment:   kv.InlineComment,
		Line:      kv.LineNumber,
		IsList:    config.IsList(kv.RawValue),
		IsBoolean: config.IsBoolean(formatted),
	}
	if view.IsList {
		view.Entries = config.ListEntries(kv.RawValue)
	}

	switch {
	case blockTitle == "expression" && kv.Key == "learning_list":
		view.LearningRules = config.ParseLearningRules(kv.RawValue)
	case blockTitle == "keyword_reaction" && kv.Key == "keyword_rules":
		view.KeywordRules = config.ParseKeywordRules(formatted)
	case blockTitle == "keyword_reaction" && kv.Key == "regex_rules":
		view.RegexRules = config.ParseRegexRules(formatted)
	case blockTitle == "experimental" && kv.Key == "chat_prompts":
		view.ChatPrompts = config.ParseChatPrompts(formatted)
	}
	return view
}
