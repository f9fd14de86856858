package title

// Package title maps raw block titles to human-readable labels. Lookups go
// through a dictionary that an external provider may refresh; until (and
// unless) a fetch succeeds, the built-in table answers.

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// =========================
// Dictionary
// =========================

// Dictionary holds whole-title translations and per-token fallbacks.
type Dictionary struct {
	Blocks map[string]string `json:"blocks"`
	Tokens map[string]string `json:"tokens"`
}

// Provider supplies a dictionary. Fetch may fail; the translator swallows
// the failure and keeps whatever dictionary it already has.
type Provider interface {
	Fetch(ctx context.Context) (*Dictionary, error)
}

// defaultDictionary covers the section titles the upstream notepad ships
// with. A fetched dictionary replaces it wholesale.
var defaultDictionary = &Dictionary{
	Blocks: map[string]string{
		"bot":               "机器人",
		"personality":       "人格",
		"identity":          "身份",
		"relationship":      "关系",
		"chat":              "聊天",
		"message_receive":   "消息接收",
		"normal_chat":       "普通聊天",
		"emoji":             "表情包",
		"memory":            "记忆",
		"mood":              "情绪",
		"expression":        "表达方式",
		"keyword_reaction":  "关键词反应",
		"response_splitter": "回复分割",
		"chinese_typo":      "中文错别字",
		"model":             "模型",
		"experimental":      "实验性功能",
		"telemetry":         "遥测",
	},
	Tokens: map[string]string{
		"bot":        "机器人",
		"chat":       "聊天",
		"memory":     "记忆",
		"emoji":      "表情包",
		"model":      "模型",
		"message":    "消息",
		"keyword":    "关键词",
		"reaction":   "反应",
		"response":   "回复",
		"expression": "表达",
		"prompt":     "提示词",
		"rules":      "规则",
		"list":       "列表",
		"max":        "最大",
		"min":        "最小",
		"time":       "时间",
	},
}

// =========================
// Translator
// =========================

// Translator performs title lookups. The provider is consulted at most
// once per Translator unless Reload is called explicitly; translation
// itself never blocks on the fetch.
type Translator struct {
	provider Provider

	mu   sync.RWMutex
	dict *Dictionary
	once sync.Once
}

// NewTranslator builds a translator over the built-in dictionary. provider
// may be nil, in which case the built-in table is permanent.
func NewTranslator(provider Provider) *Translator {
	return &Translator{provider: provider, dict: defaultDictionary}
}

// Warm triggers the one-time background dictionary fetch. Safe to call any
// number of times from any goroutine.
func (t *Translator) Warm(ctx context.Context) {
	if t.provider == nil {
		return
	}
	t.once.Do(func() {
		go func() {
			// A failed fetch keeps the current dictionary in place.
			_ = t.Reload(ctx)
		}()
	})
}

// Reload fetches the dictionary now and swaps it in on success.
func (t *Translator) Reload(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	dict, err := t.provider.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch title dictionary")
	}
	if dict == nil {
		return nil
	}
	t.mu.Lock()
	t.dict = dict
	t.mu.Unlock()
	return nil
}

// Translate maps a raw block title to its label. Whole-title matches win;
// otherwise the title is split on `_`, `-` and `.` and translated token by
// token, untranslated tokens passing through unchanged. Returns "" when
// nothing survives the split.
func (t *Translator) Translate(rawTitle string) string {
	t.mu.RLock()
	dict := t.dict
	t.mu.RUnlock()

	title := strings.ToLower(rawTitle)
	if label, ok := dict.Blocks[title]; ok {
		return label
	}

	tokens := strings.FieldsFunc(title, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	if len(tokens) == 0 {
		return ""
	}
	for i, tok := range tokens {
		if label, ok := dict.Tokens[tok]; ok {
			tokens[i] = label
		}
	}
	return strings.Join(tokens, " ")
}

// =========================
// HTTP Provider
// =========================

// HTTPProvider fetches the dictionary as JSON from a fixed URL.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

func (p *HTTPProvider) Fetch(ctx context.Context) (*Dictionary, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build dictionary request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", p.URL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("dictionary fetch: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read dictionary body")
	}
	var dict Dictionary
	if err := json.Unmarshal(body, &dict); err != nil {
		return nil, errors.Wrap(err, "decode dictionary")
	}
	return &dict, nil
}
