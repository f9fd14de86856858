package knowledge

// Package knowledge recognizes the JSON "knowledge document" payload shape.
// Unlike the lenient config scanner, detection is strict and all-or-nothing:
// it gates which display mode the host view selects, so a half-valid
// document must never pass as a fully-typed one.

import (
	"encoding/json"
	"strings"
)

// =========================
// Payload Model
// =========================

// Triple is one extracted (subject, relation, object) relation.
type Triple [3]string

// Document is one passage with its extracted entities and triples.
type Document struct {
	Idx               string   `json:"idx"`
	Passage           string   `json:"passage"`
	ExtractedEntities []string `json:"extractedEntities"`
	ExtractedTriples  []Triple `json:"extractedTriples"`
}

// Payload is the whole knowledge file: every document plus the aggregate
// entity statistics carried at top level.
type Payload struct {
	Docs        []Document `json:"docs"`
	AvgEntChars float64    `json:"avgEntChars"`
	AvgEntWords float64    `json:"avgEntWords"`
}

// =========================
// Detector
// =========================

// Detect parses text as JSON and structurally validates it against the
// knowledge-document shape. Any violation anywhere — a missing field, a
// wrong type, a triple that is not exactly three strings — returns
// (nil, false). Parse failures never surface as errors.
func Detect(text string) (*Payload, bool) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return nil, false
	}

	docsRaw, ok := root["docs"]
	if !ok {
		return nil, false
	}
	chars, ok := decodeNumber(root["avg_ent_chars"])
	if !ok {
		return nil, false
	}
	words, ok := decodeNumber(root["avg_ent_words"])
	if !ok {
		return nil, false
	}

	var docsAny []json.RawMessage
	if isNull(docsRaw) {
		return nil, false
	}
	if err := json.Unmarshal(docsRaw, &docsAny); err != nil {
		return nil, false
	}

	payload := &Payload{
		Docs:        make([]Document, 0, len(docsAny)),
		AvgEntChars: chars,
		AvgEntWords: words,
	}
	for _, raw := range docsAny {
		doc, ok := decodeDocument(raw)
		if !ok {
			return nil, false
		}
		payload.Docs = append(payload.Docs, doc)
	}
	return payload, true
}

// IsKnowledgeJSON reports whether text is a valid knowledge document.
func IsKnowledgeJSON(text string) bool {
	_, ok := Detect(text)
	return ok
}

func decodeDocument(raw json.RawMessage) (Document, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Document{}, false
	}

	idx, ok := decodeString(fields["idx"])
	if !ok {
		return Document{}, false
	}
	passage, ok := decodeString(fields["passage"])
	if !ok {
		return Document{}, false
	}

	entsRaw, ok := fields["extracted_entities"]
	if !ok {
		return Document{}, false
	}
	ents, ok := decodeStringArray(entsRaw)
	if !ok {
		return Document{}, false
	}

	triplesRaw, ok := fields["extracted_triples"]
	if !ok {
		return Document{}, false
	}
	var triplesAny []json.RawMessage
	if isNull(triplesRaw) {
		return Document{}, false
	}
	if err := json.Unmarshal(triplesRaw, &triplesAny); err != nil {
		return Document{}, false
	}
	triples := make([]Triple, 0, len(triplesAny))
	for _, t := range triplesAny {
		parts, ok := decodeStringArray(t)
		if !ok {
			return Document{}, false
		}
		if len(parts) != 3 {
			return Document{}, false
		}
		triples = append(triples, Triple{parts[0], parts[1], parts[2]})
	}
	return Document{
		Idx:               idx,
		Passage:           passage,
		ExtractedEntities: ents,
		ExtractedTriples:  triples,
	}, true
}

// decodeStringArray validates every element individually: a null element
// would otherwise unmarshal into a string slot as "" without error.
func decodeStringArray(raw json.RawMessage) ([]string, bool) {
	if raw == nil || isNull(raw) {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := decodeString(e)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	if raw == nil || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if raw == nil || isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// isNull guards fields whose target type would silently accept a JSON null.
func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
