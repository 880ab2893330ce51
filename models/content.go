// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Slug is the Sanity slug object stored on a page document.
type Slug struct {
	// Type is the Sanity type marker, normally "slug".
	Type string `json:"_type,omitempty"`

	// Current is the slug value used in URLs (e.g. "about").
	Current string `json:"current"`
}

// ContentDocument is a page returned by the CMS query projection
// {title, content, slug}.
//
// The typed fields are a read-only view used for logging and tooling. The
// document keeps the exact JSON it was decoded from, and [ContentDocument.MarshalJSON]
// emits that JSON (compacted) so responses carry the CMS document verbatim,
// including any fields the typed view does not know about.
type ContentDocument struct {
	// Title is the page title.
	Title string `json:"title"`

	// Content is the page body. Sanity may store it as an HTML string or as
	// a Portable Text block array, so it is kept undecoded.
	Content json.RawMessage `json:"content,omitempty"`

	// Slug identifies the page.
	Slug *Slug `json:"slug,omitempty"`

	raw json.RawMessage
}

// NewContentDocument wraps raw CMS JSON in a [ContentDocument].
//
// It returns (nil, nil) when raw is empty or a falsy JSON value (null,
// false, 0 or ""): the CMS answers null when no document matches the query.
// Any other valid JSON becomes a document whose raw JSON is kept verbatim.
// The typed fields are filled best-effort and left empty when the stored
// value has a different shape, e.g. a localized title object.
func NewContentDocument(raw json.RawMessage) (*ContentDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, trimmed); err != nil {
		return nil, fmt.Errorf("invalid content document JSON: %w", err)
	}

	if isFalsy(compacted.Bytes()) {
		return nil, nil
	}

	doc := &ContentDocument{raw: compacted.Bytes()}
	doc.decodeTypedView()

	return doc, nil
}

// decodeTypedView fills Title, Content and Slug from raw, skipping every
// field whose JSON shape does not match.
func (d *ContentDocument) decodeTypedView() {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(d.raw, &fields); err != nil {
		return
	}

	var title string
	if err := json.Unmarshal(fields["title"], &title); err == nil {
		d.Title = title
	}

	if content, ok := fields["content"]; ok && !bytes.Equal(content, []byte("null")) {
		d.Content = content
	}

	var slug Slug
	if err := json.Unmarshal(fields["slug"], &slug); err == nil && bytes.HasPrefix(fields["slug"], []byte("{")) {
		d.Slug = &slug
	}
}

// isFalsy reports whether compacted is null, false, a zero number or an
// empty string.
func isFalsy(compacted []byte) bool {
	switch string(compacted) {
	case "null", "false", `""`:
		return true
	}

	if compacted[0] == '"' {
		return false
	}

	var n json.Number
	if err := json.Unmarshal(compacted, &n); err != nil {
		return false
	}
	f, err := n.Float64()
	return err == nil && f == 0
}

// ContentString returns Content as a plain string when the CMS stores it as
// a JSON string, and the raw JSON otherwise.
func (d *ContentDocument) ContentString() string {
	if len(d.Content) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(d.Content, &s); err == nil {
		return s
	}

	return string(d.Content)
}

// MarshalJSON implements [json.Marshaler]. Documents created by
// [NewContentDocument] serialize to the original CMS JSON; documents built
// by hand serialize their typed fields.
func (d ContentDocument) MarshalJSON() ([]byte, error) {
	if len(d.raw) > 0 {
		return d.raw, nil
	}

	type plain ContentDocument
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plain(d)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
