// Package nls provides an in-memory text catalog keyed by language and
// message id, with deterministic fallback to a catalog-wide default
// language, plus locale-aware formatting helpers. Detection of the host
// system's locale lives in the locale subpackage.
package nls

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// TextID identifies a single logical, translatable message.
type TextID uint64

// textNotFound is returned when neither the requested language nor the
// default language has an entry for a text id.
const textNotFound = "TEXT_NOT_FOUND"

// DefaultErrorText returns the process-wide sentinel produced for every
// lookup that misses both the requested and the default language.
func DefaultErrorText() string {
	return textNotFound
}

// Catalog stores localized text by language and message id. Lookups fall
// back from the requested language to the default language and finally to
// DefaultErrorText, so GetText always yields a value.
//
// A Catalog has no internal locking. An instance shared across goroutines
// with concurrent writers needs external synchronization.
type Catalog struct {
	defaultLang language.Tag
	texts       map[language.Tag]map[TextID]string
}

// New creates an empty catalog with the given default language. The
// default language is fixed for the catalog's lifetime and may be
// populated later like any other language.
func New(defaultLang language.Tag) *Catalog {
	return &Catalog{
		defaultLang: defaultLang,
		texts:       make(map[language.Tag]map[TextID]string),
	}
}

// NewWithTexts creates a catalog pre-seeded from texts. The nested map is
// copied, so the catalog and the caller never share per-language buckets.
func NewWithTexts(defaultLang language.Tag, texts map[language.Tag]map[TextID]string) *Catalog {
	c := New(defaultLang)
	for lang, entries := range texts {
		bucket := make(map[TextID]string, len(entries))
		for id, text := range entries {
			bucket[id] = text
		}
		c.texts[lang] = bucket
	}
	return c
}

// SetText inserts or overwrites the text for (lang, id) and returns the
// catalog so configuration calls can be chained.
func (c *Catalog) SetText(lang language.Tag, id TextID, text string) *Catalog {
	bucket, ok := c.texts[lang]
	if !ok {
		bucket = make(map[TextID]string)
		c.texts[lang] = bucket
	}
	bucket[id] = text
	return c
}

// SetTexts bulk-adds entries to lang's bucket. Ids already present keep
// their current text; only missing ids are added. Use SetText to
// overwrite an individual entry.
func (c *Catalog) SetTexts(lang language.Tag, entries map[TextID]string) *Catalog {
	bucket, ok := c.texts[lang]
	if !ok {
		bucket = make(map[TextID]string, len(entries))
		c.texts[lang] = bucket
	}
	for id, text := range entries {
		if _, exists := bucket[id]; !exists {
			bucket[id] = text
		}
	}
	return c
}

// GetText returns the text for (lang, id). When lang has no entry the
// default language is consulted, and when that also misses the result is
// DefaultErrorText. GetText never fails.
func (c *Catalog) GetText(lang language.Tag, id TextID) string {
	if bucket, ok := c.texts[lang]; ok {
		if text, ok := bucket[id]; ok {
			return text
		}
	}
	if bucket, ok := c.texts[c.defaultLang]; ok {
		if text, ok := bucket[id]; ok {
			return text
		}
	}
	return textNotFound
}

// GetTextf resolves (lang, id) like GetText and, when args are given,
// treats the stored text as a fmt format string.
func (c *Catalog) GetTextf(lang language.Tag, id TextID, args ...interface{}) string {
	text := c.GetText(lang, id)
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// HasText reports whether lang itself holds an entry for id, ignoring the
// fallback chain.
func (c *Catalog) HasText(lang language.Tag, id TextID) bool {
	bucket, ok := c.texts[lang]
	if !ok {
		return false
	}
	_, ok = bucket[id]
	return ok
}

// DefaultLanguage returns the fallback language fixed at construction.
func (c *Catalog) DefaultLanguage() language.Tag {
	return c.defaultLang
}

// Languages returns the languages with at least one configured bucket,
// sorted by tag string.
func (c *Catalog) Languages() []language.Tag {
	langs := make([]language.Tag, 0, len(c.texts))
	for lang := range c.texts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})
	return langs
}

// Texts returns a copy of lang's bucket. Mutating the result does not
// affect the catalog.
func (c *Catalog) Texts(lang language.Tag) map[TextID]string {
	bucket := c.texts[lang]
	out := make(map[TextID]string, len(bucket))
	for id, text := range bucket {
		out[id] = text
	}
	return out
}
