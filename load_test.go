package nls

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.json": {Data: []byte(`{"1": "Hello", "2": "Goodbye"}`)},
		"locales/fr-FR.toml": {Data: []byte("\"1\" = \"Bonjour\"\n")},
	}

	c, err := LoadFS(fsys, "locales", enUS)
	require.NoError(t, err)

	assert.Equal(t, "Hello", c.GetText(enUS, 1))
	assert.Equal(t, "Bonjour", c.GetText(frFR, 1))
	// fr-FR has no id 2, so the default language answers.
	assert.Equal(t, "Goodbye", c.GetText(frFR, 2))
	assert.Equal(t, []language.Tag{enUS, frFR}, c.Languages())
}

func TestLoadFSInvalidLanguageFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/not a tag.json": {Data: []byte(`{"1": "x"}`)},
	}

	_, err := LoadFS(fsys, "locales", enUS)
	require.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestLoadFSInvalidTextID(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.json": {Data: []byte(`{"greeting": "Hello"}`)},
	}

	_, err := LoadFS(fsys, "locales", enUS)
	require.ErrorIs(t, err, ErrInvalidTextID)
}

func TestLoadFSUnsupportedFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("1: Hello\n")},
	}

	_, err := LoadFS(fsys, "locales", enUS)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFSMissingDefaultLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/fr-FR.json": {Data: []byte(`{"1": "Bonjour"}`)},
	}

	_, err := LoadFS(fsys, "locales", enUS)
	require.ErrorIs(t, err, ErrDefaultLanguageMissing)
}

func TestLoadFSMalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.json": {Data: []byte(`{"1": `)},
	}

	_, err := LoadFS(fsys, "locales", enUS)
	require.Error(t, err)
}

func TestLoadFSSkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.json":    {Data: []byte(`{"1": "Hello"}`)},
		"locales/drafts/x.json": {Data: []byte(`{"1": "draft"}`)},
		"locales/drafts/y.json": {Data: []byte(`{"2": "draft"}`)},
	}

	c, err := LoadFS(fsys, "locales", enUS)
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{enUS}, c.Languages())
}
