package nls

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// LoadFS builds a catalog from per-language translation files under dir in
// fsys. Each file is named <lang>.json or <lang>.toml, where <lang> parses
// as a BCP-47 tag, and holds a flat map of decimal text id to text:
//
//	{ "1": "Hello", "2": "Goodbye" }
//
// fsys is typically an embed.FS or os.DirFS. The default language must end
// up with at least one entry or ErrDefaultLanguageMissing is returned.
func LoadFS(fsys fs.FS, dir string, defaultLang language.Tag) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	c := New(defaultLang)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		lang, err := language.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, name)
		}
		if err := c.loadFile(fsys, lang, path.Join(dir, name), ext); err != nil {
			return nil, err
		}
	}

	if len(c.texts[defaultLang]) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, defaultLang)
	}
	return c, nil
}

func (c *Catalog) loadFile(fsys fs.FS, lang language.Tag, filePath, ext string) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return err
	}

	raw := make(map[string]string)
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%s: %w", filePath, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%s: %w", filePath, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}

	for key, text := range raw {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %q", ErrInvalidTextID, filePath, key)
		}
		c.SetText(lang, TextID(id), text)
	}
	return nil
}
