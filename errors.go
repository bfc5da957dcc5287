package nls

import "errors"

var (
	ErrInvalidLanguage        = errors.New("invalid language in filename")
	ErrInvalidTextID          = errors.New("invalid text id")
	ErrUnsupportedFormat      = errors.New("unsupported translation file format")
	ErrDefaultLanguageMissing = errors.New("default language translations missing")
)
