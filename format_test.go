package nls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		lang     string
		n        int
		expected string
	}{
		{"en-US", 1234567, "1,234,567"},
		{"de-DE", 1234567, "1.234.567"},
		{"en-US", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			f := NewFormatter(language.MustParse(tt.lang))
			assert.Equal(t, tt.expected, f.FormatInt(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	f := NewFormatter(language.MustParse("en-US"))
	assert.Equal(t, "1,234.50", f.FormatFloat(1234.5, 2))

	g := NewFormatter(language.MustParse("de-DE"))
	assert.Equal(t, "1.234,50", g.FormatFloat(1234.5, 2))
}

func TestFormatPercent(t *testing.T) {
	f := NewFormatter(language.MustParse("en-US"))
	assert.Equal(t, "50%", f.FormatPercent(0.5))
}

func TestFormatOrdinal(t *testing.T) {
	tests := []struct {
		lang     string
		n        int
		expected string
	}{
		{"en-US", 1, "1st"},
		{"en-US", 2, "2nd"},
		{"en-US", 3, "3rd"},
		{"en-US", 4, "4th"},
		{"en-US", 11, "11th"},
		{"en-US", 12, "12th"},
		{"en-US", 13, "13th"},
		{"en-US", 21, "21st"},
		{"en-US", 102, "102nd"},
		{"fr-FR", 1, "1er"},
		{"fr-FR", 2, "2e"},
		{"es-ES", 3, "3°"},
		{"ja-JP", 5, "5"},
	}

	for _, tt := range tests {
		f := NewFormatter(language.MustParse(tt.lang))
		if got := f.FormatOrdinal(tt.n); got != tt.expected {
			t.Errorf("FormatOrdinal(%d) in %s = %q; want %q", tt.n, tt.lang, got, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		lang     string
		expected string
	}{
		{"en-US", "03/05/2024"},
		{"en-GB", "05/03/2024"},
		{"de-DE", "05.03.2024"},
		{"ja-JP", "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			f := NewFormatter(language.MustParse(tt.lang))
			assert.Equal(t, tt.expected, f.FormatDate(date))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	f := NewFormatter(language.MustParse("en-US"))

	assert.Equal(t, "14:30", f.FormatTime(date))
	assert.Equal(t, "03/05/2024 14:30", f.FormatDateTime(date))
}
