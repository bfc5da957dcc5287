package nls

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers, dates and times according to a locale's
// conventions.
type Formatter struct {
	printer *message.Printer
	lang    language.Tag
}

// NewFormatter creates a formatter for the given language.
func NewFormatter(lang language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(lang),
		lang:    lang,
	}
}

// FormatInt formats an integer with locale-specific grouping.
func (f *Formatter) FormatInt(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// FormatInt64 formats an int64 with locale-specific grouping.
func (f *Formatter) FormatInt64(n int64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// FormatFloat formats a float with exactly precision fraction digits.
func (f *Formatter) FormatFloat(n float64, precision int) string {
	return f.printer.Sprint(number.Decimal(n,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision)))
}

// FormatPercent formats a ratio as a locale-aware percentage; 0.5 becomes
// "50%" in English locales.
func (f *Formatter) FormatPercent(n float64) string {
	return f.printer.Sprint(number.Percent(n))
}

// FormatOrdinal formats an ordinal number (1st, 1er, 1°). Languages
// without a rule here fall back to the plain number.
func (f *Formatter) FormatOrdinal(n int) string {
	base, _ := f.lang.Base()
	switch base.String() {
	case "en":
		return fmt.Sprintf("%d%s", n, englishOrdinalSuffix(n))
	case "fr":
		if n == 1 {
			return "1er"
		}
		return fmt.Sprintf("%de", n)
	case "es":
		return fmt.Sprintf("%d°", n)
	default:
		return f.FormatInt(n)
	}
}

func englishOrdinalSuffix(n int) string {
	// 11th, 12th and 13th break the last-digit rule.
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// dateLayout returns the short date layout conventional for the locale.
func (f *Formatter) dateLayout() string {
	switch f.lang.String() {
	case "en-US":
		return "01/02/2006"
	case "en-GB", "fr-FR":
		return "02/01/2006"
	case "de-DE", "de-AT", "de-CH":
		return "02.01.2006"
	default:
		return "2006-01-02"
	}
}

// FormatDate formats the date portion of t.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.dateLayout())
}

// FormatTime formats the time portion of t in 24-hour notation.
func (f *Formatter) FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateTime formats date and time together.
func (f *Formatter) FormatDateTime(t time.Time) string {
	return f.FormatDate(t) + " " + f.FormatTime(t)
}
