// Package locale queries the host operating system for the user's
// preferred locale and normalizes it into a language-REGION string such
// as "en-US". Detection never fails: every error path collapses into
// Default.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/gonls/nls/env"
)

// Default is returned whenever the system locale cannot be determined.
const Default = "en-US"

// GetSystemLocale returns the user's preferred locale in language-REGION
// form, or Default when detection fails or the platform has no detection
// path. Each call performs a fresh OS query on its own buffers, so
// concurrent use is safe.
func GetSystemLocale() string {
	return SystemDetector{}.DetectLocale()
}

// SystemTag parses the detected locale into a canonical language tag,
// falling back to the Default tag when the platform reports something
// x/text cannot parse.
func SystemTag() language.Tag {
	tag, err := language.Parse(GetSystemLocale())
	if err != nil {
		return language.MustParse(Default)
	}
	return tag
}

// Normalize converts a POSIX locale value such as "zh_CN.UTF-8" into
// language-REGION form ("zh-CN"). The exact values "C" and "POSIX" mean
// no locale is configured and map to Default. The language subtag is
// lowercased, the region subtag uppercased, and any encoding (".UTF-8")
// or modifier ("@euro") suffix is stripped.
func Normalize(raw string) string {
	if raw == "C" || raw == "POSIX" {
		return Default
	}

	s := strings.ReplaceAll(raw, "_", "-")
	if i := strings.Index(s, "-"); i >= 0 && i+1 < len(s) {
		s = strings.ToLower(s[:i]) + "-" + strings.ToUpper(s[i+1:])
	}
	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "@"); i >= 0 {
		s = s[:i]
	}
	return s
}

// normalizeAppleIdentifier rewrites a CFLocale identifier by replacing
// underscores with hyphens and keeping only the first two hyphen-delimited
// segments, so "zh_Hans_CN" becomes "zh-Hans" and "en_US" becomes "en-US".
func normalizeAppleIdentifier(id string) string {
	s := strings.ReplaceAll(id, "_", "-")
	if i := strings.Index(s, "-"); i >= 0 {
		if j := strings.Index(s[i+1:], "-"); j >= 0 {
			s = s[:i+1+j]
		}
	}
	return s
}

// localeFromEnv walks LC_ALL, LC_MESSAGES and LANG in priority order and
// normalizes the first value that is set and non-empty. It returns ""
// when none is set.
func localeFromEnv(res env.Resolver) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := res.Get(key); value != "" {
			return Normalize(value)
		}
	}
	return ""
}
