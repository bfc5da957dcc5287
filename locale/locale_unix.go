//go:build unix && !darwin

package locale

import "github.com/gonls/nls/env"

// detectLocale resolves the locale from the LC_ALL, LC_MESSAGES and LANG
// environment variables, first set and non-empty wins.
func detectLocale(res env.Resolver) string {
	return localeFromEnv(res)
}
