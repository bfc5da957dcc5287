//go:build !unix && !windows

package locale

import "github.com/gonls/nls/env"

// detectLocale reports no locale on platforms without a detection path,
// which makes the caller fall back to Default.
func detectLocale(_ env.Resolver) string {
	return ""
}
