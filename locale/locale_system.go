package locale

import "github.com/gonls/nls/env"

// Detector produces a normalized locale string for the current user.
// Callers that want to substitute detection, for tests or for platforms
// with their own locale source, implement this interface.
type Detector interface {
	// DetectLocale returns the locale in language-REGION form. It must
	// not fail; Default stands in for any undetectable locale.
	DetectLocale() string
}

// SystemDetector queries the host operating system using the detection
// path compiled for the target platform. The zero value reads the real
// process environment on platforms that resolve the locale from
// environment variables.
type SystemDetector struct {
	// Env overrides the environment source. Nil means the process
	// environment.
	Env env.Resolver
}

// DetectLocale implements Detector.
func (d SystemDetector) DetectLocale() string {
	res := d.Env
	if res == nil {
		res = env.OS{}
	}
	if loc := detectLocale(res); loc != "" {
		return loc
	}
	return Default
}
