// Package i18n supplies the fallback UI language used when a project
// configuration does not set one explicitly.
package i18n

import (
	"os"
	"strings"
)

// DefaultLang is returned when no system language can be detected.
const DefaultLang = "en"

// Detector resolves the UI language to fall back to.
type Detector interface {
	Detect() string
}

// SystemDetector reads the language from the process environment,
// checking LC_ALL, LC_MESSAGES and LANG in that order.
type SystemDetector struct{}

// Detect returns the detected language as a hyphenated tag
// (e.g. "en-US"), or DefaultLang when nothing usable is set.
func (SystemDetector) Detect() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang := normalize(os.Getenv(key)); lang != "" {
			return lang
		}
	}
	return DefaultLang
}

// normalize converts a POSIX locale value like "en_US.UTF-8" into a
// language tag like "en-US". The "C" and "POSIX" locales carry no
// language information.
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
