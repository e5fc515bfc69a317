// Package template implements the flat {{key}} placeholder substitution
// used for notification subjects and bodies.
package template

import "regexp"

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)\}\}`)

// Expand replaces every {{key}} occurrence in text with vars[key].
//
// Keys absent from vars are left as-is, so an unresolved placeholder stays
// visible in the delivered message instead of silently disappearing.
// Expansion is a single pass over text: a variable value containing {{ is
// never expanded again.
func Expand(text string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := vars[key]; ok {
			return value
		}
		return match
	})
}
