// Package slug derives URL-safe identifiers from human-readable names.
package slug

import "strings"

// Make lowercases the input, turns spaces into hyphens and strips every
// character that is not a letter, digit or hyphen. Runs of hyphens collapse
// to one and edge hyphens are trimmed. Idempotent: Make(Make(s)) == Make(s).
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
