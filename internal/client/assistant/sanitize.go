package assistant

import "strings"

// MaxPromptLen bounds the worst-case prompt size sent to the model.
const MaxPromptLen = 500

// Characters that could alter prompt structure when interpolated into the
// fixed template.
const bannedChars = `<>{}[]\`

// Sanitize strips banned characters, trims surrounding whitespace, and
// caps the text at MaxPromptLen runes. Pure and idempotent:
// Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(bannedChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.TrimSpace(b.String())
	if runes := []rune(out); len(runes) > MaxPromptLen {
		// Trim again: truncation can expose trailing whitespace, and the
		// result must survive a second pass unchanged.
		out = strings.TrimSpace(string(runes[:MaxPromptLen]))
	}
	return out
}
