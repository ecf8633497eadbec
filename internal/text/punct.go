package text

// punctuation maps full-width and typographic punctuation tokens to the
// canonical forms used by the symbol vocabulary.
var punctuation = map[string]string{
	"：":   ",",
	"；":   ",",
	"，":   ",",
	"。":   ".",
	"！":   "!",
	"？":   "?",
	"\n":  ".",
	"·":   ",",
	"、":   ",",
	"...": "…",
	"—":   "-",
	"“":   "'",
	"”":   "'",
	"‘":   "'",
	"’":   "'",
}

// PostReplace returns the canonical form of a whole token. Tokens without a
// replacement, phonemes included, are returned unchanged. No replacement is
// itself a key, so PostReplace is idempotent.
func PostReplace(token string) string {
	if r, ok := punctuation[token]; ok {
		return r
	}

	return token
}

// PostReplaceAll applies PostReplace to every token in place and returns
// tokens.
func PostReplaceAll(tokens []string) []string {
	for i, t := range tokens {
		tokens[i] = PostReplace(t)
	}

	return tokens
}
