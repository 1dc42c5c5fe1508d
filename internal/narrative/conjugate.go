// Package narrative turns a resolved classification plus the user's
// task text into the VMS-ready summary sentence. It covers the verb
// conjugator (past tense → gerund) and the category template renderer.
package narrative

import "strings"

// irregularGerunds maps simple past-tense forms of common volunteering
// verbs to their gerund; these are the verbs the regular "-ed → -ing"
// heuristic gets wrong or cannot reach.
var irregularGerunds = map[string]string{
	"led":    "leading",
	"gave":   "giving",
	"taught": "teaching",
	"ran":    "running",
	"built":  "building",
	"wrote":  "writing",
	"made":   "making",
	"took":   "taking",
	"held":   "holding",
	"met":    "meeting",
	"spoke":  "speaking",
	"did":    "doing",
	"saw":    "seeing",
	"found":  "finding",
	"kept":   "keeping",
	"set":    "setting",
	"went":   "going",
	"put":    "putting",
	"sent":   "sending",
	"read":   "reading",
}

// ConjugateToGerund rewrites simple past-tense verbs in text to gerund
// form, token by token. Trailing periods and commas are stripped for
// lookup and reattached afterwards. Tokens that are neither in the
// irregular table nor match the regular "-ed" heuristic pass through
// unchanged; there is no part-of-speech tagging.
func ConjugateToGerund(text string) string {
	tokens := strings.Split(text, " ")
	for i, token := range tokens {
		tokens[i] = conjugateToken(token)
	}
	return strings.Join(tokens, " ")
}

func conjugateToken(token string) string {
	word := strings.TrimRight(token, ".,")
	suffix := token[len(word):]
	if word == "" {
		return token
	}

	if gerund, ok := irregularGerunds[strings.ToLower(word)]; ok {
		return gerund + suffix
	}

	// Regular heuristic: planted → planting, removed → removing.
	if strings.HasSuffix(word, "ed") && len(word) > 4 {
		stem := strings.TrimSuffix(word, "ed")
		stem = strings.TrimSuffix(stem, "e")
		return stem + "ing" + suffix
	}

	return token
}
