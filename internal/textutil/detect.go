package textutil

import (
	"regexp"
	"strings"
)

// englishThreshold is the fraction of tokens that must be common English
// words before text is classified as English.
const englishThreshold = 0.4

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// commonEnglishWords is a fixed stop-word vocabulary. Membership ratio over
// this set is a crude but serviceable English/Kinyarwanda discriminator since
// both languages use Latin script.
var commonEnglishWords = map[string]struct{}{
	"the": {}, "be": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"to": {}, "of": {}, "and": {}, "a": {}, "an": {}, "in": {},
	"that": {}, "have": {}, "has": {}, "had": {}, "it": {}, "for": {},
	"not": {}, "on": {}, "with": {}, "he": {}, "she": {}, "they": {},
	"we": {}, "you": {}, "i": {}, "this": {}, "but": {}, "his": {},
	"her": {}, "my": {}, "your": {}, "from": {}, "at": {}, "by": {},
	"or": {}, "as": {}, "what": {}, "all": {}, "there": {}, "do": {},
	"so": {}, "if": {}, "when": {}, "how": {}, "can": {}, "would": {},
	"about": {}, "me": {}, "am": {}, "feel": {}, "very": {}, "been": {},
}

// IsEnglish reports whether text is likely English. Empty input defaults to
// English so the pipeline skips translation rather than guessing.
func IsEnglish(text string) bool {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return true
	}

	matches := 0
	for _, token := range tokens {
		if _, ok := commonEnglishWords[token]; ok {
			matches++
		}
	}

	return float64(matches)/float64(len(tokens)) > englishThreshold
}
