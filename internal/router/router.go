package router

import "strings"

// Classify determines how a prompt is handled. It is pure and never fails.
func (r *KeywordRouter) Classify(message string) RouterOutput {
	lower := strings.ToLower(message)

	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return RouterOutput{Intent: rl.intent, Keyword: kw}
			}
		}
	}

	return RouterOutput{Intent: IntentGeneralQuery}
}
