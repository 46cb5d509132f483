package generate

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// fallbackPool is the local stand-in for the completion provider.
var fallbackPool = []string{
	"Every step forward is a step toward achievement.",
	"The key to success is to focus on goals, not obstacles.",
	"Your potential is the sum of all possibilities you have yet to explore.",
	"Believe you can and you're halfway there.",
	"Don't watch the clock; do what it does. Keep going.",
	"The future belongs to those who believe in the beauty of their dreams.",
	"Success is not final, failure is not fatal: it is the courage to continue that counts.",
	"You are capable of more than you know.",
	"The only way to do great work is to love what you do.",
	"Challenges are what make life interesting. Overcoming them is what makes life meaningful.",
}

var (
	aboutKeyword = regexp.MustCompile(`(?i)about\s+(\w+)`)
	firstWord    = regexp.MustCompile(`(\w+)`)
)

// fallbackQuote picks a quote from the local pool, preferring entries that
// contain a keyword extracted from the prompt ("about <word>" or the first
// word). Repeated identical prompts may yield different quotes; the variety
// is intentional.
func fallbackQuote(prompt string) string {
	keyword := ""
	if m := aboutKeyword.FindStringSubmatch(prompt); m != nil {
		keyword = strings.ToLower(m[1])
	} else if m := firstWord.FindStringSubmatch(prompt); m != nil {
		keyword = strings.ToLower(m[1])
	}

	matches := lo.Filter(fallbackPool, func(quote string, _ int) bool {
		return strings.Contains(strings.ToLower(quote), keyword)
	})
	if len(matches) > 0 {
		return matches[rand.Intn(len(matches))]
	}
	return fallbackPool[rand.Intn(len(fallbackPool))]
}
