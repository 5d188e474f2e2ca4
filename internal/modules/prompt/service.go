// README: Prompt interpreter derives destination, duration and interests from free text.
package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	weekRe = regexp.MustCompile(`(?i)(1|one)\s*week`)
	daysRe = regexp.MustCompile(`(?i)(\d+)\s*day`)
	destRe = regexp.MustCompile(`(?i)in\s+([A-Za-z\s]+?)(?:\s+for|$)`)

	foodRe    = regexp.MustCompile(`(?i)food|café|cafe|sushi|beach|wine`)
	cultureRe = regexp.MustCompile(`(?i)history|art|museum|culture`)
)

// durationRule extracts a trip length from text. Rules are evaluated in
// order; the first one that matches wins.
type durationRule struct {
	name  string
	match func(text string) (int, bool)
}

var durationRules = []durationRule{
	{
		name: "one-week",
		match: func(text string) (int, bool) {
			if weekRe.MatchString(text) {
				return 7, true
			}
			return 0, false
		},
	},
	{
		name: "n-days",
		match: func(text string) (int, bool) {
			m := daysRe.FindStringSubmatch(text)
			if m == nil {
				return 0, false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				// The capture is digits-only, so a failure means the
				// number overflows int. Count it as a matched, very long
				// trip and let the clamp cap it.
				return MaxDays, true
			}
			return n, true
		},
	},
}

// destinationRule extracts a destination from text. Same first-match-wins
// ordering as durationRules.
type destinationRule struct {
	name  string
	match func(text string) (string, bool)
}

var destinationRules = []destinationRule{
	{
		// "in <place>" up to " for" or end of text. The character class
		// excludes punctuation and non-ASCII letters, so prompts like
		// "Weekend in Paris with cafés" fall through to the next rule.
		name: "in-place-regex",
		match: func(text string) (string, bool) {
			m := destRe.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		},
	},
	{
		// First whitespace-delimited token after the literal " in ".
		// Trailing punctuation is kept as-is; tests pin that behaviour.
		name: "token-after-in",
		match: func(text string) (string, bool) {
			_, after, found := strings.Cut(text, " in ")
			if !found {
				return "", false
			}
			fields := strings.Fields(after)
			if len(fields) == 0 {
				return "", false
			}
			return fields[0], true
		},
	},
}

// Interpret derives a destination and trip length from free text.
// It never fails: ambiguous or empty input resolves to defaults.
func Interpret(text string) ParsedTrip {
	days := DefaultDays
	for _, rule := range durationRules {
		if n, ok := rule.match(text); ok {
			days = n
			break
		}
	}
	days = clampDays(days)

	destination := DefaultDestination
	for _, rule := range destinationRules {
		if d, ok := rule.match(text); ok && d != "" {
			destination = d
			break
		}
	}

	return ParsedTrip{Destination: destination, Days: days}
}

// ClassifyInterests maps keyword families in the text to interest tags.
// The result is never empty: "Culture" is the fallback tag.
func ClassifyInterests(text string) []string {
	var interests []string
	if foodRe.MatchString(text) {
		interests = append(interests, "Food")
	}
	if cultureRe.MatchString(text) {
		interests = append(interests, "Culture")
	}
	if len(interests) == 0 {
		interests = append(interests, "Culture")
	}
	return interests
}

func clampDays(n int) int {
	if n < MinDays {
		return MinDays
	}
	if n > MaxDays {
		return MaxDays
	}
	return n
}
