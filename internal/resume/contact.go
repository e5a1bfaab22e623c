package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}|\+?\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)

	phoneFragmentRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	nonPhoneRuneRe  = regexp.MustCompile(`[^\d+]`)
)

// Lines that are section headings rather than a person's name.
var sectionHeaders = []string{
	"experience", "education", "skills", "objective", "summary",
	"work experience", "employment", "projects", "certifications",
	"achievements", "awards", "references", "contact", "about",
	"professional", "background", "qualification", "technical",
}

// ExtractEmail returns the first email address in the text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number in the text, normalized to
// "(ddd) ddd-dddd" when it reduces to 10 US digits, otherwise as matched.
func ExtractPhone(text string) string {
	match := phoneRe.FindString(text)
	if match == "" {
		return ""
	}

	digits := nonPhoneRuneRe.ReplaceAllString(match, "")
	if strings.HasPrefix(digits, "+1") {
		digits = digits[2:]
	} else if strings.HasPrefix(digits, "1") && len(digits) == 11 {
		digits = digits[1:]
	}

	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
	return match
}

// ExtractName scans the first 15 non-empty lines for one that looks like a
// person's name: short, not a section header, free of contact fragments, and
// 2-4 capitalized, mostly-alphabetic words. First qualifying line wins.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == 15 {
			break
		}
	}

	for _, line := range lines {
		if len(line) > 50 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, sectionHeaders) {
			continue
		}
		if strings.Contains(line, "@") || phoneFragmentRe.MatchString(line) {
			continue
		}
		if containsAny(lower, []string{"http", "linkedin", "github", ".com"}) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if looksLikeName(words) {
			return strings.Join(words, " ")
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func looksLikeName(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		letters := 0
		for _, r := range runes {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		// Allow apostrophes and hyphens, but the word must stay mostly letters.
		if float64(letters) < float64(len(runes))*0.7 {
			return false
		}
	}
	return true
}
