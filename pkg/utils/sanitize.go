package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingFence  = regexp.MustCompile("^```[a-zA-Z]*\r?\n")
	trailingFence = regexp.MustCompile("\r?\n```$")
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// StripCodeFences removes a markdown code fence wrapped around a model reply,
// e.g. "```json\n[...]\n```". Text without a leading or trailing fence is
// returned untouched. Nested fences are peeled until none remain, so the
// function is idempotent.
func StripCodeFences(text string) string {
	out := text
	for {
		trimmed := strings.TrimSpace(out)
		next := leadingFence.ReplaceAllString(trimmed, "")
		next = trailingFence.ReplaceAllString(next, "")
		if next == trimmed {
			return out
		}
		out = strings.TrimSpace(next)
	}
}

// ExtractNumber returns the first decimal number found in text.
func ExtractNumber(text string) (float64, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
