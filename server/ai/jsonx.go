package ai

import (
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n\\s*```")

// ExtractJSON pulls a JSON document out of a generative text response.
// The service sometimes wraps its JSON in prose or code fences, so the
// extraction order is: fenced code block, then the first brace-delimited
// span. Returns false when no candidate is found; the caller decides the
// hard fallback.
func ExtractJSON(response string) (string, bool) {
	if match := fencedBlockRe.FindStringSubmatch(response); match != nil {
		return strings.TrimSpace(match[1]), true
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return response[start : end+1], true
}
