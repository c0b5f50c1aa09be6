package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers, conversational preambles and
// trailing chatter from JSON responses. When a fenced block appears anywhere in the
// text its body is used; otherwise the first balanced object or array is returned.
// Text with no recognizable JSON is returned trimmed.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "```"); start >= 0 {
		body := text[start+3:]
		if end := strings.Index(body, "```"); end >= 0 {
			body = body[:end]
		}
		// Skip a language identifier on the first line
		if strings.HasPrefix(body, "json") {
			body = body[len("json"):]
		} else if idx := strings.Index(body, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(body[:idx])
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				body = body[idx+1:]
			}
		}
		text = strings.TrimSpace(body)
	}

	idx := strings.IndexAny(text, "{[")
	if idx < 0 {
		return text
	}

	var extracted string
	if text[idx] == '{' {
		extracted = extractJSONObject(text[idx:])
	} else {
		extracted = extractJSONArray(text[idx:])
	}
	if extracted == "" {
		return text[idx:]
	}
	return extracted
}

// extractJSONObject returns the balanced object at the start of text, or "".
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced array at the start of text, or "".
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, closing byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
