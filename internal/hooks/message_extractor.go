package hooks

import (
	"regexp"
	"strings"
)

var (
	// heredocOpenRe matches the opening of a heredoc-style commit message:
	// -m "$(cat <<'EOF' or -m "$(cat <<EOF, capturing the delimiter word.
	heredocOpenRe = regexp.MustCompile(`(?s)-m\s+["']?\$\(cat\s+<<-?["']?(\w+)["']?\s+`)

	// simpleOpenRe matches the opening quote of a plain -m argument.
	simpleOpenRe = regexp.MustCompile(`-m\s+(["'])`)
)

// extractCommitMessage extracts the commit message from a git commit command.
// The heredoc shape is tried before the simple quoted shape: the simple
// pattern matches across newlines and would otherwise capture a partial
// slice of a heredoc invocation. Returns false when no shape matches, in
// which case the caller must treat the message as undeterminable.
func extractCommitMessage(command string) (string, bool) {
	start := strings.Index(command, "git commit")
	if start < 0 {
		return "", false
	}
	region := command[start:]

	if message, ok := extractHeredocMessage(region); ok {
		return message, true
	}
	return extractSimpleMessage(region)
}

// extractHeredocMessage extracts the body of a heredoc commit message,
// trimmed of surrounding whitespace. Go's regexp has no backreferences, so
// the delimiter captured at the opening marker is matched against the
// remainder by an explicit scan rather than a \1 in the pattern.
func extractHeredocMessage(command string) (string, bool) {
	for _, m := range heredocOpenRe.FindAllStringSubmatchIndex(command, -1) {
		delimiter := command[m[2]:m[3]]
		if body, ok := heredocBody(command[m[1]:], delimiter); ok {
			return body, true
		}
	}
	return "", false
}

// heredocBody finds the closing delimiter in the text following a heredoc
// opening and returns the trimmed body before it. The closing delimiter
// must be preceded by whitespace and the body must be non-empty.
func heredocBody(rest string, delimiter string) (string, bool) {
	offset := 0
	for {
		i := strings.Index(rest[offset:], delimiter)
		if i < 0 {
			return "", false
		}
		i += offset
		if i > 0 && isSpaceByte(rest[i-1]) {
			if body := strings.TrimSpace(rest[:i]); body != "" {
				return body, true
			}
		}
		offset = i + len(delimiter)
	}
}

// extractSimpleMessage extracts the message from -m "message" or
// -m 'message'. The closing quote must be the same character as the
// opening one, so mixed quoting never matches.
func extractSimpleMessage(command string) (string, bool) {
	for _, m := range simpleOpenRe.FindAllStringSubmatchIndex(command, -1) {
		quote := command[m[2]]
		if message, ok := quotedMessage(command[m[3]:], quote); ok {
			return message, true
		}
	}
	return "", false
}

// quotedMessage finds the closing quote in the text following an opening
// quote and returns the message between them, untrimmed. The closing quote
// must be followed by whitespace or end of string, and the message must be
// at least one character long.
func quotedMessage(rest string, quote byte) (string, bool) {
	for i := 1; i < len(rest); i++ {
		if rest[i] != quote {
			continue
		}
		if i+1 == len(rest) || isSpaceByte(rest[i+1]) {
			return rest[:i], true
		}
	}
	return "", false
}

// isSpaceByte reports whether c is an ASCII whitespace character.
func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
