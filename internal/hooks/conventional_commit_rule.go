package hooks

import (
	"fmt"
	"regexp"
	"strings"
)

// conventionalCommitRe validates the leading line of a commit message:
// type(scope)?: description, with a mandatory single space after the colon.
// The type token is case-sensitive and the tail is unconstrained.
var conventionalCommitRe = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|chore|ci|build|revert)(\(.+\))?:\s.+`)

// conventionalCommitRule denies git commit commands whose message does not
// follow the Conventional Commits format.
type conventionalCommitRule struct{}

// NewConventionalCommitRule creates a new rule that enforces Conventional
// Commits messages on git commit commands.
func NewConventionalCommitRule() Rule {
	return &conventionalCommitRule{}
}

// Name returns the unique identifier for this rule.
func (r *conventionalCommitRule) Name() string {
	return "conventional-commit"
}

// Description returns a human-readable description of what this rule does.
func (r *conventionalCommitRule) Description() string {
	return "Blocks git commit commands whose message does not follow Conventional Commits"
}

// Evaluate checks if the Bash command is a git commit with a conforming
// message. The command scope test is a plain substring check, so commands
// that merely mention "git commit" are inspected too; when no message can
// be extracted from them the rule allows rather than blocks. Failing open
// on ambiguity is intentional: the rule only denies when it confidently
// extracted a message that violates the format.
func (r *conventionalCommitRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input.ToolName != "Bash" {
		return NewAllowedResult(), nil
	}

	command, ok := input.GetStringArg("command")
	if !ok {
		return NewAllowedResult(), nil
	}

	if !strings.Contains(command, "git commit") {
		return NewAllowedResult(), nil
	}

	message, ok := extractCommitMessage(command)
	if !ok {
		return NewAllowedResult(), nil
	}

	if conventionalCommitRe.MatchString(message) {
		return NewAllowedResult(), nil
	}

	return NewBlockedResult(r.Name(), invalidFormatReason(message)), nil
}

// invalidFormatReason renders the deny explanation shown to the user,
// echoing the rejected message verbatim.
func invalidFormatReason(message string) string {
	return fmt.Sprintf(`❌ Invalid commit message format

Your message: %s

Commit messages must follow Conventional Commits:
  type(scope): description

Types:
  feat:     New feature
  fix:      Bug fix
  docs:     Documentation changes
  style:    Code style changes (formatting)
  refactor: Code refactoring
  perf:     Performance improvements
  test:     Adding or updating tests
  chore:    Maintenance tasks
  ci:       CI/CD changes
  build:    Build system changes
  revert:   Revert previous commit

Examples:
  ✅ feat: add user authentication
  ✅ feat(auth): implement JWT tokens
  ✅ fix: resolve memory leak in parser
  ✅ fix(api): handle null responses
  ✅ docs: update API documentation

Invalid:
  ❌ Added new feature (no type)
  ❌ feat:add feature (missing space after colon)
  ❌ feature: add login (wrong type, use 'feat')

💡 Tip: Start your message with one of the types above followed by a colon and space.`, message)
}
