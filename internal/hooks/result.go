package hooks

// RuleResult represents the result of evaluating a rule.
type RuleResult struct {
	// Allowed indicates whether the tool usage should be allowed.
	Allowed bool

	// Message provides additional context about the decision.
	// For blocked results, this explains why the tool was blocked.
	Message string

	// RuleName identifies which rule produced this result.
	RuleName string
}

// NewAllowedResult creates a result that allows the tool usage.
func NewAllowedResult() *RuleResult {
	return &RuleResult{
		Allowed:  true,
		Message:  "",
		RuleName: "",
	}
}

// NewBlockedResult creates a result that blocks the tool usage.
func NewBlockedResult(ruleName, message string) *RuleResult {
	return &RuleResult{
		Allowed:  false,
		Message:  message,
		RuleName: ruleName,
	}
}

// preToolUseEventName is the hook event name Claude Code expects in
// PreToolUse decision payloads.
const preToolUseEventName = "PreToolUse"

// Output is the JSON document written to stdout when a tool usage is denied.
// Allowed usages produce no output at all; the hook harness treats an empty
// response as permission to proceed.
type Output struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// HookSpecificOutput carries the permission decision for the hook harness.
type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

// NewDenyOutput builds the deny payload for a blocked result.
func NewDenyOutput(reason string) *Output {
	return &Output{
		HookSpecificOutput: HookSpecificOutput{
			HookEventName:            preToolUseEventName,
			PermissionDecision:       "deny",
			PermissionDecisionReason: reason,
		},
	}
}
