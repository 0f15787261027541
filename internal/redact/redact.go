// Package redact scrubs secrets from strings before they are logged. Vendor
// SDK errors often echo request URLs or headers, and those can carry the
// caller's API key.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; vendor key shapes come before the generic key=value rule.
var rules = []rule{
	// OpenAI (sk-..., sk-proj-...), Groq (gsk_...) and Google (AIza...) keys
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\bgsk_[A-Za-z0-9]{16,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{30,}`), RedactedKeyPlaceholder},
	// Bearer tokens and JWTs
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]+`), "Bearer " + RedactedCredentialPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	// key=..., api_key: ..., x-ai-api-key ... in URLs, headers and messages
	{
		regexp.MustCompile(`(?i)((?:x-ai-)?api[_-]?key|key|token|secret|password)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{6,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	// Database connection strings
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), "${1}://" + RedactedCredentialPlaceholder + "@"},
	// Absolute file paths
	{regexp.MustCompile(`(?:^|\s)(/[\w.-]+){2,}`), " " + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
