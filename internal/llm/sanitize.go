package llm

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Fallbacks returned when the model output cannot be parsed. The LLM is an
// untrusted collaborator: a malformed completion degrades to a visibly
// flagged placeholder instead of failing the request.
var (
	parseErrorRules = []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}}

	parseErrorClaim = ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."}
)

// StripFences removes markdown code fences (with or without a json language
// tag) from a model completion and trims surrounding whitespace.
func StripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// SanitizeRules parses a raw completion into an ordered rule list. An empty
// completion is treated as the literal "[]". Malformed or off-schema output
// yields the parse-error placeholder, never an error.
func SanitizeRules(raw string, logger *slog.Logger) []Rule {
	if logger == nil {
		logger = slog.Default()
	}

	s := StripFences(raw)
	if s == "" {
		s = "[]"
	}

	if err := ValidateJSONAgainstSchema(BuildRuleListSchema(), []byte(s)); err != nil {
		logger.Warn("llm.sanitize.rules_fallback", "error", err, "content", s)
		return append([]Rule(nil), parseErrorRules...)
	}

	var rules []Rule
	if err := json.Unmarshal([]byte(s), &rules); err != nil {
		logger.Warn("llm.sanitize.rules_fallback", "error", err, "content", s)
		return append([]Rule(nil), parseErrorRules...)
	}
	if rules == nil {
		rules = []Rule{}
	}
	return rules
}

// SanitizeClaim parses a raw completion into a claim result. An empty
// completion is treated as the literal "{}", which fails the schema and so
// also routes to the placeholder.
func SanitizeClaim(raw string, logger *slog.Logger) ClaimResult {
	if logger == nil {
		logger = slog.Default()
	}

	s := StripFences(raw)
	if s == "" {
		s = "{}"
	}

	if err := ValidateJSONAgainstSchema(BuildClaimSchema(), []byte(s)); err != nil {
		logger.Warn("llm.sanitize.claim_fallback", "error", err, "content", s)
		return parseErrorClaim
	}

	var result ClaimResult
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		logger.Warn("llm.sanitize.claim_fallback", "error", err, "content", s)
		return parseErrorClaim
	}
	return result
}
