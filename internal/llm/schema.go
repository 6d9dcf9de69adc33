package llm

// BuildRuleListSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the expected extraction output: an ordered array
// of {logic, penalty} objects.
func BuildRuleListSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"logic":   map[string]any{"type": "string"},
				"penalty": map[string]any{"type": "string"},
			},
			"required": []string{"logic", "penalty"},
		},
	}
}

// BuildClaimSchema returns the schema for the enforcement output: a single
// object with a numeric refund_amount and a string email_body.
func BuildClaimSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"refund_amount": map[string]any{"type": "number"},
			"email_body":    map[string]any{"type": "string"},
		},
		"required": []string{"refund_amount", "email_body"},
	}
}
