package llm

import "context"

// Rule is one SLA clause extracted from a contract: a human-readable
// condition and its consequence. The model is not guaranteed to conform,
// so both fields are best-effort strings.
type Rule struct {
	Logic   string `json:"logic"`
	Penalty string `json:"penalty"`
}

// ClaimResult is the normalized shape we want from the enforcement call.
type ClaimResult struct {
	RefundAmount float64 `json:"refund_amount"`
	EmailBody    string  `json:"email_body"`
}

// TextGenerator is the interface our pipelines depend on: one prompt in,
// the model's raw completion out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
