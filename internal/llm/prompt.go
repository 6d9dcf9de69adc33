package llm

import (
	"fmt"

	"github.com/alauddinGen-Z/SLA/constants"
)

// BuildExtractionPrompt composes the fixed instruction for turning contract
// text into SLA rules. At most the first MaxPromptChars characters of the
// extracted text are embedded.
func BuildExtractionPrompt(contractText string) string {
	if len(contractText) > constants.MaxPromptChars {
		contractText = contractText[:constants.MaxPromptChars]
	}
	return "Analyze the following contract text.\n" +
		"Extract any Service Level Agreements (SLAs) regarding uptime, latency, or support response time.\n" +
		"Return ONLY a JSON array with this format:\n" +
		`[{ "logic": "uptime < 99.9%", "penalty": "10% credit" }]` + "\n\n" +
		"Contract Text:\n" + contractText
}

// BuildEnforcementPrompt composes the fixed instruction for computing a
// penalty and drafting a claim email from a downtime incident and the
// contract's serialized rule list.
func BuildEnforcementPrompt(downtimeMinutes int, rulesJSON []byte) string {
	return fmt.Sprintf(`You are "The Enforcer", a top-tier FinOps lawyer agent.

CONTEXT:
A downtime incident occurred for %d minutes.

CONTRACT RULES (SLA):
%s

TASK:
1. Calculate the refund amount based on the rules. If no specific rule matches, estimate a fair penalty (e.g. $1000/hr).
2. Draft a formal, aggressive, but professional email to the vendor demanding the credit.

RETURN JSON ONLY:
{
  "refund_amount": 500.00,
  "email_body": "Subject: Urgent: SLA Breach Notice\n\nDear Vendor,\n\n..."
}`, downtimeMinutes, rulesJSON)
}
