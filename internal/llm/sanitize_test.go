package llm

import (
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"logic":"a","penalty":"b"}]`, `[{"logic":"a","penalty":"b"}]`},
		{"json fence", "```json\n[]\n```", "[]"},
		{"bare fence", "```\n{}\n```", "{}"},
		{"fence mid-text", "here ```json[]``` done", "here [] done"},
		{"whitespace", "  \n []\n ", "[]"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeRules(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Rule
	}{
		{
			name: "valid array",
			raw:  `[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`,
			want: []Rule{{Logic: "uptime < 99.9%", Penalty: "10% credit"}},
		},
		{
			name: "fenced valid array",
			raw:  "```json\n[{\"logic\":\"latency > 200ms\",\"penalty\":\"5% credit\"}]\n```",
			want: []Rule{{Logic: "latency > 200ms", Penalty: "5% credit"}},
		},
		{
			name: "empty completion becomes empty list",
			raw:  "",
			want: []Rule{},
		},
		{
			name: "whitespace only becomes empty list",
			raw:  "   \n\t ",
			want: []Rule{},
		},
		{
			name: "empty array",
			raw:  "[]",
			want: []Rule{},
		},
		{
			name: "prose fallback",
			raw:  "Sure! Here are the SLAs I found in the contract.",
			want: []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}},
		},
		{
			name: "truncated json fallback",
			raw:  `[{"logic":"uptime`,
			want: []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}},
		},
		{
			name: "object instead of array fallback",
			raw:  `{"logic":"uptime < 99.9%","penalty":"10% credit"}`,
			want: []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}},
		},
		{
			name: "missing required field fallback",
			raw:  `[{"logic":"uptime < 99.9%"}]`,
			want: []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}},
		},
		{
			name: "wrong field type fallback",
			raw:  `[{"logic":"uptime < 99.9%","penalty":42}]`,
			want: []Rule{{Logic: "Parse Error", Penalty: "Could not extract structured data"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeRules(tt.raw, nil)
			if got == nil {
				t.Fatal("SanitizeRules returned nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rules, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rule %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSanitizeRulesFallbackIsCopy(t *testing.T) {
	a := SanitizeRules("not json", nil)
	a[0].Logic = "mutated"

	b := SanitizeRules("not json", nil)
	if b[0].Logic != "Parse Error" {
		t.Errorf("fallback was mutated by a previous caller: %+v", b[0])
	}
}

func TestSanitizeClaim(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ClaimResult
	}{
		{
			name: "valid object",
			raw:  `{"refund_amount": 500.5, "email_body": "Subject: SLA Breach"}`,
			want: ClaimResult{RefundAmount: 500.5, EmailBody: "Subject: SLA Breach"},
		},
		{
			name: "fenced valid object",
			raw:  "```json\n{\"refund_amount\": 1000, \"email_body\": \"Dear Vendor\"}\n```",
			want: ClaimResult{RefundAmount: 1000, EmailBody: "Dear Vendor"},
		},
		{
			name: "empty completion fallback",
			raw:  "",
			want: ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."},
		},
		{
			name: "prose fallback",
			raw:  "I cannot calculate a refund for this incident.",
			want: ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."},
		},
		{
			name: "missing email_body fallback",
			raw:  `{"refund_amount": 500}`,
			want: ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."},
		},
		{
			name: "string refund fallback",
			raw:  `{"refund_amount": "500", "email_body": "x"}`,
			want: ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."},
		},
		{
			name: "array fallback",
			raw:  `[{"refund_amount": 500, "email_body": "x"}]`,
			want: ClaimResult{RefundAmount: 0, EmailBody: "Error generating claim."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeClaim(tt.raw, nil); got != tt.want {
				t.Errorf("SanitizeClaim(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildExtractionPromptTruncates(t *testing.T) {
	text := strings.Repeat("q", 25000)
	prompt := BuildExtractionPrompt(text)

	if got := strings.Count(prompt, "q"); got != 10000 {
		t.Errorf("expected exactly 10000 chars of contract text, got %d", got)
	}
	if !strings.Contains(prompt, "Contract Text:") {
		t.Error("prompt missing contract text marker")
	}
}

func TestBuildExtractionPromptShortText(t *testing.T) {
	prompt := BuildExtractionPrompt("99.9% uptime or 10% credit")
	if !strings.Contains(prompt, "99.9% uptime or 10% credit") {
		t.Error("short contract text should be embedded unchanged")
	}
}

func TestBuildEnforcementPrompt(t *testing.T) {
	rules := []byte(`[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`)
	prompt := BuildEnforcementPrompt(120, rules)

	if !strings.Contains(prompt, "120 minutes") {
		t.Error("prompt missing downtime duration")
	}
	if !strings.Contains(prompt, string(rules)) {
		t.Error("prompt missing serialized rules")
	}
	if !strings.Contains(prompt, "refund_amount") {
		t.Error("prompt missing response format hint")
	}
}
