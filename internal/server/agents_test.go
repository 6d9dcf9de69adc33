package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/llm/gemini"
)

func postJSON(router http.Handler, path, token string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestParalegalEndpoint(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: "```json\n[{\"logic\":\"uptime < 99.9%\",\"penalty\":\"10% credit\"}]\n```"})
	env.store.data["docs/acme.txt"] = []byte("Vendor guarantees 99.9% uptime.")

	w := postJSON(env.router, "/api/agents/paralegal", env.token(), map[string]string{
		"file_path": "docs/acme.txt",
		"file_name": "acme.txt",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var rules []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &rules); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(rules) != 1 || rules[0]["logic"] != "uptime < 99.9%" || rules[0]["penalty"] != "10% credit" {
		t.Errorf("unexpected rules: %v", rules)
	}

	if len(env.contracts.created) != 1 {
		t.Fatalf("expected one contract insert, got %d", len(env.contracts.created))
	}
	if env.contracts.created[0].OrgID != env.userID {
		t.Error("contract should be owned by the token subject")
	}
}

func TestParalegalEndpointNoAuth(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: "[]"})
	env.store.data["docs/acme.txt"] = []byte("terms")

	w := postJSON(env.router, "/api/agents/paralegal", "", map[string]string{
		"file_path": "docs/acme.txt",
		"file_name": "acme.txt",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp["error"] == "" {
		t.Errorf("expected {error: msg} body, got %s", w.Body.String())
	}
	if len(env.contracts.created) != 0 {
		t.Error("no contract row may be written for an unauthenticated call")
	}
}

func TestParalegalEndpointMissingObject(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: "[]"})

	w := postJSON(env.router, "/api/agents/paralegal", env.token(), map[string]string{
		"file_path": "docs/gone.txt",
		"file_name": "gone.txt",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "failed to download contract document" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestEnforcerEndpoint(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: `{"refund_amount": 500, "email_body": "Subject: SLA Breach Notice"}`})

	contract, _ := env.contracts.Create(nil, newContractReq(env.userID))
	incidentID := uuid.New()

	w := postJSON(env.router, "/api/agents/enforcer", env.token(), map[string]any{
		"incident_id":      incidentID,
		"contract_id":      contract.ID,
		"downtime_minutes": 120,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var claim entity.Claim
	if err := json.Unmarshal(w.Body.Bytes(), &claim); err != nil {
		t.Fatalf("response is not a claim: %v", err)
	}
	if claim.RefundAmount != 500 || claim.Status != "draft" {
		t.Errorf("unexpected claim: %+v", claim)
	}
	if claim.IncidentID != incidentID || claim.ContractID != contract.ID {
		t.Errorf("claim keys wrong: %+v", claim)
	}
}

func TestEnforcerEndpointUnknownContract(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: "{}"})

	w := postJSON(env.router, "/api/agents/enforcer", env.token(), map[string]any{
		"incident_id":      uuid.New(),
		"contract_id":      uuid.New(),
		"downtime_minutes": 60,
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Contract not found" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

// An upstream LLM failure surfaces as 500 through the real client.
func TestEnforcerEndpointLLMDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := gemini.NewClient(gemini.Config{APIKey: "k", BaseURL: upstream.URL}, nil)
	env := newTestEnv(client)

	contract, _ := env.contracts.Create(nil, newContractReq(env.userID))

	w := postJSON(env.router, "/api/agents/enforcer", env.token(), map[string]any{
		"incident_id":      uuid.New(),
		"contract_id":      contract.ID,
		"downtime_minutes": 60,
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "LLM call failed" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
	if len(env.claims.rows) != 0 {
		t.Error("no claim row may be written when the LLM is down")
	}
}

func TestAgentsPreflight(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/api/agents/paralegal", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	h := w.Header()
	if h.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Allow-Origin = %q", h.Get("Access-Control-Allow-Origin"))
	}
	if h.Get("Access-Control-Allow-Headers") != "authorization, x-client-info, apikey, content-type" {
		t.Errorf("Allow-Headers = %q", h.Get("Access-Control-Allow-Headers"))
	}
	if h.Get("Access-Control-Allow-Methods") != "POST, OPTIONS" {
		t.Errorf("Allow-Methods = %q", h.Get("Access-Control-Allow-Methods"))
	}
}
