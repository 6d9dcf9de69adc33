package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alauddinGen-Z/SLA/internal/entity"
)

func TestSimulateIncident(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: `{"refund_amount": 1200, "email_body": "Subject: Breach"}`})
	contract, _ := env.contracts.Create(nil, newContractReq(env.userID))

	w := postJSON(env.router, "/api/incidents/simulate", env.token(), map[string]any{
		"contract_id":      contract.ID,
		"downtime_minutes": 90,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Incident entity.Incident `json:"incident"`
		Claim    entity.Claim    `json:"claim"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	if resp.Incident.DowntimeDuration != 90 {
		t.Errorf("downtime = %d, want 90", resp.Incident.DowntimeDuration)
	}
	if resp.Incident.Status != "open" || resp.Incident.PenaltyAmount != 0 {
		t.Errorf("new incidents start open with zero penalty: %+v", resp.Incident)
	}
	if resp.Claim.RefundAmount != 1200 || resp.Claim.IncidentID != resp.Incident.ID {
		t.Errorf("unexpected claim: %+v", resp.Claim)
	}
}

func TestSimulateIncidentDefaultDowntime(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: `{"refund_amount": 1, "email_body": "x"}`})
	contract, _ := env.contracts.Create(nil, newContractReq(env.userID))

	w := postJSON(env.router, "/api/incidents/simulate", env.token(), map[string]any{
		"contract_id": contract.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Incident entity.Incident `json:"incident"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Incident.DowntimeDuration != 60 {
		t.Errorf("default downtime = %d, want 60", resp.Incident.DowntimeDuration)
	}
}

func TestListIncidents(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: `{"refund_amount": 1, "email_body": "x"}`})
	contract, _ := env.contracts.Create(nil, newContractReq(env.userID))

	for i := 0; i < 3; i++ {
		w := postJSON(env.router, "/api/incidents/simulate", env.token(), map[string]any{
			"contract_id": contract.ID,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("simulate %d failed: %s", i, w.Body.String())
		}
	}

	w := getJSON(env.router, "/api/incidents", env.token())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Incidents []entity.Incident `json:"incidents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Incidents) != 3 {
		t.Errorf("expected 3 incidents, got %d", len(resp.Incidents))
	}
}
