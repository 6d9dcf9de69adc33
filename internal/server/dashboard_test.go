package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/repository"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	_, _ = env.contracts.Create(nil, newContractReq(env.userID))
	_, _ = env.contracts.Create(nil, newContractReq(env.userID))
	// another org's contract is not counted
	_, _ = env.contracts.Create(nil, newContractReq(uuid.New()))

	seed := []struct {
		status  string
		penalty float64
	}{
		{"recovered", 500},
		{"recovered", 250},
		{"pending", 100},
		{"detected", 40},
		{"open", 9999},
	}
	for _, s := range seed {
		_, _ = env.incidents.Create(nil, &repository.CreateIncidentRequest{
			ContractID:       uuid.New(),
			DowntimeDuration: 60,
			PenaltyAmount:    s.penalty,
			Status:           s.status,
		})
	}

	w := getJSON(env.router, "/api/dashboard", env.token())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		TotalRecovered  float64           `json:"total_recovered"`
		ActiveContracts int               `json:"active_contracts"`
		PendingClaims   float64           `json:"pending_claims"`
		RecentBreaches  []entity.Incident `json:"recent_breaches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	if resp.TotalRecovered != 750 {
		t.Errorf("total_recovered = %v, want 750", resp.TotalRecovered)
	}
	if resp.PendingClaims != 140 {
		t.Errorf("pending_claims = %v, want 140", resp.PendingClaims)
	}
	if resp.ActiveContracts != 2 {
		t.Errorf("active_contracts = %d, want 2", resp.ActiveContracts)
	}
	if len(resp.RecentBreaches) != 5 {
		t.Errorf("recent_breaches = %d entries, want 5", len(resp.RecentBreaches))
	}
}

func TestDashboardCapsRecentBreaches(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	for i := 0; i < 8; i++ {
		_, _ = env.incidents.Create(nil, &repository.CreateIncidentRequest{
			ContractID:       uuid.New(),
			DowntimeDuration: 30,
			Status:           "open",
		})
	}

	w := getJSON(env.router, "/api/dashboard", env.token())

	var resp struct {
		RecentBreaches []entity.Incident `json:"recent_breaches"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.RecentBreaches) != 5 {
		t.Errorf("recent_breaches = %d entries, want 5", len(resp.RecentBreaches))
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	w := getJSON(env.router, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}
