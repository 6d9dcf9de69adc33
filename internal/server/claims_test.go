package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/alauddinGen-Z/SLA/internal/repository"
)

func getJSON(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedClaims(env *testEnv, n int) {
	for i := 0; i < n; i++ {
		_, _ = env.claims.Create(nil, &repository.CreateClaimRequest{
			IncidentID:   uuid.New(),
			ContractID:   uuid.New(),
			RefundAmount: float64(100 * (i + 1)),
			EmailBody:    fmt.Sprintf("claim %d", i),
		})
	}
}

func TestListClaimsDefaultLimit(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	seedClaims(env, 8)

	w := getJSON(env.router, "/api/claims", env.token())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Claims []json.RawMessage `json:"claims"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Claims) != 5 {
		t.Errorf("default limit should be 5, got %d", len(resp.Claims))
	}
}

func TestListClaimsExplicitLimit(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	seedClaims(env, 8)

	w := getJSON(env.router, "/api/claims?limit=2", env.token())

	var resp struct {
		Claims []json.RawMessage `json:"claims"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Claims) != 2 {
		t.Errorf("limit=2 should return 2, got %d", len(resp.Claims))
	}
}

func TestListClaimsRequiresAuth(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	w := getJSON(env.router, "/api/claims", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestApproveClaim(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	seedClaims(env, 1)
	id := env.claims.rows[0].ID

	w := postJSON(env.router, "/api/claims/"+id.String()+"/approve", env.token(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != "sent" {
		t.Errorf("status = %q, want sent", resp.Status)
	}

	// second approval conflicts
	w = postJSON(env.router, "/api/claims/"+id.String()+"/approve", env.token(), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second approve status = %d, want 409", w.Code)
	}
}

func TestApproveClaimNotFound(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	w := postJSON(env.router, "/api/claims/"+uuid.New().String()+"/approve", env.token(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestApproveClaimBadID(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	w := postJSON(env.router, "/api/claims/not-a-uuid/approve", env.token(), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExportClaims(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	seedClaims(env, 3)

	w := getJSON(env.router, "/api/claims/export", env.token())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Claims")
	if err != nil {
		t.Fatalf("missing Claims sheet: %v", err)
	}
	if len(rows) != 4 { // header + 3 claims
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Created" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
}
