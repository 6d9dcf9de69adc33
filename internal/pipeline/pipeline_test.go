package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/repository"
)

type fakeStore struct {
	data map[string][]byte
	err  error
}

func (s *fakeStore) Download(_ context.Context, path string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.data[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (s *fakeStore) Upload(_ context.Context, path string, data []byte, _ string) error {
	if s.data == nil {
		s.data = map[string][]byte{}
	}
	s.data[path] = data
	return nil
}

type fakeGenerator struct {
	completion string
	err        error
	prompts    []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.completion, nil
}

type fakeContracts struct {
	byID      map[uuid.UUID]*entity.Contract
	created   []*repository.CreateContractRequest
	createErr error
}

func (r *fakeContracts) Create(_ context.Context, req *repository.CreateContractRequest) (*entity.Contract, error) {
	r.created = append(r.created, req)
	if r.createErr != nil {
		return nil, r.createErr
	}
	return &entity.Contract{
		ID:                uuid.New(),
		OrgID:             req.OrgID,
		FileURL:           req.FileURL,
		FileName:          req.FileName,
		ExtractedDataJSON: req.ExtractedDataJSON,
		CreatedAt:         time.Now(),
	}, nil
}

func (r *fakeContracts) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, common.NewAppError("NOT_FOUND", "Contract not found", common.ErrNotFound)
}

func (r *fakeContracts) ListByOrg(_ context.Context, _ uuid.UUID) ([]*entity.Contract, error) {
	return nil, nil
}

func (r *fakeContracts) CountByOrg(_ context.Context, _ uuid.UUID) (int, error) {
	return len(r.byID), nil
}

type fakeClaims struct {
	created   []*repository.CreateClaimRequest
	createErr error
}

func (r *fakeClaims) Create(_ context.Context, req *repository.CreateClaimRequest) (*entity.Claim, error) {
	r.created = append(r.created, req)
	if r.createErr != nil {
		return nil, r.createErr
	}
	return &entity.Claim{
		ID:           uuid.New(),
		IncidentID:   req.IncidentID,
		ContractID:   req.ContractID,
		RefundAmount: req.RefundAmount,
		EmailBody:    req.EmailBody,
		Status:       "draft",
		CreatedAt:    time.Now(),
	}, nil
}

func (r *fakeClaims) List(_ context.Context, _ int) ([]*entity.Claim, error) {
	return nil, nil
}

func (r *fakeClaims) Approve(_ context.Context, _ uuid.UUID) (*entity.Claim, error) {
	return nil, errors.New("not implemented")
}

func TestParalegalRun(t *testing.T) {
	store := &fakeStore{data: map[string][]byte{
		"docs/contract.txt": []byte("99.9% uptime or 10% credit"),
	}}
	gen := &fakeGenerator{completion: `[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`}
	contracts := &fakeContracts{}

	orgID := uuid.New()
	p := NewParalegal(store, gen, contracts, nil)

	rules, contract, err := p.Run(context.Background(), orgID, "docs/contract.txt", "contract.txt")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(rules) != 1 || rules[0].Logic != "uptime < 99.9%" {
		t.Errorf("unexpected rules: %+v", rules)
	}
	if contract == nil {
		t.Fatal("expected persisted contract")
	}

	if len(contracts.created) != 1 {
		t.Fatalf("expected one contract insert, got %d", len(contracts.created))
	}
	req := contracts.created[0]
	if req.OrgID != orgID || req.FileURL != "docs/contract.txt" || req.FileName != "contract.txt" {
		t.Errorf("unexpected create request: %+v", req)
	}
	var stored []map[string]string
	if err := json.Unmarshal(req.ExtractedDataJSON, &stored); err != nil {
		t.Fatalf("stored rules are not JSON: %v", err)
	}
	if stored[0]["penalty"] != "10% credit" {
		t.Errorf("unexpected stored rules: %v", stored)
	}
}

func TestParalegalSwallowsInsertFailure(t *testing.T) {
	store := &fakeStore{data: map[string][]byte{"c.txt": []byte("terms")}}
	gen := &fakeGenerator{completion: `[]`}
	contracts := &fakeContracts{createErr: errors.New("connection refused")}

	p := NewParalegal(store, gen, contracts, nil)

	rules, contract, err := p.Run(context.Background(), uuid.New(), "c.txt", "c.txt")
	if err != nil {
		t.Fatalf("insert failure must not fail the run: %v", err)
	}
	if rules == nil || len(rules) != 0 {
		t.Errorf("expected empty rule list, got %+v", rules)
	}
	if contract != nil {
		t.Error("contract should be nil when the insert failed")
	}
}

func TestParalegalDownloadFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("bucket unreachable")}
	gen := &fakeGenerator{}
	p := NewParalegal(store, gen, &fakeContracts{}, nil)

	_, _, err := p.Run(context.Background(), uuid.New(), "missing.pdf", "missing.pdf")
	if !errors.Is(err, common.ErrStorage) {
		t.Errorf("expected storage error, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Error("LLM must not be called when the download fails")
	}
}

func TestParalegalLLMFailurePropagates(t *testing.T) {
	store := &fakeStore{data: map[string][]byte{"c.txt": []byte("terms")}}
	gen := &fakeGenerator{err: common.NewAppError("LLM_UNAVAILABLE", "LLM call failed", common.ErrLLMUnavailable)}
	contracts := &fakeContracts{}

	p := NewParalegal(store, gen, contracts, nil)

	_, _, err := p.Run(context.Background(), uuid.New(), "c.txt", "c.txt")
	if !errors.Is(err, common.ErrLLMUnavailable) {
		t.Errorf("expected LLM error, got %v", err)
	}
	if len(contracts.created) != 0 {
		t.Error("no contract row should be written when the LLM fails")
	}
}

func TestParalegalGarbageCompletionStillPersists(t *testing.T) {
	store := &fakeStore{data: map[string][]byte{"c.txt": []byte("terms")}}
	gen := &fakeGenerator{completion: "I am sorry, I cannot help with that."}
	contracts := &fakeContracts{}

	p := NewParalegal(store, gen, contracts, nil)

	rules, _, err := p.Run(context.Background(), uuid.New(), "c.txt", "c.txt")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(rules) != 1 || rules[0].Logic != "Parse Error" {
		t.Errorf("expected parse-error placeholder, got %+v", rules)
	}
	if len(contracts.created) != 1 {
		t.Error("placeholder rules are still persisted")
	}
}

func TestEnforcerRun(t *testing.T) {
	contractID := uuid.New()
	incidentID := uuid.New()
	contracts := &fakeContracts{byID: map[uuid.UUID]*entity.Contract{
		contractID: {
			ID:                contractID,
			ExtractedDataJSON: json.RawMessage(`[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`),
		},
	}}
	gen := &fakeGenerator{completion: `{"refund_amount": 750, "email_body": "Subject: SLA Breach Notice"}`}
	claims := &fakeClaims{}

	e := NewEnforcer(gen, contracts, claims, nil)

	claim, err := e.Run(context.Background(), contractID, incidentID, 90)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if claim.RefundAmount != 750 {
		t.Errorf("refund = %v, want 750", claim.RefundAmount)
	}
	if claim.IncidentID != incidentID || claim.ContractID != contractID {
		t.Errorf("claim keys wrong: %+v", claim)
	}
	if claim.Status != "draft" {
		t.Errorf("new claims start as draft, got %q", claim.Status)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one LLM call, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "90 minutes") || !strings.Contains(prompt, "10% credit") {
		t.Errorf("enforcement prompt missing incident context: %q", prompt)
	}
}

func TestEnforcerContractNotFound(t *testing.T) {
	e := NewEnforcer(&fakeGenerator{}, &fakeContracts{}, &fakeClaims{}, nil)

	_, err := e.Run(context.Background(), uuid.New(), uuid.New(), 60)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestEnforcerInsertFailureSurfaces(t *testing.T) {
	contractID := uuid.New()
	contracts := &fakeContracts{byID: map[uuid.UUID]*entity.Contract{
		contractID: {ID: contractID, ExtractedDataJSON: json.RawMessage(`[]`)},
	}}
	gen := &fakeGenerator{completion: `{"refund_amount": 100, "email_body": "x"}`}
	claims := &fakeClaims{createErr: errors.New("deadlock detected")}

	e := NewEnforcer(gen, contracts, claims, nil)

	_, err := e.Run(context.Background(), contractID, uuid.New(), 60)
	if !errors.Is(err, common.ErrPersistence) {
		t.Errorf("expected persistence error, got %v", err)
	}
}

// Two identical invocations draft two claims; there is no dedup key.
func TestEnforcerNoIdempotency(t *testing.T) {
	contractID := uuid.New()
	incidentID := uuid.New()
	contracts := &fakeContracts{byID: map[uuid.UUID]*entity.Contract{
		contractID: {ID: contractID, ExtractedDataJSON: json.RawMessage(`[]`)},
	}}
	gen := &fakeGenerator{completion: `{"refund_amount": 100, "email_body": "x"}`}
	claims := &fakeClaims{}

	e := NewEnforcer(gen, contracts, claims, nil)

	for i := 0; i < 2; i++ {
		if _, err := e.Run(context.Background(), contractID, incidentID, 60); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}
	if len(claims.created) != 2 {
		t.Errorf("expected two claim rows, got %d", len(claims.created))
	}
}

func TestEnforcerGarbageCompletionDraftsPlaceholder(t *testing.T) {
	contractID := uuid.New()
	contracts := &fakeContracts{byID: map[uuid.UUID]*entity.Contract{
		contractID: {ID: contractID, ExtractedDataJSON: json.RawMessage(`[]`)},
	}}
	gen := &fakeGenerator{completion: "no json here"}
	claims := &fakeClaims{}

	e := NewEnforcer(gen, contracts, claims, nil)

	claim, err := e.Run(context.Background(), contractID, uuid.New(), 60)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if claim.RefundAmount != 0 || claim.EmailBody != "Error generating claim." {
		t.Errorf("expected placeholder claim, got %+v", claim)
	}
}
