package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/gen/ent"
	"github.com/alauddinGen-Z/SLA/internal/common"
)

// openTestClient spins up an isolated in-memory SQLite database with the
// schema applied.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func createContract(t *testing.T, repo ContractRepository, orgID uuid.UUID) uuid.UUID {
	t.Helper()
	c, err := repo.Create(context.Background(), &CreateContractRequest{
		OrgID:             orgID,
		FileURL:           "docs/msa.pdf",
		FileName:          "msa.pdf",
		ExtractedDataJSON: json.RawMessage(`[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`),
	})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return c.ID
}

func TestContractRepository(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, nil)
	ctx := context.Background()

	orgID := uuid.New()
	id := createContract(t, repo, orgID)

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OrgID != orgID || got.FileURL != "docs/msa.pdf" {
		t.Errorf("unexpected contract: %+v", got)
	}
	var rules []map[string]string
	if err := json.Unmarshal(got.ExtractedDataJSON, &rules); err != nil || len(rules) != 1 {
		t.Errorf("rules not round-tripped: %s", got.ExtractedDataJSON)
	}

	createContract(t, repo, orgID)
	createContract(t, repo, uuid.New())

	mine, err := repo.ListByOrg(ctx, orgID)
	if err != nil {
		t.Fatalf("ListByOrg: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("ListByOrg returned %d, want 2", len(mine))
	}

	n, err := repo.CountByOrg(ctx, orgID)
	if err != nil || n != 2 {
		t.Errorf("CountByOrg = %d, %v, want 2", n, err)
	}
}

func TestContractRepositoryNotFound(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, nil)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestIncidentRepository(t *testing.T) {
	client := openTestClient(t)
	contracts := NewContractRepository(client, nil)
	repo := NewIncidentRepository(client, nil)
	ctx := context.Background()

	contractID := createContract(t, contracts, uuid.New())

	inc, err := repo.Create(ctx, &CreateIncidentRequest{
		ContractID:       contractID,
		DowntimeDuration: 90,
		PenaltyAmount:    0,
		Status:           string(constants.IncidentStatusOpen),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inc.Status != "open" || inc.DowntimeDuration != 90 {
		t.Errorf("unexpected incident: %+v", inc)
	}

	got, err := repo.GetByID(ctx, inc.ID)
	if err != nil || got.ContractID != contractID {
		t.Errorf("GetByID = %+v, %v", got, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, &CreateIncidentRequest{
			ContractID:       contractID,
			DowntimeDuration: 10 + i,
			Status:           string(constants.IncidentStatusOpen),
		}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d", len(limited))
	}

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(0) returned %d, want 4", len(all))
	}
}

func TestIncidentRepositoryRejectsBadStatus(t *testing.T) {
	client := openTestClient(t)
	contracts := NewContractRepository(client, nil)
	repo := NewIncidentRepository(client, nil)

	contractID := createContract(t, contracts, uuid.New())

	_, err := repo.Create(context.Background(), &CreateIncidentRequest{
		ContractID:       contractID,
		DowntimeDuration: 10,
		Status:           "exploded",
	})
	if err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestClaimRepository(t *testing.T) {
	client := openTestClient(t)
	contracts := NewContractRepository(client, nil)
	incidents := NewIncidentRepository(client, nil)
	repo := NewClaimRepository(client, nil)
	ctx := context.Background()

	contractID := createContract(t, contracts, uuid.New())
	inc, err := incidents.Create(ctx, &CreateIncidentRequest{
		ContractID:       contractID,
		DowntimeDuration: 60,
		Status:           string(constants.IncidentStatusOpen),
	})
	if err != nil {
		t.Fatalf("create incident: %v", err)
	}

	cl, err := repo.Create(ctx, &CreateClaimRequest{
		IncidentID:   inc.ID,
		ContractID:   contractID,
		RefundAmount: 500,
		EmailBody:    "Subject: SLA Breach Notice",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cl.Status != string(constants.ClaimStatusDraft) {
		t.Errorf("new claim status = %q, want draft", cl.Status)
	}

	approved, err := repo.Approve(ctx, cl.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != string(constants.ClaimStatusSent) {
		t.Errorf("approved status = %q, want sent", approved.Status)
	}

	// one-way transition
	_, err = repo.Approve(ctx, cl.ID)
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "ALREADY_SENT" {
		t.Errorf("second approve should conflict, got %v", err)
	}
}

func TestClaimRepositoryApproveNotFound(t *testing.T) {
	client := openTestClient(t)
	repo := NewClaimRepository(client, nil)

	_, err := repo.Approve(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

// The same incident can carry any number of claims.
func TestClaimRepositoryNoUniqueIncident(t *testing.T) {
	client := openTestClient(t)
	contracts := NewContractRepository(client, nil)
	incidents := NewIncidentRepository(client, nil)
	repo := NewClaimRepository(client, nil)
	ctx := context.Background()

	contractID := createContract(t, contracts, uuid.New())
	inc, err := incidents.Create(ctx, &CreateIncidentRequest{
		ContractID:       contractID,
		DowntimeDuration: 60,
		Status:           string(constants.IncidentStatusOpen),
	})
	if err != nil {
		t.Fatalf("create incident: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := repo.Create(ctx, &CreateClaimRequest{
			IncidentID:   inc.ID,
			ContractID:   contractID,
			RefundAmount: 100,
			EmailBody:    "x",
		}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 claims, got %d", len(all))
	}
}
