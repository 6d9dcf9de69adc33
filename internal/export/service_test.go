package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/alauddinGen-Z/SLA/internal/entity"
)

func TestClaimsWorkbook(t *testing.T) {
	claims := []*entity.Claim{
		{
			ID:           uuid.New(),
			IncidentID:   uuid.New(),
			ContractID:   uuid.New(),
			RefundAmount: 1250.50,
			EmailBody:    "Subject: SLA Breach Notice",
			Status:       "draft",
			CreatedAt:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			IncidentID:   uuid.New(),
			ContractID:   uuid.New(),
			RefundAmount: 300,
			EmailBody:    "Subject: Follow-up",
			Status:       "sent",
			CreatedAt:    time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	data, err := NewService(nil).ClaimsWorkbook(claims)
	if err != nil {
		t.Fatalf("ClaimsWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Claims")
	if err != nil {
		t.Fatalf("missing Claims sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "Created" || rows[0][4] != "Refund Amount" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2026-03-14" {
		t.Errorf("row 1 date = %q", rows[1][0])
	}
	if rows[1][5] != "draft" || rows[2][5] != "sent" {
		t.Errorf("status column wrong: %v / %v", rows[1], rows[2])
	}
	if rows[2][1] != claims[1].ID.String() {
		t.Errorf("claim id column wrong: %q", rows[2][1])
	}
}

func TestClaimsWorkbookEmpty(t *testing.T) {
	data, err := NewService(nil).ClaimsWorkbook(nil)
	if err != nil {
		t.Fatalf("ClaimsWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Claims")
	if err != nil {
		t.Fatalf("missing Claims sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	got := truncate("a very long email body that keeps going", 10)
	if len(got) > 12 { // 9 bytes + multi-byte ellipsis
		t.Errorf("truncate did not shorten: %q", got)
	}
}
