package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/gen/ent"
	"github.com/alauddinGen-Z/SLA/gen/ent/claim"
	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
)

// CreateClaimRequest wraps parameters for drafting a claim.
type CreateClaimRequest struct {
	IncidentID   uuid.UUID
	ContractID   uuid.UUID
	RefundAmount float64
	EmailBody    string
}

type ClaimRepository interface {
	Create(ctx context.Context, req *CreateClaimRequest) (*entity.Claim, error)
	// List returns claims newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*entity.Claim, error)
	Approve(ctx context.Context, id uuid.UUID) (*entity.Claim, error)
}

type claimRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewClaimRepository(client *ent.Client, logger *slog.Logger) ClaimRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &claimRepository{
		client: client,
		logger: logger,
	}
}

func (r *claimRepository) Create(ctx context.Context, req *CreateClaimRequest) (*entity.Claim, error) {
	row, err := r.client.Claim.Create().
		SetIncidentID(req.IncidentID).
		SetContractID(req.ContractID).
		SetRefundAmount(req.RefundAmount).
		SetEmailBody(req.EmailBody).
		SetStatus(string(constants.ClaimStatusDraft)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create claim", "incident_id", req.IncidentID, "error", err)
		return nil, err
	}
	return toClaim(row), nil
}

func (r *claimRepository) List(ctx context.Context, limit int) ([]*entity.Claim, error) {
	q := r.client.Claim.Query().
		Order(claim.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list claims", "error", err)
		return nil, err
	}

	result := make([]*entity.Claim, len(rows))
	for i, row := range rows {
		result[i] = toClaim(row)
	}
	return result, nil
}

// Approve transitions a draft claim to sent. Approving an already-sent
// claim is an error; the transition is one-way.
func (r *claimRepository) Approve(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	row, err := r.client.Claim.Query().Where(claim.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "Claim not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get claim", "claim_id", id, "error", err)
		return nil, err
	}
	if row.Status == string(constants.ClaimStatusSent) {
		return nil, common.NewAppError("ALREADY_SENT", "Claim already sent", common.ErrInvalidInput)
	}

	updated, err := r.client.Claim.UpdateOneID(id).
		SetStatus(string(constants.ClaimStatusSent)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to approve claim", "claim_id", id, "error", err)
		return nil, err
	}
	return toClaim(updated), nil
}

func toClaim(row *ent.Claim) *entity.Claim {
	return &entity.Claim{
		ID:           row.ID,
		IncidentID:   row.IncidentID,
		ContractID:   row.ContractID,
		RefundAmount: row.RefundAmount,
		EmailBody:    row.EmailBody,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}
}
