package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/gen/ent"
	"github.com/alauddinGen-Z/SLA/gen/ent/contract"
	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
)

// CreateContractRequest wraps parameters for creating a contract.
type CreateContractRequest struct {
	OrgID             uuid.UUID
	FileURL           string
	FileName          string
	ExtractedDataJSON json.RawMessage
}

type ContractRepository interface {
	Create(ctx context.Context, req *CreateContractRequest) (*entity.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Contract, error)
	CountByOrg(ctx context.Context, orgID uuid.UUID) (int, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) Create(ctx context.Context, req *CreateContractRequest) (*entity.Contract, error) {
	builder := r.client.Contract.Create().
		SetOrgID(req.OrgID).
		SetFileURL(req.FileURL).
		SetExtractedDataJSON(req.ExtractedDataJSON)
	if req.FileName != "" {
		builder = builder.SetFileName(req.FileName)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract", "org_id", req.OrgID, "error", err)
		return nil, err
	}
	return toContract(row), nil
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Query().Where(contract.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "Contract not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get contract", "contract_id", id, "error", err)
		return nil, err
	}
	return toContract(row), nil
}

func (r *contractRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Contract, error) {
	rows, err := r.client.Contract.Query().
		Where(contract.OrgID(orgID)).
		Order(contract.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "org_id", orgID, "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		result[i] = toContract(row)
	}
	return result, nil
}

func (r *contractRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int, error) {
	n, err := r.client.Contract.Query().Where(contract.OrgID(orgID)).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count contracts", "org_id", orgID, "error", err)
		return 0, err
	}
	return n, nil
}

func toContract(row *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:                row.ID,
		OrgID:             row.OrgID,
		FileURL:           row.FileURL,
		FileName:          row.FileName,
		ExtractedDataJSON: row.ExtractedDataJSON,
		CreatedAt:         row.CreatedAt,
	}
}
