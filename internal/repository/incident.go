package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/gen/ent"
	"github.com/alauddinGen-Z/SLA/gen/ent/incident"
	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
)

// CreateIncidentRequest wraps parameters for recording an incident.
type CreateIncidentRequest struct {
	ContractID       uuid.UUID
	DowntimeDuration int
	PenaltyAmount    float64
	Status           string
}

type IncidentRepository interface {
	Create(ctx context.Context, req *CreateIncidentRequest) (*entity.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error)
	// List returns incidents newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*entity.Incident, error)
}

type incidentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIncidentRepository(client *ent.Client, logger *slog.Logger) IncidentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &incidentRepository{
		client: client,
		logger: logger,
	}
}

func (r *incidentRepository) Create(ctx context.Context, req *CreateIncidentRequest) (*entity.Incident, error) {
	row, err := r.client.Incident.Create().
		SetContractID(req.ContractID).
		SetDowntimeDuration(req.DowntimeDuration).
		SetPenaltyAmount(req.PenaltyAmount).
		SetStatus(req.Status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create incident", "contract_id", req.ContractID, "error", err)
		return nil, err
	}
	return toIncident(row), nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	row, err := r.client.Incident.Query().Where(incident.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "Incident not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get incident", "incident_id", id, "error", err)
		return nil, err
	}
	return toIncident(row), nil
}

func (r *incidentRepository) List(ctx context.Context, limit int) ([]*entity.Incident, error) {
	q := r.client.Incident.Query().
		Order(incident.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list incidents", "error", err)
		return nil, err
	}

	result := make([]*entity.Incident, len(rows))
	for i, row := range rows {
		result[i] = toIncident(row)
	}
	return result, nil
}

func toIncident(row *ent.Incident) *entity.Incident {
	return &entity.Incident{
		ID:               row.ID,
		ContractID:       row.ContractID,
		DowntimeDuration: row.DowntimeDuration,
		PenaltyAmount:    row.PenaltyAmount,
		Status:           row.Status,
		CreatedAt:        row.CreatedAt,
	}
}
