package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/llm"
	"github.com/alauddinGen-Z/SLA/internal/repository"
)

// Enforcer computes the penalty for a downtime incident against a
// contract's extracted SLA rules and drafts the claim email.
type Enforcer struct {
	generator llm.TextGenerator
	contracts repository.ContractRepository
	claims    repository.ClaimRepository
	logger    *slog.Logger
}

func NewEnforcer(generator llm.TextGenerator, contracts repository.ContractRepository, claims repository.ClaimRepository, logger *slog.Logger) *Enforcer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enforcer{
		generator: generator,
		contracts: contracts,
		claims:    claims,
		logger:    logger,
	}
}

// Run drafts a claim for one incident. Every invocation produces a new
// claim row; retries are the caller's responsibility.
func (e *Enforcer) Run(ctx context.Context, contractID, incidentID uuid.UUID, downtimeMinutes int) (*entity.Claim, error) {
	start := time.Now()
	e.logger.Info("enforcer.start", "contract_id", contractID, "incident_id", incidentID, "downtime_minutes", downtimeMinutes)

	contract, err := e.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	raw, err := e.generator.Generate(ctx, llm.BuildEnforcementPrompt(downtimeMinutes, contract.ExtractedDataJSON))
	if err != nil {
		return nil, err
	}

	result := llm.SanitizeClaim(raw, e.logger)

	claim, err := e.claims.Create(ctx, &repository.CreateClaimRequest{
		IncidentID:   incidentID,
		ContractID:   contractID,
		RefundAmount: result.RefundAmount,
		EmailBody:    result.EmailBody,
	})
	if err != nil {
		e.logger.Error("enforcer.persist_failed", "incident_id", incidentID, "error", err)
		return nil, common.NewAppError("PERSISTENCE_ERROR", "failed to save claim", common.ErrPersistence)
	}

	e.logger.Info("enforcer.done",
		"claim_id", claim.ID,
		"refund_amount", claim.RefundAmount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return claim, nil
}
