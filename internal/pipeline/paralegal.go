package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/extract"
	"github.com/alauddinGen-Z/SLA/internal/llm"
	"github.com/alauddinGen-Z/SLA/internal/repository"
	"github.com/alauddinGen-Z/SLA/internal/storage"
)

// Paralegal turns an uploaded contract document into a structured SLA rule
// list: download, text extraction, LLM extraction, sanitization, and a
// best-effort persist of the contract record.
type Paralegal struct {
	store     storage.BlobStore
	generator llm.TextGenerator
	contracts repository.ContractRepository
	logger    *slog.Logger
}

func NewParalegal(store storage.BlobStore, generator llm.TextGenerator, contracts repository.ContractRepository, logger *slog.Logger) *Paralegal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Paralegal{
		store:     store,
		generator: generator,
		contracts: contracts,
		logger:    logger,
	}
}

// Run executes the extraction pipeline for one document. A failed contract
// insert does not fail the run: the extracted rules are still returned so
// the caller sees the analysis even when persistence is down. The returned
// contract is nil in that case.
func (p *Paralegal) Run(ctx context.Context, orgID uuid.UUID, filePath, fileName string) ([]llm.Rule, *entity.Contract, error) {
	start := time.Now()
	p.logger.Info("paralegal.start", "org_id", orgID, "file_path", filePath)

	data, err := p.store.Download(ctx, filePath)
	if err != nil {
		p.logger.Error("paralegal.download_failed", "file_path", filePath, "error", err)
		return nil, nil, common.NewAppError("STORAGE_ERROR", "failed to download contract document", common.ErrStorage)
	}

	text, err := extract.Text(data, fileName)
	if err != nil {
		return nil, nil, err
	}

	raw, err := p.generator.Generate(ctx, llm.BuildExtractionPrompt(text))
	if err != nil {
		return nil, nil, err
	}

	rules := llm.SanitizeRules(raw, p.logger)

	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return nil, nil, err
	}

	contract, err := p.contracts.Create(ctx, &repository.CreateContractRequest{
		OrgID:             orgID,
		FileURL:           filePath,
		FileName:          fileName,
		ExtractedDataJSON: rulesJSON,
	})
	if err != nil {
		// The analysis is still useful without the record.
		p.logger.Error("paralegal.persist_failed", "org_id", orgID, "file_path", filePath, "error", err)
		contract = nil
	}

	p.logger.Info("paralegal.done",
		"org_id", orgID,
		"rule_count", len(rules),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rules, contract, nil
}
