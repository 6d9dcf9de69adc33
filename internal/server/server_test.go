package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/export"
	"github.com/alauddinGen-Z/SLA/internal/llm"
	"github.com/alauddinGen-Z/SLA/internal/pipeline"
	"github.com/alauddinGen-Z/SLA/internal/repository"
)

const testSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	data map[string][]byte
}

func (s *fakeStore) Download(_ context.Context, path string) ([]byte, error) {
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
}

func (g *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
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
	c := &entity.Contract{
		ID:                uuid.New(),
		OrgID:             req.OrgID,
		FileURL:           req.FileURL,
		FileName:          req.FileName,
		ExtractedDataJSON: req.ExtractedDataJSON,
		CreatedAt:         time.Now(),
	}
	if r.byID == nil {
		r.byID = map[uuid.UUID]*entity.Contract{}
	}
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeContracts) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, common.NewAppError("NOT_FOUND", "Contract not found", common.ErrNotFound)
}

func (r *fakeContracts) ListByOrg(_ context.Context, orgID uuid.UUID) ([]*entity.Contract, error) {
	out := []*entity.Contract{}
	for _, c := range r.byID {
		if c.OrgID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContracts) CountByOrg(_ context.Context, orgID uuid.UUID) (int, error) {
	n := 0
	for _, c := range r.byID {
		if c.OrgID == orgID {
			n++
		}
	}
	return n, nil
}

type fakeIncidents struct {
	rows []*entity.Incident
}

func (r *fakeIncidents) Create(_ context.Context, req *repository.CreateIncidentRequest) (*entity.Incident, error) {
	inc := &entity.Incident{
		ID:               uuid.New(),
		ContractID:       req.ContractID,
		DowntimeDuration: req.DowntimeDuration,
		PenaltyAmount:    req.PenaltyAmount,
		Status:           req.Status,
		CreatedAt:        time.Now(),
	}
	// prepend: newest first
	r.rows = append([]*entity.Incident{inc}, r.rows...)
	return inc, nil
}

func (r *fakeIncidents) GetByID(_ context.Context, id uuid.UUID) (*entity.Incident, error) {
	for _, inc := range r.rows {
		if inc.ID == id {
			return inc, nil
		}
	}
	return nil, common.NewAppError("NOT_FOUND", "Incident not found", common.ErrNotFound)
}

func (r *fakeIncidents) List(_ context.Context, limit int) ([]*entity.Incident, error) {
	rows := r.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return append([]*entity.Incident{}, rows...), nil
}

type fakeClaims struct {
	rows      []*entity.Claim
	createErr error
}

func (r *fakeClaims) Create(_ context.Context, req *repository.CreateClaimRequest) (*entity.Claim, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	cl := &entity.Claim{
		ID:           uuid.New(),
		IncidentID:   req.IncidentID,
		ContractID:   req.ContractID,
		RefundAmount: req.RefundAmount,
		EmailBody:    req.EmailBody,
		Status:       "draft",
		CreatedAt:    time.Now(),
	}
	r.rows = append([]*entity.Claim{cl}, r.rows...)
	return cl, nil
}

func (r *fakeClaims) List(_ context.Context, limit int) ([]*entity.Claim, error) {
	rows := r.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return append([]*entity.Claim{}, rows...), nil
}

func (r *fakeClaims) Approve(_ context.Context, id uuid.UUID) (*entity.Claim, error) {
	for _, cl := range r.rows {
		if cl.ID == id {
			if cl.Status == "sent" {
				return nil, common.NewAppError("ALREADY_SENT", "Claim already sent", common.ErrInvalidInput)
			}
			cl.Status = "sent"
			return cl, nil
		}
	}
	return nil, common.NewAppError("NOT_FOUND", "Claim not found", common.ErrNotFound)
}

type testEnv struct {
	srv       *Server
	router    *gin.Engine
	store     *fakeStore
	contracts *fakeContracts
	incidents *fakeIncidents
	claims    *fakeClaims
	userID    uuid.UUID
}

func newTestEnv(gen llm.TextGenerator) *testEnv {
	env := &testEnv{
		store:     &fakeStore{data: map[string][]byte{}},
		contracts: &fakeContracts{byID: map[uuid.UUID]*entity.Contract{}},
		incidents: &fakeIncidents{},
		claims:    &fakeClaims{},
		userID:    uuid.New(),
	}
	logger := slog.Default()
	cfg := &common.Config{}
	cfg.Auth.JWTSecret = testSecret

	paralegal := pipeline.NewParalegal(env.store, gen, env.contracts, logger)
	enforcer := pipeline.NewEnforcer(gen, env.contracts, env.claims, logger)
	exporter := export.NewService(logger)

	env.srv = New(cfg, logger, paralegal, enforcer, env.store, env.contracts, env.incidents, env.claims, exporter, nil)
	env.router = env.srv.Router()
	return env
}

func newContractReq(orgID uuid.UUID) *repository.CreateContractRequest {
	return &repository.CreateContractRequest{
		OrgID:             orgID,
		FileURL:           "docs/contract.txt",
		FileName:          "contract.txt",
		ExtractedDataJSON: json.RawMessage(`[{"logic":"uptime < 99.9%","penalty":"10% credit"}]`),
	}
}

func (e *testEnv) token() string {
	claims := jwt.MapClaims{
		"sub":   e.userID.String(),
		"email": "ops@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		panic(err)
	}
	return s
}
