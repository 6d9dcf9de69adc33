package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/middleware"
)

type paralegalRequest struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}

type enforcerRequest struct {
	IncidentID      uuid.UUID `json:"incident_id"`
	ContractID      uuid.UUID `json:"contract_id"`
	DowntimeMinutes int       `json:"downtime_minutes"`
}

// RunParalegal extracts SLA rules from an already-uploaded contract
// document. Any failure, auth included, yields 500 with the error message.
func (s *Server) RunParalegal(c *gin.Context) {
	ident, err := middleware.ResolveIdentity(c.GetHeader("Authorization"), s.cfg.Auth.JWTSecret)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req paralegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	rules, _, err := s.paralegal.Run(c.Request.Context(), ident.UserID, req.FilePath, req.FileName)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// RunEnforcer drafts a penalty claim for a downtime incident.
func (s *Server) RunEnforcer(c *gin.Context) {
	if _, err := middleware.ResolveIdentity(c.GetHeader("Authorization"), s.cfg.Auth.JWTSecret); err != nil {
		s.fail(c, err)
		return
	}

	var req enforcerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	claim, err := s.enforcer.Run(c.Request.Context(), req.ContractID, req.IncidentID, req.DowntimeMinutes)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, claim)
}
