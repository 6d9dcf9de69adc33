package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/internal/repository"
)

type simulateRequest struct {
	ContractID      uuid.UUID `json:"contract_id"`
	DowntimeMinutes int       `json:"downtime_minutes"`
}

// SimulateIncident records a synthetic downtime incident for a contract and
// immediately runs the enforcement pipeline against it.
func (s *Server) SimulateIncident(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.DowntimeMinutes <= 0 {
		req.DowntimeMinutes = 60
	}

	incident, err := s.incidents.Create(c.Request.Context(), &repository.CreateIncidentRequest{
		ContractID:       req.ContractID,
		DowntimeDuration: req.DowntimeMinutes,
		PenaltyAmount:    0,
		Status:           string(constants.IncidentStatusOpen),
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	claim, err := s.enforcer.Run(c.Request.Context(), req.ContractID, incident.ID, req.DowntimeMinutes)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incident": incident,
		"claim":    claim,
	})
}

// ListIncidents returns incidents, newest first.
func (s *Server) ListIncidents(c *gin.Context) {
	incidents, err := s.incidents.List(c.Request.Context(), 0)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incidents": incidents})
}
