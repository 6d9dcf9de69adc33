package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/internal/entity"
	"github.com/alauddinGen-Z/SLA/internal/middleware"
)

type dashboardResponse struct {
	TotalRecovered  float64            `json:"total_recovered"`
	ActiveContracts int                `json:"active_contracts"`
	PendingClaims   float64            `json:"pending_claims"`
	RecentBreaches  []*entity.Incident `json:"recent_breaches"`
}

// Dashboard aggregates incident penalties and recent breaches for the
// caller's overview screen.
func (s *Server) Dashboard(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	ctx := c.Request.Context()

	incidents, err := s.incidents.List(ctx, 0)
	if err != nil {
		s.fail(c, err)
		return
	}

	activeContracts, err := s.contracts.CountByOrg(ctx, ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := dashboardResponse{
		ActiveContracts: activeContracts,
	}
	for _, inc := range incidents {
		switch inc.Status {
		case string(constants.IncidentStatusRecovered):
			resp.TotalRecovered += inc.PenaltyAmount
		case string(constants.IncidentStatusPending), string(constants.IncidentStatusDetected):
			resp.PendingClaims += inc.PenaltyAmount
		}
	}
	// incidents are already newest first
	if len(incidents) > 5 {
		incidents = incidents[:5]
	}
	resp.RecentBreaches = incidents

	c.JSON(http.StatusOK, resp)
}
