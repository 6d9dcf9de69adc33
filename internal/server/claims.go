package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/middleware"
)

// ListClaims returns claims newest first. The default limit of 5 matches
// the review queue on the dashboard.
func (s *Server) ListClaims(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	claims, err := s.claims.List(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// ApproveClaim marks a drafted claim as sent.
func (s *Server) ApproveClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid claim id"})
		return
	}

	claim, err := s.claims.Approve(c.Request.Context(), id)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "NOT_FOUND":
				c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
				return
			case "ALREADY_SENT":
				c.JSON(http.StatusConflict, gin.H{"error": appErr.Message})
				return
			}
		}
		s.fail(c, err)
		return
	}

	s.logger.Info("claim.approved",
		"claim_id", claim.ID,
		"request_id", middleware.GetRequestID(c),
	)
	c.JSON(http.StatusOK, claim)
}

// ExportClaims streams all claims as an XLSX workbook.
func (s *Server) ExportClaims(c *gin.Context) {
	claims, err := s.claims.List(c.Request.Context(), 0)
	if err != nil {
		s.fail(c, err)
		return
	}

	data, err := s.exporter.ClaimsWorkbook(claims)
	if err != nil {
		s.fail(c, err)
		return
	}

	filename := fmt.Sprintf("claims_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
