package server

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/internal/middleware"
)

// UploadContract accepts a multipart contract document, stores it, and runs
// the extraction pipeline inline.
func (s *Server) UploadContract(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(fileHeader.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .pdf and .txt files are accepted"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, err)
		return
	}

	objectName := uuid.New().String() + "." + ext
	contentType := fileHeader.Header.Get("Content-Type")
	if err := s.store.Upload(c.Request.Context(), objectName, data, contentType); err != nil {
		s.fail(c, err)
		return
	}

	rules, contract, err := s.paralegal.Run(c.Request.Context(), ident.UserID, objectName, fileHeader.Filename)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := gin.H{
		"file_url": objectName,
		"rules":    rules,
	}
	if contract != nil {
		resp["contract_id"] = contract.ID
	}
	c.JSON(http.StatusOK, resp)
}

// ListContracts returns the caller's contracts, newest first.
func (s *Server) ListContracts(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	contracts, err := s.contracts.ListByOrg(c.Request.Context(), ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}
