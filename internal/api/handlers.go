package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
	"github.com/pharmxd-server/internal/feedback"
	"github.com/pharmxd-server/internal/service"
)

// sessionResponse is the public view of a session: derived summary data only,
// never the extracted genotype map itself.
type sessionResponse struct {
	ID             string           `json:"id"`
	DetectedFormat domain.FormatTag `json:"detected_format"`
	TotalSNPs      int              `json:"total_snps"`
	PGxCount       int              `json:"pgx_count"`
	GenesCalled    []string         `json:"genes_called"`
}

func newSessionResponse(session *service.Session) sessionResponse {
	return sessionResponse{
		ID:             session.ID,
		DetectedFormat: session.Format,
		TotalSNPs:      session.Extraction.TotalObserved,
		PGxCount:       session.Extraction.PGxCount,
		GenesCalled:    session.Profile.Genes(),
	}
}

func (s *Server) abortWithError(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, domain.NewAPIError(code, message, details, c.GetString("correlation_id")))
}

// handleCreateSession accepts a raw genotype export as the request body,
// runs the extraction pipeline and registers a session for the result.
// The raw body is discarded as soon as extraction completes.
func (s *Server) handleCreateSession(c *gin.Context) {
	maxBytes := int64(s.configManager.GetServerConfig().MaxUploadMB) << 20
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrCodeUnreadableFile,
			"Failed to read upload", err.Error())
		return
	}
	if int64(len(body)) > maxBytes {
		s.abortWithError(c, http.StatusRequestEntityTooLarge, domain.ErrCodeInvalidInput,
			"Upload exceeds size limit", "")
		return
	}
	if len(body) == 0 {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput,
			"Empty upload", "")
		return
	}

	s.createSessionFromText(c, string(body))
}

// handleCreateDemoSession builds a session from the built-in synthetic sample.
func (s *Server) handleCreateDemoSession(c *gin.Context) {
	s.createSessionFromText(c, catalog.DemoSample())
}

func (s *Server) createSessionFromText(c *gin.Context, rawText string) {
	extraction := s.extractor.Extract(rawText)
	profile := s.caller.BuildProfile(extraction.PGxGenotypes)
	session := s.sessions.Create(extraction, profile)

	s.logger.WithFields(logrus.Fields{
		"session_id":     session.ID,
		"correlation_id": c.GetString("correlation_id"),
		"format":         extraction.DetectedFormat.String(),
		"pgx_count":      extraction.PGxCount,
	}).Info("Session created from upload")

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

// handleGetSession returns the session summary.
func (s *Server) handleGetSession(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(session))
}

// handleDeleteSession discards a session and its genetic data immediately.
func (s *Server) handleDeleteSession(c *gin.Context) {
	s.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// handleGetProfile returns the per-gene diplotype and phenotype calls.
func (s *Server) handleGetProfile(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"profile":    session.Profile,
		"genes":      session.Profile.Genes(),
	})
}

// handleSearchDrugs searches the guideline catalog by name or brand name.
func (s *Server) handleSearchDrugs(c *gin.Context) {
	results := s.matcher.SearchDrugs(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"query":   c.Query("q"),
		"count":   len(results),
		"results": results,
	})
}

// handleGetRecommendation matches one drug against the session's profile.
func (s *Server) handleGetRecommendation(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}

	result, err := s.matcher.GetRecommendation(c.Param("drug"), session.Profile)
	if err != nil {
		if errors.Is(err, domain.ErrDrugNotFound) {
			s.abortWithError(c, http.StatusNotFound, domain.ErrCodeDrugNotFound,
				"Drug not found in guideline catalog", c.Param("drug"))
			return
		}
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrCodeInternal,
			"Failed to resolve recommendation", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) lookupSession(c *gin.Context) (*service.Session, bool) {
	session, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, http.StatusNotFound, domain.ErrCodeSessionNotFound,
			"Session not found or expired", c.Param("id"))
		return nil, false
	}
	return session, true
}

// saveFeedbackRequest is the body for POST /api/v1/feedback.
type saveFeedbackRequest struct {
	DrugID                  string                `json:"drug_id" binding:"required"`
	Gene                    string                `json:"gene" binding:"required"`
	PhenotypeKey            string                `json:"phenotype_key" binding:"required"`
	SuggestedClassification domain.Classification `json:"suggested_classification" binding:"required"`
	UserClassification      domain.Classification `json:"user_classification" binding:"required"`
	Notes                   string                `json:"notes"`
}

// handleSaveFeedback records a clinician's agreement or correction for a
// recommendation. Only catalog-level identifiers are stored.
func (s *Server) handleSaveFeedback(c *gin.Context) {
	var req saveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrCodeValidation,
			"Invalid feedback payload", err.Error())
		return
	}
	if !req.SuggestedClassification.IsValid() || !req.UserClassification.IsValid() {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrCodeValidation,
			"Invalid classification value", "")
		return
	}

	fb := &feedback.Feedback{
		DrugID:                  req.DrugID,
		Gene:                    req.Gene,
		PhenotypeKey:            req.PhenotypeKey,
		SuggestedClassification: req.SuggestedClassification,
		UserClassification:      req.UserClassification,
		UserAgreed:              req.SuggestedClassification == req.UserClassification,
		Notes:                   req.Notes,
	}
	if err := s.feedbackStore.Save(c.Request.Context(), fb); err != nil {
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrCodeInternal,
			"Failed to save feedback", err.Error())
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// handleListFeedback returns stored feedback with pagination.
func (s *Server) handleListFeedback(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, err := s.feedbackStore.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrCodeInternal,
			"Failed to list feedback", err.Error())
		return
	}
	total, err := s.feedbackStore.Count(c.Request.Context())
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrCodeInternal,
			"Failed to count feedback", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"limit":   limit,
		"offset":  offset,
		"entries": entries,
	})
}
