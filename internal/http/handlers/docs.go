package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/http/middleware"
	"github.com/imabhi25/apex-freight-brokerage/internal/services"
)

type quoteSummaryRequest struct {
	models.QuoteDraft
	RefID string `json:"refId"`
}

// GetQuoteSummaryPDF renders a submitted quote request as a PDF summary.
func GetQuoteSummaryPDF(c *gin.Context) {
	var req quoteSummaryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateQuoteSummary(req.QuoteDraft, req.RefID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
