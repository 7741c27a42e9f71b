package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/http/middleware"
	"github.com/imabhi25/apex-freight-brokerage/internal/mailer"
	"github.com/imabhi25/apex-freight-brokerage/internal/services"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
)

// SubmitQuote accepts a quote request draft and relays it by email.
// The body is opaque to callers: they only ever see success+refId or a
// generic failure message.
func SubmitQuote(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	var draft models.QuoteDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	svc := services.QuoteService{
		Mail:       mail,
		AdminEmail: env.ResendToEmail,
		RequestID:  reqID,
	}

	refID, err := svc.Submit(c.Request.Context(), draft)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, domain.SubmissionResult{Error: err.Error()})
		case errors.Is(err, mailer.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Email service is not configured yet."})
		default:
			utils.LogEvent(reqID, "QUOTE", "SUBMIT_FAILED", err.Error())
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Transmission failed."})
		}
		return
	}

	c.JSON(http.StatusOK, domain.SubmissionResult{Success: true, RefID: refID})
}
