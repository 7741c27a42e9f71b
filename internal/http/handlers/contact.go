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

// SubmitContact accepts a general inquiry and relays it by email.
func SubmitContact(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	var msg models.ContactMessage
	if !BindJSONOrError(c, &msg) {
		return
	}

	svc := services.ContactService{
		Mail:      mail,
		ToEmail:   env.ResendToEmail,
		RequestID: reqID,
	}

	refID, err := svc.Submit(c.Request.Context(), msg)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, domain.SubmissionResult{Error: err.Error()})
		case errors.Is(err, mailer.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Email service is not configured yet."})
		default:
			utils.LogEvent(reqID, "CONTACT", "SUBMIT_FAILED", err.Error())
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Transmission failed."})
		}
		return
	}

	c.JSON(http.StatusOK, domain.SubmissionResult{Success: true, RefID: refID})
}
