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

// SubmitCarrier accepts a carrier application and relays it by email,
// both to the back office and as a receipt to the applicant.
func SubmitCarrier(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	var app models.CarrierApplication
	if !BindJSONOrError(c, &app) {
		return
	}

	svc := services.CarrierService{
		Mail:       mail,
		AdminEmail: env.ResendToEmail,
		RequestID:  reqID,
	}

	refID, err := svc.Submit(c.Request.Context(), app)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, domain.SubmissionResult{Error: err.Error()})
		case errors.Is(err, mailer.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Email service is not configured yet."})
		default:
			utils.LogEvent(reqID, "CARRIER", "SUBMIT_FAILED", err.Error())
			c.JSON(http.StatusInternalServerError, domain.SubmissionResult{Error: "Transmission failed."})
		}
		return
	}

	c.JSON(http.StatusOK, domain.SubmissionResult{Success: true, RefID: refID})
}
