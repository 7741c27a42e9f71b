package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imabhi25/apex-freight-brokerage/internal/config"
	"github.com/imabhi25/apex-freight-brokerage/internal/http/middleware"
	"github.com/imabhi25/apex-freight-brokerage/internal/locations"
	"github.com/imabhi25/apex-freight-brokerage/internal/mailer"
)

// collaborators wired once at startup via Configure.
var (
	env       config.Env
	mail      mailer.Sender
	zipLookup locations.Lookup
)

// Configure wires the handlers' collaborators. Call before mounting routes.
func Configure(e config.Env, m mailer.Sender, lk locations.Lookup) {
	env = e
	mail = m
	zipLookup = lk
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
