package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imabhi25/apex-freight-brokerage/internal/assistant"
)

type assistantRequest struct {
	Message     string `json:"message"`
	ActionCount int    `json:"actionCount"`
}

// AssistantReply answers a site-assistant message with a canned response
// and, when an intent matches, a route for the client to navigate to.
func AssistantReply(c *gin.Context) {
	var req assistantRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	c.JSON(http.StatusOK, assistant.Respond(req.Message, req.ActionCount))
}
