// Package assistant is the scripted chat concierge: a static keyword table
// that routes the visitor toward one of the site's flows. It performs no
// inference and calls nothing external.
package assistant

import "strings"

// MaxActions caps navigation commands per session.
const MaxActions = 5

// Reply is one assistant answer; Route is non-empty when a navigation action
// was performed.
type Reply struct {
	Response        string `json:"response"`
	Route           string `json:"route,omitempty"`
	ActionPerformed bool   `json:"actionPerformed"`
}

type intent struct {
	keywords []string
	response string
	route    string
}

// intents are matched in order; the first keyword hit wins.
var intents = []intent{
	{
		keywords: []string{"quote", "rate"},
		response: "IDENTIFIED INTENT: QUOTE ANALYSIS. Navigating to our intelligence-driven rate engine now.",
		route:    "/quote",
	},
	{
		keywords: []string{"carrier", "join"},
		response: "IDENTIFIED INTENT: CARRIER SYNC. Redirecting you to our high-yield carrier network portal.",
		route:    "/carrier",
	},
	{
		keywords: []string{"contact", "touch", "help"},
		response: "IDENTIFIED INTENT: COMMUNICATION. Opening our direct support interface.",
		route:    "/contact",
	},
	{
		keywords: []string{"home", "dashboard"},
		response: "IDENTIFIED INTENT: SYSTEM ROOT. Returning to the main command dashboard.",
		route:    "/",
	},
}

const fallbackResponse = "I am processing your command through our neural network. Currently, market rates for that lane are showing high stability. Would you like a precise quote?"

const limitResponse = "SYSTEM ALERT: ACTION LIMIT REACHED. To maintain security, I have reached my command execution limit for this session. I can still provide information, however."

// Respond matches the message against the intent table. actionCount is how
// many navigation actions the session has already performed; at MaxActions the
// assistant answers but stops navigating.
func Respond(message string, actionCount int) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return Reply{Response: fallbackResponse}
	}

	if actionCount >= MaxActions {
		return Reply{Response: limitResponse}
	}

	for _, it := range intents {
		for _, kw := range it.keywords {
			if strings.Contains(msg, kw) {
				return Reply{Response: it.response, Route: it.route, ActionPerformed: true}
			}
		}
	}
	return Reply{Response: fallbackResponse}
}
