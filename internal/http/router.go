package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/imabhi25/apex-freight-brokerage/internal/config"
	h "github.com/imabhi25/apex-freight-brokerage/internal/http/handlers"
	"github.com/imabhi25/apex-freight-brokerage/internal/http/middleware"
	"github.com/imabhi25/apex-freight-brokerage/internal/locations"
	"github.com/imabhi25/apex-freight-brokerage/internal/mailer"
)

func NewRouter(env intconfig.Env, mail mailer.Sender, lookup locations.Lookup) *gin.Engine {
	h.Configure(env, mail, lookup)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Lead intake
		api.POST("/quote", h.SubmitQuote)
		api.POST("/quote/summary", h.GetQuoteSummaryPDF)
		api.POST("/carrier", h.SubmitCarrier)
		api.POST("/contact", h.SubmitContact)

		// Location directory & pair validation
		loc := api.Group("/locations")
		loc.GET("/cities", h.SearchCities)
		loc.GET("/zips", h.SearchZips)
		loc.GET("/validate", h.ValidateLocationPair)

		// Site assistant
		api.POST("/assistant", h.AssistantReply)
	}

	h.SetRouter(r)

	return r
}
