package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imabhi25/apex-freight-brokerage/internal/http/middleware"
	"github.com/imabhi25/apex-freight-brokerage/internal/locations"
	"github.com/imabhi25/apex-freight-brokerage/internal/validate"
)

// SearchCities returns directory records whose city matches the q prefix.
func SearchCities(c *gin.Context) {
	q := c.Query("q")
	results := locations.SearchByCityPrefix(q)
	if results == nil {
		results = []locations.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// SearchZips returns directory records whose zip matches the q prefix.
func SearchZips(c *gin.Context) {
	q := c.Query("q")
	results := locations.SearchByZipPrefix(q)
	if results == nil {
		results = []locations.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ValidateLocationPair cross-checks a city label against a 5-digit zip.
func ValidateLocationPair(c *gin.Context) {
	zip := c.Query("zip")
	city := c.Query("city")
	if city == "" {
		RespondError(c, http.StatusBadRequest, "missing city", nil)
		return
	}
	if !validate.Zip(zip) {
		c.JSON(http.StatusOK, gin.H{"status": locations.PairInvalidZip})
		return
	}

	v := locations.Validator{
		Lookup:    zipLookup,
		RequestID: middleware.GetRequestID(c),
	}
	status := v.ValidatePair(c.Request.Context(), zip, city)
	c.JSON(http.StatusOK, gin.H{"status": status})
}
