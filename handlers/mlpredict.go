package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/allocation"
	"go-ayuda/db"
	"go-ayuda/sms"
)

// MLPredict runs the advisory allocation path for every assessed household in
// a disaster: ML prediction when the model is up, rule-based amount when not,
// plus the notification text for each. Read-only; stored amounts are never
// touched here.
func MLPredict(c *gin.Context, store *db.Store, resolver *allocation.Resolver, generator *sms.Generator) {
	disaster, ok := requireDisaster(c, store)
	if !ok {
		return
	}

	entries, err := store.EntriesForDisaster(disaster.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		amount, source := resolver.Resolve(e.Household, e.Assessment)
		message := generator.Generate(c.Request.Context(), amount, e.Household.PublicID(), e.Household.Barangay, e.Assessment.DamageStatus)

		results = append(results, gin.H{
			"household_id":   e.Household.PublicID(),
			"household_name": e.Household.Name,
			"barangay":       e.Household.Barangay,
			"lat":            e.Household.Latitude,
			"lon":            e.Household.Longitude,
			"ect_amount":     amount,
			"source":         source,
			"damage_status":  e.Assessment.DamageStatus,
			"flood_depth":    e.Household.FloodDepth,
			"is_4ps":         e.Household.Is4Ps,
			"sms":            message,
		})
	}

	c.JSON(http.StatusOK, results)
}
