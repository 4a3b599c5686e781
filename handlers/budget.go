package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/budget"
	"go-ayuda/db"
)

// BudgetSummary aggregates one disaster's assessments into the rollup record.
func BudgetSummary(c *gin.Context, store *db.Store) {
	disaster, ok := requireDisaster(c, store)
	if !ok {
		return
	}
	entries, err := store.EntriesForDisaster(disaster.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, budget.Summarize(disaster.Name, entries))
}
