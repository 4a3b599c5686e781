package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/db"
	"go-ayuda/mlmodel"
	"go-ayuda/training"
)

// ValidateModel scores the ML model against the rule-based amounts over every
// stored assessment and returns the accuracy report. Diagnostic only.
func ValidateModel(c *gin.Context, store *db.Store, model *mlmodel.Handle) {
	entries, err := store.AllEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	report := training.Validate(entries, model, nil)
	c.JSON(http.StatusOK, gin.H{
		"model_available": model.Available(),
		"report":          report,
	})
}
