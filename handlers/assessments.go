package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/db"
	"go-ayuda/types"
)

// ListAssessments optionally filters by disaster_id and/or household_id.
func ListAssessments(c *gin.Context, store *db.Store) {
	disasterID, ok := optionalID(c, "disaster_id")
	if !ok {
		return
	}
	householdID, ok := optionalID(c, "household_id")
	if !ok {
		return
	}
	assessments, err := store.ListAssessments(disasterID, householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assessments)
}

// SaveAssessment upserts the one assessment per (household, disaster) pair.
// The payout amount is rederived from the classification server-side; any
// amount supplied by the caller is ignored.
func SaveAssessment(c *gin.Context, store *db.Store) {
	var a types.DamageAssessment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if a.HouseholdID == 0 || a.DisasterID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "household_id and disaster_id are required"})
		return
	}
	if err := store.SaveAssessment(&a); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
