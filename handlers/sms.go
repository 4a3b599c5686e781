package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/mlmodel"
	"go-ayuda/sms"
	"go-ayuda/types"
)

// GenerateSMS produces the notification text for one supplied case. The
// amount in the request is snapped to a valid tier before generation so the
// wording never quotes an off-tier figure.
func GenerateSMS(c *gin.Context, generator *sms.Generator) {
	var req struct {
		Amount       int                `json:"ect_amount"`
		HouseholdID  string             `json:"household_id"`
		Barangay     string             `json:"barangay"`
		DamageStatus types.DamageStatus `json:"damage_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HouseholdID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "household_id is required"})
		return
	}
	if !req.DamageStatus.Valid() {
		req.DamageStatus = types.DamageNone
	}

	amount := mlmodel.SnapToTier(float64(req.Amount))
	message := generator.Generate(c.Request.Context(), amount, req.HouseholdID, req.Barangay, req.DamageStatus)

	c.JSON(http.StatusOK, gin.H{
		"sms_message":   message,
		"household_id":  req.HouseholdID,
		"damage_status": req.DamageStatus,
		"ect_amount":    amount,
	})
}
