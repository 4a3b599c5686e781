package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/db"
	"go-ayuda/types"
)

func ListHouseholds(c *gin.Context, store *db.Store) {
	households, err := store.ListHouseholds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, households)
}

func CreateHousehold(c *gin.Context, store *db.Store) {
	var h types.Household
	if err := c.ShouldBindJSON(&h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.HouseHeight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "house_height must be positive"})
		return
	}
	if err := store.CreateHousehold(&h); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h)
}

func GetHousehold(c *gin.Context, store *db.Store) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h, err := store.GetHousehold(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func UpdateHousehold(c *gin.Context, store *db.Store) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h, err := store.GetHousehold(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if err := c.ShouldBindJSON(&h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ID = id
	if h.HouseHeight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "house_height must be positive"})
		return
	}
	if err := store.UpdateHousehold(&h); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func DeleteHousehold(c *gin.Context, store *db.Store) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DeleteHousehold(id); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// HouseholdGeoJSON bundles every household plus its assessment for one
// disaster into a FeatureCollection the frontend map draws directly, with a
// marker color per damage status.
func HouseholdGeoJSON(c *gin.Context, store *db.Store) {
	disaster, ok := requireDisaster(c, store)
	if !ok {
		return
	}

	households, err := store.ListHouseholds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	features := make([]gin.H, 0, len(households))
	for _, h := range households {
		status := types.DamageNone
		amount := 0
		if a, err := store.GetAssessmentFor(h.ID, disaster.ID); err == nil {
			status = a.DamageStatus
			amount = a.RecommendedAmount
		} else if !errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		color, markerColor := statusColors(status)
		features = append(features, gin.H{
			"type": "Feature",
			"geometry": gin.H{
				"type":        "Point",
				"coordinates": []float64{h.Longitude, h.Latitude},
			},
			"properties": gin.H{
				"id":             h.ID,
				"name":           h.Name,
				"address":        h.Address,
				"barangay":       h.Barangay,
				"contact_number": h.ContactNumber,
				"damage_status":  status,
				"ect_amount":     amount,
				"color":          color,
				"marker_color":   markerColor,
				"popup_content": fmt.Sprintf("<strong>%s</strong><br>%s<br><strong>Status:</strong> %s<br><strong>ECT Amount:</strong> PHP%d",
					h.Name, h.Address, status, amount),
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"type":     "FeatureCollection",
		"features": features,
	})
}

func statusColors(status types.DamageStatus) (hex, marker string) {
	switch status {
	case types.DamageTotal:
		return "#dc3545", "red"
	case types.DamagePartial:
		return "#fd7e14", "orange"
	default:
		return "#28a745", "green"
	}
}
