package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-ayuda/db"
	"go-ayuda/types"
)

// requireDisaster resolves the disaster_id query parameter, writing the 400
// or 404 response itself when the parameter is missing or unknown.
func requireDisaster(c *gin.Context, store *db.Store) (types.DisasterEvent, bool) {
	raw := c.Query("disaster_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "disaster_id parameter is required"})
		return types.DisasterEvent{}, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "disaster_id must be an integer"})
		return types.DisasterEvent{}, false
	}
	disaster, err := store.GetDisaster(uint(id))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return types.DisasterEvent{}, false
	}
	return disaster, true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return uint(id), true
}

// optionalID parses an optional numeric query parameter, 0 when absent.
func optionalID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return uint(id), true
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	if errors.Is(err, db.ErrBadStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
