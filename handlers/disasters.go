package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ayuda/db"
	"go-ayuda/types"
)

func ListDisasters(c *gin.Context, store *db.Store) {
	disasters, err := store.ListDisasters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, disasters)
}

func CreateDisaster(c *gin.Context, store *db.Store) {
	var d types.DisasterEvent
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := store.CreateDisaster(&d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

func GetDisaster(c *gin.Context, store *db.Store) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := store.GetDisaster(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
