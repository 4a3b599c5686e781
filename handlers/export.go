package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-ayuda/budget"
	"go-ayuda/db"
)

// ExportCSV streams one disaster's per-assessment rows as a CSV attachment.
func ExportCSV(c *gin.Context, store *db.Store) {
	disaster, ok := requireDisaster(c, store)
	if !ok {
		return
	}
	entries, err := store.EntriesForDisaster(disaster.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := budget.Rows(entries)

	filename := fmt.Sprintf("ayuda_export_%s.csv", strings.ReplaceAll(disaster.Name, " ", "_"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	if err := w.Write(budget.ExportHeader); err != nil {
		return
	}
	for _, row := range rows {
		is4ps := "No"
		if row.Is4Ps {
			is4ps = "Yes"
		}
		record := []string{
			row.HouseholdID,
			row.Name,
			row.Address,
			row.Barangay,
			strconv.FormatFloat(row.Latitude, 'f', 6, 64),
			strconv.FormatFloat(row.Longitude, 'f', 6, 64),
			row.DamageStatus,
			strconv.Itoa(row.Amount),
			strconv.FormatFloat(row.FloodDepth, 'f', 2, 64),
			strconv.FormatFloat(row.HouseHeight, 'f', 2, 64),
			strconv.FormatFloat(row.HouseWidth, 'f', 2, 64),
			is4ps,
		}
		if err := w.Write(record); err != nil {
			return
		}
	}
	w.Flush()
}

// ExportXLSX renders the same rows as an Excel workbook for LGU staff who
// work in spreadsheets.
func ExportXLSX(c *gin.Context, store *db.Store) {
	disaster, ok := requireDisaster(c, store)
	if !ok {
		return
	}
	entries, err := store.EntriesForDisaster(disaster.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := budget.WriteXLSX(budget.Rows(entries))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("ayuda_export_%s.xlsx", strings.ReplaceAll(disaster.Name, " ", "_"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
