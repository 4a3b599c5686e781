package budget

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-ayuda/types"
)

// ExportHeader is the column set shared by the CSV and XLSX exports.
var ExportHeader = []string{
	"Household ID", "Name", "Address", "Barangay",
	"Latitude", "Longitude", "Damage Status", "ECT Amount (PHP)",
	"Flood Depth (m)", "House Height (m)", "House Width (m)", "4Ps Recipient",
}

const exportSheet = "Assessments"

// WriteXLSX renders export rows into a single-sheet workbook and returns the
// file bytes.
func WriteXLSX(rows []types.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("dropping default sheet: %w", err)
	}

	for col, header := range ExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.HouseholdID, row.Name, row.Address, row.Barangay,
			row.Latitude, row.Longitude, row.DamageStatus, row.Amount,
			row.FloodDepth, row.HouseHeight, row.HouseWidth, yesNo(row.Is4Ps),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
