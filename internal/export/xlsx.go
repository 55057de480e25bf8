// Package export renders trip lists as spreadsheet downloads.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tripfolio/internal/domain"
)

const sheetName = "Trips"

// columns defines the header row of the exported workbook.
var columns = []string{
	"Name",
	"Description",
	"Start Date",
	"End Date",
	"Created At",
}

// WriteTripsXLSX writes the trips as an XLSX workbook to w.
func WriteTripsXLSX(w io.Writer, trips []domain.Trip) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, t := range trips {
		description := ""
		if t.Description != nil {
			description = *t.Description
		}
		values := []interface{}{
			t.Name,
			description,
			t.StartDate.Format("2006-01-02"),
			t.EndDate.Format("2006-01-02"),
			t.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
