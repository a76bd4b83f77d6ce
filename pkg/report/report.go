// Package report renders exported records as XLSX workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmbook/entities"
)

const ActivitySheet = "Activity logs"

var activityHeader = []any{
	"Date", "Activity type", "Crop cycle", "Land parcel", "Water source",
	"Start", "End", "Quantity", "Quantity unit", "Cost", "Cost unit",
	"Performed by", "Weather", "Description",
}

// ActivityLogs writes one row per log below a header row. Associations that
// were not preloaded are left blank.
func ActivityLogs(w io.Writer, logs []entities.ActivityLog) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), ActivitySheet); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(ActivitySheet)
	if err != nil {
		return fmt.Errorf("report: stream writer: %w", err)
	}
	if err := sw.SetRow("A1", activityHeader); err != nil {
		return err
	}
	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, activityRow(l)); err != nil {
			return fmt.Errorf("report: row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

func activityRow(l entities.ActivityLog) []any {
	row := []any{l.ActivityDate.String(), "", "", "", "", "", "", nil, "", nil, "", l.PerformedBy, l.WeatherConditions, l.Description}
	if l.ActivityType != nil {
		row[1] = l.ActivityType.Name
	}
	if l.CropCycle != nil {
		row[2] = l.CropCycle.CycleCode
	}
	if l.LandParcel != nil {
		row[3] = l.LandParcel.Name
	}
	if l.WaterSource != nil {
		row[4] = l.WaterSource.Name
	}
	if l.StartTime != nil {
		row[5] = l.StartTime.String()
	}
	if l.EndTime != nil {
		row[6] = l.EndTime.String()
	}
	if l.QuantityValue != nil {
		row[7] = *l.QuantityValue
	}
	if l.QuantityUnit != nil {
		row[8] = l.QuantityUnit.Abbreviation
	}
	if l.CostValue != nil {
		row[9] = *l.CostValue
	}
	if l.CostUnit != nil {
		row[10] = l.CostUnit.Abbreviation
	}
	return row
}
