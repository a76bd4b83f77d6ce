package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"farmbook/entities"
	"farmbook/pkg/dates"
)

func TestActivityLogs(t *testing.T) {
	day, err := dates.Parse("2026-04-02")
	require.NoError(t, err)
	qty := 120.0
	start := datatypes.NewTime(6, 30, 0, 0)
	logs := []entities.ActivityLog{
		{
			ActivityDate:  day,
			StartTime:     &start,
			QuantityValue: &qty,
			PerformedBy:   "Nguyễn Văn Tư",
			ActivityType:  &entities.ActivityType{Name: "Bơm nước"},
			CropCycle:     &entities.CropCycle{CycleCode: "CC-HT2026"},
			QuantityUnit:  &entities.UnitOfMeasure{Abbreviation: "m3"},
		},
		{ActivityDate: day, Description: "Thăm đồng"},
	}

	var buf bytes.Buffer
	require.NoError(t, ActivityLogs(&buf, logs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(ActivitySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, []string{"2026-04-02", "Bơm nước", "CC-HT2026"}, rows[1][:3])
	assert.Equal(t, "06:30:00", rows[1][5])
	assert.Equal(t, "120", rows[1][7])
	assert.Equal(t, "m3", rows[1][8])
	assert.Equal(t, "Nguyễn Văn Tư", rows[1][11])
	assert.Equal(t, "Thăm đồng", rows[2][13])
}
