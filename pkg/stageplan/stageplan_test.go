package stageplan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmbook/pkg/dates"
)

func day(t *testing.T, s string) dates.Date {
	t.Helper()
	d, err := dates.Parse(s)
	require.NoError(t, err)
	return d
}

func TestBuildSpreadsOverPlannedRange(t *testing.T) {
	got := Default().Build(day(t, "2026-03-01"), day(t, "2026-06-30"))
	require.Len(t, got, 5)

	assert.Equal(t, "Land preparation", got[0].Name)
	assert.Equal(t, 1, got[0].Sequence)
	assert.Equal(t, "2026-03-01", got[0].Start.String())
	assert.Equal(t, "2026-03-13", got[0].End.String())
	assert.Equal(t, "2026-06-30", got[4].End.String())
	for i := range got {
		assert.True(t, got[i].End.After(got[i].Start), got[i].Name)
		if i > 0 {
			assert.Equal(t, got[i-1].End, got[i].Start)
		}
	}
}

func TestBuildShortCycleKeepsStagesNonEmpty(t *testing.T) {
	got := Default().Build(day(t, "2026-03-01"), day(t, "2026-03-03"))
	require.Len(t, got, 5)
	for _, p := range got {
		assert.Equal(t, 1, p.Start.DaysUntil(p.End))
	}
	assert.Equal(t, "2026-03-06", got[4].End.String())
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.csv")
	body := "\uFEFFStage,Duration Days,Notes\nLàm đất,7,Cày ải\nGieo sạ,3,\n,5,blank names are skipped\nThu hoạch,4,Gặt máy\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tpl, err := Load(path)
	require.NoError(t, err)
	stages := tpl.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, Stage{Name: "Làm đất", Days: 7, Description: "Cày ải"}, stages[0])
	assert.Equal(t, "Thu hoạch", stages[2].Name)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Stage", "Days", "Description"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Mạ", 20, "Ươm mạ"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Cấy", 10, ""}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tpl, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tpl.Stages(), 2)
	assert.Equal(t, 20, tpl.Stages()[0].Days)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	cases := map[string]string{
		"missing days column": write("a.csv", "Stage,Notes\nLàm đất,x\n"),
		"bad days":            write("b.csv", "Stage,Days\nLàm đất,abc\n"),
		"no rows":             write("c.csv", "Stage,Days\n"),
		"unsupported type":    write("d.json", "{}"),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	tpl, err := Load("")
	require.NoError(t, err)
	assert.Len(t, tpl.Stages(), 5)
}
