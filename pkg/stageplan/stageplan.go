// Package stageplan holds the default crop cycle stage template and spreads
// it over a cycle's planned range. A template can be replaced by a CSV or
// XLSX file with Stage, Days and Description columns.
package stageplan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmbook/entities"
	"farmbook/pkg/dates"
)

// Stage is one template row. Days is the stage's share of the cycle, not a
// fixed length.
type Stage struct {
	Name        string
	Days        int
	Description string
}

// Planned is a template stage placed on the calendar.
type Planned struct {
	Name        string
	Description string
	Sequence    int
	Start       dates.Date
	End         dates.Date
}

type Template struct {
	stages []Stage
}

var defaultStages = []Stage{
	{Name: "Land preparation", Days: 10, Description: "Plough, level and flood the field."},
	{Name: "Sowing", Days: 5, Description: "Sow or transplant seedlings."},
	{Name: "Vegetative growth", Days: 45, Description: "Tillering and canopy development."},
	{Name: "Flowering", Days: 25, Description: "Heading, flowering and grain filling."},
	{Name: "Harvest", Days: 10, Description: "Harvest, thresh and dry."},
}

func Default() *Template {
	return &Template{stages: append([]Stage(nil), defaultStages...)}
}

// Load reads a template from path. An empty path gives the default.
func Load(path string) (*Template, error) {
	if path == "" {
		return Default(), nil
	}
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("stage template %s: unsupported file type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("stage template %s: %w", path, err)
	}
	stages, err := parse(rows)
	if err != nil {
		return nil, fmt.Errorf("stage template %s: %w", path, err)
	}
	return &Template{stages: stages}, nil
}

func (t *Template) Stages() []Stage { return append([]Stage(nil), t.stages...) }

// Build places every stage between start and end in proportion to its Days.
// Each stage gets at least one day so planned_end_date > planned_start_date
// holds for every stage, even when that runs past end on very short cycles.
func (t *Template) Build(start, end dates.Date) []Planned {
	total := 0
	for _, s := range t.stages {
		total += s.Days
	}
	span := start.DaysUntil(end)
	out := make([]Planned, 0, len(t.stages))
	cum, prev := 0, 0
	for i, s := range t.stages {
		cum += s.Days
		edge := cum * span / total
		if edge <= prev {
			edge = prev + 1
		}
		out = append(out, Planned{
			Name:        s.Name,
			Description: s.Description,
			Sequence:    i + 1,
			Start:       start.AddDays(prev),
			End:         start.AddDays(edge),
		})
		prev = edge
	}
	return out
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func norm(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func parse(rows [][]string) ([]Stage, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty template")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[norm(h)] = i
	}
	find := func(keys ...string) int {
		for _, k := range keys {
			if i, ok := cols[norm(k)]; ok {
				return i
			}
		}
		return -1
	}
	cName := find("stage", "stage_name", "name", "phase")
	cDays := find("days", "duration", "duration_days")
	cDesc := find("description", "notes", "note")
	if cName == -1 || cDays == -1 {
		return nil, fmt.Errorf("missing Stage or Days column in header %v", rows[0])
	}

	var out []Stage
	for n, rec := range rows[1:] {
		get := func(i int) string {
			if i < 0 || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		days, err := strconv.Atoi(get(cDays))
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("row %d: days must be a positive integer", n+2)
		}
		out = append(out, Stage{Name: name, Days: days, Description: get(cDesc)})
	}
	if len(out) == 0 {
		return nil, errors.New("no stages")
	}
	if len(out) > entities.MaxStageSequence {
		return nil, fmt.Errorf("%d stages, at most %d allowed", len(out), entities.MaxStageSequence)
	}
	return out, nil
}
