// Package export writes a rendered skill page to an XLSX workbook.
package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/tables"
)

// SummarySheet is the name of the first sheet.
const SummarySheet = "Summary"

var paper = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Write renders m as a workbook: a summary sheet followed by one heat-grid
// sheet per category, in page order.
func Write(w io.Writer, m *page.PageModel) error {
	f, err := build(m)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile is Write to a file path.
func WriteFile(path string, m *page.PageModel) error {
	f, err := build(m)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

type workbook struct {
	f      *excelize.File
	styles map[string]int // fill hex -> style id
}

func build(m *page.PageModel) (*excelize.File, error) {
	wb := &workbook{f: excelize.NewFile(), styles: make(map[string]int)}
	wb.f.SetSheetName("Sheet1", SummarySheet)

	if err := wb.writeSummary(m); err != nil {
		wb.f.Close()
		return nil, err
	}
	for i := range m.Categories {
		cp := &m.Categories[i]
		idx, err := wb.f.NewSheet(cp.Category.DisplayName())
		if err != nil {
			wb.f.Close()
			return nil, fmt.Errorf("add sheet %s: %w", cp.Category, err)
		}
		if err := wb.writeGrid(cp.Category.DisplayName(), cp.Table); err != nil {
			wb.f.Close()
			return nil, fmt.Errorf("sheet %s: %w", cp.Category, err)
		}
		if cp.Active {
			wb.f.SetActiveSheet(idx)
		}
	}
	return wb.f, nil
}

func (wb *workbook) writeSummary(m *page.PageModel) error {
	rows := [][]any{
		{"User", m.User},
		{"Pass", m.PassID},
		{},
		{"Skill", "Mastery %", "Value", "Has data"},
	}
	for _, cp := range m.Categories {
		rows = append(rows, scoreRow(cp.Skill.Name, cp.Summary))
		if cp.Table == nil {
			continue
		}
		for _, t := range cp.Table.Tiers {
			rows = append(rows, scoreRow("  "+t.Skill.Name, t.Score))
		}
	}

	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := wb.f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("summary row %d: %w", r+1, err)
		}
	}
	return wb.f.SetColWidth(SummarySheet, "A", "A", 24)
}

func scoreRow(name string, s mastery.Score) []any {
	if !s.HasData {
		return []any{name, nil, nil, false}
	}
	return []any{name, s.Percent, s.Value, true}
}

func (wb *workbook) writeGrid(sheet string, t *tables.Table) error {
	if t == nil {
		return nil
	}
	for r, row := range t.Grid {
		for c, cell := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := wb.f.SetCellValue(sheet, ref, cellText(cell)); err != nil {
				return err
			}
			style, err := wb.fill(cell.Score.Color)
			if err != nil {
				return err
			}
			if err := wb.f.SetCellStyle(sheet, ref, ref, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func cellText(c tables.Cell) string {
	switch {
	case !c.Trackable:
		return ""
	case !c.Score.HasData:
		return c.DisplayName
	default:
		return fmt.Sprintf("%s %d%%", c.DisplayName, c.Score.Percent)
	}
}

// fill returns a solid-fill style for the colour flattened onto white,
// reusing styles across cells of the same colour.
func (wb *workbook) fill(c color.NRGBA) (int, error) {
	hex := mastery.Flatten(c, paper)
	if id, ok := wb.styles[hex]; ok {
		return id, nil
	}
	id, err := wb.f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("new style %s: %w", hex, err)
	}
	wb.styles[hex] = id
	return id, nil
}
