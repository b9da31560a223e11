package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/skilltree"
)

func renderTestPage(t *testing.T) *page.PageModel {
	t.Helper()
	f, err := skilltree.DefaultForest()
	require.NoError(t, err)
	st := skilltree.NewMemStoreFromForest(f)
	st.SetValue("u1", "multiplication", 1)
	st.SetValue("u1", "7x8", 1)

	m, err := page.NewAssembler(st, zerolog.Nop()).RenderMySkills(context.Background(), "u1", "7x8")
	require.NoError(t, err)
	return m
}

func TestWrite_OneSheetPerCategory(t *testing.T) {
	m := renderTestPage(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SummarySheet, "Numbers", "Addition", "Subtraction", "Multiplication", "Division",
	}, f.GetSheetList())
	assert.Equal(t, "Multiplication", f.GetSheetName(f.GetActiveSheetIndex()))
}

func TestWrite_GridCells(t *testing.T) {
	m := renderTestPage(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// Row 9 is second factor 8, column H is first factor 7.
	v, err := f.GetCellValue("Multiplication", "H9")
	require.NoError(t, err)
	assert.Equal(t, "7x8 88%", v)

	// Tracked without data shows the name only.
	v, err = f.GetCellValue("Multiplication", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1x1", v)

	// 10+20 sums past the last addition tier, so no skill backs it.
	v, err = f.GetCellValue("Addition", "J20")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestWrite_Summary(t *testing.T) {
	m := renderTestPage(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"User", "u1"}, rows[0])

	var found bool
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "multiplication" {
			assert.Equal(t, "73", row[1])
			found = true
		}
	}
	assert.True(t, found, "multiplication summary row")
}

func TestWriteFile(t *testing.T) {
	m := renderTestPage(t)
	path := filepath.Join(t.TempDir(), "skills.xlsx")

	require.NoError(t, WriteFile(path, m))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 6)
}
