package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/skilltree"
)

func forestStore(t *testing.T) *skilltree.MemStore {
	t.Helper()
	f, err := skilltree.DefaultForest()
	require.NoError(t, err)
	return skilltree.NewMemStoreFromForest(f)
}

func labelsOf(t *testing.T, c skilltree.Category) [][]string {
	t.Helper()
	b, err := For(c)
	require.NoError(t, err)
	return b.(gridBuilder).Labels()
}

func TestFor_AllCategories(t *testing.T) {
	for _, c := range skilltree.Categories() {
		b, err := For(c)
		require.NoError(t, err)
		assert.Equal(t, c, b.Category())
	}
}

func TestFor_Unknown(t *testing.T) {
	_, err := For(skilltree.Category("fractions"))
	assert.Error(t, err)
}

func TestLabels_Shapes(t *testing.T) {
	tests := []struct {
		category  skilltree.Category
		rows      int
		firstRow  []string
		lastLabel string
	}{
		{skilltree.CategoryNumbers, 2, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, "20"},
		{skilltree.CategoryAddition, 20, []string{"1+1", "2+1", "3+1", "4+1", "5+1", "6+1", "7+1", "8+1", "9+1", "10+1"}, "10+20"},
		{skilltree.CategorySubtraction, 20, []string{"1-1"}, "20-20"},
		{skilltree.CategoryMultiplication, 21, []string{"0x0", "1x0", "2x0", "3x0", "4x0", "5x0", "6x0", "7x0", "8x0", "9x0", "10x0"}, "10x20"},
		{skilltree.CategoryDivision, 10, []string{"0/1", "1/1", "2/1", "3/1", "4/1", "5/1", "6/1", "7/1", "8/1", "9/1", "10/1"}, "100/10"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			labels := labelsOf(t, tt.category)
			require.Len(t, labels, tt.rows)
			assert.Equal(t, tt.firstRow, labels[0])
			last := labels[len(labels)-1]
			assert.Equal(t, tt.lastLabel, last[len(last)-1])
		})
	}
}

func TestLabels_SubtractionIsTriangular(t *testing.T) {
	labels := labelsOf(t, skilltree.CategorySubtraction)
	for i, row := range labels {
		assert.Len(t, row, i+1)
	}
	assert.Equal(t, []string{"3-1", "3-2", "3-3"}, labels[2])
}

func TestLabels_ColumnCounts(t *testing.T) {
	for _, row := range labelsOf(t, skilltree.CategoryMultiplication) {
		assert.Len(t, row, 11)
	}
	for _, row := range labelsOf(t, skilltree.CategoryDivision) {
		assert.Len(t, row, 11)
	}
	for _, row := range labelsOf(t, skilltree.CategoryAddition) {
		assert.Len(t, row, 10)
	}
}

func TestBuild_DivisionUntrackedCellIsTransparent(t *testing.T) {
	ctx := context.Background()
	// Only the tier and one fact exist; 0/5 has no skill.
	st := skilltree.NewMemStore(
		skilltree.Skill{Name: "division"},
		skilltree.Skill{Name: "division1", Parent: "division"},
		skilltree.Skill{Name: "10/5", Parent: "division1"},
	)
	b, err := For(skilltree.CategoryDivision)
	require.NoError(t, err)

	table, err := b.Build(ctx, st, mastery.NewAggregator(st), "u1")
	require.NoError(t, err)

	cell := table.Grid[4][0] // divisor 5, quotient 0
	assert.Equal(t, "0/5", cell.Label)
	assert.False(t, cell.Trackable)
	assert.Empty(t, cell.DisplayName)
	assert.Equal(t, uint8(0), cell.Score.Color.A)

	tracked := table.Grid[4][2]
	assert.Equal(t, "10/5", tracked.Label)
	assert.True(t, tracked.Trackable)
	assert.Equal(t, "10/5", tracked.DisplayName)
	assert.Equal(t, mastery.ColorNoData, tracked.Score.Color)
}

func TestBuild_ScoresRolledUpFacts(t *testing.T) {
	ctx := context.Background()
	st := forestStore(t)
	st.SetValue("u1", "multiplication", 1)
	st.SetValue("u1", "multiplication1", 0.5)
	st.SetValue("u1", "7x8", 0.5)

	b, err := For(skilltree.CategoryMultiplication)
	require.NoError(t, err)
	table, err := b.Build(ctx, st, mastery.NewAggregator(st), "u1")
	require.NoError(t, err)

	cell := table.Grid[8][7]
	assert.Equal(t, "7x8", cell.Label)
	assert.True(t, cell.Score.HasData)
	assert.Equal(t, 2.0, cell.Score.Value)
	assert.Equal(t, 88, cell.Score.Percent)

	// A tracked fact without a record stays translucent even though its
	// ancestors carry value.
	other := table.Grid[8][6]
	assert.Equal(t, "6x8", other.Label)
	assert.False(t, other.Score.HasData)
	assert.Equal(t, mastery.ColorNoData, other.Score.Color)
}

func TestBuild_TierScores(t *testing.T) {
	ctx := context.Background()
	st := forestStore(t)
	st.SetValue("u1", "numbers", 1)
	st.SetValue("u1", "numbers <= 20", 1)

	b, err := For(skilltree.CategoryNumbers)
	require.NoError(t, err)
	table, err := b.Build(ctx, st, mastery.NewAggregator(st), "u1")
	require.NoError(t, err)

	require.Len(t, table.Tiers, 3)
	assert.Equal(t, "numbers <= 10", table.Tiers[0].Skill.Name)
	assert.False(t, table.Tiers[0].Score.HasData)
	assert.Equal(t, "numbers <= 20", table.Tiers[1].Skill.Name)
	assert.True(t, table.Tiers[1].Score.HasData)
	assert.Equal(t, 2.0, table.Tiers[1].Score.Value)
}

func TestBuild_EveryCategoryOnDefaultForest(t *testing.T) {
	ctx := context.Background()
	st := forestStore(t)
	agg := mastery.NewAggregator(st)
	for _, c := range skilltree.Categories() {
		b, err := For(c)
		require.NoError(t, err)
		table, err := b.Build(ctx, st, agg, "nobody")
		require.NoError(t, err, "category %s", c)
		assert.Equal(t, c, table.Category)
		assert.NotEmpty(t, table.Grid)
	}
}
