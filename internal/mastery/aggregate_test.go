package mastery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathskills/internal/skilltree"
)

// chainStore builds addition -> addition <= 10 -> 3+4.
func chainStore() *skilltree.MemStore {
	return skilltree.NewMemStore(
		skilltree.Skill{Name: "addition"},
		skilltree.Skill{Name: "addition <= 10", Parent: "addition"},
		skilltree.Skill{Name: "3+4", Parent: "addition <= 10"},
	)
}

func TestAggregate_RootEqualsOwnDelta(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 1.25)

	v, err := NewAggregator(st).Aggregate(ctx, "u1", "addition")
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)
}

func TestAggregate_RootWithoutRecordIsZero(t *testing.T) {
	v, err := NewAggregator(chainStore()).Aggregate(context.Background(), "u1", "addition")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestAggregate_SumsChain(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 0.5)
	st.SetValue("u1", "addition <= 10", -1)
	st.SetValue("u1", "3+4", 2)

	v, err := NewAggregator(st).Aggregate(ctx, "u1", "3+4")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestAggregate_MissingMiddleRecordStillVisitsRoot(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 3)
	st.SetValue("u1", "3+4", 1)

	v, err := NewAggregator(st).Aggregate(ctx, "u1", "3+4")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	ctx := context.Background()
	st := skilltree.NewMemStore(
		skilltree.Skill{Name: "parent"},
		skilltree.Skill{Name: "child", Parent: "parent"},
	)
	st.SetValue("u1", "parent", 1)
	st.SetValue("u1", "child", 1)

	childFirst := NewAggregator(st)
	v, err := childFirst.Aggregate(ctx, "u1", "child")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	parentFirst := NewAggregator(st)
	_, err = parentFirst.Aggregate(ctx, "u1", "parent")
	require.NoError(t, err)
	v, err = parentFirst.Aggregate(ctx, "u1", "child")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAggregate_MemoizedWithinPass(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "3+4", 2)
	agg := NewAggregator(st)

	first, err := agg.Aggregate(ctx, "u1", "3+4")
	require.NoError(t, err)
	readsAfterFirst := st.Reads()
	assert.Equal(t, 6, readsAfterFirst, "two reads per node on a three-node chain")

	second, err := agg.Aggregate(ctx, "u1", "3+4")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, readsAfterFirst, st.Reads(), "cached lookup must not hit the store")

	// Ancestors were cached on the way up.
	_, err = agg.Aggregate(ctx, "u1", "addition")
	require.NoError(t, err)
	assert.Equal(t, readsAfterFirst, st.Reads())
	assert.Equal(t, 2, agg.Hits())
	assert.Equal(t, 6, agg.Reads())
}

func TestAggregate_KeyedByUser(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("alice", "addition", 2)
	st.SetValue("bob", "addition", -2)
	agg := NewAggregator(st)

	a, err := agg.Aggregate(ctx, "alice", "3+4")
	require.NoError(t, err)
	b, err := agg.Aggregate(ctx, "bob", "3+4")
	require.NoError(t, err)
	assert.Equal(t, 2.0, a)
	assert.Equal(t, -2.0, b)
}

func TestAggregate_FreshAggregatorSeesNewData(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 1)

	v, err := NewAggregator(st).Aggregate(ctx, "u1", "addition")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	st.SetValue("u1", "addition", 5)
	v, err = NewAggregator(st).Aggregate(ctx, "u1", "addition")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestAggregate_NotFound(t *testing.T) {
	_, err := NewAggregator(chainStore()).Aggregate(context.Background(), "u1", "9x9")
	require.Error(t, err)
	assert.ErrorIs(t, err, skilltree.ErrNotFound)
}

func TestAggregate_DanglingParentNotFound(t *testing.T) {
	st := skilltree.NewMemStore(skilltree.Skill{Name: "orphan", Parent: "gone"})
	_, err := NewAggregator(st).Aggregate(context.Background(), "u1", "orphan")
	assert.ErrorIs(t, err, skilltree.ErrNotFound)
}

func TestAggregateUserSkill_UsesFetchedValue(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 1)
	st.SetValue("u1", "3+4", 0.5)
	agg := NewAggregator(st)

	leaf, err := st.FindSkill(ctx, "3+4")
	require.NoError(t, err)
	before := st.Reads()

	v, err := agg.AggregateUserSkill(ctx, skilltree.UserSkill{User: "u1", Skill: leaf, Value: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, before+4, st.Reads(), "only the two ancestors are read")

	again, err := agg.Aggregate(ctx, "u1", "3+4")
	require.NoError(t, err)
	assert.Equal(t, v, again)
	assert.Equal(t, before+4, st.Reads())
}

func TestScore_NoRecord(t *testing.T) {
	ctx := context.Background()
	st := chainStore()
	st.SetValue("u1", "addition", 1)

	s, err := NewAggregator(st).Score(ctx, "u1", "addition <= 10")
	require.NoError(t, err)
	assert.False(t, s.HasData)
	assert.Equal(t, ColorNoData, s.Color)
}

func TestScore_ScenarioRootDeltaTwo(t *testing.T) {
	ctx := context.Background()
	st := skilltree.NewMemStore(skilltree.Skill{Name: "addition <= 10"})
	st.SetValue("u1", "addition <= 10", 2)
	agg := NewAggregator(st)

	v, err := agg.Aggregate(ctx, "u1", "addition <= 10")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	s, err := agg.Score(ctx, "u1", "addition <= 10")
	require.NoError(t, err)
	assert.True(t, s.HasData)
	assert.Equal(t, 88, s.Percent)
	assert.Equal(t, uint8(255), s.Color.A)
}
