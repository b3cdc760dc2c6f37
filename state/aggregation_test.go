package state

import (
	"fmt"
	"testing"
	"time"

	"sport-tracker-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyCompletionEmptyRegistry(t *testing.T) {
	e := newTestEngine()
	got := e.DailyCompletion("2026-01-01")
	assert.Equal(t, 0, got.TotalActivities)
	assert.Equal(t, 0, got.CompletedCount)
	assert.Equal(t, float64(0), got.Percentage)
}

func TestDailyCompletionRounding(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("One", "min", 10)
	e.Create("Two", "min", 10)
	e.Create("Three", "min", 10)

	e.SetValue("2026-01-01", a.ID, 10)

	got := e.DailyCompletion("2026-01-01")
	assert.Equal(t, 3, got.TotalActivities)
	assert.Equal(t, 1, got.CompletedCount)
	assert.Equal(t, 33.3, got.Percentage)
}

func TestZeroGoalAlwaysCompleted(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("Show up", "min", 0)

	// Nothing logged: implicit 0 >= 0.
	got := e.DailyCompletion("2026-01-01")
	assert.Equal(t, 1, got.CompletedCount)
	assert.Equal(t, float64(100), got.Percentage)

	_, done := e.Partition("2026-01-01")
	require.Len(t, done, 1)
	assert.Equal(t, a.ID, done[0].ID)
	assert.Equal(t, float64(100), done[0].Progress)
}

func TestPushupsScenario(t *testing.T) {
	e := newTestEngine()
	a, err := e.Create("Pushups", "reps-male", 20)
	require.NoError(t, err)

	today := models.DateKey(time.Now())
	for i := 0; i < 5; i++ {
		e.Adjust(today, a.ID, 5)
	}

	assert.Equal(t, float64(25), e.Value(today, a.ID))
	assert.Equal(t, 1, e.DailyCompletion(today).CompletedCount)
}

func TestPartitionClassification(t *testing.T) {
	e := newTestEngine()
	done, _ := e.Create("Pushups", "reps-male", 20)
	open, _ := e.Create("Walk", "steps", 10000)

	e.SetValue("2026-01-01", done.ID, 35)
	e.SetValue("2026-01-01", open.ID, 4000)

	active, completed := e.Partition("2026-01-01")
	require.Len(t, active, 1)
	require.Len(t, completed, 1)

	assert.Equal(t, open.ID, active[0].ID)
	assert.Equal(t, float64(40), active[0].Progress)
	assert.Equal(t, float64(100), active[0].Step)
	assert.False(t, active[0].Completed)

	assert.Equal(t, done.ID, completed[0].ID)
	// Overachieving caps at 100.
	assert.Equal(t, float64(100), completed[0].Progress)
	assert.Equal(t, float64(5), completed[0].Step)
	assert.True(t, completed[0].Completed)
}

func TestSeriesWindow(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("Walk", "steps", 10000)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		e.SetValue(models.DateKey(start.AddDate(0, 0, i)), a.ID, float64(i))
	}

	points := e.Series(a.ID, 30)
	require.Len(t, points, 30)
	assert.Equal(t, models.DateKey(start.AddDate(0, 0, 15)), points[0].Date)
	assert.Equal(t, models.DateKey(start.AddDate(0, 0, 44)), points[29].Date)
	for i, p := range points {
		assert.Equal(t, float64(15+i), p.Value, fmt.Sprintf("point %d", i))
	}
}

func TestSeriesShorterThanWindow(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("Walk", "steps", 10000)
	other, _ := e.Create("Pushups", "reps-male", 20)

	e.SetValue("2026-01-01", a.ID, 100)
	e.SetValue("2026-01-02", other.ID, 5)

	points := e.Series(a.ID, 30)
	require.Len(t, points, 2)
	assert.Equal(t, float64(100), points[0].Value)
	// Dates present only for other activities yield 0.
	assert.Equal(t, float64(0), points[1].Value)
}

func TestSeriesAfterRemoveIsEmpty(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("Walk", "steps", 10000)
	b, _ := e.Create("Pushups", "reps-male", 20)
	e.SetValue("2026-01-01", a.ID, 100)
	e.SetValue("2026-01-01", b.ID, 5)

	require.NoError(t, e.Remove(a.ID))

	assert.Empty(t, e.Series(a.ID, 30))
	// The historical date bucket still exists for the other activity.
	assert.Equal(t, []string{"2026-01-01"}, e.DatesAscending())

	active, completed := e.Partition("2026-01-01")
	for _, s := range append(active, completed...) {
		assert.NotEqual(t, a.ID, s.ID)
	}
}
