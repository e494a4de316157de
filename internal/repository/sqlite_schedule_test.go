package repository

import (
	"context"
	"testing"

	"github.com/ogison/daily-planner/internal/domain"
	"github.com/ogison/daily-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-01-01"

func scheduleRepoSetup(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	return NewSQLiteScheduleRepo(testutil.NewTestDB(t))
}

func TestScheduleRepo_CreateAndGetItem(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Gym", 600, 660,
		testutil.WithCategory(domain.CategoryExercise),
		testutil.WithNotes("leg day"))
	require.NoError(t, repo.CreateItem(ctx, testDate, item))

	fetched, err := repo.GetItem(ctx, testDate, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, fetched.ID)
	assert.Equal(t, "Gym", fetched.Title)
	assert.Equal(t, 600, fetched.StartMin)
	assert.Equal(t, 660, fetched.EndMin)
	assert.Equal(t, domain.CategoryExercise, fetched.Category)
	assert.Equal(t, "leg day", fetched.Notes)
	assert.Equal(t, domain.CategoryExercise.DefaultColor(), fetched.Color)
}

func TestScheduleRepo_GetItem_NotFound(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	_, err := repo.GetItem(ctx, testDate, "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_GetItem_ScopedByDate(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Lunch", 720, 780, testutil.WithCategory(domain.CategoryMeal))
	require.NoError(t, repo.CreateItem(ctx, testDate, item))

	_, err := repo.GetItem(ctx, "2024-01-02", item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_GetDay_SortedByStart(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	// Insert deliberately out of order.
	late := testutil.NewTestItem("Dinner", 1140, 1200, testutil.WithCategory(domain.CategoryMeal))
	early := testutil.NewTestItem("Breakfast", 420, 480, testutil.WithCategory(domain.CategoryMeal))
	mid := testutil.NewTestItem("Work", 540, 720, testutil.WithCategory(domain.CategoryWork))
	for _, it := range []*domain.ScheduleItem{late, early, mid} {
		require.NoError(t, repo.CreateItem(ctx, testDate, it))
	}

	day, err := repo.GetDay(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, day.Items, 3)
	assert.Equal(t, "Breakfast", day.Items[0].Title)
	assert.Equal(t, "Work", day.Items[1].Title)
	assert.Equal(t, "Dinner", day.Items[2].Title)
	assert.Equal(t, testDate, day.Date)
}

func TestScheduleRepo_GetDay_EmptyDate(t *testing.T) {
	repo := scheduleRepoSetup(t)

	day, err := repo.GetDay(context.Background(), "2099-12-31")
	require.NoError(t, err)
	assert.Empty(t, day.Items)
	assert.Equal(t, "2099-12-31", day.Date)
}

func TestScheduleRepo_DayExists(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	exists, err := repo.DayExists(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, exists)

	// Existence comes from the day marker, not from item rows.
	require.NoError(t, repo.CreateItem(ctx, testDate, testutil.NewTestItem("Sleep", 0, 420)))
	exists, err = repo.DayExists(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.MarkDay(ctx, testDate))
	exists, err = repo.DayExists(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestScheduleRepo_MarkDayIdempotent(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkDay(ctx, testDate))
	require.NoError(t, repo.MarkDay(ctx, testDate))

	exists, err := repo.DayExists(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestScheduleRepo_DeleteDayKeepsMarker(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkDay(ctx, testDate))
	require.NoError(t, repo.CreateItem(ctx, testDate, testutil.NewTestItem("Sleep", 0, 420)))

	require.NoError(t, repo.DeleteDay(ctx, testDate))

	day, err := repo.GetDay(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Items)

	exists, err := repo.DayExists(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestScheduleRepo_UpdateItem(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Reading", 1200, 1260, testutil.WithCategory(domain.CategoryStudy))
	require.NoError(t, repo.CreateItem(ctx, testDate, item))

	item.Title = "Deep reading"
	item.EndMin = 1320
	require.NoError(t, repo.UpdateItem(ctx, testDate, item))

	fetched, err := repo.GetItem(ctx, testDate, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep reading", fetched.Title)
	assert.Equal(t, 1320, fetched.EndMin)
}

func TestScheduleRepo_DeleteItem(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Nap", 840, 900, testutil.WithCategory(domain.CategorySleep))
	require.NoError(t, repo.CreateItem(ctx, testDate, item))
	require.NoError(t, repo.DeleteItem(ctx, testDate, item.ID))

	_, err := repo.GetItem(ctx, testDate, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_DeleteItem_UnknownIDIsNoop(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Walk", 900, 960, testutil.WithCategory(domain.CategoryExercise))
	require.NoError(t, repo.CreateItem(ctx, testDate, item))

	require.NoError(t, repo.DeleteItem(ctx, testDate, "no-such-id"))

	day, err := repo.GetDay(ctx, testDate)
	require.NoError(t, err)
	assert.Len(t, day.Items, 1)
}

func TestScheduleRepo_DeleteDay(t *testing.T) {
	repo := scheduleRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateItem(ctx, testDate, testutil.NewTestItem("A", 0, 60)))
	require.NoError(t, repo.CreateItem(ctx, testDate, testutil.NewTestItem("B", 60, 120)))
	other := testutil.NewTestItem("C", 0, 60)
	require.NoError(t, repo.CreateItem(ctx, "2024-01-02", other))

	require.NoError(t, repo.DeleteDay(ctx, testDate))

	day, err := repo.GetDay(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Items)

	// Other dates untouched.
	otherDay, err := repo.GetDay(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Len(t, otherDay.Items, 1)
}
