package service

import (
	"context"
	"sync"
	"testing"

	"github.com/ogison/daily-planner/internal/domain"
	"github.com/ogison/daily-planner/internal/repository"
	"github.com/ogison/daily-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-01-01"

func newTestService(t *testing.T) ScheduleService {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(database)
	return NewScheduleService(repo, testutil.NewTestUoW(database), DefaultDay)
}

func TestGetCurrentSchedule_SeedsDefaultDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, day.Items, 10)

	first := day.Items[0]
	assert.Equal(t, 0, first.StartMin)
	assert.Equal(t, 420, first.EndMin)
	assert.Equal(t, domain.CategorySleep, first.Category)

	last := day.Items[9]
	assert.Equal(t, 1380, last.StartMin)
	assert.Equal(t, 1440, last.EndMin)
	assert.Equal(t, domain.CategorySleep, last.Category)

	// The default day covers the full 24 hours with no gaps.
	for i := 1; i < len(day.Items); i++ {
		assert.Equal(t, day.Items[i-1].EndMin, day.Items[i].StartMin)
	}
	// Every seeded item carries its category's registry color.
	for _, it := range day.Items {
		assert.Equal(t, it.Category.DefaultColor(), it.Color)
	}
}

func TestGetCurrentSchedule_SeedsOncePerDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	day2, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	require.Len(t, day2.Items, 10)
	for i := range day1.Items {
		assert.Equal(t, day1.Items[i].ID, day2.Items[i].ID, "second read must return the same items")
	}
}

func TestGetCurrentSchedule_DistinctDatesGetDistinctDays(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1, err := svc.GetCurrentSchedule(ctx, "2024-01-01")
	require.NoError(t, err)
	day2, err := svc.GetCurrentSchedule(ctx, "2024-01-02")
	require.NoError(t, err)

	assert.NotEqual(t, day1.Items[0].ID, day2.Items[0].ID)
}

func TestGetCurrentSchedule_ConcurrentFirstAccessSeedsOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetCurrentSchedule(ctx, testDate)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	assert.Len(t, day.Items, 10, "concurrent first reads must not seed duplicates")
}

func TestAddItem_InsertsSortedWithFreshID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	added, err := svc.AddItem(ctx, testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise), testDate)
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	after, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items)+1)

	// Fresh id, distinct from every existing one.
	for _, it := range before.Items {
		assert.NotEqual(t, it.ID, added.ID)
	}

	// Ascending by start minute, with the new item at its start position:
	// after 09:00 Work (540) and before 12:00 Lunch (720).
	for i := 1; i < len(after.Items); i++ {
		assert.GreaterOrEqual(t, after.Items[i].StartMin, after.Items[i-1].StartMin)
	}
	assert.Equal(t, "Gym", after.Items[4].Title)
}

func TestAddItem_DefaultsColorFromCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise), testDate)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryExercise.DefaultColor(), added.Color)
}

func TestAddItem_KeepsExplicitColor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	draft := testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise)
	draft.Color = "#123456"
	added, err := svc.AddItem(ctx, draft, testDate)
	require.NoError(t, err)
	assert.Equal(t, "#123456", added.Color)
}

func TestAddItem_OverlapsAreAccepted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Default day already occupies 09:00–12:00; an overlapping item
	// coexists with it rather than being rejected.
	_, err := svc.AddItem(ctx, testutil.NewTestDraft("Standup", 570, 630, domain.CategoryWork), testDate)
	require.NoError(t, err)

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	assert.Len(t, day.Items, 11)
}

func TestUpdateItem_AppliesPatchAndResorts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise), testDate)
	require.NoError(t, err)

	// Move the gym block to the evening; the listing must re-sort.
	start, end := 1260, 1320
	title := "Evening gym"
	err = svc.UpdateItem(ctx, added.ID, domain.ItemPatch{Title: &title, StartMin: &start, EndMin: &end}, testDate)
	require.NoError(t, err)

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	var found *domain.ScheduleItem
	for _, it := range day.Items {
		if it.ID == added.ID {
			found = it
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Evening gym", found.Title)
	assert.Equal(t, 1260, found.StartMin)
	for i := 1; i < len(day.Items); i++ {
		assert.GreaterOrEqual(t, day.Items[i].StartMin, day.Items[i-1].StartMin)
	}
}

func TestUpdateItem_CategoryChangeForcesRegistryColor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	draft := testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise)
	draft.Color = "#123456" // custom color
	added, err := svc.AddItem(ctx, draft, testDate)
	require.NoError(t, err)

	cat := domain.CategoryPersonal
	err = svc.UpdateItem(ctx, added.ID, domain.ItemPatch{Category: &cat}, testDate)
	require.NoError(t, err)

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	for _, it := range day.Items {
		if it.ID == added.ID {
			assert.Equal(t, domain.CategoryPersonal, it.Category)
			assert.Equal(t, domain.CategoryPersonal.DefaultColor(), it.Color,
				"category change must override the custom color")
		}
	}
}

func TestUpdateItem_UnknownIDIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	title := "Ghost"
	err = svc.UpdateItem(ctx, "no-such-id", domain.ItemPatch{Title: &title}, testDate)
	require.NoError(t, err)

	after, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items))
	for i := range before.Items {
		assert.Equal(t, before.Items[i].Title, after.Items[i].Title)
	}
}

func TestDeleteItem_RemovesItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise), testDate)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, added.ID, testDate))

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	for _, it := range day.Items {
		assert.NotEqual(t, added.ID, it.ID)
	}
}

func TestDeleteItem_UnknownIDLeavesDayUnchanged(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, "no-such-id", testDate))

	after, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items))
	for i := range before.Items {
		assert.Equal(t, before.Items[i].ID, after.Items[i].ID)
	}
}

func TestDeleteItem_EmptiedDayStaysEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, day.Items, 10)

	// Deleting every item must leave an empty day; the next read may not
	// re-materialize the default schedule.
	for _, it := range day.Items {
		require.NoError(t, svc.DeleteItem(ctx, it.ID, testDate))
	}

	day, err = svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Items)

	// Still empty on a later read, and other dates seed independently.
	day, err = svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Items)

	other, err := svc.GetCurrentSchedule(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Len(t, other.Items, 10)
}

func TestReorderItems_EmptyReplacementStaysEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	require.NoError(t, svc.ReorderItems(ctx, nil, testDate))

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Items)
}

func TestReorderItems_ReplacesDayAndResorts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)

	// Hand the store a deliberately shuffled replacement list; the
	// explicit ordering is discarded in favor of start-minute order.
	replacement := []*domain.ScheduleItem{
		testutil.NewTestItem("Evening", 1200, 1320, testutil.WithCategory(domain.CategoryLeisure)),
		testutil.NewTestItem("Morning", 420, 540, testutil.WithCategory(domain.CategoryStudy)),
		testutil.NewTestItem("Afternoon", 780, 900, testutil.WithCategory(domain.CategoryWork)),
	}
	require.NoError(t, svc.ReorderItems(ctx, replacement, testDate))

	day, err := svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, day.Items, 3)
	assert.Equal(t, "Morning", day.Items[0].Title)
	assert.Equal(t, "Afternoon", day.Items[1].Title)
	assert.Equal(t, "Evening", day.Items[2].Title)
}

func TestNewScheduleService_ObserverReceivesEvents(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(database)
	obs := &capturingObserver{}
	svc := NewScheduleService(repo, testutil.NewTestUoW(database), DefaultDay, obs)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testutil.NewTestDraft("Gym", 600, 660, domain.CategoryExercise), testDate)
	require.NoError(t, err)

	require.NotEmpty(t, obs.events)
	assert.Equal(t, "add-item", obs.events[len(obs.events)-1].Name)
	assert.True(t, obs.events[len(obs.events)-1].Success)

	// Reads are instrumented too.
	_, err = svc.GetCurrentSchedule(ctx, testDate)
	require.NoError(t, err)
	last := obs.events[len(obs.events)-1]
	assert.Equal(t, "get-schedule", last.Name)
	assert.True(t, last.Success)
	assert.Equal(t, testDate, last.Fields["date"])
}

type capturingObserver struct {
	events []UseCaseEvent
}

func (c *capturingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	c.events = append(c.events, event)
}
