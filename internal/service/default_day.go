package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/ogison/daily-planner/internal/domain"
)

type defaultBlock struct {
	title    string
	startMin int
	endMin   int
	category domain.Category
}

// defaultBlocks is the sample day seeded into every date on first access.
var defaultBlocks = []defaultBlock{
	{"Sleep", 0, 420, domain.CategorySleep},
	{"Breakfast", 420, 480, domain.CategoryMeal},
	{"Commute", 480, 540, domain.CategoryCommute},
	{"Work", 540, 720, domain.CategoryWork},
	{"Lunch", 720, 780, domain.CategoryMeal},
	{"Work", 780, 1080, domain.CategoryWork},
	{"Commute", 1080, 1140, domain.CategoryCommute},
	{"Dinner", 1140, 1200, domain.CategoryMeal},
	{"Free Time", 1200, 1380, domain.CategoryLeisure},
	{"Sleep", 1380, 1440, domain.CategorySleep},
}

// DefaultDay builds the ten-item sample schedule covering the full
// 24-hour day. It satisfies DefaultDayFunc.
func DefaultDay(date string) []*domain.ScheduleItem {
	now := time.Now().UTC()
	items := make([]*domain.ScheduleItem, 0, len(defaultBlocks))
	for _, b := range defaultBlocks {
		items = append(items, &domain.ScheduleItem{
			ID:        uuid.New().String(),
			Title:     b.title,
			StartMin:  b.startMin,
			EndMin:    b.endMin,
			Category:  b.category,
			Color:     b.category.DefaultColor(),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}
