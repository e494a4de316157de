// Package render emits standalone SVG documents for the 24-hour wheel.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/ogison/daily-planner/internal/config"
	"github.com/ogison/daily-planner/internal/domain"
	"github.com/ogison/daily-planner/internal/projection"
)

// Mode selects which projection the wheel shows.
type Mode string

const (
	// ModeItem draws one arc per schedule item in clock position.
	ModeItem Mode = "item"
	// ModeCategory draws one aggregate arc per category.
	ModeCategory Mode = "category"
)

// ParseMode maps a user-supplied string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeItem, ModeCategory:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q (want %q or %q)", s, ModeItem, ModeCategory)
	}
}

// SVG renders the items as a circular 24-hour chart and returns the
// complete SVG document.
func SVG(items []*domain.ScheduleItem, mode Mode, cfg config.RenderConfig) string {
	var segments []domain.TimeSegment
	if mode == ModeCategory {
		segments = projection.CategorySegments(items)
	} else {
		segments = projection.ItemSegments(items)
	}

	total := float64(cfg.Size + 2*cfg.Margin)
	cx, cy := total/2, total/2
	wedges := projection.Wedges(segments, cx, cy, cfg.InnerRadius, cfg.OuterRadius)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		total, total, total, total)
	fmt.Fprintf(&b, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n", total, total, cfg.Background)

	for _, w := range wedges {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			w.Path, w.Segment.Color, cfg.SeparatorColor, cfg.SeparatorWidth)
	}

	// Labels go after every wedge so neighbors cannot paint over them.
	for _, w := range wedges {
		fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-family="%s" font-size="%d" font-weight="bold">%s</text>`+"\n",
			w.LabelX, w.LabelY, cfg.LabelColor, cfg.FontFamily, cfg.LabelFontSize, html.EscapeString(w.Segment.Label))
		if mode == ModeCategory && w.Segment.Sublabel != "" {
			fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-family="%s" font-size="%d">%s</text>`+"\n",
				w.LabelX, w.LabelY+20, cfg.LabelColor, cfg.FontFamily, cfg.SubFontSize, html.EscapeString(w.Segment.Sublabel))
		}
	}

	if mode == ModeItem {
		for _, tick := range projection.HourTicks(cx, cy, cfg.OuterRadius+cfg.HourLabelOffset) {
			fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-family="%s" font-size="%d" font-weight="600">%d</text>`+"\n",
				tick.X, tick.Y, cfg.HourLabelColor, cfg.FontFamily, cfg.HourFontSize, tick.Hour)
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}
