package projection

import (
	"fmt"
	"math"

	"github.com/ogison/daily-planner/internal/domain"
)

// DegreesPerMinute maps the 1440-minute day onto a 360° circle.
const DegreesPerMinute = 360.0 / float64(domain.MinutesPerDay)

// angleOffset places minute zero at the 12-o'clock position instead of the
// 3-o'clock position of math convention.
const angleOffset = -90.0

// MinuteAngle converts a minute of day to its angle in degrees.
func MinuteAngle(minute float64) float64 {
	return minute*DegreesPerMinute + angleOffset
}

// Wedge is the rendered geometry for one segment: an annulus wedge between
// an inner and outer radius (a pie slice when the inner radius is zero),
// plus the anchor point for its label.
type Wedge struct {
	Segment domain.TimeSegment
	// Path is an SVG path drawing the wedge.
	Path string
	// StartAngle and EndAngle are in degrees, 12 o'clock = minute zero.
	StartAngle float64
	EndAngle   float64
	// Label anchor at the mid-angle, midway between the radii.
	LabelX float64
	LabelY float64
}

// Wedges computes the wedge geometry for each segment around a circle
// centered at (cx, cy).
func Wedges(segments []domain.TimeSegment, cx, cy, innerRadius, outerRadius float64) []Wedge {
	wedges := make([]Wedge, 0, len(segments))
	for _, seg := range segments {
		start := MinuteAngle(seg.StartMinute)
		end := MinuteAngle(seg.EndMinute)
		labelX, labelY := labelAnchor(cx, cy, innerRadius, outerRadius, start, end)
		wedges = append(wedges, Wedge{
			Segment:    seg,
			Path:       arcPath(cx, cy, innerRadius, outerRadius, start, end),
			StartAngle: start,
			EndAngle:   end,
			LabelX:     labelX,
			LabelY:     labelY,
		})
	}
	return wedges
}

// arcPath builds the SVG path for an annulus wedge: outer arc from start to
// end, a line to the inner radius, the inner arc back, and close.
func arcPath(cx, cy, innerR, outerR, startAngle, endAngle float64) string {
	startRad := startAngle * math.Pi / 180
	endRad := endAngle * math.Pi / 180

	x1 := cx + outerR*math.Cos(startRad)
	y1 := cy + outerR*math.Sin(startRad)
	x2 := cx + outerR*math.Cos(endRad)
	y2 := cy + outerR*math.Sin(endRad)
	x3 := cx + innerR*math.Cos(endRad)
	y3 := cy + innerR*math.Sin(endRad)
	x4 := cx + innerR*math.Cos(startRad)
	y4 := cy + innerR*math.Sin(startRad)

	// Standard SVG rule: the arc is "large" when the span exceeds 180°.
	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		fmtCoord(x1), fmtCoord(y1),
		fmtCoord(outerR), fmtCoord(outerR), largeArc,
		fmtCoord(x2), fmtCoord(y2),
		fmtCoord(x3), fmtCoord(y3),
		fmtCoord(innerR), fmtCoord(innerR), largeArc,
		fmtCoord(x4), fmtCoord(y4),
	)
}

// labelAnchor returns the point at the mid-angle, midway between the radii.
func labelAnchor(cx, cy, innerR, outerR, startAngle, endAngle float64) (x, y float64) {
	midAngle := (startAngle + endAngle) / 2
	midRad := midAngle * math.Pi / 180
	textRadius := (innerR + outerR) / 2
	return cx + textRadius*math.Cos(midRad), cy + textRadius*math.Sin(midRad)
}

// HourTick is one of the 24 hour labels placed around the outer radius.
type HourTick struct {
	Hour int
	X    float64
	Y    float64
}

// HourTicks places 24 hour labels at 15° intervals, hour 0 at 12 o'clock,
// independent of schedule content. radius is the label radius, typically
// the outer radius plus a margin.
func HourTicks(cx, cy, radius float64) []HourTick {
	ticks := make([]HourTick, 0, 24)
	for hour := 0; hour < 24; hour++ {
		angle := (float64(hour*15) + angleOffset) * math.Pi / 180
		ticks = append(ticks, HourTick{
			Hour: hour,
			X:    cx + radius*math.Cos(angle),
			Y:    cy + radius*math.Sin(angle),
		})
	}
	return ticks
}

// fmtCoord trims coordinates to two decimals to keep paths compact.
func fmtCoord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
