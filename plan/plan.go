// Package plan maps a rendered message bitmap onto calendar dates. Each
// bitmap column is one week of the contribution graph, each row one day
// of that week, Sunday first. The plan fixes the Sunday that anchors
// column 0 and expands every on pixel into the date it lands on.
package plan

import (
	"time"

	"github.com/jdk2588/pixelpush/font"
)

// DateFormat is the civil-date layout used throughout the tool.
const DateFormat = "2006-01-02"

// Options configure a plan. Now stands in for the current date so the
// mapping is testable; a zero Start right-aligns the message against
// Now's week instead of using an explicit origin.
type Options struct {
	Now   time.Time
	Start time.Time
}

// Plan is the computed mapping for one bitmap.
type Plan struct {
	Bitmap font.Bitmap

	// Origin is the Sunday aligned with column 0.
	Origin time.Time

	// Requested is the caller-supplied origin before snapping, zero
	// when no explicit origin was given.
	Requested time.Time

	// Snapped reports that Requested was not a Sunday and Origin was
	// moved back to the preceding one.
	Snapped bool
}

// WeekStart returns the Sunday of the week containing d, at midnight UTC.
func WeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// New computes the plan for bm. Without an explicit start the origin is
// placed so the rightmost column falls on the week containing opts.Now.
func New(bm font.Bitmap, opts Options) Plan {
	p := Plan{Bitmap: bm}
	if opts.Start.IsZero() {
		p.Origin = WeekStart(opts.Now).AddDate(0, 0, -7*(bm.Width()-1))
		return p
	}
	p.Requested = time.Date(opts.Start.Year(), opts.Start.Month(), opts.Start.Day(), 0, 0, 0, 0, time.UTC)
	p.Origin = WeekStart(p.Requested)
	p.Snapped = !p.Origin.Equal(p.Requested)
	return p
}

// End returns the Sunday of the rightmost column's week.
func (p Plan) End() time.Time {
	return p.Origin.AddDate(0, 0, 7*(p.Bitmap.Width()-1))
}

// Dates returns one date per on pixel, column-major: week by week left
// to right, Sunday to Saturday within each week. The order is fixed
// because it is also the order commits are created in.
func (p Plan) Dates() []time.Time {
	var dates []time.Time
	for col := 0; col < p.Bitmap.Width(); col++ {
		week := p.Origin.AddDate(0, 0, 7*col)
		for row := 0; row < font.Rows; row++ {
			if p.Bitmap.On(row, col) {
				dates = append(dates, week.AddDate(0, 0, row))
			}
		}
	}
	return dates
}
