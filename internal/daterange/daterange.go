// Package daterange computes the descending sequence of calendar dates a
// scrape run visits.
//
// Dates are date-only values pinned to midnight UTC. The range defaults to
// the current season's opening night through yesterday: the current day is
// never scraped because its scoreboard may still be in progress.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// SeasonStart is the default first date of a run, the 2024-25 opening night.
const SeasonStart = "20241022"

// Token layout for scoreboard URLs and the date-label fallback.
const tokenLayout = "20060102"

// ErrInvalidRange reports a malformed start or end date token.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range from date tokens in "20060102" or "2006-01-02" form.
// An empty start token defaults to SeasonStart; an empty end token defaults
// to yesterday relative to now. Malformed tokens fail with ErrInvalidRange.
func New(startToken, endToken string, now func() time.Time) (Range, error) {
	if now == nil {
		now = time.Now
	}

	if startToken == "" {
		startToken = SeasonStart
	}
	start, err := parseToken(startToken)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start date %q", ErrInvalidRange, startToken)
	}

	var end time.Time
	if endToken == "" {
		end = truncate(now().UTC()).AddDate(0, 0, -1)
	} else {
		end, err = parseToken(endToken)
		if err != nil {
			return Range{}, fmt.Errorf("%w: end date %q", ErrInvalidRange, endToken)
		}
	}

	return Range{Start: start, End: end}, nil
}

// Descending returns every date from End down to Start, inclusive both ends.
// An inverted range (End before Start) yields an empty sequence.
func (r Range) Descending() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	dates := make([]time.Time, 0, days)
	for d := r.End; !d.Before(r.Start); d = d.AddDate(0, 0, -1) {
		dates = append(dates, d)
	}
	return dates
}

// Token formats a date as the YYYYMMDD token used in scoreboard URLs.
func Token(t time.Time) string {
	return t.Format(tokenLayout)
}

func parseToken(token string) (time.Time, error) {
	t, err := time.Parse(tokenLayout, token)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", token)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
