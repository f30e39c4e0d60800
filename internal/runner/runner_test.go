package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/nba-scores/internal/daterange"
	"github.com/pfrederiksen/nba-scores/internal/fetcher"
	"github.com/pfrederiksen/nba-scores/internal/game"
	"github.com/pfrederiksen/nba-scores/internal/scoreboard"
)

// gamePage renders a minimal scoreboard page with one game in the markup
// the extractor expects.
func gamePage(labels []string, away, home string, awayScores, homeScores []string, awayTotal, homeTotal string) string {
	var b strings.Builder
	b.WriteString(`<html><body><section class="Scoreboard Scoreboard--wrapper">`)
	b.WriteString(`<section class="Scoreboard"><div class="ScoreboardScoreCell">`)
	b.WriteString(`<div class="ScoreboardScoreCell__Headings">`)
	for _, l := range labels {
		fmt.Fprintf(&b, `<div class="ScoreboardScoreCell__Label">%s</div>`, l)
	}
	b.WriteString(`<div class="ScoreboardScoreCell__Label">T</div></div>`)
	b.WriteString(`<ul class="ScoreboardScoreCell__Competitors">`)
	for i, team := range []string{away, home} {
		scores := awayScores
		total := awayTotal
		if i == 1 {
			scores = homeScores
			total = homeTotal
		}
		b.WriteString(`<li class="ScoreboardScoreCell__Item">`)
		fmt.Fprintf(&b, `<div class="ScoreCell__TeamName">%s</div>`, team)
		b.WriteString(`<div class="ScoreboardScoreCell__Linescores">`)
		for _, s := range scores {
			fmt.Fprintf(&b, `<div class="ScoreboardScoreCell__Value">%s</div>`, s)
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div class="ScoreCell__Score">%s</div></li>`, total)
	}
	b.WriteString(`</ul></div></section></section></body></html>`)
	return b.String()
}

const offDayPage = `<html><body><section class="Scoreboard Scoreboard--wrapper"></section></body></html>`

func newTestRunner(fetch func(ctx context.Context, url string) (string, error)) (*Runner, *[]time.Duration) {
	sleeps := make([]time.Duration, 0)
	r := &Runner{
		baseURL: "",
		fetch:   fetch,
		extract: scoreboard.Extract,
		sleep:   func(d time.Duration) { sleeps = append(sleeps, d) },
		rng:     rand.New(rand.NewSource(1)),
	}
	return r, &sleeps
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	r, err := daterange.New(start, end, nil)
	if err != nil {
		t.Fatalf("building range: %v", err)
	}
	return r
}

func TestRunTwoDayScenario(t *testing.T) {
	// Day 2 (visited first, descending): regulation game plus one overtime
	// period. Day 1: a two-period game, so its rows need empty filler cells.
	pages := map[string]string{
		"20240102": gamePage([]string{"1", "2", "3", "4", "OT"}, "C", "D",
			[]string{"20", "21", "22", "23", "10"}, []string{"19", "22", "21", "24", "8"}, "96", "94"),
		"20240101": gamePage([]string{"1", "2"}, "A", "B",
			[]string{"20", "22"}, []string{"18", "19"}, "42", "37"),
	}

	r, _ := newTestRunner(func(ctx context.Context, url string) (string, error) {
		return pages[url], nil
	})

	result := r.Run(context.Background(), mustRange(t, "20240101", "20240102"))

	wantHeader := []string{"Date", "Team", "Location", "1", "2", "3", "4", "OT", "Total"}
	if !reflect.DeepEqual(result.Header, wantHeader) {
		t.Errorf("header = %v, want %v", result.Header, wantHeader)
	}
	if len(result.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(result.Rows))
	}

	// Descending order: day 2's teams come first.
	if result.Rows[0][1] != "C" || result.Rows[2][1] != "A" {
		t.Errorf("rows not in date-descending order: %v", result.Rows)
	}

	teamA := result.Rows[2]
	want := []string{"20240101", "A", "Away", "20", "22", "", "", "", "42"}
	if !reflect.DeepEqual(teamA, want) {
		t.Errorf("team A row = %v, want %v", teamA, want)
	}

	if result.Fetched != 2 || result.Failed != 0 || result.Skipped != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/0/0", result.Fetched, result.Failed, result.Skipped)
	}
}

func TestRunContinuesPastFailedDates(t *testing.T) {
	r, _ := newTestRunner(func(ctx context.Context, url string) (string, error) {
		switch url {
		case "20240103":
			return "", fmt.Errorf("%w after 3 attempts", fetcher.ErrExhausted)
		case "20240102":
			return "", fetcher.ErrBlocked
		default:
			return gamePage([]string{"1", "2"}, "A", "B",
				[]string{"10", "11"}, []string{"12", "13"}, "21", "25"), nil
		}
	})

	result := r.Run(context.Background(), mustRange(t, "20240101", "20240103"))

	if result.Failed != 2 {
		t.Errorf("expected 2 failed dates, got %d", result.Failed)
	}
	if result.Fetched != 1 {
		t.Errorf("expected 1 fetched date, got %d", result.Fetched)
	}
	if len(result.Rows) != 2 {
		t.Errorf("expected the surviving date's 2 rows, got %d", len(result.Rows))
	}
}

func TestRunCountsOffDaysAsSkips(t *testing.T) {
	r, _ := newTestRunner(func(ctx context.Context, url string) (string, error) {
		return offDayPage, nil
	})

	result := r.Run(context.Background(), mustRange(t, "20240101", "20240102"))

	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped dates, got %d", result.Skipped)
	}
	if len(result.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(result.Rows))
	}
	// An empty run still has the fixed columns.
	want := []string{"Date", "Team", "Location", "Total"}
	if !reflect.DeepEqual(result.Header, want) {
		t.Errorf("header = %v, want %v", result.Header, want)
	}
}

func TestRunEmptyRangeProducesEmptyTable(t *testing.T) {
	fetches := 0
	r, sleeps := newTestRunner(func(ctx context.Context, url string) (string, error) {
		fetches++
		return offDayPage, nil
	})

	result := r.Run(context.Background(), daterange.Range{
		Start: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	if fetches != 0 {
		t.Errorf("expected no fetches for an inverted range, got %d", fetches)
	}
	if len(result.Rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(result.Rows))
	}
	if len(*sleeps) != 0 {
		t.Errorf("expected no delays, got %d", len(*sleeps))
	}
}

func TestRunSleepsBetweenDatesOnly(t *testing.T) {
	r, sleeps := newTestRunner(func(ctx context.Context, url string) (string, error) {
		return offDayPage, nil
	})

	r.Run(context.Background(), mustRange(t, "20240101", "20240103"))

	if len(*sleeps) != 2 {
		t.Fatalf("expected 2 inter-date delays for 3 dates, got %d", len(*sleeps))
	}
	for _, d := range *sleeps {
		if d < time.Second || d >= 5*time.Second {
			t.Errorf("delay %v outside [1s, 5s)", d)
		}
	}
}

func TestRunRequestsExpectedURLs(t *testing.T) {
	urls := make([]string, 0)
	r, _ := newTestRunner(func(ctx context.Context, url string) (string, error) {
		urls = append(urls, url)
		return offDayPage, nil
	})
	r.baseURL = BaseURL

	r.Run(context.Background(), mustRange(t, "20240101", "20240102"))

	want := []string{
		BaseURL + "20240102",
		BaseURL + "20240101",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestRunParseErrorCountsAsFailure(t *testing.T) {
	// goquery tolerates malformed markup, so force the error path with an
	// extract fake instead.
	r, _ := newTestRunner(func(ctx context.Context, url string) (string, error) {
		return "<html></html>", nil
	})
	r.extract = func(_ io.Reader, _ string) ([]game.TeamLine, error) {
		return nil, errors.New("parsing page: truncated")
	}

	result := r.Run(context.Background(), mustRange(t, "20240101", "20240101"))
	if result.Failed != 1 {
		t.Errorf("expected parse failure to count as failed date, got %d", result.Failed)
	}
	if result.Fetched != 0 {
		t.Errorf("expected unparsable date not counted as fetched, got %d", result.Fetched)
	}
}
