package runner

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pfrederiksen/nba-scores/internal/daterange"
	"github.com/pfrederiksen/nba-scores/internal/fetcher"
	"github.com/pfrederiksen/nba-scores/internal/game"
	"github.com/pfrederiksen/nba-scores/internal/logger"
	"github.com/pfrederiksen/nba-scores/internal/scoreboard"
)

// BaseURL is the daily scoreboard endpoint; the date token is appended.
const BaseURL = "https://www.espn.com/nba/scoreboard/_/date/"

// Politeness delay bounds between page visits.
const (
	minDelay    = 1 * time.Second
	delaySpread = 4 * time.Second
)

// Runner orchestrates one scrape run. The function fields default to the
// real implementations; tests substitute fakes.
type Runner struct {
	baseURL string
	fetch   func(ctx context.Context, url string) (string, error)
	extract func(r io.Reader, fallbackDate string) ([]game.TeamLine, error)
	sleep   func(d time.Duration)
	rng     *rand.Rand
}

// Result holds one run's fully built table and its per-date outcome counts.
type Result struct {
	Header  []string
	Rows    [][]string
	Fetched int // pages fetched and extracted
	Failed  int // dates abandoned after fetch failure
	Skipped int // fetched pages with no games (off-days)
}

// New creates a Runner backed by the given fetcher.
func New(f *fetcher.Fetcher) *Runner {
	return &Runner{
		baseURL: BaseURL,
		fetch:   f.FetchPage,
		extract: scoreboard.Extract,
		sleep:   time.Sleep,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run visits every date in the range in descending order and returns the
// accumulated score table. Per-date failures are logged and skipped; Run
// itself cannot fail, it only produces a smaller table.
func (r *Runner) Run(ctx context.Context, dates daterange.Range) *Result {
	sequence := dates.Descending()
	result := &Result{}
	lines := make([]game.TeamLine, 0)

	logger.Info("starting run", logger.Fields{
		"start": daterange.Token(dates.Start),
		"end":   daterange.Token(dates.End),
		"dates": len(sequence),
	})

	for i, date := range sequence {
		token := daterange.Token(date)
		url := r.baseURL + token

		start := time.Now()
		body, err := r.fetch(ctx, url)
		logger.RecordTiming("fetch", time.Since(start))

		switch {
		case errors.Is(err, fetcher.ErrBlocked):
			result.Failed++
			logger.IncrCounter("pages.blocked")
			logger.Warn("date blocked, moving on", logger.Fields{"date": token}, err)
		case err != nil:
			result.Failed++
			logger.IncrCounter("pages.failed")
			logger.Warn("date failed, moving on", logger.Fields{"date": token}, err)
		default:
			extracted, extractErr := r.extract(strings.NewReader(body), token)
			if extractErr != nil {
				result.Failed++
				logger.IncrCounter("pages.failed")
				logger.Warn("date unparsable, moving on", logger.Fields{"date": token}, extractErr)
				break
			}
			result.Fetched++
			logger.IncrCounter("pages.fetched")
			if len(extracted) == 0 {
				// Off-days are expected during a season.
				result.Skipped++
				logger.IncrCounter("dates.skipped")
				logger.Info("no games on date", logger.Fields{"date": token})
			} else {
				lines = append(lines, extracted...)
				logger.Debug("date extracted", logger.Fields{
					"date":  token,
					"lines": len(extracted),
				})
			}
		}

		if i < len(sequence)-1 {
			r.sleep(r.politenessDelay())
		}
	}

	headers := game.ReconcileHeaders(game.AllPeriodLabels(lines))
	result.Header = game.HeaderRow(headers)
	result.Rows = game.BuildTable(lines, headers)

	logger.Info("run complete", logger.Fields{
		"rows":    len(result.Rows),
		"periods": len(headers),
		"fetched": result.Fetched,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	})
	return result
}

// politenessDelay returns a uniformly random wait in [1s, 5s).
func (r *Runner) politenessDelay() time.Duration {
	return minDelay + time.Duration(r.rng.Float64()*float64(delaySpread))
}
