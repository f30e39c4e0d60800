package scoreboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nba-scores/internal/game"
)

// Structural class markers this extractor depends on. Any upstream change
// here is a hard compatibility break.
const (
	selDateCaption  = "h3.Card__Header__Title"
	selGame         = "section.Scoreboard"
	clsDayWrapper   = "Scoreboard--wrapper" // day-level container, not a game
	selPeriodLabels = ".ScoreboardScoreCell__Headings .ScoreboardScoreCell__Label"
	selTeam         = "li.ScoreboardScoreCell__Item"
	selTeamName     = ".ScoreCell__TeamName"
	selPeriodScores = ".ScoreboardScoreCell__Linescores .ScoreboardScoreCell__Value"
	selTotal        = ".ScoreCell__Score"
)

// totalsLabel marks the totals column in the period header row; it is not a
// period and never reaches the output header set.
const totalsLabel = "T"

// missing is the sentinel for absent team names and totals.
const missing = "N/A"

// Extract parses a scoreboard page and returns one line per team per game,
// in page order. The first team under a game is Away, the second Home,
// matching the page's fixed listing order. A page with no qualifying games
// (an off-day) yields an empty slice and no error.
//
// fallbackDate is used as the date label when the page carries no date
// caption; callers pass the date token the URL was built from.
func Extract(r io.Reader, fallbackDate string) ([]game.TeamLine, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	dateLabel := strings.TrimSpace(doc.Find(selDateCaption).First().Text())
	if dateLabel == "" {
		dateLabel = fallbackDate
	}

	lines := make([]game.TeamLine, 0)
	doc.Find(selGame).Each(func(_ int, sec *goquery.Selection) {
		if sec.HasClass(clsDayWrapper) {
			return
		}
		lines = append(lines, extractGame(sec, dateLabel)...)
	})
	return lines, nil
}

// extractGame pulls the shared period labels and both team lines out of one
// game section.
func extractGame(sec *goquery.Selection, dateLabel string) []game.TeamLine {
	labels := make([]string, 0, 5)
	sec.Find(selPeriodLabels).Each(func(_ int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Text())
		if label == totalsLabel {
			return
		}
		labels = append(labels, label)
	})

	lines := make([]game.TeamLine, 0, 2)
	sec.Find(selTeam).Each(func(i int, team *goquery.Selection) {
		loc := game.Away
		if i > 0 {
			loc = game.Home
		}

		name := strings.TrimSpace(team.Find(selTeamName).First().Text())
		if name == "" {
			name = missing
		}
		total := strings.TrimSpace(team.Find(selTotal).First().Text())
		if total == "" {
			total = missing
		}

		// The team's score row is read independently of the shared header
		// row, so the two sequences can disagree in length.
		scores := make([]string, 0, len(labels))
		team.Find(selPeriodScores).Each(func(_ int, s *goquery.Selection) {
			scores = append(scores, strings.TrimSpace(s.Text()))
		})

		lines = append(lines, game.TeamLine{
			Date:         dateLabel,
			Team:         name,
			Location:     loc,
			Total:        total,
			PeriodLabels: labels,
			PeriodScores: scores,
		})
	})
	return lines
}
