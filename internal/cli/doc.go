// Package cli implements the nba-scores command line interface.
//
// The command scrapes daily scoreboard pages for a date range and writes
// the extracted per-team, per-period scores to a CSV file. Both range
// boundaries are optional: the start defaults to the season opener and the
// end to yesterday.
package cli
