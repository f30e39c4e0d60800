// Package scoreboard extracts per-game, per-team, per-period score lines
// from a daily scoreboard page.
//
// The extraction is tied to one page layout and keyed entirely off its
// structural class markers. Games vary in column count (overtime adds
// periods), so each extracted line carries its own label and score
// sequences; reconciling those into a fixed table is the game package's job.
// Missing sub-elements degrade to sentinel values rather than failing the
// enclosing game or page.
package scoreboard
