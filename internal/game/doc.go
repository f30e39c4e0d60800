// Package game provides the domain types for extracted scoreboard data.
//
// The game package models one team's line in one game (date, name, home/away
// position, per-period scores, total) and turns a run's worth of those lines
// into a fixed-width table: period labels observed across all games are
// reconciled into a single ordered header set, and each line is padded with
// empty cells for periods its game never played.
package game
