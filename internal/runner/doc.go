// Package runner drives a full scrape: the descending date loop, per-date
// fetch and extraction, the politeness delay between pages, and the final
// reshaping of accumulated lines into the output table.
//
// Dates are processed strictly one at a time. A failed or blocked date is
// logged and skipped, never fatal; partial results beat none. The built
// table is returned to the caller, which owns persistence, so a write
// failure stays distinguishable from a computation failure.
package runner
