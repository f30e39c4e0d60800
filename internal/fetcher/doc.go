// Package fetcher retrieves scoreboard pages over HTTP with a bounded
// retry policy.
//
// Transient failures (transport errors, non-200 statuses) are retried up to
// three attempts with exponential backoff. A 403 is treated as the upstream
// blocking the client: retrying is pointless, so the fetch fails immediately
// and the caller moves on to the next date.
package fetcher
