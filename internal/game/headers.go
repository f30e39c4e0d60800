package game

import (
	"sort"
	"strconv"
	"strings"
)

const overtimePrefix = "OT"

// ReconcileHeaders computes the ordered column set for a run from every
// period label observed across all extracted lines.
//
// Ordering: integer labels first in ascending numeric order ("1","2","3","4"),
// then overtime labels by numeric suffix ("OT" before "OT2" before "OT3").
// A bare "OT" counts as the first overtime; so does an unparsable suffix.
// Duplicates and empty labels are dropped. The result depends only on the
// set of labels, not on their input order.
func ReconcileHeaders(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	unique := make([]string, 0, len(labels))
	for _, label := range labels {
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		unique = append(unique, label)
	}

	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		aOT := strings.HasPrefix(a, overtimePrefix)
		bOT := strings.HasPrefix(b, overtimePrefix)
		if aOT != bOT {
			return bOT // regulation periods before overtime
		}
		if aOT {
			return overtimeNumber(a) < overtimeNumber(b)
		}
		an, aerr := strconv.Atoi(a)
		bn, berr := strconv.Atoi(b)
		if aerr != nil || berr != nil {
			// Non-numeric stragglers sort after numbers, alphabetically.
			if (aerr == nil) != (berr == nil) {
				return aerr == nil
			}
			return a < b
		}
		return an < bn
	})

	return unique
}

// overtimeNumber returns the ordinal of an overtime label: "OT" and any
// label with an unparsable suffix are the first overtime, "OT2" the second.
func overtimeNumber(label string) int {
	suffix := strings.TrimPrefix(label, overtimePrefix)
	if suffix == "" {
		return 1
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 1
	}
	return n
}
