package game

// HeaderRow builds the output table's header row: the fixed leading columns,
// the reconciled period headers, then the total column.
func HeaderRow(headers []string) []string {
	row := make([]string, 0, len(headers)+4)
	row = append(row, "Date", "Team", "Location")
	row = append(row, headers...)
	row = append(row, "Total")
	return row
}

// BuildRow produces one fixed-width output row for a team line. Columns for
// periods the team's game never played are left empty.
func BuildRow(line TeamLine, headers []string) []string {
	scores := line.Scores()
	row := make([]string, 0, len(headers)+4)
	row = append(row, line.Date, line.Team, line.Location.String())
	for _, h := range headers {
		row = append(row, scores[h])
	}
	row = append(row, line.Total)
	return row
}

// BuildTable produces one output row per team line, preserving input order.
func BuildTable(lines []TeamLine, headers []string) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, BuildRow(line, headers))
	}
	return rows
}

// AllPeriodLabels collects every period label across the given lines, in
// encounter order, for header reconciliation.
func AllPeriodLabels(lines []TeamLine) []string {
	labels := make([]string, 0, len(lines)*4)
	for _, line := range lines {
		labels = append(labels, line.PeriodLabels...)
	}
	return labels
}
