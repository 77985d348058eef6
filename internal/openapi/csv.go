package openapi

import (
	"strconv"
	"strings"
)

// parseMetricRows parses the exported tabular payload. The format is a plain
// text table: the first non-blank line holds comma-separated column names,
// every following line is one row. Quoted fields and embedded commas are not
// supported upstream and are not handled here. A payload without at least a
// header and one data line yields zero rows.
func parseMetricRows(payload string) []MetricRow {
	rows := make([]MetricRow, 0)
	var headers []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headers == nil {
			headers = splitCells(line)
			continue
		}

		cells := splitCells(line)
		row := make(MetricRow, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = coerceCell(cells[i])
			} else {
				row[header] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// coerceCell applies the cell typing rule: empty, "null" and "undefined"
// become nil, anything parseable as a number becomes a float64, everything
// else stays a string.
func coerceCell(cell string) interface{} {
	switch cell {
	case "", "null", "undefined":
		return nil
	}
	if number, err := strconv.ParseFloat(cell, 64); err == nil {
		return number
	}
	return cell
}
