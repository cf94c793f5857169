package pulse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pulse-insights/internal/model"
	"pulse-insights/pkg/utils"
)

// ------------------- Record Store Reader -------------------

// ReadRows parses the persisted pulse store into ordered field-maps, one per
// data row. The first row is the header. Fields containing commas, doubled
// quotes or newlines must survive intact; both \n and \r\n terminators are
// accepted. A short row is padded with empty trailing fields, a fully empty
// row is skipped, and a row with broken quoting is skipped rather than
// aborting the read.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1 // rows may be short, we pad below

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.ReplaceAll(h, `"`, ""))
	}

	var rows []map[string]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			// Broken quoting in one row must not lose the rest of the store.
			continue
		}
		if isEmptyRow(record) {
			continue
		}

		rowMap := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				rowMap[h] = record[i]
			} else {
				rowMap[h] = ""
			}
		}
		rows = append(rows, rowMap)
	}
}

func isEmptyRow(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ParseRecords converts raw rows into PulseRecords. Rows with an unparseable
// timestamp or a rating outside [1,5] are dropped, never propagated: a bad
// submission must not take the whole report down.
func ParseRecords(rows []map[string]string) []model.PulseRecord {
	records := make([]model.PulseRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := utils.ParseDate(row["timestamp"])
		if err != nil {
			continue
		}
		rating, err := strconv.Atoi(strings.TrimSpace(row["rating_1to5"]))
		if err != nil || rating < 1 || rating > 5 {
			continue
		}
		records = append(records, model.PulseRecord{
			Timestamp:   ts,
			TeamID:      row["team_id"],
			EmpHash:     row["emp_hash"],
			Rating:      rating,
			CommentText: row["comment_text"],
		})
	}
	return records
}
