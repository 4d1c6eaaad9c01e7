package google

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"splitbook/internal/core"
	ports "splitbook/internal/sheets"
)

// decodeRecords converts a values matrix (as returned by the Sheets API)
// into typed records. Row 0 is the header row. Rows are decoded
// best-effort: a missing amount becomes zero and an unparseable date stays
// zero, so one bad cell never hides the rest of the ledger.
func decodeRecords(values [][]interface{}) []core.Record {
	if len(values) < 2 {
		return nil
	}
	headers := toStrings(values[0])
	idx := map[string]int{}
	for i, h := range headers {
		idx[h] = i
	}

	var out []core.Record
	for _, row := range values[1:] {
		cols := toStrings(row)
		rec := core.Record{
			Item:       cell(cols, idx, ports.HeaderItem),
			Payer:      cell(cols, idx, ports.HeaderPayer),
			SplitRatio: cell(cols, idx, ports.HeaderSplit),
			Category:   cell(cols, idx, ports.HeaderCategory),
			Notes:      cell(cols, idx, ports.HeaderNotes),
		}
		if rec.Item == "" && rec.Payer == "" && cell(cols, idx, ports.HeaderAmount) == "" {
			continue // blank filler row
		}
		if cents, ok := parseAmountToCents(cell(cols, idx, ports.HeaderAmount)); ok {
			rec.Amount = core.Money{Cents: cents}
		}
		if d, ok := parseDateCell(cell(cols, idx, ports.HeaderDate)); ok {
			rec.Date = d
		}
		if ts, ok := parseTimestampCell(cell(cols, idx, ports.HeaderTimestamp)); ok {
			rec.Timestamp = ts
		}
		out = append(out, rec)
	}
	return out
}

func cell(cols []string, idx map[string]int, header string) string {
	i, ok := idx[header]
	if !ok || i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

// parseAmountToCents accepts both decimal strings and the raw numbers the
// API returns for number-formatted cells.
func parseAmountToCents(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if cents, err := core.ParseDecimalToCents(s); err == nil {
		return cents, true
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64((f * 100.0) + 0.5), true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006",
	"01/02/2006",
	"2.1.2006",
}

func parseDateCell(s string) (core.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.Date{Time: t}, true
		}
	}
	return core.Date{}, false
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006 15:04:05",
}

func parseTimestampCell(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
