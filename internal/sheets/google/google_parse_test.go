package google

import (
	"testing"
)

func header() []interface{} {
	return []interface{}{
		"Timestamp", "Date", "Item", "Amount",
		"Who paid?", "How is it split? (Paid by / Owed)", "Category", "Notes",
	}
}

func TestDecodeRecords(t *testing.T) {
	values := [][]interface{}{
		header(),
		{"2025-03-10 14:30:00", "2025-03-10", "Grocery", "150.50", "Bill", "50/50", "Food", ""},
		{"2025-03-11 09:00:00", "2025-03-11", "Gas", 40.0, "Mook", "60/40", "", "road trip"},
	}
	recs := decodeRecords(values)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	r := recs[0]
	if r.Item != "Grocery" || r.Amount.Cents != 15050 || r.Payer != "Bill" || r.SplitRatio != "50/50" || r.Category != "Food" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Date.IsZero() || r.Date.Year() != 2025 || r.Date.Month() != 3 || r.Date.Day() != 10 {
		t.Fatalf("unexpected date: %v", r.Date)
	}
	if r.Timestamp.IsZero() {
		t.Fatalf("timestamp not parsed")
	}
	if recs[1].Amount.Cents != 4000 {
		t.Fatalf("numeric cell not decoded: %+v", recs[1])
	}
}

func TestDecodeRecordsHeaderOrderIndependent(t *testing.T) {
	values := [][]interface{}{
		{"Amount", "Who paid?", "Item", "Date"},
		{"12.34", "Bill", "Coffee", "2025-01-05"},
	}
	recs := decodeRecords(values)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Amount.Cents != 1234 || recs[0].Payer != "Bill" || recs[0].Item != "Coffee" {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestDecodeRecordsBestEffort(t *testing.T) {
	values := [][]interface{}{
		header(),
		{"", "not-a-date", "Mystery", "oops", "Bill", "", "", ""},
		{"", "", "", "", "", "", "", ""}, // blank filler row
	}
	recs := decodeRecords(values)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record (blank row skipped), got %d", len(recs))
	}
	r := recs[0]
	if r.Amount.Cents != 0 {
		t.Fatalf("bad amount cell must decode to zero, got %d", r.Amount.Cents)
	}
	if !r.Date.IsZero() {
		t.Fatalf("bad date cell must stay zero, got %v", r.Date)
	}
}

func TestDecodeRecordsEmpty(t *testing.T) {
	if recs := decodeRecords(nil); recs != nil {
		t.Fatalf("expected nil for empty matrix")
	}
	if recs := decodeRecords([][]interface{}{header()}); recs != nil {
		t.Fatalf("expected nil for header-only matrix")
	}
}
