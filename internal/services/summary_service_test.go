package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"splitbook/internal/core"
	"splitbook/internal/sheets/memory"
)

func mustDate(t *testing.T, value string) core.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return core.Date{Time: parsed}
}

type failingSource struct{}

func (failingSource) Records(context.Context) ([]core.Record, error) {
	return nil, errors.New("backend down")
}

func TestMonthlySummaryWindowsByCalendarMonth(t *testing.T) {
	store := memory.NewWithRecords([]core.Record{
		{Date: mustDate(t, "2024-03-05"), Item: "groceries", Amount: core.Money{Cents: 10000}, Payer: "alice"},
		{Date: mustDate(t, "2024-03-20"), Item: "utilities", Amount: core.Money{Cents: 6000}, Payer: "bob"},
		{Date: mustDate(t, "2024-02-28"), Item: "old rent", Amount: core.Money{Cents: 90000}, Payer: "alice"},
	})
	svc := NewSummaryService(store).WithClock(func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	})

	got := svc.MonthlySummary(context.Background(), "alice")
	if got.Transactions != 2 {
		t.Fatalf("transactions = %d, want 2", got.Transactions)
	}
	// alice paid 100.00 of a 160.00 month, her share is 80.00
	if got.TotalSpending.Cents != 8000 {
		t.Fatalf("total spending = %d, want 8000", got.TotalSpending.Cents)
	}
	if got.BalanceOwed.Cents != 2000 {
		t.Fatalf("balance owed = %d, want 2000", got.BalanceOwed.Cents)
	}
}

func TestMonthlySummaryExcludesUndatedRecords(t *testing.T) {
	store := memory.NewWithRecords([]core.Record{
		{Item: "mystery", Amount: core.Money{Cents: 5000}, Payer: "alice"},
		{Date: mustDate(t, "2024-03-05"), Item: "groceries", Amount: core.Money{Cents: 10000}, Payer: "alice"},
	})
	svc := NewSummaryService(store).WithClock(func() time.Time {
		return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	})

	got := svc.MonthlySummary(context.Background(), "")
	if got.Transactions != 1 {
		t.Fatalf("transactions = %d, want 1", got.Transactions)
	}
	if got.TotalSpending.Cents != 10000 {
		t.Fatalf("total spending = %d, want 10000", got.TotalSpending.Cents)
	}
}

func TestAllTimeSummaryIncludesUndatedRecords(t *testing.T) {
	store := memory.NewWithRecords([]core.Record{
		{Item: "mystery", Amount: core.Money{Cents: 5000}, Payer: "alice"},
		{Date: mustDate(t, "2024-03-05"), Item: "groceries", Amount: core.Money{Cents: 10000}, Payer: "bob"},
	})
	svc := NewSummaryService(store)

	got := svc.AllTimeSummary(context.Background(), "")
	if got.Transactions != 2 {
		t.Fatalf("transactions = %d, want 2", got.Transactions)
	}
	if got.TotalSpending.Cents != 15000 {
		t.Fatalf("total spending = %d, want 15000", got.TotalSpending.Cents)
	}
	if got.BalanceOwed.Cents != 0 {
		t.Fatalf("group balance = %d, want 0", got.BalanceOwed.Cents)
	}
}

func TestSummaryFailSoftOnSourceError(t *testing.T) {
	svc := NewSummaryService(failingSource{})

	if got := svc.MonthlySummary(context.Background(), "alice"); got != (core.UserSummary{}) {
		t.Fatalf("monthly summary on error = %+v, want zero", got)
	}
	if got := svc.AllTimeSummary(context.Background(), "alice"); got != (core.UserSummary{}) {
		t.Fatalf("all-time summary on error = %+v, want zero", got)
	}
	if got := svc.Users(context.Background()); len(got) != 0 {
		t.Fatalf("users on error = %v, want empty", got)
	}
	if got := svc.Recent(context.Background(), 5); len(got) != 0 {
		t.Fatalf("recent on error = %v, want empty", got)
	}
}

func TestUsersSortedDistinct(t *testing.T) {
	store := memory.NewWithRecords([]core.Record{
		{Item: "a", Amount: core.Money{Cents: 100}, Payer: "carol"},
		{Item: "b", Amount: core.Money{Cents: 100}, Payer: "alice"},
		{Item: "c", Amount: core.Money{Cents: 100}, Payer: "carol"},
	})
	svc := NewSummaryService(store)

	got := svc.Users(context.Background())
	want := []string{"alice", "carol"}
	if len(got) != len(want) {
		t.Fatalf("users = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("users = %v, want %v", got, want)
		}
	}
}

func TestRecentNewestFirstAndLimited(t *testing.T) {
	records := make([]core.Record, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, core.Record{
			Date:   mustDate(t, "2024-03-01"),
			Item:   string(rune('a' + i)),
			Amount: core.Money{Cents: int64(100 * (i + 1))},
			Payer:  "alice",
		})
	}
	svc := NewSummaryService(memory.NewWithRecords(records))

	got := svc.Recent(context.Background(), 0)
	if len(got) != DefaultRecentLimit {
		t.Fatalf("len = %d, want default %d", len(got), DefaultRecentLimit)
	}
	if got[0].Item != "o" {
		t.Fatalf("first item = %q, want newest %q", got[0].Item, "o")
	}
	if got[len(got)-1].Item != "f" {
		t.Fatalf("last item = %q, want %q", got[len(got)-1].Item, "f")
	}
	if got[0].Date == "" {
		t.Fatalf("date missing from view")
	}
	if _, err := time.Parse(time.RFC3339, got[0].Date); err != nil {
		t.Fatalf("date %q not RFC 3339: %v", got[0].Date, err)
	}
}

func TestRecentUsesConfiguredPageSize(t *testing.T) {
	records := make([]core.Record, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, core.Record{
			Date:   mustDate(t, "2024-03-01"),
			Item:   string(rune('a' + i)),
			Amount: core.Money{Cents: 100},
			Payer:  "alice",
		})
	}
	svc := NewSummaryService(memory.NewWithRecords(records)).WithRecentLimit(3)

	if got := svc.Recent(context.Background(), 0); len(got) != 3 {
		t.Fatalf("len = %d, want configured 3", len(got))
	}
	// An explicit limit still wins over the configured page size
	if got := svc.Recent(context.Background(), 5); len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	// Non-positive configuration keeps the default
	svc = NewSummaryService(memory.NewWithRecords(records)).WithRecentLimit(0)
	if got := svc.Recent(context.Background(), 0); len(got) != DefaultRecentLimit {
		t.Fatalf("len = %d, want default %d", len(got), DefaultRecentLimit)
	}
}

func TestRecentCapsLimit(t *testing.T) {
	svc := NewSummaryService(memory.New())
	if got := svc.Recent(context.Background(), 10_000); len(got) != 0 {
		t.Fatalf("recent on empty store = %v, want empty", got)
	}
}
