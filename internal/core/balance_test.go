package core

import (
	"reflect"
	"testing"
)

func rec(payer string, cents int64, ratio string) Record {
	return Record{
		Date:       NewDate(2025, 3, 10),
		Item:       "test",
		Amount:     Money{Cents: cents},
		Payer:      payer,
		SplitRatio: ratio,
	}
}

func TestComputeBalanceGroupView(t *testing.T) {
	records := []Record{
		rec("Alice", 10000, "50/50"),
		rec("Bob", 2500, "60/40"),
	}
	got := ComputeBalance(records, "")
	if got.TotalSpending.Cents != 12500 {
		t.Fatalf("expected total 12500, got %d", got.TotalSpending.Cents)
	}
	if got.Transactions != 2 {
		t.Fatalf("expected 2 transactions, got %d", got.Transactions)
	}
	if got.BalanceOwed.Cents != 0 {
		t.Fatalf("group view balance must be zero, got %d", got.BalanceOwed.Cents)
	}
}

func TestComputeBalanceEvenSplit(t *testing.T) {
	// One 100.00 record paid by Alice, split 50/50.
	records := []Record{rec("Alice", 10000, "50/50")}

	alice := ComputeBalance(records, "Alice")
	if alice.TotalSpending.Cents != 5000 {
		t.Fatalf("Alice share: expected 5000, got %d", alice.TotalSpending.Cents)
	}
	if alice.BalanceOwed.Cents != 5000 {
		t.Fatalf("Alice balance: expected 5000, got %d", alice.BalanceOwed.Cents)
	}

	bob := ComputeBalance(records, "Bob")
	if bob.TotalSpending.Cents != 5000 {
		t.Fatalf("Bob share: expected 5000, got %d", bob.TotalSpending.Cents)
	}
	if bob.BalanceOwed.Cents != -5000 {
		t.Fatalf("Bob balance: expected -5000, got %d", bob.BalanceOwed.Cents)
	}
}

func TestComputeBalanceUnevenSplit(t *testing.T) {
	// 100.00 paid by Alice, split 60/40: her responsibility is 60.00, so the
	// group owes her 40.00.
	records := []Record{rec("Alice", 10000, "60/40")}
	alice := ComputeBalance(records, "Alice")
	if alice.TotalSpending.Cents != 6000 {
		t.Fatalf("expected share 6000, got %d", alice.TotalSpending.Cents)
	}
	if alice.BalanceOwed.Cents != 4000 {
		t.Fatalf("expected balance 4000, got %d", alice.BalanceOwed.Cents)
	}
	bob := ComputeBalance(records, "Bob")
	if bob.TotalSpending.Cents != 4000 || bob.BalanceOwed.Cents != -4000 {
		t.Fatalf("Bob: expected (4000, -4000), got (%d, %d)",
			bob.TotalSpending.Cents, bob.BalanceOwed.Cents)
	}
}

func TestComputeBalanceMissingRatioDefaultsEven(t *testing.T) {
	for _, amount := range []int64{10000, 7301, 1} {
		records := []Record{rec("Alice", amount, "")}
		alice := ComputeBalance(records, "Alice")
		bob := ComputeBalance(records, "Bob")
		if alice.TotalSpending.Cents+bob.TotalSpending.Cents != amount {
			t.Fatalf("amount %d: shares %d+%d do not cover it", amount,
				alice.TotalSpending.Cents, bob.TotalSpending.Cents)
		}
	}
}

func TestComputeBalanceInvalidRatioFallsBack(t *testing.T) {
	records := []Record{rec("Alice", 10000, "garbage/ratio")}
	alice := ComputeBalance(records, "Alice")
	if alice.TotalSpending.Cents != 5000 || alice.BalanceOwed.Cents != 5000 {
		t.Fatalf("expected even-split fallback, got (%d, %d)",
			alice.TotalSpending.Cents, alice.BalanceOwed.Cents)
	}
}

func TestComputeBalanceTransactionsCountWholeWindow(t *testing.T) {
	// Transactions counts all records in the snapshot, not just the ones
	// the user participated in as payer.
	records := []Record{
		rec("Alice", 100, "50/50"),
		rec("Bob", 100, "50/50"),
		rec("Bob", 100, "50/50"),
	}
	got := ComputeBalance(records, "Alice")
	if got.Transactions != 3 {
		t.Fatalf("expected 3 transactions, got %d", got.Transactions)
	}
}

func TestComputeBalancePayerMatchIsCaseSensitive(t *testing.T) {
	records := []Record{rec("alice", 10000, "50/50")}
	got := ComputeBalance(records, "Alice")
	if got.BalanceOwed.Cents != -5000 {
		t.Fatalf("\"Alice\" must not match payer \"alice\"; got balance %d", got.BalanceOwed.Cents)
	}
}

func TestComputeBalanceMissingAmount(t *testing.T) {
	records := []Record{rec("Alice", 0, "50/50")}
	got := ComputeBalance(records, "Alice")
	if got.TotalSpending.Cents != 0 || got.BalanceOwed.Cents != 0 || got.Transactions != 1 {
		t.Fatalf("zero-amount record: got %+v", got)
	}
}

func TestComputeBalanceConservesTotalAcrossTwoUsers(t *testing.T) {
	records := []Record{
		rec("Alice", 10000, "50/50"),
		rec("Bob", 4000, "60/40"),
		rec("Alice", 333, ""),
		rec("Bob", 101, "70/30"),
	}
	var total int64
	for _, r := range records {
		total += r.Amount.Cents
	}
	alice := ComputeBalance(records, "Alice")
	bob := ComputeBalance(records, "Bob")
	if alice.TotalSpending.Cents+bob.TotalSpending.Cents != total {
		t.Fatalf("shares %d+%d != total %d",
			alice.TotalSpending.Cents, bob.TotalSpending.Cents, total)
	}
	if alice.BalanceOwed.Cents+bob.BalanceOwed.Cents != 0 {
		t.Fatalf("balances %d and %d do not cancel",
			alice.BalanceOwed.Cents, bob.BalanceOwed.Cents)
	}
}

func TestUsers(t *testing.T) {
	records := []Record{
		rec("Bob", 1, ""),
		rec("Alice", 1, ""),
		rec("Bob", 1, ""),
		rec("", 1, ""),
	}
	got := Users(records)
	want := []string{"Alice", "Bob"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	empty := Users(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice for empty snapshot, got %#v", empty)
	}
}
