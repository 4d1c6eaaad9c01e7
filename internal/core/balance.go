package core

import "sort"

// ComputeBalance aggregates a snapshot of records into a UserSummary.
//
// With an empty targetUser it is the group view: TotalSpending is the sum of
// all amounts, Transactions the record count, and BalanceOwed always zero
// (the group as a whole owes nobody).
//
// With a targetUser it walks every record once. When the user is the payer,
// the full amount counts as cash fronted and the payer share of the split as
// their own responsibility. When somebody else paid, the other share of the
// split is added to their responsibility; the model assumes exactly one
// counterparty per record. The net balance is cash fronted minus
// responsibility: positive means the group owes the user.
//
// Payer comparison is exact and case-sensitive. Records with an invalid
// split ratio fall back to the 50/50 default; intake rejects such ratios, so
// this only applies to rows written outside the app. Transactions counts all
// records in the snapshot, involved or not.
func ComputeBalance(records []Record, targetUser string) UserSummary {
	if targetUser == "" {
		var total int64
		for _, rec := range records {
			total += rec.Amount.Cents
		}
		return UserSummary{
			TotalSpending: Money{Cents: total},
			Transactions:  len(records),
		}
	}

	var totalPaid, shareOfCost int64
	for _, rec := range records {
		ratio, err := ParseSplitRatio(rec.SplitRatio)
		if err != nil {
			ratio = EqualSplit
		}
		split := ratio.Split(rec.Amount)
		if rec.Payer == targetUser {
			totalPaid += rec.Amount.Cents
			shareOfCost += split.Payer.Cents
		} else {
			shareOfCost += split.Other.Cents
		}
	}

	return UserSummary{
		TotalSpending: Money{Cents: shareOfCost},
		Transactions:  len(records),
		BalanceOwed:   Money{Cents: totalPaid - shareOfCost},
	}
}

// Users returns the distinct non-empty payers in the snapshot, sorted
// ascending. The result is never nil so it serializes as a JSON array.
func Users(records []Record) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, rec := range records {
		if rec.Payer == "" {
			continue
		}
		if _, ok := seen[rec.Payer]; ok {
			continue
		}
		seen[rec.Payer] = struct{}{}
		out = append(out, rec.Payer)
	}
	sort.Strings(out)
	return out
}
