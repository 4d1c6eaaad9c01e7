package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSplitRatio marks a ratio string whose tokens are non-numeric,
// negative, or sum to zero. Callers fall back to EqualSplit rather than
// letting NaN reach the aggregates.
var ErrInvalidSplitRatio = errors.New("invalid split ratio")

type (
	// SplitRatio is a pair of non-negative weights dividing an expense
	// between the payer and the other party.
	SplitRatio struct {
		payer float64
		other float64
	}

	// SplitWeights are the two cent shares of a concrete amount. They
	// always sum to the amount exactly.
	SplitWeights struct {
		Payer Money
		Other Money
	}
)

// EqualSplit is the 50/50 default used when a record carries no ratio.
var EqualSplit = SplitRatio{payer: 1, other: 1}

// ParseSplitRatio parses free text like "60/40" into a SplitRatio.
// Empty input, or input without a "/" separator, yields EqualSplit: the
// ledger treats an unspecified split as an even one. Anything with a
// separator must be exactly two parseable non-negative numbers with a
// positive sum, otherwise ErrInvalidSplitRatio.
func ParseSplitRatio(raw string) (SplitRatio, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.Contains(raw, "/") {
		return EqualSplit, nil
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return SplitRatio{}, ErrInvalidSplitRatio
	}
	payer, err := parseWeight(parts[0])
	if err != nil {
		return SplitRatio{}, err
	}
	other, err := parseWeight(parts[1])
	if err != nil {
		return SplitRatio{}, err
	}
	if payer+other == 0 {
		return SplitRatio{}, ErrInvalidSplitRatio
	}
	return SplitRatio{payer: payer, other: other}, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, ErrInvalidSplitRatio
	}
	return w, nil
}

// Split divides amount between the two sides. The payer share is rounded
// half-up to a cent; the other side gets the remainder, so
// weights.Payer + weights.Other == amount holds exactly.
func (r SplitRatio) Split(amount Money) SplitWeights {
	payer := int64(math.Round(float64(amount.Cents) * r.payer / (r.payer + r.other)))
	return SplitWeights{
		Payer: Money{Cents: payer},
		Other: Money{Cents: amount.Cents - payer},
	}
}
