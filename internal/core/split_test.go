package core

import (
	"errors"
	"testing"
)

func TestParseSplitRatioDefaults(t *testing.T) {
	// No separator means the even split, never an error.
	for _, in := range []string{"", "   ", "50-50", "half"} {
		r, err := ParseSplitRatio(in)
		if err != nil {
			t.Fatalf("%q expected default split, got error %v", in, err)
		}
		if r != EqualSplit {
			t.Fatalf("%q expected EqualSplit, got %+v", in, r)
		}
	}
}

func TestParseSplitRatioInvalid(t *testing.T) {
	cases := []string{"abc/40", "60/xyz", "0/0", "1/2/3", "-1/2", "1/-2", "/", "60/"}
	for _, in := range cases {
		if _, err := ParseSplitRatio(in); !errors.Is(err, ErrInvalidSplitRatio) {
			t.Fatalf("%q expected ErrInvalidSplitRatio, got %v", in, err)
		}
	}
}

func TestSplitShares(t *testing.T) {
	cases := []struct {
		raw          string
		amount       int64
		payer, other int64
	}{
		{"50/50", 10000, 5000, 5000},
		{"60/40", 10000, 6000, 4000},
		{"70/30", 10000, 7000, 3000},
		{"", 10000, 5000, 5000},
		{"50/50", 101, 51, 50}, // odd cent goes to the payer side
		{"1/2", 100, 33, 67},
		{"100/0", 500, 500, 0},
		{"0/100", 500, 0, 500},
	}
	for _, tc := range cases {
		r, err := ParseSplitRatio(tc.raw)
		if err != nil {
			t.Fatalf("%q unexpected error: %v", tc.raw, err)
		}
		w := r.Split(Money{Cents: tc.amount})
		if w.Payer.Cents != tc.payer || w.Other.Cents != tc.other {
			t.Fatalf("%q on %d: got (%d, %d), want (%d, %d)",
				tc.raw, tc.amount, w.Payer.Cents, w.Other.Cents, tc.payer, tc.other)
		}
	}
}

func TestSplitSharesSumToAmount(t *testing.T) {
	ratios := []string{"50/50", "60/40", "1/3", "33/67", "99/1", "2.5/7.5"}
	amounts := []int64{0, 1, 99, 100, 101, 12345, 99999}
	for _, raw := range ratios {
		r, err := ParseSplitRatio(raw)
		if err != nil {
			t.Fatalf("%q unexpected error: %v", raw, err)
		}
		for _, a := range amounts {
			w := r.Split(Money{Cents: a})
			if w.Payer.Cents+w.Other.Cents != a {
				t.Fatalf("%q on %d: shares %d+%d do not sum to amount",
					raw, a, w.Payer.Cents, w.Other.Cents)
			}
			if w.Payer.Cents < 0 || w.Other.Cents < 0 {
				t.Fatalf("%q on %d: negative share (%d, %d)", raw, a, w.Payer.Cents, w.Other.Cents)
			}
		}
	}
}

func TestSplitNormalizesWeights(t *testing.T) {
	// "3/2" and "60/40" are the same ratio after normalization
	for _, raw := range []string{"3/2", "60/40"} {
		r, err := ParseSplitRatio(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		w := r.Split(Money{Cents: 10000})
		if w.Payer.Cents != 6000 || w.Other.Cents != 4000 {
			t.Fatalf("%q: expected (6000, 4000), got (%d, %d)", raw, w.Payer.Cents, w.Other.Cents)
		}
	}
}
