package founder

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(4.5, "USD"), "$4.50"},
		{M(int64(0), "USD"), "$0.00"},
		{M(decimal.RequireFromString("1234.567"), "USD"), "$1,234.57"},
		{M(int64(-3), "USD"), "-$3.00"},
		{M(-0.001, "USD"), "$0.00"},
		{M(int64(1500), "JPY"), "¥1,500"},
		{M(decimal.RequireFromString("100000000000000004.5"), "USD"), "$100,000,000,000,000,004.50"},
		{M(decimal.RequireFromString("-1e30"), "USD"), "-$1,000,000,000,000,000,000,000,000,000,000.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_StringHuge(t *testing.T) {
	got := M(decimal.RequireFromString("1e400000"), "USD").String()
	if !strings.HasPrefix(got, "$1,000,000,") || !strings.HasSuffix(got, ",000.00") {
		t.Errorf("String() of 1e400000 starts with %q and ends with %q", got[:min(len(got), 12)], got[max(0, len(got)-8):])
	}
	// 400001 digits, one separator every three, two decimals.
	if want := len("$") + 400001 + 400000/3 + len(".00"); len(got) != want {
		t.Errorf("len(String()) = %d, want %d", len(got), want)
	}
}

func TestMoney_Add(t *testing.T) {
	got := M(1.25, "USD").Add(M(2.5, "USD"))
	if want := M(3.75, "USD"); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	// a zero Money takes the currency of the other operand.
	if got := (Money{}).Add(M(int64(1), "EUR")); got.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", got.Currency())
	}
}

func TestMoney_AddMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add() of different currencies did not panic")
		}
	}()
	M(int64(1), "USD").Add(M(int64(1), "EUR"))
}

func TestKnownCurrency(t *testing.T) {
	for code, want := range map[string]bool{"USD": true, "EUR": true, "JPY": true, "XXXX": false, "": false} {
		if got := KnownCurrency(code); got != want {
			t.Errorf("KnownCurrency(%q) = %v, want %v", code, got, want)
		}
	}
}
