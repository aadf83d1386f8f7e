package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{7, "R$ 7,00"},
		{220, "R$ 220,00"},
		{2070, "R$ 2.070,00"},
		{1234567.891, "R$ 1.234.567,89"},
		{-2070, "-R$ 2.070,00"},
		{-0.01, "-R$ 0,01"},
		{1e17, "R$ 100.000.000.000.000.000,00"},
		{1e20, "R$ 100.000.000.000.000.000.000,00"},
		{-1e20, "-R$ 100.000.000.000.000.000.000,00"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSetCurrency(t *testing.T) {
	defer SetCurrency(DefaultCurrency)

	SetCurrency(Currency{Symbol: "$", Decimal: ".", Thousand: ","})
	if got := FormatCurrency(1234.5); got != "$ 1,234.50" {
		t.Fatalf("FormatCurrency with USD settings = %q", got)
	}

	if got := FormatCurrency(-1e17); got != "-$ 100,000,000,000,000,000.00" {
		t.Fatalf("FormatCurrency(-1e17) with USD settings = %q", got)
	}

	SetCurrency(Currency{Symbol: "€"})
	if got := FormatCurrency(1234.5); got != "€ 1.234,50" {
		t.Fatalf("FormatCurrency with partial settings = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
