package shared_test

import (
	"math"
	"testing"

	"propshare/internal/shared"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{2839420.98, "$2,839,421"},
		{1000000.5, "$1,000,001"},
		{-1839420.4, "-$1,839,420"},
		{50000, "$50,000"},
	}
	for _, c := range cases {
		if got := shared.FormatUSD(c.in); got != c.want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := shared.FormatUSD(math.NaN()); got != "" {
		t.Fatalf("NaN should render empty, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{8.5: "8.5%", 11: "11%", 10.25: "10.25%", 0: "0%"}
	for in, want := range cases {
		if got := shared.FormatPercent(in); got != want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}
