package bangla

import (
	"errors"
	"testing"
	"time"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0123456789", "০১২৩৪৫৬৭৮৯"},
		{"2025", "২০২৫"},
		{"abc", "abc"},
		{"", ""},
		{"12:30 pm", "১২:৩০ pm"},
		{"৫ and 5", "৫ and ৫"},
	}
	for _, tt := range tests {
		if got := Digits(tt.input); got != tt.expected {
			t.Errorf("Digits(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDigitsIsBijective(t *testing.T) {
	seen := map[string]bool{}
	for r := '0'; r <= '9'; r++ {
		got := Digits(string(r))
		if got == string(r) {
			t.Errorf("digit %q not mapped", r)
		}
		if seen[got] {
			t.Errorf("digit %q maps to duplicate %q", r, got)
		}
		seen[got] = true
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date     Date
		expected string
	}{
		{Date{2025, time.July, 15}, "১৫ জুলাই ২০২৫"},
		{Date{2024, time.January, 1}, "১ জানুয়ারি ২০২৪"},
		{Date{1999, time.December, 31}, "৩১ ডিসেম্বর ১৯৯৯"},
		{Date{2026, time.May, 9}, "৯ মে ২০২৬"},
	}
	for _, tt := range tests {
		got, err := FormatDate(tt.date)
		if err != nil {
			t.Fatalf("FormatDate(%v): %v", tt.date, err)
		}
		if got != tt.expected {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.date, got, tt.expected)
		}
	}
}

func TestFormatDateMonthOutOfRange(t *testing.T) {
	for _, m := range []time.Month{0, 13, -1} {
		_, err := FormatDate(Date{2025, m, 1})
		if !errors.Is(err, ErrMonth) {
			t.Errorf("month %d: err = %v, want ErrMonth", m, err)
		}
	}
}

func TestMonthTableEnds(t *testing.T) {
	first, err := Month(time.January)
	if err != nil || first != "জানুয়ারি" {
		t.Errorf("Month(1) = %q, %v", first, err)
	}
	last, err := Month(time.December)
	if err != nil || last != "ডিসেম্বর" {
		t.Errorf("Month(12) = %q, %v", last, err)
	}
}

func TestFormatISO(t *testing.T) {
	got, err := FormatISO("2025-07-15")
	if err != nil || got != "১৫ জুলাই ২০২৫" {
		t.Errorf("FormatISO = %q, %v", got, err)
	}
	got, err = FormatISO("")
	if err != nil || got != "" {
		t.Errorf("FormatISO(\"\") = %q, %v", got, err)
	}
	if _, err := FormatISO("15/07/2025"); err == nil {
		t.Error("expected parse error")
	}
}

func TestToday(t *testing.T) {
	tests := []struct {
		now      time.Time
		expected Date
	}{
		// 17:59 UTC is still the same day at UTC+6.
		{time.Date(2025, 7, 15, 17, 59, 0, 0, time.UTC), Date{2025, time.July, 15}},
		{time.Date(2025, 7, 15, 18, 0, 0, 0, time.UTC), Date{2025, time.July, 16}},
		{time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC), Date{2026, time.January, 1}},
		// Local zone of the input instant must not matter.
		{time.Date(2025, 7, 15, 23, 30, 0, 0, time.FixedZone("PDT", -7*3600)), Date{2025, time.July, 16}},
	}
	for _, tt := range tests {
		if got := Today(tt.now); got != tt.expected {
			t.Errorf("Today(%v) = %v, want %v", tt.now, got, tt.expected)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-07")
	if err != nil {
		t.Fatal(err)
	}
	if d != (Date{2025, time.March, 7}) {
		t.Errorf("ParseDate = %v", d)
	}
	if d.String() != "2025-03-07" {
		t.Errorf("String() = %q", d.String())
	}
	if !(Date{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
}
