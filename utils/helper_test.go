package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseBusinessDate(t *testing.T) {
	d, err := ParseBusinessDate("2026-08-28")
	if err != nil {
		t.Fatalf("ParseBusinessDate error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 28 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}

	for _, bad := range []string{"", "28-08-2026", "2026/08/28", "2026-13-01", "yesterday"} {
		_, err := ParseBusinessDate(bad)
		if err == nil {
			t.Fatalf("ParseBusinessDate(%q) expected error", bad)
		}
		if !errors.Is(err, ErrorInvalidInput) {
			t.Fatalf("ParseBusinessDate(%q) expected invalid input error, got %v", bad, err)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2026-08-24", 1}, // Monday
		{"2026-08-28", 5}, // Friday
		{"2026-08-29", 6}, // Saturday
		{"2026-08-30", 7}, // Sunday
	}
	for _, tc := range cases {
		d, err := ParseBusinessDate(tc.date)
		if err != nil {
			t.Fatalf("ParseBusinessDate(%q) error: %v", tc.date, err)
		}
		if got := ISOWeekday(d); got != tc.want {
			t.Fatalf("ISOWeekday(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	sat, _ := ParseBusinessDate("2026-08-29")
	sun, _ := ParseBusinessDate("2026-08-30")
	fri, _ := ParseBusinessDate("2026-08-28")
	if !IsWeekend(sat) || !IsWeekend(sun) {
		t.Fatal("expected Saturday and Sunday to be weekend")
	}
	if IsWeekend(fri) {
		t.Fatal("expected Friday not to be weekend")
	}
}

func TestConvertToDate(t *testing.T) {
	// 2026-08-28 23:30 UTC is already 2026-08-29 in Istanbul (UTC+3).
	utc := time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)
	d, err := ConvertToDate(utc, "Europe/Istanbul")
	if err != nil {
		t.Fatalf("ConvertToDate error: %v", err)
	}
	if d.Day() != 29 {
		t.Fatalf("expected local date 29, got %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight local, got %v", d)
	}

	if _, err := ConvertToDate(utc, "Not/AZone"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]string{"a", "b", "a", "c", "b"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected result: %v", got)
	}
}
