package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCSVValue(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"plain", "plain"},
		{"", ""},
		{"has,comma", `"has,comma"`},
		{`has"quote`, `"has""quote"`},
		{"has\nnewline", "\"has\nnewline\""},
		{`a,"b"`, `"a,""b"""`},
	}
	for _, tc := range cases {
		if got := formatCSVValue(tc.in); got != tc.expected {
			t.Fatalf("formatCSVValue(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}

func TestProductCSV_RoundsRevenueAtOutput(t *testing.T) {
	rows := []ProductRow{
		{
			Date:            "2026-08-28",
			TimeBucketStart: "12:00:00",
			TimeBucketEnd:   "13:00:00",
			ProductId:       "mi-1",
			ProductName:     "Kumru, Special",
			Category:        "Sandwiches",
			QtySold:         3,
			Revenue:         decimal.RequireFromString("153.456"),
		},
	}
	doc := ProductCSV(rows)
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(ProductHeader, ",") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != `2026-08-28,12:00:00,13:00:00,mi-1,"Kumru, Special",Sandwiches,3,153.46` {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestMasterCSV_NullablesRenderEmpty(t *testing.T) {
	row := MasterRow{
		Date:            "2026-08-28",
		TimeBucketStart: "09:00:00",
		TimeBucketEnd:   "10:00:00",
		Weekday:         5,
		TotalRevenue:    decimal.Zero,
		AvgOrderValue:   decimal.Zero,
		DiscountTotal:   decimal.Zero,
	}
	doc := MasterCSV([]MasterRow{row})
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	fields := strings.Split(lines[1], ",")
	if len(fields) != len(MasterHeader) {
		t.Fatalf("expected %d fields, got %d", len(MasterHeader), len(fields))
	}
	byName := map[string]string{}
	for i, h := range MasterHeader {
		byName[h] = fields[i]
	}
	// Absence stays distinguishable from zero.
	for _, col := range []string{"avg_table_occupancy_min", "temp_c", "humidity", "weather_main"} {
		if byName[col] != "" {
			t.Fatalf("expected empty %s, got %q", col, byName[col])
		}
	}
	if byName["total_revenue"] != "0.00" {
		t.Fatalf("expected total_revenue 0.00, got %q", byName["total_revenue"])
	}
}

func TestMasterCSV_OccupancyRendersOneDecimal(t *testing.T) {
	occ := 30.25
	row := MasterRow{
		Date:                 "2026-08-28",
		TotalRevenue:         decimal.Zero,
		AvgOrderValue:        decimal.Zero,
		DiscountTotal:        decimal.Zero,
		AvgTableOccupancyMin: &occ,
	}
	record := row.record()
	idx := -1
	for i, h := range MasterHeader {
		if h == "avg_table_occupancy_min" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("avg_table_occupancy_min not in header")
	}
	if record[idx] != "30.3" {
		t.Fatalf("expected 30.3, got %q", record[idx])
	}
}

func TestWriteCSVFile_CreatesDestinationDir(t *testing.T) {
	// A fresh deploy has no exports directory yet; the writer must create it.
	path := filepath.Join(t.TempDir(), "exports", "master_2026-08-28.csv")
	if err := WriteCSVFile(path, "date\n2026-08-28\n"); err != nil {
		t.Fatalf("WriteCSVFile error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "date\n2026-08-28\n" {
		t.Fatalf("unexpected content: %q", string(got))
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("master", "2026-08-28", FormatCSV); got != "master_2026-08-28.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
	if got := Filename("products", "2026-08-28", FormatXLSX); got != "products_2026-08-28.xlsx" {
		t.Fatalf("unexpected filename: %s", got)
	}
}
