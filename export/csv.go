package export

import (
	"os"
	"path/filepath"
	"strings"
)

// MasterCSV serializes master rows: one header line, then one line per bucket.
func MasterCSV(rows []MasterRow) string {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return csvDocument(MasterHeader, records)
}

// ProductCSV serializes product rows.
func ProductCSV(rows []ProductRow) string {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return csvDocument(ProductHeader, records)
}

func csvDocument(header []string, records [][]string) string {
	var b strings.Builder
	writeCSVLine(&b, header)
	for _, record := range records {
		writeCSVLine(&b, record)
	}
	return b.String()
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatCSVValue(f))
	}
	b.WriteByte('\n')
}

// formatCSVValue escapes a field when it contains the delimiter, a quote or a
// newline: wrap in quotes and double embedded quotes.
func formatCSVValue(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// WriteCSVFile writes serialized export content to the destination path,
// creating the directory if needed.
func WriteCSVFile(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
