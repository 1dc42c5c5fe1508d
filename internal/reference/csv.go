package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// expected CSV header, in order.
var csvColumns = []string{
	"vms_category_name",
	"vms_subcategory",
	"keywords",
	"rules",
	"notes",
	"activity_type",
}

// Load reads the reference table from a CSV file. A missing or
// unreadable file returns an error wrapping ErrNotFound; a readable
// file with a header but no data rows returns ErrEmptyTable.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reference: %w: %s: %v", ErrNotFound, path, err)
	}
	defer func() { _ = f.Close() }()

	table, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: %w", path, err)
	}
	return table, nil
}

// parseCSV reads header plus rows from r and builds the table.
func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // trailing optional columns may be omitted

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []types.ReferenceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		row := types.ReferenceRow{
			Category:     field(record, idx["vms_category_name"]),
			Subcategory:  field(record, idx["vms_subcategory"]),
			Keywords:     splitKeywords(field(record, idx["keywords"])),
			Rules:        field(record, idx["rules"]),
			Notes:        field(record, idx["notes"]),
			ActivityType: field(record, idx["activity_type"]),
		}
		if row.Category == "" && row.Subcategory == "" {
			continue // skip blank lines
		}
		rows = append(rows, row)
	}

	return NewTable(rows)
}

// columnIndex maps the known column names to their positions in the
// header. The two key columns are required; the rest default to absent.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(csvColumns))
	for _, col := range csvColumns {
		idx[col] = -1
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.ToLower(name))
		if _, known := idx[name]; known {
			idx[name] = i
		}
	}
	if idx["vms_category_name"] == -1 || idx["vms_subcategory"] == -1 {
		return nil, fmt.Errorf("missing required columns vms_category_name/vms_subcategory in header %v", header)
	}
	return idx, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// splitKeywords lowercases and splits the comma-separated keyword
// column, dropping empty entries.
func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(raw), ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	return keywords
}
