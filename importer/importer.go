package importer

import (
	"encoding/csv"
	"errors"
	"facultydesk/domain/faculty"
	"fmt"
	"io"
	"strings"
)

var ErrEmptySheet = errors.New("sheet has no header row")

var (
	NameColumns       = []string{"Faculty Name", "Name", "name"}
	CabinColumns      = []string{"Cabin Number", "Cabin", "cabin"}
	DepartmentColumns = []string{"Department", "department"}
)

// Row is one spreadsheet row keyed by header.
type Row map[string]string

type Result struct {
	Entries []faculty.Entry
	Dropped int
}

// MapRows converts rows to directory entries. Rows without a name or a cabin are dropped.
func MapRows(rows []Row) Result {
	r := Result{Entries: []faculty.Entry{}}
	for _, row := range rows {
		e := faculty.Entry{
			Name:       pick(row, NameColumns),
			Cabin:      pick(row, CabinColumns),
			Department: pick(row, DepartmentColumns),
		}
		if e.Name == "" || e.Cabin == "" {
			r.Dropped++
			continue
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

func pick(row Row, columns []string) string {
	for _, col := range columns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return ""
}

// ReadCSV reads a CSV sheet whose first record is the header row.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySheet
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := Row{}
		for i, cell := range record {
			if i < len(header) && header[i] != "" {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
