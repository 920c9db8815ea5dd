package catalog

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ReadCSV decodes a catalog CSV into a Dataset. The first record is the
// header and fixes the column set; every following record is one row.
// Empty cells are null and cells that parse as numbers (like
// release_year) are stored numerically.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ef("CSV input is empty: no header record")
	}
	if err != nil {
		return nil, ef("Could not read CSV header: %s", err)
	}

	d := &Dataset{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ef("Could not read CSV record: %s", err)
		}
		row := make(Row, len(record))
		for i, cell := range record {
			row[i] = cellValue(cell)
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

func cellValue(cell string) Value {
	if len(cell) == 0 {
		return Value{}
	}
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return Num(n)
	}
	return Str(cell)
}
