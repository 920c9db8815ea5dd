package catalog

import (
	"strconv"
	"strings"
)

// Columns is the fixed set of catalog columns, in the order they appear
// in the source CSV.
var Columns = []string{
	"show_id",
	"type",
	"title",
	"director",
	"cast",
	"country",
	"date_added",
	"release_year",
	"rating",
	"duration",
	"listed_in",
	"description",
}

// Kind enumerates the scalar types a catalog cell may hold.
type Kind int

const (
	Null Kind = iota
	Text
	Number
)

// Value is a single cell of a catalog row. The zero Value is null.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Str returns a text value.
func Str(s string) Value {
	return Value{kind: Text, text: s}
}

// Num returns a numeric value.
func Num(f float64) Value {
	return Value{kind: Number, num: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Null() bool {
	return v.kind == Null
}

// Int returns the value as an integer. Non-numeric values are 0.
func (v Value) Int() int {
	if v.kind != Number {
		return 0
	}
	return int(v.num)
}

// String returns the representation of the value that searches match
// against. Numbers are formatted without trailing zeros and null values
// are empty strings.
func (v Value) String() string {
	switch v.kind {
	case Text:
		return v.text
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// Row is one record of a dataset. Cells are indexed parallel to the
// dataset's Columns.
type Row []Value

// Dataset is an ordered sequence of rows over a fixed set of named
// columns. A Dataset is never mutated once built: filtering and column
// selection always produce a new Dataset (sharing the underlying rows).
type Dataset struct {
	Columns []string
	Rows    []Row
}

func (d *Dataset) Len() int {
	return len(d.Rows)
}

func (d *Dataset) Empty() bool {
	return len(d.Rows) == 0
}

// ColumnIndex returns the index of the first column whose name matches
// case insensitively, or -1 if there is no such column.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// Select returns a dataset restricted to the named columns, in the order
// given. Names are matched case insensitively and unknown names are
// skipped, so selecting no known column yields a dataset with no columns.
func (d *Dataset) Select(columns []string) *Dataset {
	var idx []int
	var names []string
	for _, name := range columns {
		if i := d.ColumnIndex(strings.TrimSpace(name)); i >= 0 {
			idx = append(idx, i)
			names = append(names, d.Columns[i])
		}
	}
	sub := &Dataset{Columns: names, Rows: make([]Row, len(d.Rows))}
	for r, row := range d.Rows {
		picked := make(Row, len(idx))
		for c, i := range idx {
			picked[c] = row[i]
		}
		sub.Rows[r] = picked
	}
	return sub
}
