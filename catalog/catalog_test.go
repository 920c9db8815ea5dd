package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "Stranger Things", Str("Stranger Things").String())
	assert.Equal(t, "1999", Num(1999).String())
	assert.Equal(t, "7.5", Num(7.5).String())
}

func TestValueInt(t *testing.T) {
	assert.Equal(t, 1999, Num(1999).Int())
	assert.Equal(t, 0, Str("1999").Int())
	assert.Equal(t, 0, Value{}.Int())
}

func TestColumnIndexFoldsCase(t *testing.T) {
	d := &Dataset{Columns: []string{"Title", "type", "Director"}}
	assert.Equal(t, 0, d.ColumnIndex("title"))
	assert.Equal(t, 2, d.ColumnIndex("DIRECTOR"))
	assert.Equal(t, -1, d.ColumnIndex("rating"))
	assert.Equal(t, -1, d.ColumnIndex(""))
}

func TestSelect(t *testing.T) {
	d := &Dataset{
		Columns: []string{"title", "type", "rating"},
		Rows: []Row{
			{Str("Dark"), Str("TV Show"), Str("TV-MA")},
			{Str("Roma"), Str("Movie"), Str("R")},
		},
	}
	sub := d.Select([]string{"rating", "TITLE", "bogus"})
	assert.Equal(t, []string{"rating", "title"}, sub.Columns)
	require.Len(t, sub.Rows, 2)
	assert.Equal(t, Row{Str("TV-MA"), Str("Dark")}, sub.Rows[0])
	assert.Equal(t, Row{Str("R"), Str("Roma")}, sub.Rows[1])

	// The source dataset is untouched.
	assert.Equal(t, []string{"title", "type", "rating"}, d.Columns)
	assert.Equal(t, Row{Str("Dark"), Str("TV Show"), Str("TV-MA")}, d.Rows[0])
}

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		`show_id,type,title,director,release_year`,
		`s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,2020`,
		`s2,TV Show,"Blood, Water",,2021`,
	}, "\n")

	d, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"show_id", "type", "title", "director", "release_year"},
		d.Columns)
	require.Len(t, d.Rows, 2)

	assert.Equal(t, Str("Dick Johnson Is Dead"), d.Rows[0][2])
	assert.Equal(t, Num(2020), d.Rows[0][4])

	// Quoted commas stay in one cell, empty cells are null.
	assert.Equal(t, Str("Blood, Water"), d.Rows[1][2])
	assert.True(t, d.Rows[1][3].Null())
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSVRaggedRecord(t *testing.T) {
	in := "a,b,c\n1,2\n"
	_, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}
