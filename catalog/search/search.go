package search

import (
	"strings"

	"github.com/goflix/goflix/catalog"
)

// Tokenize breaks a raw search string into free-text terms and column
// filters. Terms keep their original order. Column filters are tokens
// containing a ':' — the text before the first colon names the column
// (trimmed, lowercased) and the text after it is the search value
// (trimmed). When the value is empty and another token follows (the user
// typed 'director: nolan', so the split already separated them), the next
// token is consumed as the value. Repeating a column keeps the last value.
func Tokenize(query string) ([]string, map[string]string) {
	toks := tokens(query)

	var terms []string
	filters := make(map[string]string)
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		sep := strings.Index(tok, ":")
		if sep == -1 {
			terms = append(terms, tok)
			continue
		}
		column := strings.ToLower(strings.TrimSpace(tok[:sep]))
		value := tok[sep+1:]
		if len(strings.TrimSpace(value)) == 0 && i+1 < len(toks) {
			i++
			value = toks[i]
		}
		filters[column] = strings.TrimSpace(value)
	}
	return terms, filters
}

// tokens splits a query on spaces, except inside a double-quote span
// where spaces are kept and the quote characters themselves are dropped.
// The closing quote finalizes the token. A quote that is never closed
// makes the remainder of the query one token.
func tokens(query string) []string {
	var toks []string
	var buf []rune
	inPhrase := false
	for _, r := range query {
		switch {
		case r == '"':
			inPhrase = !inPhrase
			if !inPhrase && len(buf) > 0 {
				toks = append(toks, string(buf))
				buf = nil
			}
		case r == ' ' && !inPhrase:
			if len(buf) > 0 {
				toks = append(toks, string(buf))
				buf = nil
			}
		default:
			buf = append(buf, r)
		}
	}
	if len(buf) > 0 {
		toks = append(toks, string(buf))
	}
	return toks
}

// Filter applies a search query to the dataset and returns the rows that
// satisfy every term and column filter, in their original order and with
// the original column set. The input dataset is never mutated. A blank
// query returns the dataset unchanged, a column filter naming no real
// column is silently ignored, and an empty result is a normal outcome,
// not an error.
func Filter(d *catalog.Dataset, query string) *catalog.Dataset {
	if len(strings.TrimSpace(query)) == 0 {
		return d
	}
	terms, filters := Tokenize(query)

	rows := d.Rows
	for column, value := range filters {
		ci := d.ColumnIndex(column)
		if ci < 0 {
			continue
		}
		v := value
		rows = retain(rows, func(row catalog.Row) bool {
			return containsFold(row[ci].String(), v)
		})
	}
	for _, term := range terms {
		if len(term) == 0 {
			continue
		}
		t := term
		rows = retain(rows, func(row catalog.Row) bool {
			for _, cell := range row {
				if containsFold(cell.String(), t) {
					return true
				}
			}
			return false
		})
	}
	return &catalog.Dataset{Columns: d.Columns, Rows: rows}
}

func retain(rows []catalog.Row, keep func(catalog.Row) bool) []catalog.Row {
	kept := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return kept
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
