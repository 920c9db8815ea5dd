package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/BurntSushi/ty/fun"

	"github.com/goflix/goflix/catalog"
)

var (
	sf     = fmt.Sprintf
	ef     = fmt.Errorf
	pf     = fmt.Printf
	fatalf = func(f string, v ...interface{}) { pef(f, v...); os.Exit(1) }
	pef    = func(f string, v ...interface{}) {
		fmt.Fprintf(os.Stderr, f+"\n", v...)
	}
	logf = func(format string, v ...interface{}) {
		if flagQuiet {
			return
		}
		pef(format, v...)
	}
)

func createFile(fpath string) *os.File {
	f, err := os.Create(fpath)
	if err != nil {
		fatalf(err.Error())
	}
	return f
}

func openDb(driver, dsn string) *catalog.DB {
	db, err := catalog.Open(driver, dsn)
	if err != nil {
		fatalf("Could not open '%s:%s': %s", driver, dsn, err)
	}
	return db
}

func closeDb(db *catalog.DB) {
	if err := db.Close(); err != nil {
		fatalf("Could not close database: %s", err)
	}
}

// loadDataset reads the whole catalog into memory. Every view filters
// this in-memory dataset rather than querying the database, so a search
// is a pure function of the dataset and the query string.
func loadDataset(c *command) *catalog.Dataset {
	db := openDb(c.dbinfo())
	defer closeDb(db)

	d, err := catalog.List(db)
	if err != nil {
		fatalf("Could not read the catalog: %s", err)
	}
	if d.Empty() {
		logf("The catalog is empty. Use 'goflix load' to populate it.")
	}
	return d
}

// writeTable renders a dataset with tab-aligned columns. Long cells are
// clipped unless wide is set, and limit > 0 caps the number of rows
// shown.
func writeTable(w io.Writer, d *catalog.Dataset, limit int, wide bool) {
	tabw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tabw, strings.Join(d.Columns, "\t"))
	for i, row := range d.Rows {
		if limit > 0 && i >= limit {
			fmt.Fprintf(tabw, "... %d more rows\n", len(d.Rows)-limit)
			break
		}
		cells := fun.Map(func(v catalog.Value) string {
			if wide {
				return v.String()
			}
			return clip(v.String(), 36)
		}, []catalog.Value(row)).([]string)
		fmt.Fprintln(tabw, strings.Join(cells, "\t"))
	}
	tabw.Flush()
}

func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	rs := []rune(s)
	return string(rs[:max-3]) + "..."
}

func intRange(s string, min, max int) (int, int) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return min, max
	}
	if !strings.Contains(s, "-") {
		n, err := strconv.Atoi(s)
		if err != nil {
			fatalf("Could not parse '%s' as integer: %s", s, err)
		}
		return n, n
	}
	pieces := fun.Map(strings.TrimSpace, strings.SplitN(s, "-", 2)).([]string)

	start, end := min, max
	var err error
	if len(pieces[0]) > 0 {
		start, err = strconv.Atoi(pieces[0])
		if err != nil {
			fatalf("Could not parse '%s' as integer: %s", pieces[0], err)
		}
	}
	if len(pieces[1]) > 0 {
		end, err = strconv.Atoi(pieces[1])
		if err != nil {
			fatalf("Could not parse '%s' as integer: %s", pieces[1], err)
		}
	}
	return start, end
}
