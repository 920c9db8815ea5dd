package main

import (
	"flag"
	"os"
	"strings"

	"github.com/goflix/goflix/catalog"
	"github.com/goflix/goflix/catalog/search"
)

var (
	flagSearchColumns = ""
	flagSearchLimit   = 50
	flagSearchWide    = false
)

var cmdSearch = &command{
	name:            "search",
	positionalUsage: "query",
	shortHelp:       "search and filter the catalog",
	help: `
Searches the catalog and shows the matching titles as a table.

Plain words are free-text terms: a row matches a term when any of its
columns contains the term, case insensitively, and every term narrows the
result. Surround words with double quotes to search them as one phrase,
and use 'column:value' to restrict a value to one named column. For
example:

    goflix search love
    goflix search director:Nolan
    goflix search 'director: "Quentin Tarantino"'
    goflix search 'love type:Movie rating:PG-13'

Unknown column names and stray quotes or colons never cause an error;
they just match as much as they can. An empty result prints a friendly
message and is not an error either.
`,
	flags: flag.NewFlagSet("search", flag.ExitOnError),
	run:   cmd_search,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagSearchColumns, "columns", flagSearchColumns,
			"A comma separated list of column names to show, applied\n"+
				"after filtering. By default, all columns are shown.\n"+
				"Available columns: "+strings.Join(catalog.Columns, ", "))
		c.flags.IntVar(&flagSearchLimit, "limit", flagSearchLimit,
			"Restricts the number of rows shown. Use 0 to show all rows.")
		c.flags.BoolVar(&flagSearchWide, "wide", flagSearchWide,
			"When set, long cells are shown in full instead of clipped.")
	},
}

func cmd_search(c *command) bool {
	c.assertLeastNArg(1)
	d := loadDataset(c)
	defer markVisited("search")

	query := strings.Join(c.flags.Args(), " ")
	res := search.Filter(d, query)
	if len(flagSearchColumns) > 0 {
		res = res.Select(strings.Split(flagSearchColumns, ","))
	}
	if res.Empty() {
		pef("No matches found.")
		return true
	}
	writeTable(os.Stdout, res, flagSearchLimit, flagSearchWide)
	pf("Found %d matches\n", res.Len())
	return true
}
