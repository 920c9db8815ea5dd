package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/goflix/goflix/catalog"
	"github.com/goflix/goflix/catalog/search"
)

var (
	flagBrowseLimit = 20
	flagBrowseWide  = false
)

var cmdBrowse = &command{
	name:      "browse",
	shortHelp: "explore the catalog interactively",
	help: `
Starts an interactive session. Every line you type is a search query (the
same syntax as 'goflix search') and re-filters the whole in-memory catalog
on each submission. Lines starting with ':' are directives:

    :columns a,b,c   restrict the table to the named columns
    :columns         show all columns again
    :words           show the most common title words of the last result
    :trends          show releases over time for the last result
    :ratings         show the rating distribution of the last result
    :all             forget the last result, back to the whole catalog
    :summary         show the key takeaways
    :quit            leave (Ctrl-D works too)

The views operate on the rows matched by the most recent query, so
'type:Movie' followed by ':ratings' shows the distribution of movie
ratings only.
`,
	flags: flag.NewFlagSet("browse", flag.ExitOnError),
	run:   cmd_browse,
	addFlags: func(c *command) {
		c.flags.IntVar(&flagBrowseLimit, "limit", flagBrowseLimit,
			"Restricts the number of rows shown per query. Use 0 to show\n"+
				"all rows.")
		c.flags.BoolVar(&flagBrowseWide, "wide", flagBrowseWide,
			"When set, long cells are shown in full instead of clipped.")
	},
}

func cmd_browse(c *command) bool {
	d := loadDataset(c)
	cur := d

	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)

	logf("%d titles loaded. Type a query, or ':quit' to leave.", d.Len())

	var columns []string
	for {
		input, err := term.Prompt("goflix> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			pf("\n")
			return true
		}
		if err != nil {
			pef("Could not read input: %s", err)
			return false
		}
		input = strings.TrimSpace(input)
		if len(input) == 0 {
			continue
		}
		term.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if !directive(c, d, &cur, input, &columns) {
				return true
			}
			continue
		}

		cur = search.Filter(d, input)
		markVisited("search")
		res := cur
		if len(columns) > 0 {
			res = res.Select(columns)
		}
		if res.Empty() {
			pef("No matches found.")
			continue
		}
		writeTable(os.Stdout, res, flagBrowseLimit, flagBrowseWide)
		pf("Found %d matches\n", res.Len())
	}
}

// directive handles a ':' input line. It returns false when the session
// should end.
func directive(c *command, d *catalog.Dataset, cur **catalog.Dataset,
	input string, columns *[]string) bool {

	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return false
	case ":columns":
		if len(fields) < 2 {
			*columns = nil
			logf("Showing all columns.")
		} else {
			*columns = strings.Split(fields[1], ",")
		}
	case ":all":
		*cur = d
		logf("Views now cover the whole catalog (%d titles).", d.Len())
	case ":words":
		renderWords(c, *cur, flagWordsColumn, flagWordsTop)
	case ":trends":
		renderTrends(c, *cur, "")
	case ":ratings":
		renderRatings(c, *cur)
	case ":summary":
		renderSummary(c)
	default:
		pef("Unknown directive '%s'. Try ':quit', ':columns', ':words', "+
			"':trends', ':ratings' or ':summary'.", fields[0])
	}
	return true
}
