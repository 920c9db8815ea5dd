package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goflix/goflix/catalog"
)

const (
	minTrendYear = 0
	maxTrendYear = 3000
)

var flagTrendsYears = ""

var cmdTrends = &command{
	name:      "trends",
	shortHelp: "show content releases over time",
	help: `
Shows how many titles were released each year, split by content type
(movies versus TV shows). The final year of the catalog is dropped since
its data is necessarily incomplete.
`,
	flags: flag.NewFlagSet("trends", flag.ExitOnError),
	run:   cmd_trends,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagTrendsYears, "years", flagTrendsYears,
			"Specify a year or an inclusive range of years to show.\n"+
				"For example '1999' shows a single year and '1990-1999'\n"+
				"shows the 1990s.")
	},
}

func cmd_trends(c *command) bool {
	return renderTrends(c, loadDataset(c), flagTrendsYears)
}

func renderTrends(c *command, d *catalog.Dataset, years string) bool {
	defer markVisited("trends")

	trend := catalog.ReleaseTrend(d)
	if len(trend) > 1 && len(years) == 0 {
		// The last year is still being filled in when a catalog is
		// published.
		trend = trend[:len(trend)-1]
	}
	if len(years) > 0 {
		min, max := intRange(years, minTrendYear, maxTrendYear)
		kept := trend[:0:0]
		for _, yc := range trend {
			if yc.Year >= min && yc.Year <= max {
				kept = append(kept, yc)
			}
		}
		trend = kept
	}
	if len(trend) == 0 {
		pef("No releases to count.")
		return true
	}

	kinds := catalog.ContentTypes(trend)
	most := 0
	for _, yc := range trend {
		for _, kind := range kinds {
			if yc.ByType[kind] > most {
				most = yc.ByType[kind]
			}
		}
	}

	tabw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabw, "year\t%s\n", strings.Join(kinds, "\t"))
	for _, yc := range trend {
		cells := make([]string, len(kinds))
		for i, kind := range kinds {
			cells[i] = sf("%d %s", yc.ByType[kind],
				scaledBar(yc.ByType[kind], most, 25))
		}
		fmt.Fprintf(tabw, "%d\t%s\n", yc.Year, strings.Join(cells, "\t"))
	}
	tabw.Flush()
	return true
}

func scaledBar(n, max, width int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	w := n * width / max
	if w == 0 {
		w = 1
	}
	return strings.Repeat("■", w)
}
