package main

import (
	"flag"

	"github.com/goflix/goflix/tpl"
)

var cmdSummary = &command{
	name:      "summary",
	shortHelp: "show the key takeaways of the catalog data",
	help: `
Prints a short narrative summary of what the other views show. Read it
after exploring the data yourself, or instead of doing that.
`,
	flags: flag.NewFlagSet("summary", flag.ExitOnError),
	run:   cmd_summary,
}

var summaryText = []string{
	"There are a few key takeaways after exploring the catalog data.",

	"First is that love must sell. It is by far the most common word " +
		"in the titles of the movies and TV shows analyzed; stories " +
		"involving a girl and love appear to be most prominent.",

	"Second, fewer movies are released (or acquired) each year, while " +
		"extended-story TV shows keep growing. Shows may simply work " +
		"better with a subscription model, since viewers come back to " +
		"finish a season. Or it could be a combination of reasons.",

	"And last, adult rated movies and shows are the most common by a " +
		"wide margin, which likely says as much about the audience as " +
		"about the catalog.",

	"Ultimately, the catalog's curators surely analyze their data much " +
		"more closely than this. Following their trends is a safe bet.",
}

func cmd_summary(c *command) bool {
	return renderSummary(c)
}

func renderSummary(c *command) bool {
	defer markVisited("summary")
	c.tplExec("summary", tpl.Formatted{X: summaryText, A: tpl.Attrs{}})
	return true
}
