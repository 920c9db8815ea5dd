package main

import (
	"flag"

	"github.com/goflix/goflix/catalog"
	"github.com/goflix/goflix/tpl"
)

var cmdRatings = &command{
	name:      "ratings",
	shortHelp: "show the distribution of content ratings",
	help: `
Shows how many titles carry each content rating, least common first, with
a bar per rating. Ratings are labeled 'tv' or 'movie' since the two rating
systems share the column. The source data has a few duration values (like
'74 min') that leaked into the rating column; those are excluded.
`,
	flags: flag.NewFlagSet("ratings", flag.ExitOnError),
	run:   cmd_ratings,
}

func cmd_ratings(c *command) bool {
	return renderRatings(c, loadDataset(c))
}

func renderRatings(c *command, d *catalog.Dataset) bool {
	defer markVisited("ratings")

	ratings := catalog.RatingCounts(d)
	if len(ratings) == 0 {
		pef("No ratings to count.")
		return true
	}
	max := ratings[len(ratings)-1].Count
	c.tplExec("ratings", tpl.Formatted{
		X: ratings,
		A: tpl.Attrs{"Max": max},
	})
	return true
}
