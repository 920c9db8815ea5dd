package main

import (
	"flag"

	"github.com/goflix/goflix/catalog"
	"github.com/goflix/goflix/catalog/search"
	"github.com/goflix/goflix/tpl"
)

var (
	flagWordsColumn = "title"
	flagWordsTop    = 25
	flagWordsQuery  = ""
)

var cmdWords = &command{
	name:      "words",
	shortHelp: "show the most common words in catalog titles",
	help: `
Counts word frequencies over a column of the catalog (titles by default)
and shows the most common ones with a bar per word. This is the terminal
rendition of a word cloud: punctuation is stripped, case is folded and
common filler words ('the', 'a', 'of', ...) are dropped.
`,
	flags: flag.NewFlagSet("words", flag.ExitOnError),
	run:   cmd_words,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagWordsColumn, "column", flagWordsColumn,
			"The catalog column to count words in.")
		c.flags.IntVar(&flagWordsTop, "top", flagWordsTop,
			"The number of words to show.")
		c.flags.StringVar(&flagWordsQuery, "query", flagWordsQuery,
			"When set, count words over the rows matching this search\n"+
				"query instead of the whole catalog.")
	},
}

func cmd_words(c *command) bool {
	d := loadDataset(c)
	if len(flagWordsQuery) > 0 {
		d = search.Filter(d, flagWordsQuery)
	}
	return renderWords(c, d, flagWordsColumn, flagWordsTop)
}

func renderWords(c *command, d *catalog.Dataset, column string, top int) bool {
	defer markVisited("words")

	words := catalog.WordCounts(d, column)
	if len(words) == 0 {
		pef("No words to count in column '%s'.", column)
		return true
	}
	if top > 0 && len(words) > top {
		words = words[:top]
	}
	c.tplExec("words", tpl.Formatted{
		X: words,
		A: tpl.Attrs{"Max": words[0].Count, "Column": column},
	})
	return true
}
