/*
Command goflix is a command line program that loads the Netflix title
catalog into a local database and explores it through a handful of views:
search, word frequencies, release trends, rating distributions and an
interactive browser.

Usage:

	goflix {command} [flags] [arguments]

Use 'goflix help {command}' for more details on {command}.

A list of the main commands:

	browse     interactively search and inspect the catalog
	load       creates/updates database with Netflix catalog data
	ratings    show the distribution of content ratings
	search     search the catalog with free text and column filters
	summary    show a short writeup of the catalog's highlights
	trends     show titles added per release year by content type
	words      show the most frequent words in a column

A list of other commands:

	clean           empties the database
	size            lists size of tables and total size of database
	write-config    write a default configuration

# Search queries

Every view that accepts a query uses the same syntax. Bare words match
any column by case insensitive substring. A word of the form
'column:value' restricts matching to that column. Double quotes group
several words into a single search term or filter value, e.g.,
'director:"Martin Scorsese"'. When a query names the same column twice,
the last value wins.

# Configuration

Goflix looks for 'config.toml' in $XDG_CONFIG_HOME/goflix. It specifies
the database driver and connection string, so that '-db' doesn't need to
be repeated on every invocation. A 'format.tpl' file in the same
directory overrides the default output templates. Both files can be
generated with 'goflix write-config'.
*/
package main
