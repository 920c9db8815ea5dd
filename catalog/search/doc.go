/*
Package search turns a free-text search string into structured filter
predicates and applies them to a catalog dataset.

The query syntax is deliberately small. Plain words are free-text terms
that a row matches when any of its cells contains the word, case
insensitively. Every term narrows the result:

	love paris

Double quotes group words into a single phrase term:

	"a girl and"

And a 'column:value' pair restricts matching to a single named column.
The value may be a quoted phrase, and whitespace around the colon is
forgiven:

	director:Nolan
	director: "Quentin Tarantino" rating:PG-13

There are no boolean operators, ranges or negation. Malformed queries
(an unterminated quote, a dangling colon, an unknown column name) degrade
to a best-effort interpretation rather than failing: the only error-like
outcome of a search is an empty result, and that is a normal value.
*/
package search
