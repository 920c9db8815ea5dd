package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goflix/goflix/catalog"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		terms   []string
		filters map[string]string
	}{
		{
			name:    "empty input",
			query:   "",
			terms:   nil,
			filters: map[string]string{},
		},
		{
			name:    "plain terms",
			query:   "love paris",
			terms:   []string{"love", "paris"},
			filters: map[string]string{},
		},
		{
			name:    "quoted phrase",
			query:   `"a girl and"`,
			terms:   []string{"a girl and"},
			filters: map[string]string{},
		},
		{
			name:    "column filter",
			query:   "director:Nolan",
			terms:   nil,
			filters: map[string]string{"director": "Nolan"},
		},
		{
			name:    "column filter with quoted phrase",
			query:   `director: "Quentin Tarantino"`,
			terms:   nil,
			filters: map[string]string{"director": "Quentin Tarantino"},
		},
		{
			name:    "trailing space consumes next token",
			query:   "rating: PG-13",
			terms:   nil,
			filters: map[string]string{"rating": "PG-13"},
		},
		{
			name:    "free text and column mix",
			query:   "love director:Nolan",
			terms:   []string{"love"},
			filters: map[string]string{"director": "Nolan"},
		},
		{
			name:    "column key is case folded",
			query:   "Director:Nolan",
			terms:   nil,
			filters: map[string]string{"director": "Nolan"},
		},
		{
			name:    "value splits on first colon only",
			query:   "title:re:zero",
			terms:   nil,
			filters: map[string]string{"title": "re:zero"},
		},
		{
			name:    "last write wins",
			query:   "rating:PG rating:R",
			terms:   nil,
			filters: map[string]string{"rating": "R"},
		},
		{
			name:    "unterminated quote eats the rest",
			query:   `love "the matrix reloaded`,
			terms:   []string{"love", "the matrix reloaded"},
			filters: map[string]string{},
		},
		{
			name:    "colon with no key",
			query:   ":bar",
			terms:   nil,
			filters: map[string]string{"": "bar"},
		},
		{
			name:    "dangling colon at end of input",
			query:   "director:",
			terms:   nil,
			filters: map[string]string{"director": ""},
		},
		{
			name:    "quote glued to a word",
			query:   `mid"dle ground"`,
			terms:   []string{"middle ground"},
			filters: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, filters := Tokenize(tt.query)
			assert.Equal(t, tt.terms, terms, "terms")
			assert.Equal(t, tt.filters, filters, "filters")
		})
	}
}

// testDataset is a small catalog with the column set of the real one.
func testDataset() *catalog.Dataset {
	return &catalog.Dataset{
		Columns: []string{"title", "type", "director", "rating", "release_year"},
		Rows: []catalog.Row{
			{
				catalog.Str("Pulp Fiction"),
				catalog.Str("Movie"),
				catalog.Str("Quentin Tarantino"),
				catalog.Str("R"),
				catalog.Num(1994),
			},
			{
				catalog.Str("Inception"),
				catalog.Str("Movie"),
				catalog.Str("Christopher Nolan"),
				catalog.Str("PG-13"),
				catalog.Num(2010),
			},
			{
				catalog.Str("Love Actually"),
				catalog.Str("Movie"),
				catalog.Str("Richard Curtis"),
				catalog.Str("R"),
				catalog.Num(2003),
			},
			{
				catalog.Str("Breaking Bad"),
				catalog.Str("TV Show"),
				catalog.Value{},
				catalog.Str("TV-MA"),
				catalog.Num(2008),
			},
		},
	}
}

func titles(d *catalog.Dataset) []string {
	ti := d.ColumnIndex("title")
	var ts []string
	for _, row := range d.Rows {
		ts = append(ts, row[ti].String())
	}
	return ts
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	d := testDataset()
	assert.Equal(t, d, Filter(d, ""))
	assert.Equal(t, d, Filter(d, "   "))
}

func TestFilterColumn(t *testing.T) {
	d := testDataset()
	res := Filter(d, "director:Nolan")
	assert.Equal(t, []string{"Inception"}, titles(res))
}

func TestFilterQuotedPhrase(t *testing.T) {
	d := testDataset()
	res := Filter(d, `director: "Quentin Tarantino"`)
	assert.Equal(t, []string{"Pulp Fiction"}, titles(res))
}

func TestFilterTermMatchesAnyColumn(t *testing.T) {
	d := testDataset()
	// "tv" appears in both the type and rating columns of Breaking Bad.
	res := Filter(d, "tv")
	assert.Equal(t, []string{"Breaking Bad"}, titles(res))
}

func TestFilterTermsNarrow(t *testing.T) {
	d := testDataset()
	res := Filter(d, "movie r")
	// "r" is a substring of every movie row, "movie" excludes the show.
	assert.Equal(t,
		[]string{"Pulp Fiction", "Inception", "Love Actually"},
		titles(res))

	res = Filter(d, "movie rating:R nolan")
	assert.Empty(t, titles(res))
}

func TestFilterCaseInsensitive(t *testing.T) {
	d := testDataset()
	res := Filter(d, "tarantino")
	assert.Equal(t, []string{"Pulp Fiction"}, titles(res))

	res = Filter(d, "DIRECTOR:nolan")
	assert.Equal(t, []string{"Inception"}, titles(res))
}

func TestFilterNumericColumn(t *testing.T) {
	d := testDataset()
	res := Filter(d, "release_year:2010")
	assert.Equal(t, []string{"Inception"}, titles(res))
}

func TestFilterUnknownColumnIgnored(t *testing.T) {
	d := testDataset()
	res := Filter(d, "foo:bar")
	assert.Equal(t, d.Rows, res.Rows)
}

func TestFilterDegenerateColon(t *testing.T) {
	d := testDataset()
	// ':bar' filters on the empty column name, which matches nothing,
	// so it imposes no constraint.
	res := Filter(d, ":bar")
	assert.Equal(t, d.Rows, res.Rows)
}

func TestFilterPreservesOrderAndColumns(t *testing.T) {
	d := testDataset()
	res := Filter(d, "r")
	assert.Equal(t, d.Columns, res.Columns)

	// Results must be a subsequence of the original rows.
	last := -1
	for _, row := range res.Rows {
		found := -1
		for i := last + 1; i < len(d.Rows); i++ {
			if assert.ObjectsAreEqual(d.Rows[i], row) {
				found = i
				break
			}
		}
		require.True(t, found > last, "row out of order or not in source")
		last = found
	}
}

func TestFilterIdempotent(t *testing.T) {
	d := testDataset()
	for _, q := range []string{"", "movie", "director:Nolan", "tv r", "xyzzy"} {
		once := Filter(d, q)
		twice := Filter(once, q)
		assert.Equal(t, once.Rows, twice.Rows, "query %q", q)
	}
}

func TestFilterNeverMutates(t *testing.T) {
	d := testDataset()
	want := testDataset()
	Filter(d, "movie rating:R tarantino")
	assert.Equal(t, want, d)
}

func TestFilterEmptyDataset(t *testing.T) {
	d := &catalog.Dataset{Columns: []string{"title", "type"}}
	for _, q := range []string{"", "anything", "title:foo"} {
		res := Filter(d, q)
		require.NotNil(t, res)
		assert.Empty(t, res.Rows)
	}
}

func TestFilterNoMatchesIsEmptyNotError(t *testing.T) {
	d := testDataset()
	res := Filter(d, "definitely not in the catalog")
	assert.True(t, res.Empty())
	assert.Equal(t, 0, res.Len())
}
