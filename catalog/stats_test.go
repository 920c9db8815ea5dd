package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsDataset() *Dataset {
	return &Dataset{
		Columns: []string{"title", "type", "rating", "release_year"},
		Rows: []Row{
			{Str("Love, Death & Robots"), Str("TV Show"), Str("TV-MA"), Num(2019)},
			{Str("Love Hard"), Str("Movie"), Str("TV-14"), Num(2021)},
			{Str("The Love Birds!"), Str("Movie"), Str("PG-13"), Num(2019)},
			{Str("Paris"), Str("Movie"), Str("74 min"), Num(2019)},
			{Str("Dark"), Str("TV Show"), Value{}, Num(2021)},
		},
	}
}

func TestWordCounts(t *testing.T) {
	words := WordCounts(statsDataset(), "title")
	require.NotEmpty(t, words)

	// "love" occurs three times; punctuation and stopwords are dropped.
	assert.Equal(t, WordCount{"love", 3}, words[0])
	for _, wc := range words {
		assert.NotEqual(t, "the", wc.Word)
		assert.NotContains(t, wc.Word, "&")
		assert.NotContains(t, wc.Word, "!")
		assert.NotContains(t, wc.Word, ",")
	}
}

func TestWordCountsUnknownColumn(t *testing.T) {
	assert.Nil(t, WordCounts(statsDataset(), "bogus"))
}

func TestRatingCounts(t *testing.T) {
	ratings := RatingCounts(statsDataset())
	// "74 min" and the null rating are excluded; counts ascend.
	require.Len(t, ratings, 3)
	assert.Equal(t, RatingCount{"PG-13", 1, false}, ratings[0])
	assert.Equal(t, RatingCount{"TV-14", 1, true}, ratings[1])
	assert.Equal(t, RatingCount{"TV-MA", 1, true}, ratings[2])
}

func TestRatingCountKind(t *testing.T) {
	assert.Equal(t, "tv", RatingCount{Rating: "TV-MA", Tv: true}.Kind())
	assert.Equal(t, "movie", RatingCount{Rating: "R"}.Kind())
}

func TestReleaseTrend(t *testing.T) {
	trend := ReleaseTrend(statsDataset())
	require.Len(t, trend, 2)

	assert.Equal(t, 2019, trend[0].Year)
	assert.Equal(t, 2, trend[0].ByType["Movie"])
	assert.Equal(t, 1, trend[0].ByType["TV Show"])

	assert.Equal(t, 2021, trend[1].Year)
	assert.Equal(t, 1, trend[1].ByType["Movie"])
	assert.Equal(t, 1, trend[1].ByType["TV Show"])

	assert.Equal(t, []string{"Movie", "TV Show"}, ContentTypes(trend))
}
