package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// stopwords are common words kept out of word frequency counts, since
// they drown out everything interesting in title text.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true,
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// minutesTypo matches duration values like "74 min" that leaked into the
// rating column of the source data.
var minutesTypo = regexp.MustCompile(`^\d+ min$`)

type WordCount struct {
	Word  string
	Count int
}

// WordCounts tallies word frequencies over the named column of the
// dataset. Text is lowercased, punctuation is stripped and stopwords are
// dropped. The result is ordered by descending count, ties broken
// alphabetically. An unknown column yields no counts.
func WordCounts(d *Dataset, column string) []WordCount {
	ci := d.ColumnIndex(column)
	if ci < 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, row := range d.Rows {
		text := nonWord.ReplaceAllString(row[ci].String(), "")
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if stopwords[w] {
				continue
			}
			counts[w]++
		}
	}
	words := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		words = append(words, WordCount{w, n})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	return words
}

type RatingCount struct {
	Rating string
	Count  int
	Tv     bool
}

// Kind names the side of the catalog a rating belongs to, for labeling
// distribution output.
func (rc RatingCount) Kind() string {
	if rc.Tv {
		return "tv"
	}
	return "movie"
}

// RatingCounts tallies the distribution of content ratings, ordered by
// ascending count (ties broken alphabetically). Null ratings and
// duration values that leaked into the rating column are excluded.
// Ratings containing "tv" are marked as TV ratings.
func RatingCounts(d *Dataset) []RatingCount {
	ci := d.ColumnIndex("rating")
	if ci < 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, row := range d.Rows {
		r := row[ci].String()
		if len(r) == 0 || minutesTypo.MatchString(r) {
			continue
		}
		counts[r]++
	}
	ratings := make([]RatingCount, 0, len(counts))
	for r, n := range counts {
		tv := strings.Contains(strings.ToLower(r), "tv")
		ratings = append(ratings, RatingCount{r, n, tv})
	}
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Count != ratings[j].Count {
			return ratings[i].Count < ratings[j].Count
		}
		return ratings[i].Rating < ratings[j].Rating
	})
	return ratings
}

type YearCount struct {
	Year   int
	ByType map[string]int
}

// ReleaseTrend counts titles per release year and content type, ordered
// by ascending year. Rows with a null release year are skipped. Note that
// the final year of a catalog is usually incomplete; callers that care
// should drop it.
func ReleaseTrend(d *Dataset) []YearCount {
	yi := d.ColumnIndex("release_year")
	if yi < 0 {
		return nil
	}
	ti := d.ColumnIndex("type")

	byYear := make(map[int]map[string]int)
	for _, row := range d.Rows {
		if row[yi].Null() {
			continue
		}
		year := row[yi].Int()
		kind := ""
		if ti >= 0 {
			kind = row[ti].String()
		}
		m := byYear[year]
		if m == nil {
			m = make(map[string]int)
			byYear[year] = m
		}
		m[kind]++
	}

	trend := make([]YearCount, 0, len(byYear))
	for year, m := range byYear {
		trend = append(trend, YearCount{year, m})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Year < trend[j].Year
	})
	return trend
}

// ContentTypes returns the distinct values of the type column across the
// trend given, sorted alphabetically.
func ContentTypes(trend []YearCount) []string {
	seen := make(map[string]bool)
	for _, yc := range trend {
		for kind := range yc.ByType {
			seen[kind] = true
		}
	}
	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
