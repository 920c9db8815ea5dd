package main

// The testing is pretty pathetic at the moment, but at least there's
// something to build on.
//
// While there's only one test at the moment, it's actually testing a fair
// amount (not exactly an exemplary unit test):

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/goflix/goflix/catalog"
)

var (
	testDB              *catalog.DB
	testDriver, testDsn = "sqlite", "/tmp/goflix-test.sqlite"
)

var testLists = mapFetcher{
	catalogList: `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,The Irishman,Martin Scorsese,Robert De Niro,United States,"November 27, 2019",2019,R,209 min,Dramas,A hit man recalls his career.
s2,TV Show,Dark,,Louis Hofmann,Germany,"June 27, 2020",2020,TV-MA,3 Seasons,"International TV Shows, TV Dramas",Missing children expose secrets.
s3,Movie,Roma,Alfonso Cuarón,Yalitza Aparicio,Mexico,"December 14, 2018",2018,R,135 min,Dramas,A year in the life of a housekeeper.
`,
}

type mapFetcher map[string]string

type readCloser struct {
	io.Reader
}

func (rc readCloser) Close() error {
	return nil
}

// list returns the named catalog gzipped, just as a real fetcher would.
func (mf mapFetcher) list(name string) (io.ReadCloser, error) {
	buf := new(bytes.Buffer)
	gz := gzip.NewWriter(buf)
	if _, err := io.Copy(gz, strings.NewReader(mf[name])); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return readCloser{buf}, nil
}

func init() {
	var err error
	testDB, err = catalog.Open(testDriver, testDsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := testDB.Clean(); err != nil {
		log.Fatal(err)
	}
	if err := testDB.Close(); err != nil {
		log.Fatal(err)
	}
	if err := loadCatalog(testDriver, testDsn, testLists); err != nil {
		log.Fatal(err)
	}
}

func TestLoadCatalog(t *testing.T) {
	db, err := catalog.Open(testDriver, testDsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	d, err := catalog.List(db)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 {
		t.Fatalf("Expected 3 titles but got %d", d.Len())
	}

	// Order must match the order of rows in the source file.
	titleCol := d.ColumnIndex("title")
	titles := make([]string, 0, d.Len())
	for _, row := range d.Rows {
		titles = append(titles, row[titleCol].String())
	}
	expected := []string{"The Irishman", "Dark", "Roma"}
	for i := range expected {
		if titles[i] != expected[i] {
			t.Fatalf("Expected title %d to be '%s' but got '%s'",
				i, expected[i], titles[i])
		}
	}

	// Null cells survive the round trip as empty strings.
	directorCol := d.ColumnIndex("director")
	if dir := d.Rows[1][directorCol].String(); dir != "" {
		t.Fatalf("Expected empty director for 'Dark' but got '%s'", dir)
	}

	// Years are stored as numbers.
	yearCol := d.ColumnIndex("release_year")
	if y := d.Rows[0][yearCol].Int(); y != 2019 {
		t.Fatalf("Expected release year 2019 but got %d", y)
	}
}
