package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/BurntSushi/csql"
	"github.com/BurntSushi/migration"
)

var (
	sf  = fmt.Sprintf
	ef  = fmt.Errorf
	pef = func(f string, v ...interface{}) {
		fmt.Fprintf(os.Stderr, f+"\n", v...)
	}
)

// dbColumns maps the catalog columns (Columns) to database-safe
// identifiers, since 'type' and 'cast' collide with SQL keywords.
var dbColumns = []string{
	"show_id",
	"content_type",
	"title",
	"director",
	"cast_members",
	"country",
	"date_added",
	"release_year",
	"rating",
	"duration",
	"listed_in",
	"description",
}

// DB represents a database containing a catalog of movies and TV shows.
// The underlying database connection is exposed so that clients may run
// their own queries.
type DB struct {
	*sql.DB
	Driver    string
	inserters []*Inserter
}

func Open(driver, dsn string) (*DB, error) {
	db, err := migration.Open(driver, dsn, migrations[driver])
	if err != nil {
		return nil, err
	}
	if driver == "postgres" {
		if _, err := db.Exec("SET timezone = UTC"); err != nil {
			return nil, ef("Could not set timezone to UTC: %s", err)
		}
	}
	return &DB{db, driver, nil}, nil
}

func (db *DB) Close() error {
	for _, ins := range db.inserters {
		if err := ins.Exec(); err != nil {
			return err
		}
	}
	for _, ins := range db.inserters {
		if err := ins.Close(); err != nil {
			return err
		}
	}
	return db.DB.Close()
}

func (db *DB) Clean() error {
	return csql.SafeFunc(func() {
		csql.Truncate(db, db.Driver, "title")
	})
}

// Empty returns true if and only if the database does not have any
// catalog data.
func (db *DB) Empty() bool {
	empty := true
	csql.SafeFunc(func() { // ignore the error, return true
		var count int
		r := db.QueryRow("SELECT COUNT(*) AS count FROM title")
		csql.Scan(r, &count)
		if count > 0 {
			empty = false
		}
	})
	return empty
}

func (db *DB) Begin() (*Tx, error) {
	tx, err := db.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{db, false, tx}, nil
}

type Tx struct {
	db     *DB
	closed bool
	*sql.Tx
}

func (tx *Tx) Commit() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	return tx.Tx.Commit()
}

func (tx *Tx) Rollback() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	return tx.Tx.Rollback()
}

// Store replaces the contents of the title table with the rows of the
// dataset given. Dataset columns are matched to catalog columns by name,
// case insensitively; columns the dataset is missing are stored as null.
func (db *DB) Store(d *Dataset) error {
	return csql.SafeFunc(func() {
		csql.Truncate(db, db.Driver, "title")

		tx, err := db.Begin()
		csql.Panic(err)

		cols := append([]string{"rowno"}, dbColumns...)
		ins, err := db.NewInserter(tx, 50, "title", cols...)
		csql.Panic(err)

		srcs := make([]int, len(Columns))
		for i, c := range Columns {
			srcs[i] = d.ColumnIndex(c)
		}
		for r, row := range d.Rows {
			args := make([]interface{}, 0, len(cols))
			args = append(args, r+1)
			for i, c := range Columns {
				args = append(args, storeValue(row, srcs[i], c))
			}
			csql.Panic(ins.Exec(args...))
		}
		csql.Panic(ins.Close())
	})
}

// storeValue converts one dataset cell to a driver value. The
// release_year column is stored as an integer; everything else as text.
func storeValue(row Row, i int, column string) interface{} {
	if i < 0 || i >= len(row) || row[i].Null() {
		return nil
	}
	v := row[i]
	if column == "release_year" {
		if v.Kind() != Number {
			return nil
		}
		return int64(v.Int())
	}
	return v.String()
}

// List reads the entire catalog into an in-memory Dataset, in the order
// the rows were loaded.
func List(db *DB) (*Dataset, error) {
	d := &Dataset{Columns: Columns}
	err := csql.SafeFunc(func() {
		q := sf("SELECT %s FROM title ORDER BY rowno ASC",
			strings.Join(dbColumns, ", "))
		rows := csql.Query(db, q)
		csql.ForRow(rows, func(scanner csql.RowScanner) {
			var (
				showID, kind, title, director       sql.NullString
				cast, country, dateAdded            sql.NullString
				rating, duration, listedIn, summary sql.NullString
				year                                sql.NullInt64
			)
			csql.Scan(scanner, &showID, &kind, &title, &director, &cast,
				&country, &dateAdded, &year, &rating, &duration,
				&listedIn, &summary)
			d.Rows = append(d.Rows, Row{
				textValue(showID),
				textValue(kind),
				textValue(title),
				textValue(director),
				textValue(cast),
				textValue(country),
				textValue(dateAdded),
				numValue(year),
				textValue(rating),
				textValue(duration),
				textValue(listedIn),
				textValue(summary),
			})
		})
	})
	return d, err
}

func textValue(v sql.NullString) Value {
	if !v.Valid {
		return Value{}
	}
	return Str(v.String)
}

func numValue(v sql.NullInt64) Value {
	if !v.Valid {
		return Value{}
	}
	return Num(float64(v.Int64))
}
