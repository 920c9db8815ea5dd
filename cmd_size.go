package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/BurntSushi/csql"
)

var cmdSize = &command{
	name:      "size",
	shortHelp: "lists size of tables and total size of database",
	other:     true,
	flags:     flag.NewFlagSet("size", flag.ExitOnError),
	run:       size,
}

func size(c *command) bool {
	db := openDb(c.dbinfo())
	defer closeDb(db)

	var q string
	switch db.Driver {
	case "postgres":
		q = `
			SELECT tablename FROM pg_tables
			WHERE schemaname NOT IN ('pg_catalog', 'information_schema')
			ORDER BY tablename ASC
		`
	case "sqlite":
		q = `
			SELECT tbl_name FROM sqlite_master
			WHERE type = 'table' AND tbl_name NOT LIKE 'sqlite_%'
			ORDER BY tbl_name ASC
		`
	default:
		pef("Unsupported driver '%s'.", db.Driver)
		return false
	}

	var tables []string
	err := csql.SafeFunc(func() {
		rows := csql.Query(db, q)
		csql.ForRow(rows, func(scanner csql.RowScanner) {
			var name string
			csql.Scan(scanner, &name)
			tables = append(tables, name)
		})
	})
	if err != nil {
		pef("Could not list tables: %s", err)
		return false
	}

	total := 0
	tabw := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	err = csql.SafeFunc(func() {
		for _, table := range tables {
			count := csql.Count(db, sf("SELECT COUNT(*) FROM %s", table))
			total += count
			fmt.Fprintf(tabw, "%s\t%d\n", table, count)
		}
	})
	if err != nil {
		pef("Could not count rows: %s", err)
		return false
	}
	fmt.Fprintf(tabw, "total\t%d\n", total)
	tabw.Flush()
	return true
}
