package main

import "flag"

var cmdClean = &command{
	name:      "clean",
	shortHelp: "empties the database",
	other:     true,
	flags:     flag.NewFlagSet("clean", flag.ExitOnError),
	run:       clean,
}

func clean(c *command) bool {
	db := openDb(c.dbinfo())
	defer closeDb(db)

	if db.Empty() {
		logf("Database is already empty.")
		return true
	}
	if err := db.Clean(); err != nil {
		pef("Error cleaning database: %s", err)
		return false
	}
	return true
}
