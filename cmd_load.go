package main

import (
	"flag"

	"github.com/goflix/goflix/catalog"
)

var flagLoadDownload = ""

var cmdLoad = &command{
	name:            "load",
	positionalUsage: "( dir | http://... | https://... | ftp://... )",
	shortHelp:       "populates the database with catalog data",
	help: `
This command loads the current database with the contents of the catalog
CSV found at the location given. It may be an HTTP or FTP url or a
directory on the local file system. Regardless of how the location is
specified, it must point to a directory (whether remote or local)
containing a gzipped '` + catalogList + `.csv' file.

Loading replaces whatever catalog is currently in the database, so it is
also the way to refresh a stale catalog. Use 'clean' if you just want an
empty database back.
`,
	flags: flag.NewFlagSet("load", flag.ExitOnError),
	run:   load,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagLoadDownload, "download", flagLoadDownload,
			"When set, the data retrieved will be stored in the directory\n"+
				"specified. Then goflix will quit.")
	},
}

func load(c *command) bool {
	c.assertNArg(1)
	driver, dsn := c.dbinfo()

	fetch := saver{newFetcher(c.flags.Arg(0)), flagLoadDownload}
	if fetch.fetcher == nil {
		return false
	}
	if len(flagLoadDownload) > 0 {
		logf("Downloading %s...", catalogList)
		list, err := fetch.list(catalogList)
		if err != nil {
			pef("Could not download %s: %s", catalogList, err)
			return false
		}
		if err := list.Close(); err != nil {
			pef("Could not finish download: %s", err)
			return false
		}
		return true
	}

	logf("Loading %s...", catalogList)
	if err := loadCatalog(driver, dsn, fetch); err != nil {
		pef("Could not store the catalog: %s", err)
		return false
	}
	return true
}

// loadCatalog reads the catalog CSV from the fetcher given and replaces
// the contents of the title table with it. The fetcher must yield the
// raw gzipped file; decompression happens here.
func loadCatalog(driver, dsn string, fetch fetcher) error {
	list, err := gzipFetcher{fetch}.list(catalogList)
	if err != nil {
		return err
	}
	defer list.Close()

	d, err := catalog.ReadCSV(list)
	if err != nil {
		return err
	}

	db, err := catalog.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Store(d); err != nil {
		return err
	}
	logf("Stored %d titles.", d.Len())
	return nil
}
