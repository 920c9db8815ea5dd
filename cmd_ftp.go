package main

import (
	"flag"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/jlaffaye/ftp"
)

var cmdFtp = &command{
	name:            "ftp",
	positionalUsage: "list-name ftp://...",
	shortHelp:       "downloads catalog files from an FTP server",
	other:           true,
	help: `
This is an undocumented command that downloads the given catalog file from
the given FTP server and prints the contents of the file to stdout. The
contents are compressed in the gzip format.

The purpose of this command is to isolate each FTP connection in a single
process. Closing/killing an FTP connection after a long download is
unreliable enough that brute force is the only option that always works.
`,
	flags: flag.NewFlagSet("ftp", flag.ExitOnError),
	run:   cmd_ftp,
}

func cmd_ftp(c *command) bool {
	c.assertLeastNArg(2)

	listName, uri := c.flags.Arg(0), c.flags.Arg(1)
	loc, err := url.Parse(uri)
	if err != nil {
		pef("Could not parse URL '%s': %s", uri, err)
		return false
	}
	if loc.User == nil {
		loc.User = url.UserPassword("anonymous", "anonymous")
	}
	if !strings.Contains(loc.Host, ":") {
		loc.Host += ":21"
	}

	conn, err := ftp.Dial(loc.Host)
	if err != nil {
		pef("Could not connect to '%s': %s", loc.Host, err)
		return false
	}

	pass, _ := loc.User.Password()
	if err := conn.Login(loc.User.Username(), pass); err != nil {
		pef("Authentication failed for '%s': %s", loc.Host, err)
		return false
	}

	namePath := sf("%s/%s.csv.gz", loc.Path, listName)
	r, err := conn.Retr(namePath)
	if err != nil {
		pef("Could not retrieve '%s' from '%s': %s", namePath, loc.Host, err)
		return false
	}

	if _, err := io.Copy(os.Stdout, r); err != nil {
		pef("Could not write '%s' to stdout: %s", listName, err)
		return false
	}

	// Don't even bother trying to close the connection.
	return true
}
