package main

import (
	"flag"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/xdg"

	"github.com/goflix/goflix/tpl"
)

var flagConfigOverwrite = false

type config struct {
	Driver     string
	DataSource string `toml:"data_source"`
}

var defaultConfig = `
# The 'driver' is the type of relational database that you're using.
# Goflix has been tested with SQLite and PostgreSQL.
# For SQLite, the driver name is 'sqlite'.
# For PostgreSQL, the driver name is 'postgres'.
driver = "sqlite"

# The data source specifies which database to connect to. For SQLite,
# this is simply a file path. If it's a relative file path, then it's
# interpreted with respect to the current working directory of wherever
# 'goflix' is executed.
#
# If you're using PostgreSQL, you will need to consult its documentation
# for specifying connection strings. Here's an example connection string:
#
#     user=andrew password=XXXXXX dbname=goflix sslmode=disable
#
# N.B. The 'sslmode=disable' appears to be required for a default
# PostgreSQL installation.
data_source = "goflix.sqlite"
`

var xdgPaths = xdg.Paths{XDGSuffix: "goflix"}

var cmdWriteConfig = &command{
	name:            "write-config",
	positionalUsage: "[ dir ]",
	shortHelp:       "write a default configuration",
	other:           true,
	help: `
Writes the default configuration to $XDG_CONFIG_HOME/goflix or to the
directory argument given.

If no argument is given and $XDG_CONFIG_HOME is not set, then the
configuration is written to $HOME/.config/goflix/.

The configuration includes a TOML file for specifying database connection
parameters, along with a template file ('format.tpl') used to control the
output format of each view.
`,
	flags: flag.NewFlagSet("write-config", flag.ExitOnError),
	run:   writeConfig,
	addFlags: func(c *command) {
		c.flags.BoolVar(&flagConfigOverwrite, "overwrite", flagConfigOverwrite,
			"When set, the config file will be written regardless of\n"+
				"whether one exists or not.")
	},
}

func writeConfig(c *command) bool {
	var dir string
	if arg := strings.TrimSpace(c.flags.Arg(0)); len(arg) > 0 {
		dir = arg
	} else {
		dir = strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
		if len(dir) == 0 {
			dir = path.Join(os.Getenv("HOME"), ".config")
		}
		dir = path.Join(dir, "goflix")
		if err := os.MkdirAll(dir, 0777); err != nil {
			fatalf("Could not create '%s': %s", dir, err)
		}
	}

	confPath := path.Join(dir, "config.toml")
	tplPath := path.Join(dir, "format.tpl")

	// Don't clobber the user's config unexpectedly!
	if !flagConfigOverwrite {
		_, err := os.Stat(confPath)
		if !os.IsNotExist(err) {
			fatalf("Config file at '%s' already exists. Remove or use "+
				"-overwrite.", confPath)
		}
		_, err = os.Stat(tplPath)
		if !os.IsNotExist(err) {
			fatalf("Template file at '%s' already exists. Remove or use "+
				"-overwrite.", tplPath)
		}
	}

	conf := []byte(strings.TrimSpace(defaultConfig) + "\n")
	if err := os.WriteFile(confPath, conf, 0666); err != nil {
		fatalf("Could not write '%s': %s", confPath, err)
	}

	tpls := []byte(tpl.Defaults + "\n")
	if err := os.WriteFile(tplPath, tpls, 0666); err != nil {
		fatalf("Could not write '%s': %s", tplPath, err)
	}
	return true
}
