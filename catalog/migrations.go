package catalog

import (
	"github.com/BurntSushi/migration"
)

var migrations = map[string][]migration.Migrator{
	"sqlite": {
		func(tx migration.LimitedTx) error {
			var err error
			_, err = tx.Exec(`
				CREATE TABLE title (
					rowno INTEGER NOT NULL,
					show_id TEXT,
					content_type TEXT,
					title TEXT,
					director TEXT,
					cast_members TEXT,
					country TEXT,
					date_added TEXT,
					release_year INTEGER,
					rating TEXT,
					duration TEXT,
					listed_in TEXT,
					description TEXT,
					PRIMARY KEY (rowno)
				);
				CREATE INDEX idx_title_title ON title (title);
				CREATE INDEX idx_title_year ON title (release_year);
				`)
			return err
		},
	},
	"postgres": {
		func(tx migration.LimitedTx) error {
			var err error
			_, err = tx.Exec(`
				CREATE TABLE title (
					rowno INTEGER NOT NULL,
					show_id TEXT,
					content_type TEXT,
					title TEXT,
					director TEXT,
					cast_members TEXT,
					country TEXT,
					date_added TEXT,
					release_year INTEGER,
					rating TEXT,
					duration TEXT,
					listed_in TEXT,
					description TEXT,
					PRIMARY KEY (rowno)
				);
				CREATE INDEX idx_title_title ON title (title);
				CREATE INDEX idx_title_year ON title (release_year);
				`)
			return err
		},
	},
}
