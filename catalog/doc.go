/*
Package catalog provides the data model for a catalog of movies and TV
shows, along with functions for storing a catalog in a relational database
and reading it back into memory. The model is a plain tabular dataset:
an ordered sequence of rows over a fixed set of named columns, where each
cell is text, a number or null.

The database can be queried with the 'database/sql' package directly, but
it is strongly recommended that you use the Open function in this package.
Namely, Open performs a migration on the schema of your database to make
sure it is up to date with the version of the 'catalog' package that you're
using. (If the migration fails, it will be rolled back and your database
will be left untouched.)

Searching and filtering a dataset lives in the 'search' sub-package.
*/
package catalog
