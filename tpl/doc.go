/*
Package tpl provides convenience functions that are loaded into every
goflix template, along with the default template for each goflix view.
This package also defines a few key types, like Attrs, that describe the
values passed to a template when executed.

The defaults defined here can be overridden by the user with a
'format.tpl' file in goflix's configuration directory. Every view template
receives a Formatted value: X is the view's data (word counts, rating
counts, summary text, ...) and A carries any extra attributes the view
needs, like the maximum count used to scale bars.
*/
package tpl
