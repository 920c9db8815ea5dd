package tpl

import "strings"

// Defaults is the default template for every goflix view. Writing it to
// 'format.tpl' in the configuration directory (see 'goflix write-config')
// gives a starting point for customizing the output.
var Defaults = defaults

var defaults = strings.TrimSpace(`
{{ define "words" }}
	{{ printf "Most common words in the %s column" .A.Column | underlined "-" }}\
	{{ $max := .A.Max }}
	{{ range .X }}
		{{ printf "%-18s %5d  %s" .Word .Count (bar 40 $max .Count) }}\
	{{ end }}
{{ end }}

{{ define "ratings" }}
	{{ "Distribution of content ratings" | underlined "-" }}\
	{{ $max := .A.Max }}
	{{ range .X }}
		{{ printf "%-8s %-6s %5d  %s" .Rating .Kind .Count (bar 40 $max .Count) }}\
	{{ end }}
{{ end }}

{{ define "summary" }}
	{{ "In Summary" | underlined "=" }}\

	{{ range .X }}
		{{ wrap 78 . }}\

	{{ end }}
{{ end }}
`)
