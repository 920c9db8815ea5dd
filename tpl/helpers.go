package tpl

import (
	"strings"
	"text/template"

	"github.com/kr/text"
)

// Functions is loaded into every goflix template.
var Functions = template.FuncMap{
	"combine":    combine,
	"lines":      lines,
	"wrap":       wrap,
	"underlined": underlined,
	"bar":        bar,
}

// combine provides a way to compose values during template execution.
// This is particularly useful when executing sub-templates. For example,
// say you've defined two variables `$a` and `$b` that you want to pass to
// a sub-template. But templates can only take a single pipeline. combine
// will let you bind any number of values. For example:
//
//	{{ template "tpl_name" (combine "a" $a "b" $b) }}
//
// The template "tpl_name" can then access `$a` and `$b` with `.a` and
// `.b`.
//
// Note that the first and every other subsequent value must be strings.
// The second and every other subsequent value may be anything. There must
// be an even number of arguments given. If any part of this contract is
// violated, the function panics.
func combine(keyvals ...interface{}) map[string]interface{} {
	if len(keyvals)%2 != 0 {
		panic(sf("combine must have even number of parameters but %d isn't.",
			len(keyvals)))
	}
	m := make(map[string]interface{})
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			panic(sf("Parameter %d to combine must be a string but it is "+
				"a %T.", i, keyvals[i]))
		}
		m[key] = keyvals[i+1]
	}
	return m
}

func wrap(limit int, s interface{}) string {
	return text.Wrap(sf("%s", s), limit)
}

func lines(s interface{}) []string {
	return strings.Split(sf("%s", s), "\n")
}

func underlined(rep string, is interface{}) string {
	s := sf("%s", is)
	return sf("%s\n%s", s, strings.Repeat(rep, len(s)))
}

// bar renders a horizontal bar for n, scaled against max so that the
// largest value fills the whole width. Any non-zero n gets at least one
// cell.
func bar(width, max, n int) string {
	if width <= 0 || max <= 0 || n <= 0 {
		return ""
	}
	w := n * width / max
	if w == 0 {
		w = 1
	}
	return strings.Repeat("■", w)
}
