package tpl

import (
	"bytes"
	"io"
	"os"
	path "path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// Regular expressions for taming template whitespace.
var (
	stripNewLines     = regexp.MustCompile("}}\n")
	stripLeadingSpace = regexp.MustCompile("(?m)^(\t| )+") // multi-line mode
	stripTooManyLines = regexp.MustCompile("\n\n\n+")
)

// ParseText parses the file at fpath as a set of named templates. If fpath
// has length 0, then the built-in default templates are used.
//
// ParseText pre-processes the template text to make whitespace manageable:
// lines ending with '}}' have their trailing new line removed, while lines
// ending with '}}\' keep it. The text is parsed once before the rewrite so
// that errors report accurate line numbers.
func ParseText(fpath string) (*template.Template, error) {
	var tname, text string
	if len(fpath) == 0 {
		tname = "default"
		text = defaults
	} else {
		tname = path.Base(fpath)
		bs, err := os.ReadFile(fpath)
		if err != nil {
			return nil, ef("Could not read '%s': %s", fpath, err)
		}
		text = string(bs)
	}

	// Parse before mangling so error messages retain meaningful line
	// numbers.
	_, err := template.New(tname).Funcs(Functions).Parse(text)
	if err != nil {
		return nil, ef("Problem parsing template: %s", err)
	}

	// Okay, now do it for real.
	text = trimTemplate(text)
	t, err := template.New(tname).Funcs(Functions).Parse(text)
	if err != nil {
		return nil, ef("BUG: Problem parsing template: %s", err)
	}
	return t, nil
}

// ExecText executes the template and post-processes its output: runs of 3
// or more new line characters (LF) are collapsed to 2.
func ExecText(t *template.Template, w io.Writer, data interface{}) error {
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		return err
	}
	out := stripTooManyLines.ReplaceAllString(buf.String(), "\n\n")
	_, err := io.WriteString(w, out)
	return err
}

func trimTemplate(s string) string {
	// Order is important here.
	s = stripLeadingSpace.ReplaceAllString(s, "")
	s = stripNewLines.ReplaceAllString(s, "}}")
	s = strings.Replace(s, "}}\\", "}}", -1)
	return s
}
