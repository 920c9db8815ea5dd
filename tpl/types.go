package tpl

import (
	"fmt"
)

var (
	sf = fmt.Sprintf
	ef = fmt.Errorf
)

// Object is the data a view template renders: word counts for the words
// view, rating counts for the ratings view, and so on.
type Object interface{}

// Attrs carries any extra attributes a template needs beyond the object
// itself, like the maximum count used to scale bars.
type Attrs map[string]interface{}

// Formatted is the value passed to every view template.
type Formatted struct {
	X Object
	A Attrs
}
