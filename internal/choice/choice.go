// Package choice models a selector value that is either a concrete row id
// or the neutral "any" value meaning no filter on that dimension.
package choice

import (
	"fmt"
	"strconv"
	"strings"
)

// AnyLabel is the textual form of Any.
const AnyLabel = "any"

// Choice is either Any or a specific id. The zero value is Any.
type Choice struct {
	id       int64
	specific bool
}

// Any is the neutral choice. It never equals a choice built with ID.
var Any = Choice{}

// ID returns a choice selecting exactly id.
func ID(id int64) Choice {
	return Choice{id: id, specific: true}
}

// Parse reads "any" (case-insensitive, or empty) or a base-10 integer.
func Parse(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AnyLabel) {
		return Any, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Any, fmt.Errorf("invalid choice %q: want %q or an integer id", s, AnyLabel)
	}
	return ID(id), nil
}

// IsAny reports whether c is the neutral choice.
func (c Choice) IsAny() bool { return !c.specific }

// Value returns the id and true, or 0 and false for Any.
func (c Choice) Value() (int64, bool) {
	return c.id, c.specific
}

func (c Choice) String() string {
	if !c.specific {
		return AnyLabel
	}
	return strconv.FormatInt(c.id, 10)
}
