package component

import (
	"fmt"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// FromBytes parses b as exactly one component. It fails with a
// *tperrors.ParseError when b holds no component or more than one.
func FromBytes[G grammar.Grammar](b []byte) (Component, error) {
	c := Parse[G](b)
	first, ok := c.Next()
	if !ok {
		return Component{}, newSingleError[G](b, 0)
	}
	if _, more := c.Next(); more {
		return Component{}, newSingleError[G](b, 2+c.Len())
	}
	return first, nil
}

// FromString is FromBytes for a string.
func FromString[G grammar.Grammar](s string) (Component, error) {
	return FromBytes[G]([]byte(s))
}

func newSingleError[G grammar.Grammar](b []byte, count int) error {
	var g G
	return &tperrors.ParseError{
		Grammar: g.Name(),
		Input:   string(b),
		Count:   count,
		Message: fmt.Sprintf("expected exactly one component, found %d", count),
	}
}
