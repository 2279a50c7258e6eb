package common

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" palette entry. It panics on a malformed value, so
// use it only for constant literals.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("common: palette color %q: %v", s, err))
	}
	return c
}
