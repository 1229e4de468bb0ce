// Package renderer turns back-office records into markdown strings for
// terminal display.
package renderer

import (
	"fmt"
	"strings"
)

// tableRenderer accumulates markdown output.
type tableRenderer struct {
	*strings.Builder
}

func newRenderer() *tableRenderer {
	return &tableRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
