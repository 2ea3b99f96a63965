// Package board - text serialization of a finished tour.
//
// A tour block is height lines, topmost row (y = height−1) first, each
// line holding width space-separated step numbers, followed by one
// blank line so consecutive blocks in an append-only file stay
// separated. String renders the same layout for console diagnostics.
package board

import (
	"fmt"
	"io"
	"strings"
)

// WriteBlock writes one tour block to w and returns the first write
// error encountered, wrapped with context. Existing sink content is
// never touched; callers append blocks in discovery order.
// Complexity: O(W×H).
func (b *Board) WriteBlock(w io.Writer) error {
	var sb strings.Builder
	b.render(&sb)
	sb.WriteByte('\n') // block separator

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("board: writing tour block: %w", err)
	}

	return nil
}

// String renders the visit-order grid, topmost row first.
// Complexity: O(W×H).
func (b *Board) String() string {
	var sb strings.Builder
	b.render(&sb)

	return sb.String()
}

// render emits height lines of width step numbers into sb.
func (b *Board) render(sb *strings.Builder) {
	var x, y int
	for y = b.height - 1; y >= 0; y-- {
		for x = 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%d", b.steps[y*b.width+x])
		}
		sb.WriteByte('\n')
	}
}
