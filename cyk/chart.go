package cyk

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chartparse"
)

// chart is the dynamic programming table of the parser. It maps
// (span, non-terminal) to the derivations proven for this pair.
//
// Cells are stored densely: for an input of length n and k non-terminals,
// the chart holds n·(n+1)·k slots. Cells of spans at least as long as the
// span length currently being filled are not visible to lookups.
type chart[T any] struct {
	n      int         // input length
	nts    []int       // sorted non-terminal IDs
	ntIdx  map[int]int // non-terminal ID → dense index
	cells  [][]T
	layer  int // span length currently being filled
	filled int // number of non-empty cells
}

func newChart[T any](n int, nonterminals []int) *chart[T] {
	c := &chart[T]{
		n:     n,
		nts:   nonterminals,
		ntIdx: make(map[int]int, len(nonterminals)),
		cells: make([][]T, n*(n+1)*len(nonterminals)),
		layer: 1,
	}
	for i, nt := range nonterminals {
		c.ntIdx[nt] = i
	}
	return c
}

func (c *chart[T]) slot(b, e, ntx int) int {
	return (b*(c.n+1)+e)*len(c.nts) + ntx
}

// get returns the derivations for non-terminal nt over span (b…e).
// Only cells of spans shorter than the current layer are final; for all
// other spans get returns nil.
func (c *chart[T]) get(b, e, nt int) []T {
	ntx, ok := c.ntIdx[nt]
	if !ok || e-b >= c.layer || b < 0 || e > c.n || b >= e {
		return nil
	}
	return c.cells[c.slot(b, e, ntx)]
}

// has is a predicate: does cell (b…e, nt) hold at least one derivation?
func (c *chart[T]) has(b, e, nt int) bool {
	return len(c.get(b, e, nt)) > 0
}

// put stores the final derivations of a cell. Cells are written exactly once.
func (c *chart[T]) put(b, e, nt int, ds []T) {
	if len(ds) == 0 {
		return
	}
	ntx := c.ntIdx[nt]
	c.cells[c.slot(b, e, ntx)] = ds
	c.filled++
}

// advance makes all cells of the current layer final.
func (c *chart[T]) advance() {
	c.layer++
}

// dump is a debugging helper, printing the occupancy of the chart.
func (c *chart[T]) dump() {
	tracer().Debugf("--- chart: %d non-empty cells --------------------", c.filled)
	for l := 1; l <= c.n; l++ {
		for b := 0; b+l <= c.n; b++ {
			var line strings.Builder
			for ntx, nt := range c.nts {
				if cnt := len(c.cells[c.slot(b, b+l, ntx)]); cnt > 0 {
					fmt.Fprintf(&line, " <%d>×%d", nt, cnt)
				}
			}
			if line.Len() > 0 {
				tracer().Debugf("%v%s", chartparse.MakeSpan(b, b+l), line.String())
			}
		}
	}
	tracer().Debugf("---------------------------------------------------")
}
