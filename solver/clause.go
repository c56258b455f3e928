package solver

import (
	"strings"

	"github.com/kmarius/dplls/lit"
)

// clause is a CNF clause. lits is fixed after parsing; active and satVar
// evolve as the search assigns and unassigns variables.
type clause struct {
	lits   []lit.Lit
	active int // number of literals whose variable is currently unset
	satVar int // variable that first satisfied this clause, or noVar
}

// newClause builds a clause from raw literals, collapsing duplicates and
// reporting whether the clause is a tautology (contains both l and ~l). A
// tautological clause is always satisfied and must be dropped by the caller
// rather than added to the formula store, per spec §6.
func newClause(lits []lit.Lit) (c *clause, tautology bool) {
	seen := map[lit.Lit]bool{}
	out := make([]lit.Lit, 0, len(lits))

	for _, l := range lits {
		if seen[l.Not()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return &clause{
		lits:   out,
		active: len(out),
		satVar: noVar,
	}, false
}

// isSatisfied reports whether some assignment has already satisfied c.
func (c *clause) isSatisfied() bool {
	return c.satVar != noVar
}

// isUnit reports whether c is active with exactly one unset literal.
func (c *clause) isUnit() bool {
	return !c.isSatisfied() && c.active == 1
}

// isConflict reports whether c is active with no unset literals.
func (c *clause) isConflict() bool {
	return !c.isSatisfied() && c.active == 0
}

// String implements the Stringer interface, mainly for verbose tracing.
func (c *clause) String() string {
	strs := make([]string, len(c.lits))
	for i, l := range c.lits {
		strs[i] = l.String()
	}
	return strings.Join(strs, " ")
}
