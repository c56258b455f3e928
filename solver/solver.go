// Package solver implements the DPLL search engine: formula store,
// occurrence index, activity bookkeeping, priority heap, assignment trail,
// propagation engine, pure-literal elimination, and the DPLL driver itself,
// all behind a single Solver aggregate (per the teacher's "no process-global
// state" design note).
package solver

import (
	"fmt"
	"log"

	"github.com/kmarius/dplls/config"
	"github.com/kmarius/dplls/heuristic"
	"github.com/kmarius/dplls/lit"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Version returns the solver's version.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Solver is the DPLL SAT solver.
type Solver struct {
	logger *log.Logger

	heuristic          heuristic.Heuristic
	pureLiteralEnabled bool

	// variables and clauses are index-addressed stores that AddClause grows.
	// variables[0] and clauses[0] are unused sentinels so that 1-indexed
	// DIMACS variables and noVar/clause-index 0 behave consistently.
	variables []*variable
	clauses   []*clause

	heap           *maxHeap
	lenCtx         *lenContext
	unitQ          unitQueue
	trail          []trailEntry
	pureCandidates []int

	unsat bool

	decisions    int
	backtracks   int
	propagations int
}

// New returns a new, empty solver configured from c.
func New(c *config.Config) (*Solver, error) {
	if c == nil {
		c = config.New()
	}
	h, err := heuristic.Select(c.Heuristic)
	if err != nil {
		return nil, err
	}
	s := &Solver{
		logger:             c.Logger,
		heuristic:          h,
		pureLiteralEnabled: c.PureLiteral,
		variables:          []*variable{nil}, // index 0 unused
		clauses:            []*clause{nil},   // index 0 unused
		lenCtx:             newLenContext(),
	}
	s.heap = newMaxHeap(s)
	return s, nil
}

// NVars returns the number of variables in the formula.
func (s *Solver) NVars() int {
	return len(s.variables) - 1
}

// NClauses returns the number of (non-tautological) clauses in the formula.
func (s *Solver) NClauses() int {
	return len(s.clauses) - 1
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int { return s.decisions }

// NBacktracks returns the number of branching decisions that backtracking
// has flipped.
func (s *Solver) NBacktracks() int { return s.backtracks }

// NPropagations returns the number of assignments made by unit propagation.
func (s *Solver) NPropagations() int { return s.propagations }

func (s *Solver) log(format string, args ...interface{}) {
	s.logger.Printf(format, args...)
}

// greaterThan is the heap comparator: it delegates to the active heuristic,
// reading whichever variable fields that heuristic uses.
func (s *Solver) greaterThan(a, b int) bool {
	return s.heuristic.Greater(s.variables[a], s.variables[b], s.lenCtx)
}

// variableFor grows the variable store so index v is addressable.
func (s *Solver) variableFor(v int) {
	for len(s.variables) <= v {
		idx := len(s.variables)
		s.variables = append(s.variables, newVariable(idx))
	}
}

// AddClause adds a clause to the formula, given as a slice of nonzero
// signed integers (DIMACS literals). Duplicate literals are collapsed and
// tautological clauses are dropped, per spec §3 and §6. AddClause must be
// called before Solve; the formula store is immutable once search begins.
func (s *Solver) AddClause(ints []int) {
	lits := make([]lit.Lit, len(ints))
	maxVar := 0
	for i, n := range ints {
		lits[i] = lit.NewFromInt(n)
		if v := lits[i].Var(); v > maxVar {
			maxVar = v
		}
	}
	s.variableFor(maxVar)

	cl, tautology := newClause(lits)
	if tautology {
		s.log("dropping tautological clause: %v", ints)
		return
	}

	ci := len(s.clauses)
	s.clauses = append(s.clauses, cl)

	for _, l := range cl.lits {
		v := s.variables[l.Var()]
		positive := !l.Sign()
		if l.Sign() {
			v.negOcc = append(v.negOcc, ci)
			v.negOccStatic++
		} else {
			v.posOcc = append(v.posOcc, ci)
			v.posOccStatic++
		}

		// Every literal is active at registration time (its variable is
		// unset), so the activity counters, length histograms, and
		// Jeroslow-Wang sums start at the same baseline the satisfying/
		// shrinking passes in activity.go maintain incrementally from then
		// on, per spec §3's invariants.
		v.setActive(positive, v.active(positive)+1)
		m := v.byLen(positive)
		m[cl.active]++
		v.setJW(positive, v.jw(positive)+pow2neg(cl.active))
	}
	s.lenCountInc(cl.active)
	if cl.isUnit() {
		s.pushUnit(ci)
	}
}

// Answer returns the satisfying model found by the most recent successful
// Solve call, as signed DIMACS integers sorted by variable.
func (s *Solver) Answer() []int {
	out := make([]int, 0, s.NVars())
	for v := 1; v <= s.NVars(); v++ {
		if s.variables[v].value.True() {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}
