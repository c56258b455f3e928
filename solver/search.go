package solver

import "github.com/kmarius/dplls/tribool"

// propagate runs unit propagation and, if enabled, pure-literal
// elimination to a joint fixpoint: each can feed work to the other (a
// forced assignment can expose a new pure literal, and vice versa), so
// they alternate until both queues are empty. It returns false if
// propagation ever backtracks past the root, meaning the formula is
// unsatisfiable.
func (s *Solver) propagate() bool {
	for {
		if !s.unitProp() {
			return false
		}
		if !s.pureLiteralEnabled || len(s.pureCandidates) == 0 {
			return true
		}
		s.pureLit()
	}
}

// Solve runs the DPLL search to completion and reports satisfiability. On
// success, Answer returns the satisfying model.
func (s *Solver) Solve() bool {
	for v := 1; v <= s.NVars(); v++ {
		s.heap.insert(v)
	}
	s.seedPureCandidates()

	if !s.propagate() {
		return false
	}

	for {
		if len(s.trail) == s.NVars() {
			return true
		}

		v := s.heap.peek()
		if v == noVar {
			return true
		}

		value := tribool.NewFromBool(s.heuristic.PickPolarity(s.variables[v]))
		s.decisions++
		if s.doSet(v, value, branching) {
			s.backtrack()
			if s.unsat {
				return false
			}
		}

		if !s.propagate() {
			return false
		}
	}
}
