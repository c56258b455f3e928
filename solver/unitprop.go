package solver

import "github.com/kmarius/dplls/tribool"

// unitProp drains the unit-clause queue, forcing the sole unassigned
// literal of each unit clause true until the queue empties or a conflict
// forces a backtrack all the way past the root. It returns false exactly
// when that happens, meaning the formula is unsatisfiable.
func (s *Solver) unitProp() bool {
	for {
		ci, ok := s.popUnit()
		if !ok {
			return true
		}

		cl := s.clauses[ci]
		if !cl.isUnit() {
			// Stale entry: the clause was satisfied or shrank further
			// since it was queued.
			continue
		}

		var l = cl.lits[0]
		for _, candidate := range cl.lits {
			if s.variables[candidate.Var()].value.Undef() {
				l = candidate
				break
			}
		}

		value := tribool.NewFromBool(!l.Sign())
		s.propagations++
		if s.doSet(l.Var(), value, forced) {
			s.backtrack()
			if s.unsat {
				return false
			}
		}
	}
}
