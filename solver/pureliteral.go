package solver

import "github.com/kmarius/dplls/tribool"

// pureLit drains the pure-literal candidate list, assigning each variable
// that still has zero active occurrences in one polarity to satisfy its
// other, active polarity. It is a no-op unless pureLiteralEnabled is set,
// since candidates are only ever appended by doSet when that flag is on.
//
// Assigning a pure literal can never itself produce a conflict: by
// definition the polarity being eliminated has no remaining active
// clauses, so the shrinking pass it drives touches only clauses that are
// already satisfied.
func (s *Solver) pureLit() {
	for len(s.pureCandidates) > 0 {
		n := len(s.pureCandidates) - 1
		v := s.pureCandidates[n]
		s.pureCandidates = s.pureCandidates[:n]

		vr := s.variables[v]
		if !vr.value.Undef() {
			continue
		}
		// Re-check: activity may have moved on since the candidate was queued.
		posZero := vr.posActive == 0
		negZero := vr.negActive == 0
		if posZero == negZero {
			continue
		}

		value := tribool.NewFromBool(negZero)
		s.log("pure_lit %d = %s", v, value)
		s.doSet(v, value, forced)
	}
}

// seedPureCandidates scans the formula once, before search begins, for
// variables that appear with only one polarity in the original clause set.
func (s *Solver) seedPureCandidates() {
	for v := 1; v <= s.NVars(); v++ {
		vr := s.variables[v]
		posZero := vr.posOccStatic == 0
		negZero := vr.negOccStatic == 0
		if posZero != negZero {
			s.pureCandidates = append(s.pureCandidates, v)
		}
	}
}
