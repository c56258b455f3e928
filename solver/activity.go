package solver

import (
	"math"

	"github.com/kmarius/dplls/internal/assert"
	"github.com/kmarius/dplls/tribool"
)

// pow2neg returns 2^-n.
func pow2neg(n int) float64 {
	return math.Pow(2, float64(-n))
}

// doSet is the set(v, new_value, mark) operation of spec §4.2. It assumes
// v is currently unset. It returns true if the assignment produced a
// conflict (an active clause shrunk to zero literals); the caller is
// responsible for invoking backtrack when that happens.
func (s *Solver) doSet(v int, value tribool.Tribool, m mark) bool {
	assert.That(s.variables[v].value.Undef(), "doSet(%d): variable already assigned", v)
	s.pushTrail(v, m)

	vr := s.variables[v]
	vr.value = value
	s.heap.remove(v)
	s.log("set %d = %s (%s)", v, value, markString(m))

	positive := value.True()
	conflict := false

	// Satisfying pass: clauses in v's matching-polarity occurrence list
	// transition from active to satisfied.
	for _, ci := range vr.occ(positive) {
		cl := s.clauses[ci]
		if cl.isSatisfied() {
			continue
		}
		cl.satVar = v
		s.lenCountDec(cl.active)

		for _, l := range cl.lits {
			u := l.Var()
			ur := s.variables[u]
			if !ur.value.Undef() {
				continue
			}
			uPositive := !l.Sign()
			newCount := ur.active(uPositive) - 1
			ur.setActive(uPositive, newCount)

			m := ur.byLen(uPositive)
			m[cl.active]--
			if m[cl.active] == 0 {
				delete(m, cl.active)
			}
			ur.setJW(uPositive, ur.jw(uPositive)-pow2neg(cl.active))

			if s.pureLiteralEnabled && newCount == 0 && ur.active(!uPositive) > 0 {
				s.pureCandidates = append(s.pureCandidates, u)
			}
			s.heap.siftDownVar(u)
		}
	}

	// Shrinking pass: clauses in v's opposite-polarity occurrence list lose
	// one active literal.
	for _, ci := range vr.occ(!positive) {
		cl := s.clauses[ci]
		if cl.isSatisfied() {
			continue
		}
		oldLen := cl.active
		cl.active--
		newLen := cl.active

		for _, l := range cl.lits {
			u := l.Var()
			ur := s.variables[u]
			if !ur.value.Undef() {
				continue
			}
			uPositive := !l.Sign()
			m := ur.byLen(uPositive)
			m[oldLen]--
			if m[oldLen] == 0 {
				delete(m, oldLen)
			}
			m[newLen]++
			ur.setJW(uPositive, ur.jw(uPositive)+pow2neg(newLen)-pow2neg(oldLen))
			s.heap.siftUpVar(u)
		}

		s.lenCountDec(oldLen)
		s.lenCountInc(newLen)

		switch {
		case cl.isUnit():
			s.pushUnit(ci)
		case cl.isConflict():
			conflict = true
		}
	}

	return conflict
}

// doUnset is the unset(v) operation of spec §4.2: reverses the shrinking
// pass, then the satisfying pass, then clears v's value and reinserts it
// into the heap. It does not touch the trail; the caller pops that entry.
func (s *Solver) doUnset(v int) {
	vr := s.variables[v]
	assert.That(!vr.value.Undef(), "doUnset(%d): variable not assigned", v)
	positive := vr.value.True()

	for _, ci := range vr.occ(!positive) {
		cl := s.clauses[ci]
		if cl.isSatisfied() {
			continue
		}
		oldLen := cl.active
		newLen := oldLen + 1
		cl.active = newLen

		for _, l := range cl.lits {
			u := l.Var()
			ur := s.variables[u]
			if !ur.value.Undef() {
				continue
			}
			uPositive := !l.Sign()
			m := ur.byLen(uPositive)
			m[oldLen]--
			if m[oldLen] == 0 {
				delete(m, oldLen)
			}
			m[newLen]++
			ur.setJW(uPositive, ur.jw(uPositive)+pow2neg(newLen)-pow2neg(oldLen))
			s.heap.siftDownVar(u)
		}

		s.lenCountDec(oldLen)
		s.lenCountInc(newLen)
	}

	for _, ci := range vr.occ(positive) {
		cl := s.clauses[ci]
		if cl.satVar != v {
			continue
		}
		cl.satVar = noVar
		s.lenCountInc(cl.active)

		for _, l := range cl.lits {
			u := l.Var()
			ur := s.variables[u]
			if !ur.value.Undef() {
				continue
			}
			uPositive := !l.Sign()
			ur.setActive(uPositive, ur.active(uPositive)+1)
			m := ur.byLen(uPositive)
			m[cl.active]++
			ur.setJW(uPositive, ur.jw(uPositive)+pow2neg(cl.active))
			s.heap.siftUpVar(u)
		}
	}

	vr.value = tribool.Undef
	s.heap.insert(v)
	s.log("unset %d", v)
}

func markString(m mark) string {
	if m == branching {
		return "branching"
	}
	return "forced"
}
