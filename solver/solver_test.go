package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmarius/dplls/config"
	"github.com/kmarius/dplls/tribool"
)

func newTestSolver(t *testing.T, heuristicName string, pureLiteral bool, clauses [][]int) *Solver {
	t.Helper()
	conf := config.New()
	conf.Heuristic = heuristicName
	conf.PureLiteral = pureLiteral
	s, err := New(conf)
	require.NoError(t, err)
	for _, c := range clauses {
		s.AddClause(c)
	}
	return s
}

// checkInvariants asserts the spec §8 invariants that must hold between
// atomic operations, for every variable and clause currently in s.
func checkInvariants(t *testing.T, s *Solver) {
	t.Helper()

	trailLen := len(s.trail)
	assignedCount := 0

	for vi := 1; vi <= s.NVars(); vi++ {
		v := s.variables[vi]
		if !v.value.Undef() {
			assignedCount++
			require.Equal(t, 0, v.heapPos, "assigned variable %d must not be in the heap", vi)
		} else {
			require.NotEqual(t, 0, v.heapPos, "unset variable %d must be in the heap", vi)
			require.Equal(t, vi, s.heap.items[v.heapPos], "heapPos for %d must point back to it", vi)
		}

		wantPosActive, wantNegActive := 0, 0
		wantPosByLen, wantNegByLen := map[int]int{}, map[int]int{}
		wantJWPos, wantJWNeg := 0.0, 0.0

		for _, ci := range v.posOcc {
			c := s.clauses[ci]
			if c.isSatisfied() {
				continue
			}
			wantPosActive++
			wantPosByLen[c.active]++
			wantJWPos += math.Pow(2, float64(-c.active))
		}
		for _, ci := range v.negOcc {
			c := s.clauses[ci]
			if c.isSatisfied() {
				continue
			}
			wantNegActive++
			wantNegByLen[c.active]++
			wantJWNeg += math.Pow(2, float64(-c.active))
		}

		require.Equal(t, wantPosActive, v.posActive, "posActive for var %d", vi)
		require.Equal(t, wantNegActive, v.negActive, "negActive for var %d", vi)
		require.Equal(t, wantPosByLen, v.posByLen, "posByLen for var %d", vi)
		require.Equal(t, wantNegByLen, v.negByLen, "negByLen for var %d", vi)
		require.InDelta(t, wantJWPos, v.jwPos, 1e-9*float64(s.NVars()+1), "jwPos for var %d", vi)
		require.InDelta(t, wantJWNeg, v.jwNeg, 1e-9*float64(s.NVars()+1), "jwNeg for var %d", vi)

		sumPos, sumNeg := 0, 0
		for _, n := range v.posByLen {
			sumPos += n
		}
		for _, n := range v.negByLen {
			sumNeg += n
		}
		require.Equal(t, v.posActive, sumPos, "sum(posByLen) == posActive for var %d", vi)
		require.Equal(t, v.negActive, sumNeg, "sum(negByLen) == negActive for var %d", vi)
	}

	require.Equal(t, assignedCount, trailLen, "trail length == assigned variable count")

	for ci := 1; ci <= s.NClauses(); ci++ {
		c := s.clauses[ci]
		wantActive := 0
		satisfied := false
		for _, l := range c.lits {
			u := s.variables[l.Var()]
			if u.value.Undef() {
				wantActive++
				continue
			}
			litTrue := (u.value.True() && !l.Sign()) || (u.value.False() && l.Sign())
			if litTrue {
				satisfied = true
			}
		}
		require.Equal(t, wantActive, c.active, "clause %d active count", ci)
		require.Equal(t, satisfied, c.isSatisfied(), "clause %d satisfied state", ci)
	}

	// Heap max-heap property under the current comparator.
	for i := 2; i <= s.heap.len(); i++ {
		parent := i / 2
		require.False(t, s.heap.greater(s.heap.items[i], s.heap.items[parent]),
			"heap property violated at index %d", i)
	}
}

// --- E1-E7 end-to-end scenarios from spec.md §8 ---

func TestE1TrivialSAT(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1}})
	require.True(t, s.Solve())
	require.Equal(t, []int{1}, s.Answer())
}

func TestE2UnitCascade(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1}, {-1, 2}, {-2, 3}})
	require.True(t, s.Solve())
	require.Equal(t, []int{1, 2, 3}, s.Answer())
}

func TestE3Contradiction(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1}, {-1}})
	require.False(t, s.Solve())
}

func TestE4ClassicUNSAT(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}})
	require.False(t, s.Solve())
}

func TestE5RequiresBranchingAndBacktrack(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1, 2}, {-1, 3}, {-2, -3}})
	require.True(t, s.Solve())
	checkModelSatisfies(t, s, [][]int{{1, 2}, {-1, 3}, {-2, -3}})
}

func TestE6TautologyTolerance(t *testing.T) {
	s := newTestSolver(t, "", false, [][]int{{1, -1, 2}, {-2}})
	require.Equal(t, 1, s.NClauses(), "tautological clause must be dropped")
	require.True(t, s.Solve())
	model := s.Answer()
	require.Contains(t, model, -2)
}

func TestE7PureLiteral(t *testing.T) {
	s := newTestSolver(t, "", true, [][]int{{1, 2}, {1, 3}})
	require.True(t, s.Solve())
	require.Equal(t, 0, s.NDecisions(), "pure-literal elimination alone should solve this formula")
	model := s.Answer()
	require.Contains(t, model, 1)
}

func checkModelSatisfies(t *testing.T, s *Solver, clauses [][]int) {
	t.Helper()
	model := s.Answer()
	isTrue := map[int]bool{}
	for _, v := range model {
		isTrue[v] = true
	}
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			if isTrue[l] {
				ok = true
				break
			}
		}
		require.True(t, ok, "model %v does not satisfy clause %v", model, c)
	}
}

// --- Invariants across the full heuristic menu ---

func TestInvariantsHoldDuringSearch(t *testing.T) {
	clauses := [][]int{
		{1, 2, 3}, {-1, 2}, {-2, 3}, {1, -3}, {-1, -2, -3}, {2, -3, 1},
	}
	for _, name := range []string{"", "slis", "slcs", "dlis", "dlcs", "backtrack_count", "mom", "boehm", "jw"} {
		t.Run(name, func(t *testing.T) {
			// Solve builds the heap, so the pre-search state is checked on
			// a second instance whose heap is built the same way.
			pre := newTestSolver(t, name, true, clauses)
			for v := 1; v <= pre.NVars(); v++ {
				pre.heap.insert(v)
			}
			checkInvariants(t, pre)

			s := newTestSolver(t, name, true, clauses)
			s.Solve()
			checkInvariants(t, s)
		})
	}
}

// --- Round-trip laws ---

func TestSetUnsetRoundTrip(t *testing.T) {
	s := newTestSolver(t, "dlis", false, [][]int{
		{1, 2, 3}, {-1, 2}, {-2, 3}, {1, -3},
	})
	checkInvariants(t, s)

	for v := 1; v <= s.NVars(); v++ {
		s.heap.insert(v)
	}

	before := snapshot(s)
	require.False(t, s.doSet(1, tribool.True, branching))
	checkInvariants(t, s)
	s.doUnset(1)
	after := snapshot(s)

	require.Equal(t, before, after)
}

// snapshot captures every field the round-trip law claims is restored, so
// set(v,x,m); unset(v) can be checked for exact equality.
type snap struct {
	active  []int
	satVar  []int
	posAct  []int
	negAct  []int
	jwPos   []float64
	jwNeg   []float64
	heapLen int
}

func snapshot(s *Solver) snap {
	sn := snap{heapLen: s.heap.len()}
	for ci := 1; ci <= s.NClauses(); ci++ {
		sn.active = append(sn.active, s.clauses[ci].active)
		sn.satVar = append(sn.satVar, s.clauses[ci].satVar)
	}
	for vi := 1; vi <= s.NVars(); vi++ {
		v := s.variables[vi]
		sn.posAct = append(sn.posAct, v.posActive)
		sn.negAct = append(sn.negAct, v.negActive)
		sn.jwPos = append(sn.jwPos, v.jwPos)
		sn.jwNeg = append(sn.jwNeg, v.jwNeg)
	}
	return sn
}
