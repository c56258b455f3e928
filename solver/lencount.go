package solver

import "sort"

// lenContext tracks, globally, how many active clauses currently exist at
// each length. It backs heuristic.Context for mom and boehm, which need the
// globally shortest active clause length (or the whole ascending spectrum of
// lengths) rather than anything scoped to a single variable.
type lenContext struct {
	counts map[int]int
	sorted []int
	dirty  bool
}

func newLenContext() *lenContext {
	return &lenContext{counts: map[int]int{}}
}

func (lc *lenContext) inc(length int) {
	if length <= 0 {
		return
	}
	lc.counts[length]++
	lc.dirty = true
}

func (lc *lenContext) dec(length int) {
	if length <= 0 {
		return
	}
	lc.counts[length]--
	if lc.counts[length] == 0 {
		delete(lc.counts, length)
	}
	lc.dirty = true
}

// ActiveLengths implements heuristic.Context.
func (lc *lenContext) ActiveLengths() []int {
	if lc.dirty {
		sorted := make([]int, 0, len(lc.counts))
		for l := range lc.counts {
			sorted = append(sorted, l)
		}
		sort.Ints(sorted)
		lc.sorted = sorted
		lc.dirty = false
	}
	return lc.sorted
}

func (s *Solver) lenCountInc(length int) { s.lenCtx.inc(length) }
func (s *Solver) lenCountDec(length int) { s.lenCtx.dec(length) }
