package heuristic

// noneHeuristic provides a stable, total ordering with no preference beyond
// variable index, and an arbitrary polarity. It requires no resifts outside
// of the initial heap build.
type noneHeuristic struct{}

func (noneHeuristic) Name() string { return None }

func (noneHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return a.Index() > b.Index()
}

func (noneHeuristic) PickPolarity(v VariableView) bool { return true }

// slisHeuristic (Static Largest Individual Sum) ranks by the larger of a
// variable's two static occurrence counts. Static heuristics never change
// priority once the heap is built.
type slisHeuristic struct{}

func (slisHeuristic) Name() string { return SLIS }

func (slisHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return max(a.PosOccStatic(), a.NegOccStatic()) > max(b.PosOccStatic(), b.NegOccStatic())
}

func (slisHeuristic) PickPolarity(v VariableView) bool {
	return v.PosOccStatic() > v.NegOccStatic()
}

// slcsHeuristic (Static Largest Combined Sum) ranks by the sum of a
// variable's static occurrence counts.
type slcsHeuristic struct{}

func (slcsHeuristic) Name() string { return SLCS }

func (slcsHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return a.PosOccStatic()+a.NegOccStatic() > b.PosOccStatic()+b.NegOccStatic()
}

func (slcsHeuristic) PickPolarity(v VariableView) bool {
	return v.PosOccStatic() > v.NegOccStatic()
}

// dlisHeuristic (Dynamic Largest Individual Sum) is slis over active
// occurrence counts instead of static ones, so it requires a resift on
// every activity change.
type dlisHeuristic struct{}

func (dlisHeuristic) Name() string { return DLIS }

func (dlisHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return max(a.PosActive(), a.NegActive()) > max(b.PosActive(), b.NegActive())
}

func (dlisHeuristic) PickPolarity(v VariableView) bool {
	return v.PosActive() > v.NegActive()
}

// dlcsHeuristic (Dynamic Largest Combined Sum) is slcs over active
// occurrence counts.
type dlcsHeuristic struct{}

func (dlcsHeuristic) Name() string { return DLCS }

func (dlcsHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return a.PosActive()+a.NegActive() > b.PosActive()+b.NegActive()
}

func (dlcsHeuristic) PickPolarity(v VariableView) bool {
	return v.PosActive() > v.NegActive()
}

// backtrackCountHeuristic favors variables that have been undone by
// backtracking most often, on the theory that they sit near the conflict
// that keeps recurring. It only requires a resift after a backtrack, since
// that's the only event that changes its key.
type backtrackCountHeuristic struct{}

func (backtrackCountHeuristic) Name() string { return BacktrackCount }

func (backtrackCountHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return a.BacktrackCount() > b.BacktrackCount()
}

func (backtrackCountHeuristic) PickPolarity(v VariableView) bool {
	return v.PosActive() > v.NegActive()
}
